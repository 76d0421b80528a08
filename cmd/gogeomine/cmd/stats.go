package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gogeomine/internal/miner"
	"github.com/dbsmedya/gogeomine/internal/verifier"
)

var (
	statsJob string
	statsTop int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Estimate a mining run without generating patterns",
	Long: `Stats loads the job's input and reports what a mining run would work
with, without generating or verifying any pattern.

The report shows:
  - Transaction, occurrence and distinct item counts
  - Total expected weight of the database
  - The resolved minimum support and the items that pass it
  - Filtered transactions and the size of the initial pattern tree
  - Neighbour relation size
  - The highest-support single items

Example:
  gogeomine stats --config gogeomine.yaml --job air_quality`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsJob, "job", "j", "",
		"Job name from configuration file (required)")
	statsCmd.MarkFlagRequired("job")

	statsCmd.Flags().IntVar(&statsTop, "top", 10,
		"Number of single items to list")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	run, err := prepareJob(statsJob)
	if err != nil {
		return err
	}
	defer run.log.Sync()

	db, relation, err := run.loadInput(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}

	threshold, err := run.threshold(db)
	if err != nil {
		return err
	}

	m, err := miner.NewMiner(db, relation, miner.Options{
		MinSup:       threshold,
		MaxDepth:     run.mining.MaxDepth,
		Verification: verifier.VerificationMethod(run.mining.Verification),
	}, run.log)
	if err != nil {
		return fmt.Errorf("failed to create miner: %w", err)
	}

	result, err := m.Estimate(statsTop)
	if err != nil {
		return fmt.Errorf("estimation failed: %w", err)
	}

	miner.DisplayEstimate(cmd.OutOrStdout(), result)
	return nil
}
