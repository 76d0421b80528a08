package cmd

import (
	"fmt"

	"github.com/dbsmedya/gogeomine/internal/config"
	"github.com/spf13/cobra"
)

var listJobsCmd = &cobra.Command{
	Use:   "list-jobs",
	Short: "List all jobs defined in configuration",
	Long: `List-jobs displays all mining jobs defined in the configuration file
along with their input and mining settings.

Example:
  gogeomine list-jobs --config gogeomine.yaml`,
	RunE: runListJobs,
}

func init() {
	rootCmd.AddCommand(listJobsCmd)
}

func runListJobs(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Sorted by ListJobs
	jobNames := cfg.ListJobs()

	if len(jobNames) == 0 {
		cmd.Printf("No jobs defined in %s\n", configFile)
		return nil
	}

	cmd.Printf("Jobs defined in %s:\n\n", configFile)

	for i, jobName := range jobNames {
		job, err := cfg.GetJob(jobName)
		if err != nil {
			return fmt.Errorf("failed to get job %q: %w", jobName, err)
		}

		cmd.Printf("%d. %s\n", i+1, jobName)
		cmd.Printf("   Format:        %s\n", job.Input.EffectiveFormat())

		switch job.Input.EffectiveFormat() {
		case config.FormatMySQL:
			cmd.Printf("   Transactions:  %s (tx: %s, item: %s, prob: %s)\n",
				job.Input.TransactionsTable.Table,
				job.Input.TransactionsTable.TransactionColumn,
				job.Input.TransactionsTable.ItemColumn,
				job.Input.TransactionsTable.ProbabilityColumn)
			cmd.Printf("   Neighbours:    %s (item: %s, neighbour: %s)\n",
				job.Input.NeighboursTable.Table,
				job.Input.NeighboursTable.ItemColumn,
				job.Input.NeighboursTable.NeighbourColumn)
		default:
			cmd.Printf("   Transactions:  %s\n", job.Input.Transactions)
			cmd.Printf("   Neighbours:    %s\n", job.Input.Neighbours)
		}

		if job.Output.Path != "" {
			cmd.Printf("   Output:        %s\n", job.Output.Path)
		} else {
			cmd.Printf("   Output:        (terminal only)\n")
		}

		mining := job.GetJobMining(cfg.Mining)
		if job.Mining != nil {
			cmd.Printf("   Mining:        Custom (min_sup=%g, mode=%s, max_depth=%d, verification=%s)\n",
				mining.MinSup, mining.MinSupMode, mining.MaxDepth, mining.Verification)
		} else {
			cmd.Printf("   Mining:        Global (min_sup=%g, mode=%s, max_depth=%d, verification=%s)\n",
				mining.MinSup, mining.MinSupMode, mining.MaxDepth, mining.Verification)
		}

		if i < len(jobNames)-1 {
			cmd.Println()
		}
	}

	cmd.Printf("\nTotal: %d job(s)\n", len(jobNames))
	return nil
}
