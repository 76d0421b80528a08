package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gogeomine/internal/config"
	"github.com/dbsmedya/gogeomine/internal/database"
	"github.com/dbsmedya/gogeomine/internal/dataset"
	"github.com/dbsmedya/gogeomine/internal/gfptree"
	"github.com/dbsmedya/gogeomine/internal/lock"
	"github.com/dbsmedya/gogeomine/internal/miner"
	"github.com/dbsmedya/gogeomine/internal/report"
	"github.com/dbsmedya/gogeomine/internal/verifier"
)

var (
	mineJob    string
	mineTop    int
	mineOutput string
	mineForce  bool
	mineWidth  int
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine frequent geo-referenced patterns for a job",
	Long: `Mine loads the job's uncertain transactions and neighbour relation,
builds the neighbour-gated pattern tree, generates candidate patterns and
recomputes their exact expected support.

Patterns whose exact support falls below the threshold are dropped. The
remaining patterns are written to the job's output path (one "items:support"
line per pattern) and summarised on the terminal.

Example:
  gogeomine mine --config gogeomine.yaml --job air_quality
  gogeomine mine -j air_quality --min-sup 0.05 --top 20
  gogeomine mine -j air_quality --width 100`,
	RunE: runMine,
}

func init() {
	mineCmd.Flags().StringVarP(&mineJob, "job", "j", "",
		"Job name from configuration file (required)")
	mineCmd.MarkFlagRequired("job")

	mineCmd.Flags().IntVar(&mineTop, "top", -1,
		"Number of patterns to display (-1 uses the job's output.top, 0 shows all)")
	mineCmd.Flags().StringVarP(&mineOutput, "output", "o", "",
		"Override the job's pattern output file")
	mineCmd.Flags().IntVar(&mineWidth, "width", report.DefaultPatternWidth,
		"Maximum display width of the pattern column (minimum 8)")

	mineCmd.Flags().BoolVar(&mineForce, "force", false,
		"Mine even if the job lock cannot be acquired (mysql input only)")

	rootCmd.AddCommand(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	run, err := prepareJob(mineJob)
	if err != nil {
		return err
	}
	log := run.log
	defer log.Sync()

	log.Infow("Starting mining run",
		"config", GetConfigFile(),
		"format", run.job.Input.EffectiveFormat(),
	)

	// Setup context with signal handling
	ctx, stop := database.WithShutdown(context.Background(), func(sig os.Signal) {
		log.Warnw("Received shutdown signal - aborting input load", "signal", sig.String())
	})
	defer stop()

	// Acquire advisory lock to prevent concurrent runs of a database-backed job
	if run.job.Input.EffectiveFormat() == config.FormatMySQL {
		if err := run.connect(ctx); err != nil {
			return err
		}
		defer run.close()

		if !mineForce {
			jobLock := lock.NewJobLock(run.dbManager.Source, mineJob)
			if err := jobLock.AcquireOrFail(ctx); err != nil {
				if errors.Is(err, lock.ErrLockTimeout) {
					return fmt.Errorf("job '%s' is already running on another instance (use --force to override)", mineJob)
				}
				return fmt.Errorf("failed to acquire job lock: %w", err)
			}
			defer jobLock.Release(context.Background())
			log.Infow("Acquired advisory lock for job", "lock", jobLock.LockName())
		} else {
			log.Warn("Skipping advisory lock acquisition (--force flag used)")
		}
	}

	db, relation, err := run.loadInput(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Mining cancelled by user")
			return nil
		}
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
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create miner: %w", err)
	}

	result, err := m.Mine()
	if err != nil {
		if errors.Is(err, gfptree.ErrDepthExceeded) {
			return fmt.Errorf("%w (raise --max-depth or set it to 0)", err)
		}
		return fmt.Errorf("mining failed: %w", err)
	}

	output := run.job.Output.Path
	if mineOutput != "" {
		output = mineOutput
	}
	if output != "" {
		if err := dataset.WritePatternsFile(output, result.Patterns); err != nil {
			return err
		}
		log.Infow("Wrote patterns", "path", output, "patterns", result.Patterns.Len())
	}

	top := run.job.Output.Top
	if mineTop >= 0 {
		top = mineTop
	}

	// Display results
	r := report.NewRenderer(cmd.OutOrStdout(), colorEnabled())
	r.SetPatternWidth(mineWidth)
	cmd.Println()
	r.Summary(run.name, result)
	cmd.Println()
	r.Patterns(result.Patterns, top)

	return nil
}
