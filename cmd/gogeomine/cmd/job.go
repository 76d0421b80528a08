package cmd

import (
	"context"
	"fmt"

	"github.com/gookit/color"

	"github.com/dbsmedya/gogeomine/internal/config"
	"github.com/dbsmedya/gogeomine/internal/database"
	"github.com/dbsmedya/gogeomine/internal/dataset"
	"github.com/dbsmedya/gogeomine/internal/logger"
	"github.com/dbsmedya/gogeomine/internal/types"
)

// jobRun is a loaded job with CLI overrides applied.
type jobRun struct {
	name   string
	cfg    *config.Config
	job    *config.JobConfig
	mining config.MiningConfig
	log    *logger.Logger

	dbManager *database.Manager // set by connect for mysql input
}

// prepareJob loads the config file, applies CLI overrides, validates the
// result and builds a job-scoped logger.
func prepareJob(jobName string) (*jobRun, error) {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	job, err := cfg.GetJob(jobName)
	if err != nil {
		return nil, err
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.MinSup, overrides.MaxDepth)
	mining := cfg.ApplyJobOverrides(jobName, overrides.MinSup, overrides.MaxDepth)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &jobRun{
		name:   jobName,
		cfg:    cfg,
		job:    job,
		mining: mining,
		log:    log.WithJob(jobName),
	}, nil
}

// connect opens and pings the source database. Callers must close.
func (r *jobRun) connect(ctx context.Context) error {
	dbManager := database.NewManager(r.cfg)
	if err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := dbManager.Ping(ctx); err != nil {
		dbManager.Close()
		return fmt.Errorf("database connection failed: %w", err)
	}
	r.dbManager = dbManager
	return nil
}

func (r *jobRun) close() {
	if r.dbManager != nil {
		r.dbManager.Close()
		r.dbManager = nil
	}
}

// loadInput reads the job's transactions and neighbour relation from its
// configured source.
func (r *jobRun) loadInput(ctx context.Context) (types.Database, map[string][]string, error) {
	input := r.job.Input

	switch input.EffectiveFormat() {
	case config.FormatFile:
		sep := input.EffectiveSeparator()
		db, err := dataset.ReadTransactionsFile(input.Transactions, sep)
		if err != nil {
			return nil, nil, err
		}
		relation, err := dataset.ReadNeighboursFile(input.Neighbours, sep)
		if err != nil {
			return nil, nil, err
		}
		r.log.Infow("Loaded input files",
			"transactions", input.Transactions,
			"neighbours", input.Neighbours,
			"rows", len(db),
		)
		return db, relation, nil

	case config.FormatMySQL:
		if r.dbManager == nil {
			if err := r.connect(ctx); err != nil {
				return nil, nil, err
			}
			defer r.close()
		}

		db, err := database.LoadTransactions(ctx, r.dbManager.Source, input.TransactionsTable)
		if err != nil {
			return nil, nil, err
		}
		relation, err := database.LoadNeighbours(ctx, r.dbManager.Source, input.NeighboursTable)
		if err != nil {
			return nil, nil, err
		}
		r.log.Infow("Loaded input tables",
			"transactions_table", input.TransactionsTable.Table,
			"neighbours_table", input.NeighboursTable.Table,
			"rows", len(db),
		)
		return db, relation, nil
	}

	return nil, nil, fmt.Errorf("unsupported input format %q", input.Format)
}

// threshold resolves the configured minimum support against the database size.
func (r *jobRun) threshold(db types.Database) (float64, error) {
	return dataset.ResolveMinSup(r.mining.MinSup, r.mining.MinSupMode, len(db))
}

func colorEnabled() bool {
	return !noColor && color.SupportColor()
}
