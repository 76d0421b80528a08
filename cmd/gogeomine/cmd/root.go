package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	minSup    float64
	maxDepth  int
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "gogeomine",
	Short: "Geo-referenced frequent pattern miner for uncertain data",
	Long: `A CLI tool for mining frequent co-occurrence patterns from uncertain,
geo-referenced transactions (for example sensor readings tagged with a station
and an existence probability).

Features:
  - Expected support over probabilistic transactions
  - Neighbour-gated FP-tree that only grows spatially adjacent patterns
  - Exact support correction pass removing false positives
  - File and MySQL transaction sources`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "gogeomine.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Mining overrides
	rootCmd.PersistentFlags().Float64Var(&minSup, "min-sup", 0,
		"Override minimum support (count or fraction, per min_sup_mode)")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0,
		"Override maximum conditional tree depth")

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable coloured terminal output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	MinSup    float64
	MaxDepth  int
	NoColor   bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		MinSup:    minSup,
		MaxDepth:  maxDepth,
		NoColor:   noColor,
	}
}
