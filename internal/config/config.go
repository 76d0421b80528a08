// Package config provides configuration structures and loading for gogeomine.
package config

// Minimum support interpretation modes.
const (
	MinSupCount    = "count"    // absolute expected support
	MinSupFraction = "fraction" // fraction of the number of transactions
)

// Input formats.
const (
	FormatFile  = "file"
	FormatMySQL = "mysql"
)

// Config represents the complete application configuration.
type Config struct {
	Source  DatabaseConfig       `yaml:"source" mapstructure:"source"`
	Jobs    map[string]JobConfig `yaml:"jobs" mapstructure:"jobs"`
	Mining  MiningConfig         `yaml:"mining" mapstructure:"mining"`
	Logging LoggingConfig        `yaml:"logging" mapstructure:"logging"`
}

// DatabaseConfig represents a MySQL connection used as a transaction source.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// JobConfig represents one mining job.
type JobConfig struct {
	Input  InputConfig   `yaml:"input" mapstructure:"input"`
	Output OutputConfig  `yaml:"output" mapstructure:"output"`
	Mining *MiningConfig `yaml:"mining,omitempty" mapstructure:"mining"`
}

// InputConfig describes where transactions and the neighbour relation come from.
type InputConfig struct {
	Format            string                `yaml:"format" mapstructure:"format"` // file or mysql
	Transactions      string                `yaml:"transactions" mapstructure:"transactions"`
	Neighbours        string                `yaml:"neighbours" mapstructure:"neighbours"`
	Separator         string                `yaml:"separator" mapstructure:"separator"`
	TransactionsTable TransactionTableConfig `yaml:"transactions_table" mapstructure:"transactions_table"`
	NeighboursTable   NeighbourTableConfig  `yaml:"neighbours_table" mapstructure:"neighbours_table"`
}

// TransactionTableConfig maps a table with one row per item occurrence.
type TransactionTableConfig struct {
	Table             string `yaml:"table" mapstructure:"table"`
	TransactionColumn string `yaml:"transaction_column" mapstructure:"transaction_column"`
	ItemColumn        string `yaml:"item_column" mapstructure:"item_column"`
	ProbabilityColumn string `yaml:"probability_column" mapstructure:"probability_column"`
	PositionColumn    string `yaml:"position_column" mapstructure:"position_column"` // optional; orders items within a transaction
}

// NeighbourTableConfig maps a table with one row per item -> neighbour edge.
type NeighbourTableConfig struct {
	Table           string `yaml:"table" mapstructure:"table"`
	ItemColumn      string `yaml:"item_column" mapstructure:"item_column"`
	NeighbourColumn string `yaml:"neighbour_column" mapstructure:"neighbour_column"`
}

// OutputConfig controls where mined patterns go.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // empty: no pattern file
	Top  int    `yaml:"top" mapstructure:"top"`   // patterns shown in the terminal summary
}

// MiningConfig holds the mining thresholds.
type MiningConfig struct {
	MinSup       float64 `yaml:"min_sup" mapstructure:"min_sup"`
	MinSupMode   string  `yaml:"min_sup_mode" mapstructure:"min_sup_mode"` // count or fraction
	MaxDepth     int     `yaml:"max_depth" mapstructure:"max_depth"`       // 0 = unbounded
	Verification string  `yaml:"verification" mapstructure:"verification"` // index or scan
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Source: DatabaseConfig{
			Port:               3306,
			TLS:                "preferred",
			MaxConnections:     4,
			MaxIdleConnections: 2,
		},
		Mining: MiningConfig{
			MinSup:       1,
			MinSupMode:   MinSupCount,
			MaxDepth:     0,
			Verification: "index",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// GetJobMining returns the mining config for a job by name, falling back to global if not set.
func (c *Config) GetJobMining(jobName string) MiningConfig {
	job, err := c.GetJob(jobName)
	if err != nil {
		return c.Mining
	}
	return job.GetJobMining(c.Mining)
}

// GetJobMining returns the mining config for a job, falling back to global if not set.
func (jc *JobConfig) GetJobMining(global MiningConfig) MiningConfig {
	if jc.Mining == nil {
		return global
	}

	result := global
	if jc.Mining.MinSup > 0 {
		result.MinSup = jc.Mining.MinSup
	}
	if jc.Mining.MinSupMode != "" {
		result.MinSupMode = jc.Mining.MinSupMode
	}
	if jc.Mining.MaxDepth > 0 {
		result.MaxDepth = jc.Mining.MaxDepth
	}
	if jc.Mining.Verification != "" {
		result.Verification = jc.Mining.Verification
	}
	return result
}

// EffectiveSeparator returns the configured separator, defaulting to a tab.
func (ic *InputConfig) EffectiveSeparator() string {
	if ic.Separator == "" {
		return "\t"
	}
	return ic.Separator
}

// EffectiveFormat returns the configured input format, defaulting to file.
func (ic *InputConfig) EffectiveFormat() string {
	if ic.Format == "" {
		return FormatFile
	}
	return ic.Format
}
