package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	configContent := `
mining:
  min_sup: 2.5
  min_sup_mode: count

jobs:
  air_quality:
    input:
      format: file
      transactions: data/uncertain.txt
      neighbours: data/neighbours.txt
      separator: "\t"
    output:
      path: out/patterns.txt
      top: 15
    mining:
      min_sup: 0.1
      min_sup_mode: fraction
      max_depth: 6

logging:
  level: debug
  format: text
  output: stdout
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Mining.MinSup)
	assert.Equal(t, MinSupCount, cfg.Mining.MinSupMode)

	require.Len(t, cfg.Jobs, 1)
	job, exists := cfg.Jobs["air_quality"]
	require.True(t, exists)
	assert.Equal(t, FormatFile, job.Input.Format)
	assert.Equal(t, "data/uncertain.txt", job.Input.Transactions)
	assert.Equal(t, "data/neighbours.txt", job.Input.Neighbours)
	assert.Equal(t, "\t", job.Input.Separator)
	assert.Equal(t, "out/patterns.txt", job.Output.Path)
	assert.Equal(t, 15, job.Output.Top)
	require.NotNil(t, job.Mining)
	assert.Equal(t, 0.1, job.Mining.MinSup)

	mining := cfg.GetJobMining("air_quality")
	assert.Equal(t, MinSupFraction, mining.MinSupMode)
	assert.Equal(t, 6, mining.MaxDepth)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3306, cfg.Source.Port, "defaults survive unmarshal")
}

func TestLoad_MySQLInput(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "mysql.yaml")
	configContent := `
source:
  host: db.local
  user: miner
  password: secret
  database: sensors
jobs:
  sensors:
    input:
      format: mysql
      transactions_table:
        table: readings
        transaction_column: window_id
        item_column: station
        probability_column: confidence
        position_column: seq
      neighbours_table:
        table: station_neighbours
        item_column: station
        neighbour_column: neighbour
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	job := cfg.Jobs["sensors"]
	assert.Equal(t, FormatMySQL, job.Input.EffectiveFormat())
	assert.Equal(t, "readings", job.Input.TransactionsTable.Table)
	assert.Equal(t, "seq", job.Input.TransactionsTable.PositionColumn)
	assert.Equal(t, "station_neighbours", job.Input.NeighboursTable.Table)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWithEnvVars(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "env-host")
	t.Setenv("TEST_DB_PASS", "env-pass")
	t.Setenv("TEST_DATA_DIR", "/srv/data")

	configPath := filepath.Join(t.TempDir(), "test-env.yaml")
	configContent := `
source:
  host: ${TEST_DB_HOST}
  user: miner
  password: ${TEST_DB_PASS}
  database: sensors
jobs:
  env_job:
    input:
      transactions: ${TEST_DATA_DIR}/db.txt
      neighbours: $TEST_DATA_DIR/nb.txt
    output:
      path: ${TEST_DATA_DIR}/out.txt
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Source.Host)
	assert.Equal(t, "env-pass", cfg.Source.Password)
	job := cfg.Jobs["env_job"]
	assert.Equal(t, "/srv/data/db.txt", job.Input.Transactions)
	assert.Equal(t, "/srv/data/nb.txt", job.Input.Neighbours)
	assert.Equal(t, "/srv/data/out.txt", job.Output.Path)
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("mining.min_sup", 4.0)
	v.Set("logging.level", "warn")

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.Mining.MinSup)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, MinSupCount, cfg.Mining.MinSupMode)
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("TEST_VAR", "test-value")

	tests := []struct {
		input    string
		expected string
	}{
		{"${TEST_VAR}", "test-value"},
		{"$TEST_VAR", "test-value"},
		{"prefix-${TEST_VAR}-suffix", "prefix-test-value-suffix"},
		{"${NONEXISTENT}", "${NONEXISTENT}"}, // Unset vars remain unchanged
		{"no-vars-here", "no-vars-here"},
	}

	for _, tt := range tests {
		result := expandEnvVar(tt.input)
		if result != tt.expected {
			t.Errorf("expandEnvVar(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestGetJob(t *testing.T) {
	cfg := &Config{
		Jobs: map[string]JobConfig{
			"existing_job": {Input: InputConfig{Transactions: "db.txt"}},
		},
	}

	job, err := cfg.GetJob("existing_job")
	require.NoError(t, err)
	assert.Equal(t, "db.txt", job.Input.Transactions)

	_, err = cfg.GetJob("nonexistent_job")
	assert.Error(t, err)
}

func TestListJobs(t *testing.T) {
	cfg := &Config{
		Jobs: map[string]JobConfig{
			"job_c": {},
			"job_a": {},
			"job_b": {},
		},
	}

	assert.Equal(t, []string{"job_a", "job_b", "job_c"}, cfg.ListJobs())
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyOverrides("debug", "json", 3.5, 8)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 3.5, cfg.Mining.MinSup)
	assert.Equal(t, 8, cfg.Mining.MaxDepth)

	cfg.ApplyOverrides("", "", 0, 0)
	assert.Equal(t, "debug", cfg.Logging.Level, "empty overrides keep existing values")
	assert.Equal(t, 3.5, cfg.Mining.MinSup)
}

func TestApplyJobOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jobs = map[string]JobConfig{
		"job": {Mining: &MiningConfig{MinSup: 0.3, MinSupMode: MinSupFraction}},
	}

	mining := cfg.ApplyJobOverrides("job", 0, 0)
	assert.Equal(t, 0.3, mining.MinSup)
	assert.Equal(t, MinSupFraction, mining.MinSupMode)

	mining = cfg.ApplyJobOverrides("job", 0.5, 3)
	assert.Equal(t, 0.5, mining.MinSup)
	assert.Equal(t, 3, mining.MaxDepth)
}
