package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture is a temporary config with one file-backed job mining the
// two-transaction example where only B lists A as a neighbour.
type fixture struct {
	dir        string
	configFile string
	output     string
}

func writeFixture(t *testing.T, extraJobs string) fixture {
	t.Helper()

	dir := t.TempDir()
	transactions := filepath.Join(dir, "transactions.txt")
	neighbours := filepath.Join(dir, "neighbours.txt")
	output := filepath.Join(dir, "patterns.txt")

	require.NoError(t, os.WriteFile(transactions,
		[]byte("A\tB:0.9\t0.8\nA\tB\tC:0.7\t0.6\t0.5\n"), 0644))
	require.NoError(t, os.WriteFile(neighbours, []byte("B\tA\n"), 0644))

	configContent := fmt.Sprintf(`mining:
  min_sup: 1
  min_sup_mode: count

logging:
  level: error
  format: text
  output: stderr

jobs:
  paper:
    input:
      format: file
      transactions: %s
      neighbours: %s
    output:
      path: %s
      top: 2
%s`, transactions, neighbours, output, extraJobs)

	configFile := filepath.Join(dir, "gogeomine.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	return fixture{dir: dir, configFile: configFile, output: output}
}

// withFlags snapshots the package-level flag variables and restores them
// when the test ends.
func withFlags(t *testing.T) {
	t.Helper()

	savedCfgFile, savedLogLevel, savedLogFormat := cfgFile, logLevel, logFormat
	savedMinSup, savedMaxDepth, savedNoColor := minSup, maxDepth, noColor
	savedMineJob, savedMineOutput, savedMineTop, savedMineForce := mineJob, mineOutput, mineTop, mineForce
	savedMineWidth := mineWidth
	savedStatsJob, savedStatsTop := statsJob, statsTop
	savedValidateJob := validateJob

	t.Cleanup(func() {
		cfgFile, logLevel, logFormat = savedCfgFile, savedLogLevel, savedLogFormat
		minSup, maxDepth, noColor = savedMinSup, savedMaxDepth, savedNoColor
		mineJob, mineOutput, mineTop, mineForce = savedMineJob, savedMineOutput, savedMineTop, savedMineForce
		mineWidth = savedMineWidth
		statsJob, statsTop = savedStatsJob, savedStatsTop
		validateJob = savedValidateJob
	})

	noColor = true
}
