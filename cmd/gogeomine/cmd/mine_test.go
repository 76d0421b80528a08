package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/gogeomine/internal/report"
)

func TestMineCommandStructure(t *testing.T) {
	assert.NotNil(t, mineCmd)
	assert.Equal(t, "mine", mineCmd.Use)
	assert.NotEmpty(t, mineCmd.Short)
	assert.NotEmpty(t, mineCmd.Long)
	assert.NotNil(t, mineCmd.RunE)
}

func TestMineCommandFlags(t *testing.T) {
	flags := mineCmd.Flags()

	jobFlag := flags.Lookup("job")
	require.NotNil(t, jobFlag)
	assert.Equal(t, "j", jobFlag.Shorthand)
	assert.Equal(t, "", jobFlag.DefValue)

	topFlag := flags.Lookup("top")
	require.NotNil(t, topFlag)
	assert.Equal(t, "-1", topFlag.DefValue)

	outputFlag := flags.Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	forceFlag := flags.Lookup("force")
	require.NotNil(t, forceFlag)
	assert.Equal(t, "false", forceFlag.DefValue)

	widthFlag := flags.Lookup("width")
	require.NotNil(t, widthFlag)
	assert.Equal(t, "60", widthFlag.DefValue)
}

func TestMineIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "mine" {
			found = true
			break
		}
	}
	assert.True(t, found, "mine command should be added to root command")
}

func TestRunMine(t *testing.T) {
	withFlags(t)
	fx := writeFixture(t, "")

	cfgFile = fx.configFile
	mineJob = "paper"

	var buf bytes.Buffer
	mineCmd.SetOut(&buf)
	mineCmd.SetErr(&buf)

	err := runMine(mineCmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Mining summary for job paper")
	assert.Contains(t, output, "Patterns (showing 2 of 3)")
	assert.Contains(t, output, "False positives:")

	data, err := os.ReadFile(fx.output)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "B:1.4"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "B\tA:1.14"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "A:1.6"), lines[2])
}

func TestRunMine_Overrides(t *testing.T) {
	withFlags(t)
	fx := writeFixture(t, "")

	cfgFile = fx.configFile
	mineJob = "paper"
	minSup = 1.5
	mineTop = 0
	mineOutput = filepath.Join(fx.dir, "override.txt")

	var buf bytes.Buffer
	mineCmd.SetOut(&buf)

	err := runMine(mineCmd, []string{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Patterns (showing 1 of 1)")

	data, err := os.ReadFile(mineOutput)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "A:1.6"))

	_, err = os.Stat(fx.output)
	assert.True(t, os.IsNotExist(err), "configured output should not be written when overridden")
}

func TestRunMine_PatternWidth(t *testing.T) {
	withFlags(t)
	dir := t.TempDir()
	transactions := filepath.Join(dir, "stations.txt")
	neighbours := filepath.Join(dir, "station_neighbours.txt")
	require.NoError(t, os.WriteFile(transactions,
		[]byte("station_alpha\tstation_beta:1\t1\nstation_alpha\tstation_beta:1\t1\n"), 0644))
	require.NoError(t, os.WriteFile(neighbours, []byte("station_beta\tstation_alpha\n"), 0644))

	fx := writeFixture(t, fmt.Sprintf(`  stations:
    input:
      format: file
      transactions: %s
      neighbours: %s
`, transactions, neighbours))

	run := func(width int) string {
		cfgFile = fx.configFile
		mineJob = "stations"
		mineWidth = width

		var buf bytes.Buffer
		mineCmd.SetOut(&buf)
		require.NoError(t, runMine(mineCmd, []string{}))
		return buf.String()
	}

	wide := run(report.DefaultPatternWidth)
	assert.Contains(t, wide, "station_beta, station_alpha")

	narrow := run(16)
	assert.NotContains(t, narrow, "station_beta, station_alpha")
	assert.Contains(t, narrow, "station_beta,...")
}

func TestRunMine_FractionThreshold(t *testing.T) {
	withFlags(t)
	fx := writeFixture(t, `  fraction:
    input:
      transactions: `+filepath.Join("%DIR%", "transactions.txt")+`
      neighbours: `+filepath.Join("%DIR%", "neighbours.txt")+`
    mining:
      min_sup: 0.75
      min_sup_mode: fraction
`)
	content, err := os.ReadFile(fx.configFile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fx.configFile,
		[]byte(strings.ReplaceAll(string(content), "%DIR%", fx.dir)), 0644))

	cfgFile = fx.configFile
	mineJob = "fraction"

	var buf bytes.Buffer
	mineCmd.SetOut(&buf)

	err = runMine(mineCmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	// 0.75 of two transactions keeps A (1.6) only.
	assert.Contains(t, output, "Min support:")
	assert.Contains(t, output, "1.5")
	assert.Contains(t, output, "Patterns (showing 1 of 1)")
}

func TestRunMine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx fixture)
		wantErr string
	}{
		{
			name: "missing config",
			setup: func(fx fixture) {
				cfgFile = filepath.Join(fx.dir, "missing.yaml")
			},
			wantErr: "failed to load config",
		},
		{
			name: "unknown job",
			setup: func(fx fixture) {
				mineJob = "nope"
			},
			wantErr: "not found",
		},
		{
			name: "missing transactions file",
			setup: func(fx fixture) {
				require.NoError(t, os.Remove(filepath.Join(fx.dir, "transactions.txt")))
			},
			wantErr: "failed to load input",
		},
		{
			name: "malformed transactions file",
			setup: func(fx fixture) {
				require.NoError(t, os.WriteFile(filepath.Join(fx.dir, "transactions.txt"),
					[]byte("A\tB:0.9\n"), 0644))
			},
			wantErr: "line 1",
		},
		{
			name: "invalid override",
			setup: func(fx fixture) {
				logLevel = "loud"
			},
			wantErr: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t)
			fx := writeFixture(t, "")
			cfgFile = fx.configFile
			mineJob = "paper"
			tt.setup(fx)

			var buf bytes.Buffer
			mineCmd.SetOut(&buf)

			err := runMine(mineCmd, []string{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
