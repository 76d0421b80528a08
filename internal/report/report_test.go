package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/gogeomine/internal/miner"
	"github.com/dbsmedya/gogeomine/internal/types"
)

func samplePatterns() *types.PatternSet {
	ps := types.NewPatternSet()
	ps.Put([]string{"B"}, 1.4)
	ps.Put([]string{"B", "A"}, 1.14)
	ps.Put([]string{"A"}, 1.6)
	return ps
}

func TestPatterns_Plain(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).Patterns(samplePatterns(), 0)

	expected := "Patterns (showing 3 of 3)\n" +
		"  #  PATTERN  LEN  SUPPORT\n" +
		"  1  B          1   1.4000\n" +
		"  2  B, A       2   1.1400\n" +
		"  3  A          1   1.6000\n"
	assert.Equal(t, expected, buf.String())
}

func TestPatterns_Top(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).Patterns(samplePatterns(), 2)

	out := buf.String()
	assert.Contains(t, out, "showing 2 of 3")
	assert.Contains(t, out, "B, A")
	assert.NotContains(t, out, "1.6000")
}

func TestPatterns_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).Patterns(types.NewPatternSet(), 10)

	assert.Equal(t, "Patterns (showing 0 of 0)\n  (none)\n", buf.String())
}

func TestPatterns_WideItems(t *testing.T) {
	ps := types.NewPatternSet()
	ps.Put([]string{"東京"}, 2)
	ps.Put([]string{"abcd"}, 1)

	var buf bytes.Buffer
	NewRenderer(&buf, false).Patterns(ps, 0)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	// Both item names occupy four terminal cells, so the LEN column lines up.
	col := func(line string) int {
		return runewidth.StringWidth(line[:strings.Index(line, "   1")])
	}
	assert.Equal(t, col(lines[2]), col(lines[3]))
}

func TestPatterns_Truncated(t *testing.T) {
	ps := types.NewPatternSet()
	ps.Put([]string{"station_alpha", "station_beta", "station_gamma"}, 3)

	var buf bytes.Buffer
	r := NewRenderer(&buf, false)
	r.SetPatternWidth(16)
	r.Patterns(ps, 0)

	assert.Contains(t, buf.String(), "station_alpha...")
	assert.NotContains(t, buf.String(), "station_gamma")
}

func TestPatterns_Colored(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, true).Patterns(samplePatterns(), 0)

	assert.Contains(t, buf.String(), "B, A")
	assert.Contains(t, buf.String(), "1.1400")
}

func TestSummary(t *testing.T) {
	result := &miner.MineResult{
		MinSup:               1,
		FrequentItems:        2,
		FilteredTransactions: 2,
		TreeNodes:            2,
		ConditionalTrees:     1,
		MaxDepth:             1,
		Candidates:           3,
		FalsePositives:       0,
		Duration:             1500 * time.Millisecond,
		Patterns:             samplePatterns(),
	}

	var buf bytes.Buffer
	NewRenderer(&buf, false).Summary("air_quality", result)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Mining summary for job air_quality\n"))
	assert.Contains(t, out, "  Min support:            1\n")
	assert.Contains(t, out, "  Patterns:               3\n")
	assert.Contains(t, out, "  Duration:               1.5s\n")
}
