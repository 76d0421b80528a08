// Package report renders mining results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/gogeomine/internal/miner"
	"github.com/dbsmedya/gogeomine/internal/types"
)

// DefaultPatternWidth caps the pattern column; longer patterns are truncated.
const DefaultPatternWidth = 60

// itemJoin separates items of a pattern on screen.
const itemJoin = ", "

// Renderer writes coloured, width-aligned tables.
type Renderer struct {
	w            io.Writer
	colored      bool
	patternWidth int
}

// NewRenderer creates a Renderer. When colored is false no escape codes are
// written.
func NewRenderer(w io.Writer, colored bool) *Renderer {
	return &Renderer{
		w:            w,
		colored:      colored,
		patternWidth: DefaultPatternWidth,
	}
}

// SetPatternWidth changes the pattern column cap. Values below 8 are ignored.
func (r *Renderer) SetPatternWidth(width int) {
	if width >= 8 {
		r.patternWidth = width
	}
}

func (r *Renderer) paint(c color.Color, s string) string {
	if !r.colored {
		return s
	}
	return c.Render(s)
}

// displayPattern joins items for the terminal and truncates to the column cap.
func (r *Renderer) displayPattern(p types.Pattern) string {
	s := strings.Join(p.Items, itemJoin)
	return runewidth.Truncate(s, r.patternWidth, "...")
}

// Patterns prints up to top patterns in discovery order. top <= 0 prints
// them all.
func (r *Renderer) Patterns(ps *types.PatternSet, top int) {
	patterns := ps.Patterns()
	total := len(patterns)
	if top > 0 && top < total {
		patterns = patterns[:top]
	}

	fmt.Fprintf(r.w, "%s (showing %d of %d)\n", r.paint(color.Bold, "Patterns"), len(patterns), total)
	if len(patterns) == 0 {
		fmt.Fprintln(r.w, "  (none)")
		return
	}

	labels := make([]string, len(patterns))
	supports := make([]string, len(patterns))
	width := runewidth.StringWidth("PATTERN")
	supportWidth := len("SUPPORT")
	indexWidth := len(strconv.Itoa(len(patterns)))
	for i, p := range patterns {
		labels[i] = r.displayPattern(p)
		if w := runewidth.StringWidth(labels[i]); w > width {
			width = w
		}
		supports[i] = strconv.FormatFloat(p.Support, 'f', 4, 64)
		if len(supports[i]) > supportWidth {
			supportWidth = len(supports[i])
		}
	}

	fmt.Fprintf(r.w, "  %*s  %s  %3s  %*s\n",
		indexWidth, "#",
		runewidth.FillRight("PATTERN", width),
		"LEN",
		supportWidth, "SUPPORT",
	)
	for i, p := range patterns {
		fmt.Fprintf(r.w, "  %*d  %s  %3d  %s\n",
			indexWidth, i+1,
			r.paint(color.Cyan, runewidth.FillRight(labels[i], width)),
			p.Len(),
			r.paint(color.Green, fmt.Sprintf("%*s", supportWidth, supports[i])),
		)
	}
}

// Summary prints the statistics of one mining run.
func (r *Renderer) Summary(job string, result *miner.MineResult) {
	fmt.Fprintf(r.w, "%s %s\n", r.paint(color.Bold, "Mining summary for job"), r.paint(color.Cyan, job))

	rows := [][2]string{
		{"Min support", strconv.FormatFloat(result.MinSup, 'g', -1, 64)},
		{"Frequent items", strconv.Itoa(result.FrequentItems)},
		{"Filtered transactions", strconv.Itoa(result.FilteredTransactions)},
		{"Tree nodes", strconv.Itoa(result.TreeNodes)},
		{"Conditional trees", strconv.Itoa(result.ConditionalTrees)},
		{"Max depth", strconv.Itoa(result.MaxDepth)},
		{"Candidates", strconv.Itoa(result.Candidates)},
		{"False positives", strconv.Itoa(result.FalsePositives)},
		{"Patterns", strconv.Itoa(result.Patterns.Len())},
		{"Duration", result.Duration.String()},
	}

	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > width {
			width = w
		}
	}
	for _, row := range rows {
		value := row[1]
		if row[0] == "False positives" && result.FalsePositives > 0 {
			value = r.paint(color.Yellow, value)
		}
		fmt.Fprintf(r.w, "  %s  %s\n", runewidth.FillRight(row[0]+":", width+1), value)
	}
}
