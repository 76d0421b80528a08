package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dbsmedya/gogeomine/internal/types"
)

// WritePatterns writes one "<pattern key>:<support>" line per pattern in
// insertion order.
func WritePatterns(w io.Writer, ps *types.PatternSet) error {
	bw := bufio.NewWriter(w)
	for _, p := range ps.Patterns() {
		line := p.Key() + ":" + strconv.FormatFloat(p.Support, 'g', -1, 64) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write pattern %q: %w", p.Key(), err)
		}
	}
	return bw.Flush()
}

// WritePatternsFile creates (or truncates) path and writes the patterns to it.
func WritePatternsFile(path string, ps *types.PatternSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := WritePatterns(f, ps); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
