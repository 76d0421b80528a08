// Package dataset reads uncertain transactional databases and neighbour
// relations from delimited text and writes mined patterns back out.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dbsmedya/gogeomine/internal/types"
)

// maxLineBytes caps the length of a single input line.
const maxLineBytes = 16 * 1024 * 1024

// DefaultSeparator separates items, probabilities and neighbours on a line.
const DefaultSeparator = "\t"

// ParseError reports a malformed input line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return scanner
}

// splitFields splits s on sep, trims trailing whitespace and drops empty
// fields.
func splitFields(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ReadTransactions parses one transaction per line in the form
// "item1<sep>item2...:p1<sep>p2...". Blank lines are skipped. Any malformed
// line aborts the read with a *ParseError.
func ReadTransactions(r io.Reader, sep string) (types.Database, error) {
	if sep == "" {
		sep = DefaultSeparator
	}

	var db types.Database
	scanner := newScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tx, err := parseTransaction(line, sep)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Message: err.Error()}
		}
		db = append(db, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return db, nil
}

func parseTransaction(line, sep string) (types.Transaction, error) {
	idx := strings.LastIndex(line, ":")
	if idx < 0 {
		return nil, fmt.Errorf("missing ':' between items and probabilities")
	}

	items := splitFields(line[:idx], sep)
	probs := splitFields(line[idx+1:], sep)
	if len(items) != len(probs) {
		return nil, fmt.Errorf("%d items but %d probabilities", len(items), len(probs))
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("transaction has no items")
	}

	tx := make(types.Transaction, len(items))
	for i, item := range items {
		p, err := strconv.ParseFloat(probs[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid probability %q for item %q", probs[i], item)
		}
		if !types.ValidProbability(p) {
			return nil, fmt.Errorf("probability %v for item %q outside (0, 1]", p, item)
		}
		tx[i] = types.NewItem(item, p)
	}
	return tx, nil
}

// ReadNeighbours parses one entry per line in the form
// "item<sep>neighbour1<sep>neighbour2...". Repeated lines for the same item
// merge their neighbours. An item listed alone has an empty entry.
func ReadNeighbours(r io.Reader, sep string) (map[string][]string, error) {
	if sep == "" {
		sep = DefaultSeparator
	}

	relation := make(map[string][]string)
	scanner := newScanner(r)
	for scanner.Scan() {
		fields := splitFields(scanner.Text(), sep)
		if len(fields) == 0 {
			continue
		}
		item := fields[0]
		if _, ok := relation[item]; !ok {
			relation[item] = []string{}
		}
		relation[item] = append(relation[item], fields[1:]...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read neighbours: %w", err)
	}

	return relation, nil
}

// ReadTransactionsFile opens path and reads transactions from it.
func ReadTransactionsFile(path, sep string) (types.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions file: %w", err)
	}
	defer f.Close()

	db, err := ReadTransactions(f, sep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

// ReadNeighboursFile opens path and reads the neighbour relation from it.
func ReadNeighboursFile(path, sep string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open neighbours file: %w", err)
	}
	defer f.Close()

	relation, err := ReadNeighbours(f, sep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return relation, nil
}
