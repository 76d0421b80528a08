package types

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// KeySeparator joins pattern items into the flattened pattern key.
const KeySeparator = "\t"

// Pattern is an itemset in emission order paired with its expected support.
type Pattern struct {
	Items   []string
	Support float64
}

// Key returns the flattened representation of the pattern.
func (p Pattern) Key() string {
	return Key(p.Items)
}

// Len returns the number of items in the pattern.
func (p Pattern) Len() int {
	return len(p.Items)
}

// Key flattens an item sequence into a pattern key.
func Key(items []string) string {
	return strings.Join(items, KeySeparator)
}

// PatternSet maps flattened pattern keys to patterns and iterates in
// insertion order. Re-putting an existing key updates its value in place.
type PatternSet struct {
	m *orderedmap.OrderedMap[string, Pattern]
}

// NewPatternSet creates an empty PatternSet.
func NewPatternSet() *PatternSet {
	return &PatternSet{m: orderedmap.NewOrderedMap[string, Pattern]()}
}

// Put stores a pattern under its key. The items slice is copied.
func (ps *PatternSet) Put(items []string, support float64) {
	cp := make([]string, len(items))
	copy(cp, items)
	ps.m.Set(Key(cp), Pattern{Items: cp, Support: support})
}

// Get returns the pattern stored under key.
func (ps *PatternSet) Get(key string) (Pattern, bool) {
	return ps.m.Get(key)
}

// Has reports whether key is present.
func (ps *PatternSet) Has(key string) bool {
	_, ok := ps.m.Get(key)
	return ok
}

// Len returns the number of patterns.
func (ps *PatternSet) Len() int {
	return ps.m.Len()
}

// Keys returns all keys in insertion order.
func (ps *PatternSet) Keys() []string {
	return ps.m.Keys()
}

// Patterns returns all patterns in insertion order.
func (ps *PatternSet) Patterns() []Pattern {
	out := make([]Pattern, 0, ps.m.Len())
	for el := ps.m.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}
