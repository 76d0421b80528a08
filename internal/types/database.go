// Package types contains shared types used across multiple packages to avoid import cycles.
package types

import "gonum.org/v1/gonum/floats"

// Item pairs an item identifier with its existence probability.
// Items are passed by value and never modified after construction.
type Item struct {
	ID          string
	Probability float64
}

// NewItem creates an Item.
func NewItem(id string, probability float64) Item {
	return Item{ID: id, Probability: probability}
}

// Transaction is an ordered sequence of items. Order matters for the
// neighbour lookback during tree insertion.
type Transaction []Item

// Contains reports whether the transaction holds an item with the given identifier.
func (t Transaction) Contains(id string) bool {
	for _, it := range t {
		if it.ID == id {
			return true
		}
	}
	return false
}

// IDs returns the item identifiers of the transaction in order.
func (t Transaction) IDs() []string {
	ids := make([]string, len(t))
	for i, it := range t {
		ids[i] = it.ID
	}
	return ids
}

// Database is an uncertain transactional database.
type Database []Transaction

// ItemCount returns the total number of item occurrences across all transactions.
func (d Database) ItemCount() int {
	n := 0
	for _, tx := range d {
		n += len(tx)
	}
	return n
}

// Weight returns the sum of all item probabilities, the upper bound on any
// single item's expected support.
func (d Database) Weight() float64 {
	probabilities := make([]float64, 0, d.ItemCount())
	for _, tx := range d {
		for _, it := range tx {
			probabilities = append(probabilities, it.Probability)
		}
	}
	return floats.Sum(probabilities)
}
