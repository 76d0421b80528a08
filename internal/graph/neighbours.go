// Package graph provides the neighbour relation used to gate item co-occurrence.
package graph

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// NeighbourIndex maps an item to the set of items considered its
// geo-neighbours. The relation is directed: only item -> listed neighbours
// is consulted, and symmetry is never assumed. An index is read-only once
// built by a Builder.
type NeighbourIndex struct {
	neighbours map[string]mapset.Set[string] // item -> neighbour set (outgoing edges)
	incoming   map[string]int                // item -> number of items listing it
}

func newNeighbourIndex() *NeighbourIndex {
	return &NeighbourIndex{
		neighbours: make(map[string]mapset.Set[string]),
		incoming:   make(map[string]int),
	}
}

// addEdge records neighbour as a neighbour of item. Duplicate edges are ignored.
func (g *NeighbourIndex) addEdge(item, neighbour string) {
	set, ok := g.neighbours[item]
	if !ok {
		set = mapset.NewThreadUnsafeSet[string]()
		g.neighbours[item] = set
	}
	if set.Add(neighbour) {
		g.incoming[neighbour]++
	}
}

// touch registers item with an empty neighbour set.
func (g *NeighbourIndex) touch(item string) {
	if _, ok := g.neighbours[item]; !ok {
		g.neighbours[item] = mapset.NewThreadUnsafeSet[string]()
	}
}

// IsNeighbour reports whether candidate is listed as a neighbour of item.
// Items without an entry have no neighbours.
func (g *NeighbourIndex) IsNeighbour(item, candidate string) bool {
	if g == nil {
		return false
	}
	set, ok := g.neighbours[item]
	if !ok {
		return false
	}
	return set.Contains(candidate)
}

// NeighboursOf returns a copy of the neighbour set of item, empty if the
// item has no entry.
func (g *NeighbourIndex) NeighboursOf(item string) mapset.Set[string] {
	if g == nil {
		return mapset.NewThreadUnsafeSet[string]()
	}
	set, ok := g.neighbours[item]
	if !ok {
		return mapset.NewThreadUnsafeSet[string]()
	}
	return set.Clone()
}

// HasEntry reports whether item appears as a key in the relation.
func (g *NeighbourIndex) HasEntry(item string) bool {
	_, ok := g.neighbours[item]
	return ok
}

// ItemCount returns the number of items with an entry.
func (g *NeighbourIndex) ItemCount() int {
	return len(g.neighbours)
}

// EdgeCount returns the number of distinct item -> neighbour edges.
func (g *NeighbourIndex) EdgeCount() int {
	count := 0
	for _, set := range g.neighbours {
		count += set.Cardinality()
	}
	return count
}

// OutDegree returns the number of neighbours listed for item.
func (g *NeighbourIndex) OutDegree(item string) int {
	set, ok := g.neighbours[item]
	if !ok {
		return 0
	}
	return set.Cardinality()
}

// InDegree returns the number of items listing item as a neighbour.
func (g *NeighbourIndex) InDegree(item string) int {
	return g.incoming[item]
}

// Items returns all items with an entry, sorted.
func (g *NeighbourIndex) Items() []string {
	items := make([]string, 0, len(g.neighbours))
	for item := range g.neighbours {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// IsEmpty returns true if no item has any neighbour.
func (g *NeighbourIndex) IsEmpty() bool {
	return g.EdgeCount() == 0
}
