package graph

import (
	"fmt"
)

// Builder constructs a NeighbourIndex from a raw neighbour relation.
type Builder struct {
	relation map[string][]string
}

// NewBuilder creates a new builder for the given relation
// (item -> neighbour identifiers; order irrelevant, duplicates tolerated).
func NewBuilder(relation map[string][]string) *Builder {
	return &Builder{relation: relation}
}

// Build constructs the index. A nil relation yields an empty index.
func (b *Builder) Build() (*NeighbourIndex, error) {
	g := newNeighbourIndex()

	for item, neighbours := range b.relation {
		if item == "" {
			return nil, fmt.Errorf("neighbour relation contains an empty item identifier")
		}
		g.touch(item)
		for _, n := range neighbours {
			if n == "" {
				return nil, fmt.Errorf("empty neighbour identifier listed for item %q", item)
			}
			g.addEdge(item, n)
		}
	}

	return g, nil
}

// BuildFromRelation is a convenience function that builds an index directly from a relation.
func BuildFromRelation(relation map[string][]string) (*NeighbourIndex, error) {
	return NewBuilder(relation).Build()
}

// MustBuild builds an index and panics on an invalid relation. Intended for tests and literals.
func MustBuild(relation map[string][]string) *NeighbourIndex {
	g, err := BuildFromRelation(relation)
	if err != nil {
		panic(err)
	}
	return g
}
