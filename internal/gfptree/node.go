// Package gfptree implements the geo-referenced frequent pattern tree over
// uncertain transactions: insertion with neighbour-gated support
// aggregation, conditional pattern extraction and pattern generation.
//
// Nodes live in a per-tree arena and refer to each other by NodeID. A tree
// owns its arena exclusively; conditional trees are independent instances.
package gfptree

// NodeID addresses a node inside the arena of one Tree.
type NodeID int32

const (
	// RootID is the sentinel root of every tree. It carries no item.
	RootID NodeID = 0
	// NoParent is the parent of the root.
	NoParent NodeID = -1
)

// Node is a tree vertex. Support only grows while transactions are inserted.
type Node struct {
	Item     string
	Support  float64
	Parent   NodeID
	children map[string]NodeID
}

// IsRoot reports whether the node is the root sentinel.
func (n *Node) IsRoot() bool {
	return n.Parent == NoParent
}

// Child returns the child keyed by item.
func (n *Node) Child(item string) (NodeID, bool) {
	id, ok := n.children[item]
	return id, ok
}
