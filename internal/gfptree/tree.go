package gfptree

import (
	"sort"

	"github.com/dbsmedya/gogeomine/internal/types"
)

// Tree is a prefix tree over rank-ordered transactions.
type Tree struct {
	ctx   *Context
	nodes []Node
	// summaries lists, per item, every node carrying that item in creation order.
	summaries map[string][]NodeID
	// info holds the known aggregate support per item.
	info map[string]float64
}

// NewTree creates a tree with only the root sentinel. info is copied.
func NewTree(ctx *Context, info map[string]float64) *Tree {
	t := &Tree{
		ctx:       ctx,
		nodes:     make([]Node, 1, 64),
		summaries: make(map[string][]NodeID),
		info:      make(map[string]float64, len(info)),
	}
	t.nodes[RootID] = Node{Parent: NoParent, children: make(map[string]NodeID)}
	for k, v := range info {
		t.info[k] = v
	}
	return t
}

// newNode allocates a child of parent and registers it in summaries.
func (t *Tree) newNode(parent NodeID, item string, support float64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Item:     item,
		Support:  support,
		Parent:   parent,
		children: make(map[string]NodeID),
	})
	t.nodes[parent].children[item] = id
	t.summaries[item] = append(t.summaries[item], id)
	t.ctx.stats.NodesCreated++
	return id
}

// AddTransaction inserts a rank-ordered transaction as a branch. Each
// visited node gains the item's probability, scaled by the highest
// probability among earlier items of the same transaction that are
// neighbours of it.
func (t *Tree) AddTransaction(tx types.Transaction) {
	cur := RootID
	for i, it := range tx {
		value := t.lookbackSupport(tx, i)
		child, ok := t.nodes[cur].children[it.ID]
		if ok {
			t.nodes[child].Support += value
		} else {
			child = t.newNode(cur, it.ID, value)
		}
		cur = child
	}
}

// lookbackSupport computes the contribution of tx[i] given its predecessors.
func (t *Tree) lookbackSupport(tx types.Transaction, i int) float64 {
	item := tx[i]
	best := 0.0
	found := false
	for j := i - 1; j >= 0; j-- {
		if !t.ctx.Neighbours.IsNeighbour(item.ID, tx[j].ID) {
			continue
		}
		if !found || tx[j].Probability > best {
			best = tx[j].Probability
		}
		found = true
	}
	if !found {
		return item.Probability
	}
	return best * item.Probability
}

// AddConditionalPattern inserts a prefix path carrying a fixed support.
func (t *Tree) AddConditionalPattern(items []string, support float64) {
	cur := RootID
	for _, item := range items {
		child, ok := t.nodes[cur].children[item]
		if ok {
			t.nodes[child].Support += support
		} else {
			child = t.newNode(cur, item, support)
		}
		cur = child
	}
}

// RemoveNode detaches every node carrying item from its parent. Parent
// links of detached nodes are left intact so prefix walks from nodes below
// them still see them as ancestors.
func (t *Tree) RemoveNode(item string) {
	for _, id := range t.summaries[item] {
		parent := t.nodes[id].Parent
		delete(t.nodes[parent].children, item)
	}
	delete(t.summaries, item)
}

// ItemSupport sums the support of every node carrying item.
func (t *Tree) ItemSupport(item string) float64 {
	s := 0.0
	for _, id := range t.summaries[item] {
		s += t.nodes[id].Support
	}
	return s
}

// Node returns a copy of the node at id.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Summaries returns the nodes carrying item in creation order.
func (t *Tree) Summaries(item string) []NodeID {
	ids := t.summaries[item]
	out := make([]NodeID, len(ids))
	copy(out, ids)
	return out
}

// Info returns a copy of the per-item support table.
func (t *Tree) Info() map[string]float64 {
	out := make(map[string]float64, len(t.info))
	for k, v := range t.info {
		out[k] = v
	}
	return out
}

// Size returns the number of nodes allocated, excluding the root.
func (t *Tree) Size() int {
	return len(t.nodes) - 1
}

// IsEmpty reports whether the tree has no items left to mine.
func (t *Tree) IsEmpty() bool {
	return len(t.summaries) == 0
}

// Items returns the items present in the tree in mining order: ascending
// info support, ties by descending identifier (the reverse of rank order).
func (t *Tree) Items() []string {
	items := make([]string, 0, len(t.summaries))
	for item := range t.summaries {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		si, sj := t.info[items[i]], t.info[items[j]]
		if si != sj {
			return si < sj
		}
		return items[i] > items[j]
	})
	return items
}
