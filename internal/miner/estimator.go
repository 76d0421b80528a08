package miner

import (
	"fmt"
	"io"

	"github.com/dbsmedya/gogeomine/internal/gfptree"
	"github.com/dbsmedya/gogeomine/internal/graph"
	"github.com/dbsmedya/gogeomine/internal/types"
)

// EstimateResult holds the dry-run figures computed without mining.
type EstimateResult struct {
	Transactions         int
	Occurrences          int
	DistinctItems        int
	Weight               float64
	MinSup               float64
	FrequentItems        int
	FilteredTransactions int
	TreeNodes            int
	NeighbourItems       int
	NeighbourEdges       int
	MaxOutDegree         int
	MaxInDegree          int
	OneWayEdges          int // item -> neighbour edges with no reverse edge
	Unlisted             int // items with an entry that no other item lists
	TopItems             []types.Pattern // frequent single items in rank order
}

// Estimate computes input statistics, one-item supports and the size of the
// root tree. No conditional trees are built.
func (m *Miner) Estimate(top int) (*EstimateResult, error) {
	neighbours, err := graph.BuildFromRelation(m.relation)
	if err != nil {
		return nil, fmt.Errorf("failed to build neighbour index: %w", err)
	}

	distinct := make(map[string]struct{})
	for _, tx := range m.db {
		for _, it := range tx {
			distinct[it.ID] = struct{}{}
		}
	}

	support, rank := m.FrequentOneItem()
	filtered := m.UpdateTransactions(rank)
	ctx := gfptree.NewContext(neighbours, m.opts.MinSup, m.logger)
	tree := m.BuildTree(ctx, filtered, support)

	result := &EstimateResult{
		Transactions:         len(m.db),
		Occurrences:          m.db.ItemCount(),
		DistinctItems:        len(distinct),
		Weight:               m.db.Weight(),
		MinSup:               m.opts.MinSup,
		FrequentItems:        len(rank),
		FilteredTransactions: len(filtered),
		TreeNodes:            tree.Size(),
		NeighbourItems:       neighbours.ItemCount(),
		NeighbourEdges:       neighbours.EdgeCount(),
	}

	for _, item := range neighbours.Items() {
		result.MaxOutDegree = max(result.MaxOutDegree, neighbours.OutDegree(item))
		if neighbours.InDegree(item) == 0 {
			result.Unlisted++
		}
		for _, n := range neighbours.NeighboursOf(item).ToSlice() {
			result.MaxInDegree = max(result.MaxInDegree, neighbours.InDegree(n))
			if !neighbours.IsNeighbour(n, item) {
				result.OneWayEdges++
			}
		}
	}

	if top <= 0 || top > len(rank) {
		top = len(rank)
	}
	for _, item := range rank[:top] {
		result.TopItems = append(result.TopItems, types.Pattern{Items: []string{item}, Support: support[item]})
	}

	m.logger.Debugw("Estimate complete",
		"frequent_items", result.FrequentItems,
		"tree_nodes", result.TreeNodes,
	)

	return result, nil
}

// DisplayEstimate prints the dry-run statistics.
func DisplayEstimate(w io.Writer, result *EstimateResult) {
	fmt.Fprintf(w, "\n=== Mining Estimate ===\n\n")

	fmt.Fprintf(w, "Database:\n")
	fmt.Fprintf(w, "  Transactions: %d\n", result.Transactions)
	fmt.Fprintf(w, "  Item occurrences: %d\n", result.Occurrences)
	fmt.Fprintf(w, "  Distinct items: %d\n", result.DistinctItems)
	fmt.Fprintf(w, "  Total weight: %.4f\n\n", result.Weight)

	fmt.Fprintf(w, "Neighbour relation:\n")
	fmt.Fprintf(w, "  Items with neighbours: %d\n", result.NeighbourItems)
	fmt.Fprintf(w, "  Edges: %d (%d one-way)\n", result.NeighbourEdges, result.OneWayEdges)
	fmt.Fprintf(w, "  Max out-degree: %d\n", result.MaxOutDegree)
	fmt.Fprintf(w, "  Max in-degree: %d\n", result.MaxInDegree)
	fmt.Fprintf(w, "  Items listed by no other item: %d\n\n", result.Unlisted)

	fmt.Fprintf(w, "Tree (min_sup=%g):\n", result.MinSup)
	fmt.Fprintf(w, "  Frequent items: %d\n", result.FrequentItems)
	fmt.Fprintf(w, "  Filtered transactions: %d\n", result.FilteredTransactions)
	fmt.Fprintf(w, "  Root tree nodes: %d\n", result.TreeNodes)

	if result.MinSup > result.Weight {
		fmt.Fprintf(w, "  Threshold exceeds total weight: no pattern can be frequent\n")
	}

	if len(result.TopItems) > 0 {
		fmt.Fprintf(w, "\nTop items by support:\n")
		for i, p := range result.TopItems {
			fmt.Fprintf(w, "  %d. %s (%.4f)\n", i+1, p.Key(), p.Support)
		}
	}

	fmt.Fprintln(w, "\n=== End of Estimate ===")
}
