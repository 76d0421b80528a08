package gfptree

import (
	"sort"
)

// ConditionalPatterns extracts the prefix paths of alpha. Only ancestors
// that are neighbours of alpha enter a path; paths with no such ancestor
// are dropped. The raw paths are then filtered by conditionalTransactions.
func (t *Tree) ConditionalPatterns(alpha string) ([][]string, []float64, map[string]float64) {
	var paths [][]string
	var supports []float64

	for _, id := range t.summaries[alpha] {
		n := &t.nodes[id]
		var path []string
		for p := n.Parent; p != NoParent; p = t.nodes[p].Parent {
			if t.nodes[p].IsRoot() {
				break
			}
			ancestor := t.nodes[p].Item
			if t.ctx.Neighbours.IsNeighbour(alpha, ancestor) {
				path = append(path, ancestor)
			}
		}
		if len(path) == 0 {
			continue
		}
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		paths = append(paths, path)
		supports = append(supports, n.Support)
	}

	return t.conditionalTransactions(paths, supports)
}

// conditionalTransactions keeps the items whose accumulated support over all
// paths reaches the threshold, orders each path by descending accumulated
// support (ties by ascending identifier) and drops paths left empty.
// Supports realign by position: the k-th surviving path takes supports[k],
// not the support of the raw path it came from.
func (t *Tree) conditionalTransactions(paths [][]string, supports []float64) ([][]string, []float64, map[string]float64) {
	count := make(map[string]float64)
	for i, path := range paths {
		for _, item := range path {
			count[item] += supports[i]
		}
	}

	frequent := make(map[string]float64, len(count))
	for item, s := range count {
		if s >= t.ctx.MinSup {
			frequent[item] = s
		}
	}

	var outPaths [][]string
	var outSupports []float64
	for _, path := range paths {
		kept := make([]string, 0, len(path))
		for _, item := range path {
			if _, ok := frequent[item]; ok {
				kept = append(kept, item)
			}
		}
		if len(kept) == 0 {
			continue
		}
		sort.SliceStable(kept, func(a, b int) bool {
			sa, sb := frequent[kept[a]], frequent[kept[b]]
			if sa != sb {
				return sa > sb
			}
			return kept[a] < kept[b]
		})
		outPaths = append(outPaths, kept)
		outSupports = append(outSupports, supports[len(outPaths)-1])
	}

	return outPaths, outSupports, frequent
}
