package gfptree

import (
	"fmt"
)

// frame is one level of the pattern generation work-stack.
type frame struct {
	tree   *Tree
	items  []string // snapshot of the tree's items in mining order
	next   int
	prefix []string
	depth  int
}

func newFrame(t *Tree, prefix []string, depth int) *frame {
	return &frame{
		tree:   t,
		items:  t.Items(),
		prefix: prefix,
		depth:  depth,
	}
}

// GeneratePatterns mines the tree, emitting every candidate pattern into the
// context's collector. Items are taken least-supported first; each item is
// emitted with prefix, its conditional tree is mined when the item's node
// support reaches the threshold, and its nodes are then removed.
//
// Conditional trees are processed on an explicit stack instead of by
// recursion, so depth is bounded only by Context.MaxDepth.
func (t *Tree) GeneratePatterns(prefix []string) error {
	ctx := t.ctx
	start := make([]string, len(prefix))
	copy(start, prefix)

	stack := []*frame{newFrame(t, start, 0)}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next >= len(f.items) {
			stack = stack[:len(stack)-1]
			continue
		}
		item := f.items[f.next]
		f.next++

		pattern := make([]string, len(f.prefix)+1)
		copy(pattern, f.prefix)
		pattern[len(f.prefix)] = item
		ctx.Candidates.Put(pattern, f.tree.info[item])

		var child *frame
		if f.tree.ItemSupport(item) >= ctx.MinSup {
			paths, supports, info := f.tree.ConditionalPatterns(item)
			if len(paths) > 0 {
				depth := f.depth + 1
				if ctx.MaxDepth > 0 && depth > ctx.MaxDepth {
					return fmt.Errorf("%w: pattern %v needs depth %d (limit %d)",
						ErrDepthExceeded, pattern, depth, ctx.MaxDepth)
				}
				cond := NewTree(ctx, info)
				for i := range paths {
					cond.AddConditionalPattern(paths[i], supports[i])
				}
				ctx.stats.ConditionalTrees++
				if depth > ctx.stats.MaxDepth {
					ctx.stats.MaxDepth = depth
				}
				ctx.logger.Debugw("Built conditional tree",
					"pattern", pattern,
					"paths", len(paths),
					"items", len(info),
					"depth", depth,
				)
				child = newFrame(cond, pattern, depth)
			}
		}

		f.tree.RemoveNode(item)
		if child != nil {
			stack = append(stack, child)
		}
	}

	return nil
}
