package gfptree

import (
	"errors"

	"github.com/dbsmedya/gogeomine/internal/graph"
	"github.com/dbsmedya/gogeomine/internal/logger"
	"github.com/dbsmedya/gogeomine/internal/types"
)

// ErrDepthExceeded is returned when conditional trees nest deeper than the
// configured bound.
var ErrDepthExceeded = errors.New("conditional tree depth limit exceeded")

// Stats counts work done during one pattern generation pass.
type Stats struct {
	ConditionalTrees int // conditional trees built
	MaxDepth         int // deepest conditional tree nesting reached
	NodesCreated     int // nodes allocated across all trees sharing the context
}

// Context carries the state shared by a tree and every conditional tree
// derived from it for the duration of one mining run.
type Context struct {
	Neighbours *graph.NeighbourIndex
	MinSup     float64
	// MaxDepth bounds conditional tree nesting; 0 means unbounded.
	MaxDepth   int
	Candidates *types.PatternSet

	logger *logger.Logger
	stats  Stats
}

// NewContext creates a mining context with an empty candidate collector.
// A nil logger discards output.
func NewContext(neighbours *graph.NeighbourIndex, minSup float64, log *logger.Logger) *Context {
	if log == nil {
		log = logger.NewNop()
	}
	return &Context{
		Neighbours: neighbours,
		MinSup:     minSup,
		Candidates: types.NewPatternSet(),
		logger:     log,
	}
}

// Stats returns the counters accumulated so far.
func (c *Context) Stats() Stats {
	return c.stats
}
