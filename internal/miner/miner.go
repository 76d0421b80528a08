// Package miner orchestrates geo-referenced frequent pattern mining: single
// item supports and ranking, transaction filtering, tree construction,
// pattern generation and the exact support correction pass.
package miner

import (
	"fmt"
	"sort"
	"time"

	"github.com/dbsmedya/gogeomine/internal/gfptree"
	"github.com/dbsmedya/gogeomine/internal/graph"
	"github.com/dbsmedya/gogeomine/internal/logger"
	"github.com/dbsmedya/gogeomine/internal/types"
	"github.com/dbsmedya/gogeomine/internal/verifier"
)

// Options controls a mining run.
type Options struct {
	// MinSup is the absolute expected support threshold.
	MinSup float64
	// MaxDepth bounds conditional tree nesting; 0 means unbounded.
	MaxDepth     int
	Verification verifier.VerificationMethod
}

// MineResult contains the final patterns and statistics of one run.
type MineResult struct {
	StartedAt            time.Time
	CompletedAt          time.Time
	Duration             time.Duration
	MinSup               float64
	FrequentItems        int
	FilteredTransactions int
	TreeNodes            int
	ConditionalTrees     int
	MaxDepth             int
	Candidates           int
	SingletonsAppended   int
	FalsePositives       int
	Patterns             *types.PatternSet
}

// Miner mines one database against one neighbour relation.
type Miner struct {
	db       types.Database
	relation map[string][]string
	opts     Options
	logger   *logger.Logger
}

// NewMiner validates the inputs and creates a Miner. Every probability must
// lie in (0, 1].
func NewMiner(db types.Database, relation map[string][]string, opts Options, log *logger.Logger) (*Miner, error) {
	if opts.MinSup <= 0 {
		return nil, fmt.Errorf("minimum support must be positive, got %v", opts.MinSup)
	}
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth cannot be negative, got %d", opts.MaxDepth)
	}
	for i, tx := range db {
		for _, it := range tx {
			if !types.ValidProbability(it.Probability) {
				return nil, fmt.Errorf("transaction %d: item %q has probability %v outside (0, 1]",
					i, it.ID, it.Probability)
			}
		}
	}
	if log == nil {
		log = logger.NewDefault()
	}

	return &Miner{
		db:       db,
		relation: relation,
		opts:     opts,
		logger:   log,
	}, nil
}

// FrequentOneItem sums each item's probability over the database and keeps
// items reaching the threshold. The returned rank lists them by descending
// support, ties by ascending identifier.
func (m *Miner) FrequentOneItem() (map[string]float64, []string) {
	all := make(map[string]float64)
	for _, tx := range m.db {
		for _, it := range tx {
			all[it.ID] += it.Probability
		}
	}

	support := make(map[string]float64, len(all))
	for item, s := range all {
		if s >= m.opts.MinSup {
			support[item] = s
		}
	}

	return support, rankItems(support)
}

func rankItems(support map[string]float64) []string {
	rank := make([]string, 0, len(support))
	for item := range support {
		rank = append(rank, item)
	}
	sort.Slice(rank, func(i, j int) bool {
		si, sj := support[rank[i]], support[rank[j]]
		if si != sj {
			return si > sj
		}
		return rank[i] < rank[j]
	})
	return rank
}

// UpdateTransactions drops infrequent items, drops transactions left with
// fewer than two items and orders the remaining items by rank. The original
// database is not modified.
func (m *Miner) UpdateTransactions(rank []string) types.Database {
	position := make(map[string]int, len(rank))
	for i, item := range rank {
		position[item] = i
	}

	filtered := make(types.Database, 0, len(m.db))
	for _, tx := range m.db {
		kept := make(types.Transaction, 0, len(tx))
		for _, it := range tx {
			if _, ok := position[it.ID]; ok {
				kept = append(kept, it)
			}
		}
		if len(kept) < 2 {
			continue
		}
		sort.SliceStable(kept, func(i, j int) bool {
			return position[kept[i].ID] < position[kept[j].ID]
		})
		filtered = append(filtered, kept)
	}
	return filtered
}

// BuildTree creates the root tree for ctx and inserts every transaction.
func (m *Miner) BuildTree(ctx *gfptree.Context, transactions types.Database, support map[string]float64) *gfptree.Tree {
	tree := gfptree.NewTree(ctx, support)
	for _, tx := range transactions {
		tree.AddTransaction(tx)
	}
	return tree
}

// Mine runs the full pipeline and returns the exact-support patterns in
// discovery order. All intermediate state is rebuilt on every call, so
// repeated calls on the same Miner return identical results.
func (m *Miner) Mine() (*MineResult, error) {
	result := &MineResult{
		StartedAt: time.Now(),
		MinSup:    m.opts.MinSup,
	}

	neighbours, err := graph.BuildFromRelation(m.relation)
	if err != nil {
		return nil, fmt.Errorf("failed to build neighbour index: %w", err)
	}

	log := m.logger.WithPhase("tree")
	if neighbours.IsEmpty() {
		log.Warn("Neighbour relation has no edges, only single items can be frequent")
	}
	support, rank := m.FrequentOneItem()
	result.FrequentItems = len(rank)
	log.Infow("Computed single item supports",
		"transactions", len(m.db),
		"frequent_items", len(rank),
		"min_sup", m.opts.MinSup,
	)

	filtered := m.UpdateTransactions(rank)
	result.FilteredTransactions = len(filtered)

	ctx := gfptree.NewContext(neighbours, m.opts.MinSup, log)
	ctx.MaxDepth = m.opts.MaxDepth

	tree := m.BuildTree(ctx, filtered, support)
	result.TreeNodes = tree.Size()
	log.Infow("Built pattern tree",
		"filtered_transactions", len(filtered),
		"nodes", tree.Size(),
		"neighbour_items", neighbours.ItemCount(),
	)

	if err := tree.GeneratePatterns(nil); err != nil {
		return nil, fmt.Errorf("pattern generation failed: %w", err)
	}

	for _, item := range rank {
		if !ctx.Candidates.Has(item) {
			ctx.Candidates.Put([]string{item}, support[item])
			result.SingletonsAppended++
		}
	}

	stats := ctx.Stats()
	result.ConditionalTrees = stats.ConditionalTrees
	result.MaxDepth = stats.MaxDepth
	result.Candidates = ctx.Candidates.Len()
	log.Infow("Generated candidate patterns",
		"candidates", result.Candidates,
		"conditional_trees", stats.ConditionalTrees,
		"max_depth", stats.MaxDepth,
		"singletons_appended", result.SingletonsAppended,
	)

	v, err := verifier.NewVerifier(m.db, m.opts.MinSup, m.opts.Verification, m.logger.WithPhase("correction"))
	if err != nil {
		return nil, fmt.Errorf("failed to create verifier: %w", err)
	}
	patterns, verifyStats := v.Verify(ctx.Candidates)

	result.Patterns = patterns
	result.FalsePositives = verifyStats.FalsePositive
	result.CompletedAt = time.Now()
	result.Duration = result.CompletedAt.Sub(result.StartedAt)

	m.logger.Infow("Mining complete",
		"patterns", patterns.Len(),
		"false_positives", result.FalsePositives,
		"duration", result.Duration,
	)

	return result, nil
}
