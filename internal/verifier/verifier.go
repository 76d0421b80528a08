// Package verifier recomputes the exact expected support of candidate
// patterns against the original database and discards false positives.
package verifier

import (
	"fmt"
	"sort"

	"github.com/dbsmedya/gogeomine/internal/logger"
	"github.com/dbsmedya/gogeomine/internal/types"
)

// VerificationMethod defines how exact supports are computed.
type VerificationMethod string

const (
	// MethodIndex intersects per-item transaction lists (fast)
	MethodIndex VerificationMethod = "index"
	// MethodScan scans every transaction for every candidate (slow, no index memory)
	MethodScan VerificationMethod = "scan"
)

// VerifyResult holds the outcome for a single candidate.
type VerifyResult struct {
	Key       string
	Estimated float64
	Exact     float64
	Kept      bool
}

// VerifyStats contains overall correction statistics.
type VerifyStats struct {
	Candidates    int
	Recomputed    int // candidates with more than one item
	Kept          int
	FalsePositive int
	Method        VerificationMethod
}

// posting is one occurrence of an item: the transaction it appears in and
// the product of its probabilities within that transaction.
type posting struct {
	tid         int
	probability float64
}

// Verifier computes exact expected supports over an unfiltered database.
type Verifier struct {
	db     types.Database
	minSup float64
	method VerificationMethod
	index  map[string][]posting
	logger *logger.Logger
}

// NewVerifier creates a verifier over db. The index is built eagerly for
// MethodIndex.
func NewVerifier(db types.Database, minSup float64, method VerificationMethod, log *logger.Logger) (*Verifier, error) {
	if minSup <= 0 {
		return nil, fmt.Errorf("minimum support must be positive, got %v", minSup)
	}
	if log == nil {
		log = logger.NewDefault()
	}

	if method == "" {
		method = MethodIndex
	}

	v := &Verifier{
		db:     db,
		minSup: minSup,
		method: method,
		logger: log,
	}

	switch method {
	case MethodIndex:
		v.index = buildIndex(db)
	case MethodScan:
	default:
		return nil, fmt.Errorf("unsupported verification method: %s", method)
	}

	return v, nil
}

// buildIndex maps each item to its postings in ascending transaction order.
func buildIndex(db types.Database) map[string][]posting {
	index := make(map[string][]posting)
	for tid, tx := range db {
		for _, it := range tx {
			list := index[it.ID]
			if n := len(list); n > 0 && list[n-1].tid == tid {
				list[n-1].probability *= it.Probability
				continue
			}
			index[it.ID] = append(list, posting{tid: tid, probability: it.Probability})
		}
	}
	return index
}

// Verify recomputes the support of every multi-item candidate and keeps the
// candidates whose exact support reaches the threshold. Single-item
// candidates keep their support unchanged. The result preserves candidate
// order.
func (v *Verifier) Verify(candidates *types.PatternSet) (*types.PatternSet, *VerifyStats) {
	stats := &VerifyStats{Method: v.method}
	kept := types.NewPatternSet()

	v.logger.Infof("Starting exact support correction (method=%s) for %d candidates", v.method, candidates.Len())

	for _, p := range candidates.Patterns() {
		stats.Candidates++
		result := v.verifyPattern(p)
		if p.Len() > 1 {
			stats.Recomputed++
		}

		if result.Kept {
			stats.Kept++
			kept.Put(p.Items, result.Exact)
			continue
		}

		stats.FalsePositive++
		v.logger.Debugw("Dropped false positive",
			"pattern", result.Key,
			"estimated", result.Estimated,
			"exact", result.Exact,
		)
	}

	v.logger.Infof("Correction complete: %d candidates, %d recomputed, %d kept, %d false positives",
		stats.Candidates, stats.Recomputed, stats.Kept, stats.FalsePositive)

	return kept, stats
}

func (v *Verifier) verifyPattern(p types.Pattern) *VerifyResult {
	exact := p.Support
	if p.Len() > 1 {
		exact = v.ExactSupport(p.Items)
	}
	return &VerifyResult{
		Key:       p.Key(),
		Estimated: p.Support,
		Exact:     exact,
		Kept:      exact >= v.minSup,
	}
}

// ExactSupport returns the expected support of items under independence:
// the sum over transactions containing every item of the product of their
// probabilities. Item order is irrelevant.
func (v *Verifier) ExactSupport(items []string) float64 {
	if len(items) == 0 {
		return 0
	}
	unique := dedupe(items)
	if v.method == MethodScan {
		return v.scanSupport(unique)
	}
	return v.indexSupport(unique)
}

// indexSupport intersects posting lists, shortest first.
func (v *Verifier) indexSupport(items []string) float64 {
	lists := make([][]posting, len(items))
	for i, item := range items {
		lists[i] = v.index[item]
		if len(lists[i]) == 0 {
			return 0
		}
	}
	sort.Slice(lists, func(i, j int) bool { return len(lists[i]) < len(lists[j]) })

	cursors := make([]int, len(lists))
	total := 0.0
	for _, base := range lists[0] {
		product := base.probability
		present := true
		for k := 1; k < len(lists); k++ {
			list := lists[k]
			c := cursors[k]
			for c < len(list) && list[c].tid < base.tid {
				c++
			}
			cursors[k] = c
			if c == len(list) {
				return total
			}
			if list[c].tid != base.tid {
				present = false
				break
			}
			product *= list[c].probability
		}
		if present {
			total += product
		}
	}
	return total
}

// scanSupport walks the whole database once.
func (v *Verifier) scanSupport(items []string) float64 {
	total := 0.0
	for _, tx := range v.db {
		product := 1.0
		for _, item := range items {
			p, ok := transactionProbability(tx, item)
			if !ok {
				product = 0
				break
			}
			product *= p
		}
		total += product
	}
	return total
}

// transactionProbability multiplies every occurrence of item in tx.
func transactionProbability(tx types.Transaction, item string) (float64, bool) {
	p := 1.0
	found := false
	for _, it := range tx {
		if it.ID == item {
			p *= it.Probability
			found = true
		}
	}
	return p, found
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
