// Package selection picks the final outfit set from the candidate pool. A
// two-pass greedy loop ranks candidates by maximal marginal relevance, so a
// pick's own score is weighed against its overlap with everything already
// chosen, while group caps and capsule quotas keep the set from collapsing
// into near-duplicates of the same few pieces.
package selection

import (
	"sort"

	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

// Result is the outcome of one selection run.
type Result struct {
	Picks     []types.Candidate
	Quotas    Quotas
	PerFamily map[string]int
	PassOne   int
	PassTwo   int
}

// Select chooses up to target candidates from the pool. The pool is ordered
// by score first, stable, so equal scores keep generation order. Pass one
// enforces the group caps and the capsule quotas; pass two reruns the same
// loop with quotas disabled to fill whatever slots starved.
func Select(pool []types.Candidate, cat *catalog.Catalog, target int, quotas Quotas) Result {
	if target <= 0 || len(pool) == 0 {
		return Result{
			Picks:     []types.Candidate{},
			Quotas:    quotas,
			PerFamily: map[string]int{},
		}
	}

	entries := make([]entry, 0, len(pool))
	for _, candidate := range pool {
		entries = append(entries, newEntry(candidate, cat))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].candidate.Score > entries[j].candidate.Score
	})

	s := &selector{
		pool:    entries,
		tracker: newTracker(quotas),
		target:  target,
	}
	passOne := s.runPass(true)
	passTwo := s.runPass(false)

	picks := make([]types.Candidate, len(s.selected))
	for i, e := range s.selected {
		picks[i] = e.candidate
	}
	return Result{
		Picks:     picks,
		Quotas:    quotas,
		PerFamily: s.tracker.familyCounts(),
		PassOne:   passOne,
		PassTwo:   passTwo,
	}
}
