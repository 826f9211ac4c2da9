package accessories

import (
	"sort"

	"github.com/caleb/outfitter/internal/attrs"
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

// Formality a watch should sit near, by vibe direction.
const (
	watchTargetRefined    = 7
	watchTargetAdventurer = 5
	watchTargetDefault    = 6
)

// watchRank carries the precomputed sort keys for one watch.
type watchRank struct {
	entry    catalog.Entry
	overlap  int
	distance int
}

// RankWatches returns up to MaxWatches watches ordered by vibe overlap,
// with formality distance to the vibe target breaking ties.
func RankWatches(cat *catalog.Catalog, vibe attrs.VibeSet) []catalog.Entry {
	target := watchFormalityTarget(vibe)

	watches := cat.ByCategory(types.CategoryWatch)
	ranks := make([]watchRank, 0, len(watches))
	for _, entry := range watches {
		ranks = append(ranks, watchRank{
			entry:    entry,
			overlap:  vibeOverlap(entry, vibe),
			distance: attrs.FormalityDistance(attrs.FormalityOrDefault(entry.WardrobeItem), target),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].overlap != ranks[j].overlap {
			return ranks[i].overlap > ranks[j].overlap
		}
		return ranks[i].distance < ranks[j].distance
	})

	picks := make([]catalog.Entry, 0, MaxWatches)
	for _, r := range ranks {
		if len(picks) == MaxWatches {
			break
		}
		picks = append(picks, r.entry)
	}
	return picks
}

// watchFormalityTarget maps the vibe to the formality a watch should sit near.
func watchFormalityTarget(vibe attrs.VibeSet) int {
	switch {
	case vibe.Has(types.CapsuleRefined):
		return watchTargetRefined
	case vibe.Has(types.CapsuleAdventurer):
		return watchTargetAdventurer
	default:
		return watchTargetDefault
	}
}
