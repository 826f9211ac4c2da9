package accessories

import (
	"math"
	"sort"

	"github.com/caleb/outfitter/internal/attrs"
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

// jacketRank carries the precomputed sort keys for one jacket.
type jacketRank struct {
	entry    catalog.Entry
	affinity float64
	distance float64
}

// RankJackets returns up to MaxJacketsPerSet jackets for the core pieces,
// ordered by vibe affinity (tag overlap plus a color-harmony nudge against
// the pants) with formality distance to the shirt/pants average breaking
// ties. Shorts suppress jackets entirely.
func RankJackets(cat *catalog.Catalog, shirt, pants catalog.Entry, vibe attrs.VibeSet) []catalog.Entry {
	if pants.IsShorts() {
		return nil
	}

	coreAvg := float64(attrs.FormalityOrDefault(shirt.WardrobeItem)+attrs.FormalityOrDefault(pants.WardrobeItem)) / 2.0

	jackets := cat.ByCategory(types.CategoryOuterwear)
	ranks := make([]jacketRank, 0, len(jackets))
	for _, entry := range jackets {
		affinity := float64(vibeOverlap(entry, vibe))
		if attrs.ColorsPlayNice(entry.Color, pants.Color) {
			affinity += colorHarmonyBonus
		}
		ranks = append(ranks, jacketRank{
			entry:    entry,
			affinity: affinity,
			distance: math.Abs(float64(attrs.FormalityOrDefault(entry.WardrobeItem)) - coreAvg),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].affinity != ranks[j].affinity {
			return ranks[i].affinity > ranks[j].affinity
		}
		return ranks[i].distance < ranks[j].distance
	})

	picks := make([]catalog.Entry, 0, MaxJacketsPerSet)
	for _, r := range ranks {
		if len(picks) == MaxJacketsPerSet {
			break
		}
		picks = append(picks, r.entry)
	}
	return picks
}
