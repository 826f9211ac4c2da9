package generation

import (
	"sort"

	"github.com/caleb/outfitter/internal/attrs"
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

// pairColorBonus nudges core pairings whose colors sit well together.
const pairColorBonus = 0.25

// rankedPartner carries a partner entry with its precomputed pairing keys.
type rankedPartner struct {
	entry    catalog.Entry
	affinity float64
	distance int
}

// rankPartners orders partner entries for a base garment by capsule overlap
// plus the color nudge, with formality distance breaking ties. The sort is
// stable, so equally ranked partners keep wardrobe order.
func rankPartners(base catalog.Entry, partners []catalog.Entry) []catalog.Entry {
	ranks := make([]rankedPartner, 0, len(partners))
	for _, partner := range partners {
		affinity := float64(attrs.CapsuleOverlap(base.WardrobeItem, partner.WardrobeItem))
		if attrs.ColorsPlayNice(base.Color, partner.Color) {
			affinity += pairColorBonus
		}
		ranks = append(ranks, rankedPartner{
			entry:    partner,
			affinity: affinity,
			distance: attrs.FormalityDistance(
				attrs.FormalityOrDefault(base.WardrobeItem),
				attrs.FormalityOrDefault(partner.WardrobeItem),
			),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].affinity != ranks[j].affinity {
			return ranks[i].affinity > ranks[j].affinity
		}
		return ranks[i].distance < ranks[j].distance
	})

	out := make([]catalog.Entry, len(ranks))
	for i, rank := range ranks {
		out[i] = rank.entry
	}
	return out
}

// topPantsForShirt returns the best pants for the shirt, capped at
// MaxPantsPerShirt.
func topPantsForShirt(cat *catalog.Catalog, shirt catalog.Entry) []catalog.Entry {
	return truncate(rankPartners(shirt, cat.ByCategory(types.CategoryPants)), MaxPantsPerShirt)
}

// topShoesForPants returns the best shoes for the pants, capped at
// MaxShoesPerPant. Boots never pair with shorts, so they drop out before
// ranking.
func topShoesForPants(cat *catalog.Catalog, pants catalog.Entry) []catalog.Entry {
	shoes := cat.ByCategory(types.CategoryShoes)
	if pants.IsShorts() {
		filtered := make([]catalog.Entry, 0, len(shoes))
		for _, entry := range shoes {
			if !entry.IsBoots() {
				filtered = append(filtered, entry)
			}
		}
		shoes = filtered
	}
	return truncate(rankPartners(pants, shoes), MaxShoesPerPant)
}

func truncate(entries []catalog.Entry, limit int) []catalog.Entry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

// optionSet prefixes the ranked picks with the empty option, so each
// optional slot branches into without and with.
func optionSet(picks []catalog.Entry) []*catalog.Entry {
	options := make([]*catalog.Entry, 0, len(picks)+1)
	options = append(options, nil)
	for i := range picks {
		options = append(options, &picks[i])
	}
	return options
}

// withEntry copies the chosen entries and appends the extra piece when one
// was picked. Copying keeps sibling branches from sharing backing arrays.
func withEntry(entries []catalog.Entry, extra *catalog.Entry) []catalog.Entry {
	if extra == nil {
		return entries
	}
	out := make([]catalog.Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, *extra)
	return out
}

func vibeOf(entries []catalog.Entry) attrs.VibeSet {
	items := make([]types.WardrobeItem, len(entries))
	for i, entry := range entries {
		items[i] = entry.WardrobeItem
	}
	return attrs.Vibe(items...)
}
