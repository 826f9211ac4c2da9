package selection

import (
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

// entry is one pool candidate with its grouping keys precomputed, so the
// greedy loop never goes back to the catalog.
type entry struct {
	candidate  types.Candidate
	items      map[string]bool
	shirtID    string
	pantsColor string
	isShorts   bool
	silhouette string
}

func newEntry(candidate types.Candidate, cat *catalog.Catalog) entry {
	items := make(map[string]bool, len(candidate.Items))
	for _, id := range candidate.Items {
		items[id] = true
	}

	var pantsColor string
	var isShorts bool
	if pants, ok := cat.Lookup(candidate.PantsID); ok {
		pantsColor = pants.Color
		isShorts = pants.IsShorts()
	}

	return entry{
		candidate:  candidate,
		items:      items,
		shirtID:    candidate.ShirtID,
		pantsColor: pantsColor,
		isShorts:   isShorts,
		silhouette: silhouetteKey(candidate.ShirtID, candidate.PantsID, candidate.ShoesID),
	}
}
