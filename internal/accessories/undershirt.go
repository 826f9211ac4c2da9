package accessories

import (
	"github.com/caleb/outfitter/internal/attrs"
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

// Undershirt color preference, by vibe direction.
var (
	undershirtOrderRefined = []string{"white", "cream", "grey"}
	undershirtOrderCasual  = []string{"white", "grey", "cream"}
)

// SelectUndershirt picks an undershirt for the combination. Undershirts are
// only considered on casual vibes or under a jacket; the first catalog entry
// matching the preferred color order wins.
func SelectUndershirt(cat *catalog.Catalog, vibe attrs.VibeSet, hasJacket bool) (catalog.Entry, bool) {
	if !vibe.Has(attrs.VibeCasual) && !hasJacket {
		return catalog.Entry{}, false
	}

	order := undershirtOrderCasual
	if vibe.Has(types.CapsuleRefined) {
		order = undershirtOrderRefined
	}

	undershirts := cat.ByCategory(types.CategoryUndershirt)
	for _, color := range order {
		for _, entry := range undershirts {
			if entry.Color == color {
				return entry, true
			}
		}
	}
	return catalog.Entry{}, false
}
