package accessories

import (
	"github.com/caleb/outfitter/internal/attrs"
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

// dressFormalityFloor marks shoes that call for a dress belt.
const dressFormalityFloor = 7

// beltProfile narrows the belt rack to a color set and formality band.
type beltProfile struct {
	colors    []string
	minFormal int
	maxFormal int
}

// matches reports whether the entry fits the profile.
func (p beltProfile) matches(entry catalog.Entry) bool {
	form := attrs.FormalityOrDefault(entry.WardrobeItem)
	if form < p.minFormal || form > p.maxFormal {
		return false
	}
	for _, color := range p.colors {
		if entry.Color == color {
			return true
		}
	}
	return false
}

// SelectBelt picks the belt for the shoes and vibe. Black shoes take a black
// belt, dressy shoes take a dress brown, adventurer vibes take a rugged one,
// and everything else takes a versatile brown. Each case degrades to a
// looser second profile when the first finds nothing on the rack.
func SelectBelt(cat *catalog.Catalog, shoes catalog.Entry, vibe attrs.VibeSet) (catalog.Entry, bool) {
	var primary, fallback beltProfile

	shoeForm := attrs.FormalityOrDefault(shoes.WardrobeItem)
	switch {
	case shoes.Color == "black":
		primary = beltProfile{colors: []string{"black"}, minFormal: 5, maxFormal: 10}
		fallback = beltProfile{colors: []string{"black"}, maxFormal: 10}
	case shoeForm >= dressFormalityFloor:
		primary = beltProfile{colors: []string{"dark-brown", "brown"}, minFormal: 6, maxFormal: 10}
		fallback = beltProfile{colors: []string{"brown", "dark-brown"}, maxFormal: 10}
	case vibe.Has(types.CapsuleAdventurer):
		primary = beltProfile{colors: []string{"brown", "tan"}, maxFormal: 4}
		fallback = beltProfile{colors: []string{"tan", "brown"}, maxFormal: 10}
	default:
		primary = beltProfile{colors: []string{"brown"}, minFormal: 4, maxFormal: 6}
		fallback = beltProfile{colors: []string{"brown", "tan", "dark-brown"}, maxFormal: 10}
	}

	belts := cat.ByCategory(types.CategoryBelt)
	for _, profile := range []beltProfile{primary, fallback} {
		for _, entry := range belts {
			if profile.matches(entry) {
				return entry, true
			}
		}
	}
	return catalog.Entry{}, false
}
