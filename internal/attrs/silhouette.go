package attrs

import (
	"strings"

	"github.com/caleb/outfitter/internal/types"
)

// outerMarkers are id and name fragments that identify an outer layer when
// the item does not declare one.
var outerMarkers = []string{"jacket", "shacket", "coat", "cardigan", "crewneck", "shawl"}

// InferSilhouette returns the item's declared silhouette, lowercased, or
// derives one from the id and name: pants mentioning shorts read as shorts,
// shoes mentioning boots read as boots. Other items have no silhouette.
func InferSilhouette(item types.WardrobeItem) string {
	if item.Silhouette != "" {
		return strings.ToLower(item.Silhouette)
	}
	needle := normalizeText(item.ID + " " + item.Name)
	switch item.Category {
	case types.CategoryPants:
		if strings.Contains(needle, "short") {
			return types.SilhouetteShorts
		}
	case types.CategoryShoes:
		if strings.Contains(needle, "boot") {
			return types.SilhouetteBoots
		}
	}
	return ""
}

// InferLayer returns the item's declared layer, lowercased, or derives one:
// anything in the outerwear category or matching an outer marker reads as an
// outer layer.
func InferLayer(item types.WardrobeItem) string {
	if item.Layer != "" {
		return strings.ToLower(item.Layer)
	}
	if item.Category == types.CategoryOuterwear {
		return types.LayerOuter
	}
	needle := normalizeText(item.ID + " " + item.Name)
	for _, marker := range outerMarkers {
		if strings.Contains(needle, marker) {
			return types.LayerOuter
		}
	}
	return ""
}
