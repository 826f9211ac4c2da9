// Package accessories picks the supporting pieces around a shirt, pants,
// and shoes core: belt, jacket, watch, and undershirt. Pickers scan the
// catalog in document order, so identical inputs always produce identical
// picks.
package accessories

import (
	"strings"

	"github.com/caleb/outfitter/internal/attrs"
	"github.com/caleb/outfitter/internal/catalog"
)

// Slot limits for the ranked pickers.
const (
	MaxWatches       = 1
	MaxJacketsPerSet = 1
)

// colorHarmonyBonus nudges jackets whose color sits well on the pants.
const colorHarmonyBonus = 0.2

// vibeOverlap counts the entry's distinct capsule tags present in the vibe.
func vibeOverlap(entry catalog.Entry, vibe attrs.VibeSet) int {
	counted := make(map[string]bool)
	overlap := 0
	for _, tag := range entry.CapsuleTags {
		key := strings.ToLower(tag)
		if vibe.Has(key) && !counted[key] {
			counted[key] = true
			overlap++
		}
	}
	return overlap
}
