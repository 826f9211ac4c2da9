package attrs

import (
	"strings"

	"github.com/caleb/outfitter/internal/types"
)

// VibeCasual is the derived marker for outfits with no refined piece.
const VibeCasual = "casual"

// VibeSet is the lowercased capsule-tag set across a group of items, plus
// the derived casual marker.
type VibeSet map[string]bool

// CapsuleOverlap counts the distinct capsule tags of item that appear on at
// least one of the others. Tag comparison is case-insensitive.
func CapsuleOverlap(item types.WardrobeItem, others ...types.WardrobeItem) int {
	pool := make(map[string]bool)
	for _, other := range others {
		for _, tag := range other.CapsuleTags {
			pool[strings.ToLower(tag)] = true
		}
	}

	counted := make(map[string]bool)
	overlap := 0
	for _, tag := range item.CapsuleTags {
		key := strings.ToLower(tag)
		if pool[key] && !counted[key] {
			counted[key] = true
			overlap++
		}
	}
	return overlap
}

// DominantCapsule returns the style family with the highest aggregate tag
// count across the items. Ties resolve in family priority order; Shorts is
// a seasonal marker and never dominates.
func DominantCapsule(items ...types.WardrobeItem) string {
	counts := make(map[string]int)
	for _, item := range items {
		for _, tag := range item.CapsuleTags {
			counts[strings.ToLower(tag)]++
		}
	}

	best := types.CapsuleFamilies[0]
	bestCount := counts[strings.ToLower(best)]
	for _, family := range types.CapsuleFamilies[1:] {
		if count := counts[strings.ToLower(family)]; count > bestCount {
			best, bestCount = family, count
		}
	}
	return best
}

// Vibe builds the vibe set for the given items: every capsule tag they
// carry, lowercased, with casual added when none of them is Refined.
func Vibe(items ...types.WardrobeItem) VibeSet {
	vibe := make(VibeSet)
	for _, item := range items {
		for _, tag := range item.CapsuleTags {
			vibe[strings.ToLower(tag)] = true
		}
	}
	if !vibe[strings.ToLower(types.CapsuleRefined)] {
		vibe[VibeCasual] = true
	}
	return vibe
}

// Has reports whether the vibe contains the given marker.
func (v VibeSet) Has(marker string) bool {
	return v[strings.ToLower(marker)]
}
