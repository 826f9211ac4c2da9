package attrs

import "github.com/caleb/outfitter/internal/types"

// defaultFormality stands in for items that do not declare a score.
const defaultFormality = 5

// FormalityOrDefault returns the item's formality score, defaulting to the
// neutral midpoint when the item does not declare one.
func FormalityOrDefault(item types.WardrobeItem) int {
	if item.FormalityScore == 0 {
		return defaultFormality
	}
	return item.FormalityScore
}

// FormalityDistance returns the absolute distance between two scores.
func FormalityDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
