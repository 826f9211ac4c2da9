package selection

import "strings"

// novelty is one minus the candidate's highest Jaccard similarity to any
// already-selected outfit. The first pick is maximally novel.
func novelty(e entry, selected []entry) float64 {
	if len(selected) == 0 {
		return 1
	}
	maxSim := 0.0
	for _, s := range selected {
		if sim := jaccard(e.items, s.items); sim > maxSim {
			maxSim = sim
		}
	}
	return 1 - maxSim
}

// jaccard computes the overlap between two item-id sets: the size of the
// intersection over the size of the union.
func jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for id := range a {
		if b[id] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// silhouetteKey builds the coarse shape signature for a core: the first
// hyphen-delimited token of each of the shirt, pants, and shoes ids, joined.
// Outfits sharing a key read as the same shape in different colors.
func silhouetteKey(shirtID, pantsID, shoesID string) string {
	return firstToken(shirtID) + "|" + firstToken(pantsID) + "|" + firstToken(shoesID)
}

func firstToken(id string) string {
	if i := strings.Index(id, "-"); i >= 0 {
		return id[:i]
	}
	return id
}
