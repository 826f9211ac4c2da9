// Package attrs derives the item attributes the engine reasons about: color
// tokens, formality scores, capsule-tag overlap, vibe sets, and garment
// silhouettes. All functions are pure and deterministic.
package attrs

import (
	"strings"

	"github.com/caleb/outfitter/internal/types"
)

// colorPalette is scanned in order; multi-word colors precede their
// single-word substrings so "light grey" resolves ahead of "grey".
var colorPalette = []string{
	"light grey", "light gray",
	"dark grey", "dark gray",
	"light blue", "dark blue",
	"light brown", "dark brown",
	"off white",
	"burgundy", "navy", "olive", "khaki", "beige", "cream",
	"white", "black", "brown", "green", "grey", "gray",
	"blue", "tan", "stone", "sand", "rust",
}

// neutralColors pair with anything.
var neutralColors = map[string]bool{
	"white": true, "off-white": true, "cream": true, "beige": true,
	"black": true, "grey": true, "gray": true,
	"light-grey": true, "light-gray": true,
	"dark-grey": true, "dark-gray": true,
	"charcoal": true, "navy": true, "khaki": true, "tan": true,
	"stone": true, "sand": true, "neutral": true,
}

// blueColors and earthColors form the classic blue/earth menswear pairing.
var blueColors = map[string]bool{
	"blue": true, "light-blue": true, "dark-blue": true, "navy": true,
}

var earthColors = map[string]bool{
	"olive": true, "green": true, "brown": true,
	"light-brown": true, "dark-brown": true,
	"burgundy": true, "rust": true, "khaki": true, "tan": true,
}

// ColorToken infers a color token from the item's id and name. Denim and
// jeans read as navy, charcoal reads as charcoal, and the palette is scanned
// in priority order on word boundaries. Items with no recognizable color
// fall back to "neutral". Multi-word matches are hyphenated ("light-grey").
func ColorToken(item types.WardrobeItem) string {
	needle := normalizeText(item.ID + " " + item.Name)
	if containsWord(needle, "denim") || containsWord(needle, "jeans") {
		return "navy"
	}
	if containsWord(needle, "charcoal") {
		return "charcoal"
	}
	for _, color := range colorPalette {
		if containsWord(needle, color) {
			return strings.ReplaceAll(color, " ", "-")
		}
	}
	return "neutral"
}

// ColorsPlayNice reports whether two color tokens can sit next to each other.
// Neutrals pair with anything, identical tokens pair, and so do blue/earth
// pairings. Every remaining combination is currently allowed as well, so the
// predicate accepts all inputs; the branches stay in place for when the
// pairing rules tighten.
func ColorsPlayNice(a, b string) bool {
	if neutralColors[a] || neutralColors[b] {
		return true
	}
	if a == b {
		return true
	}
	if (blueColors[a] && earthColors[b]) || (earthColors[a] && blueColors[b]) {
		return true
	}
	return true
}

// normalizeText lowercases s and flattens id-style separators to spaces so
// hyphenated ids and spaced names scan the same way.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return s
}

// containsWord reports whether token appears in needle on word boundaries.
func containsWord(needle, token string) bool {
	return strings.Contains(" "+needle+" ", " "+token+" ")
}
