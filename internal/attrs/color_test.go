package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caleb/outfitter/internal/types"
)

func item(id, name string) types.WardrobeItem {
	return types.WardrobeItem{ID: id, Category: types.CategoryShirt, Name: name}
}

func TestColorToken_MultiWordBeforeSubstring(t *testing.T) {
	assert.Equal(t, "light-grey", ColorToken(item("shirt-light-grey-oxford", "Light Grey Oxford")))
	assert.Equal(t, "dark-brown", ColorToken(item("shoes-dark-brown-loafer", "")))
}

func TestColorToken_SingleWord(t *testing.T) {
	assert.Equal(t, "grey", ColorToken(item("shirt-grey-tee", "Grey Tee")))
	assert.Equal(t, "olive", ColorToken(item("pants-olive-chino", "")))
	assert.Equal(t, "black", ColorToken(item("shoes-black-derby", "")))
}

func TestColorToken_DenimReadsAsNavy(t *testing.T) {
	assert.Equal(t, "navy", ColorToken(item("pants-denim-slim", "Slim Denim")))
	assert.Equal(t, "navy", ColorToken(item("pants-raw-jeans", "Raw Jeans")))
}

func TestColorToken_CharcoalOverride(t *testing.T) {
	assert.Equal(t, "charcoal", ColorToken(item("pants-charcoal-wool", "Charcoal Trousers")))
}

func TestColorToken_NameSupplementsID(t *testing.T) {
	assert.Equal(t, "olive", ColorToken(item("shirt-field-01", "Olive Field Shirt")))
}

func TestColorToken_WordBoundaries(t *testing.T) {
	// "standard" must not read as tan, "sandal" must not read as sand.
	assert.Equal(t, "neutral", ColorToken(item("pants-standard-fit", "Standard Fit")))
	assert.Equal(t, "neutral", ColorToken(item("shoes-sandal", "Sandal")))
}

func TestColorToken_DefaultsToNeutral(t *testing.T) {
	assert.Equal(t, "neutral", ColorToken(item("shirt-ocbd", "Oxford Buttondown")))
}

func TestColorsPlayNice_NeutralPairsWithAnything(t *testing.T) {
	assert.True(t, ColorsPlayNice("white", "olive"))
	assert.True(t, ColorsPlayNice("burgundy", "navy"))
	assert.True(t, ColorsPlayNice("neutral", "green"))
}

func TestColorsPlayNice_BlueEarthPairing(t *testing.T) {
	assert.True(t, ColorsPlayNice("blue", "olive"))
	assert.True(t, ColorsPlayNice("brown", "light-blue"))
}

func TestColorsPlayNice_AcceptsEveryPairing(t *testing.T) {
	// The predicate is permissive end to end; no combination is rejected.
	tokens := []string{"blue", "olive", "burgundy", "green", "rust", "neutral"}
	for _, a := range tokens {
		for _, b := range tokens {
			assert.True(t, ColorsPlayNice(a, b), "%s with %s", a, b)
		}
	}
}
