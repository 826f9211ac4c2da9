package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/corpus"
	"github.com/caleb/outfitter/internal/generation"
	"github.com/caleb/outfitter/internal/selection"
	"github.com/caleb/outfitter/internal/types"
)

func TestPrintCatalogSummary(t *testing.T) {
	cat, err := catalog.Build(&types.WardrobeDocument{Items: []types.WardrobeItem{
		{ID: "ocbd-white", Category: types.CategoryShirt},
		{ID: "chino-navy", Category: types.CategoryPants},
		{ID: "derby-brown", Category: types.CategoryShoes},
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintCatalogSummary(cat)

	output := buf.String()
	assert.Contains(t, output, "WARDROBE CATALOG")
	assert.Contains(t, output, "Total items: 3")
	assert.Contains(t, output, "Shirt:")
	assert.NotContains(t, output, "Belt:")
}

func TestPrintCatalogSummary_NilCatalog(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCatalogSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCorpusValidation_Clean(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCorpusValidation(12, nil)

	output := buf.String()
	assert.Contains(t, output, "CORPUS CLEAN")
	assert.Contains(t, output, "12 outfits")
}

func TestPrintCorpusValidation_Drops(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCorpusValidation(3, []corpus.DropReport{
		{OutfitID: "outfit-0004", MissingIDs: []string{"tee-sold", "boot-worn-out"}},
	})

	output := buf.String()
	assert.Contains(t, output, "STALE OUTFITS DROPPED")
	assert.Contains(t, output, "outfit-0004")
	assert.Contains(t, output, "tee-sold")
}

func TestPrintGenerationStats(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGenerationStats(generation.Stats{
		Assembled:      100,
		GuardRejected:  8,
		Duplicates:     12,
		BelowThreshold: 30,
		Kept:           50,
	})

	output := buf.String()
	assert.Contains(t, output, "CANDIDATE GENERATION")
	assert.Contains(t, output, "Assembled:        100")
	assert.Contains(t, output, "Kept in pool:     50")
}

func TestPrintSelectionResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSelectionResult(selection.Result{
		Picks: []types.Candidate{
			{ShirtID: "ocbd-white", PantsID: "chino-navy", ShoesID: "derby-brown", Score: 1.25},
		},
		Quotas:    selection.Quotas{types.CapsuleRefined: 4, types.CapsuleCrossover: 3, types.CapsuleAdventurer: 2},
		PerFamily: map[string]int{types.CapsuleRefined: 1},
		PassOne:   1,
		PassTwo:   0,
	})

	output := buf.String()
	assert.Contains(t, output, "DIVERSITY SELECTION")
	assert.Contains(t, output, "Selected 1 outfits (1 strict, 0 relaxed)")
	assert.Contains(t, output, "Refined:")
	assert.Contains(t, output, "1 / 4")
	assert.Contains(t, output, "ocbd-white + chino-navy + derby-brown")
}

func TestPrintRunSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunSummary("4c0e8e3a", 25, 275)

	output := buf.String()
	assert.Contains(t, output, "RUN COMPLETE")
	assert.Contains(t, output, "4c0e8e3a")
	assert.Contains(t, output, "New outfits:  25")
	assert.Contains(t, output, "Corpus size:  275")
}
