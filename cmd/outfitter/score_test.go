package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

func scoreTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build(&types.WardrobeDocument{Items: []types.WardrobeItem{
		{ID: "ocbd-white", Category: types.CategoryShirt, FormalityScore: 6},
		{ID: "tee-olive", Category: types.CategoryShirt, FormalityScore: 2},
		{ID: "chino-khaki", Category: types.CategoryPants, FormalityScore: 5},
		{ID: "derby-brown", Category: types.CategoryShoes, FormalityScore: 7},
		{ID: "belt-brown", Category: types.CategoryBelt, FormalityScore: 5},
		{ID: "watch-field", Category: types.CategoryWatch, FormalityScore: 4},
		{ID: "chore-navy", Category: types.CategoryOuterwear, FormalityScore: 5},
		{ID: "undershirt-white", Category: types.CategoryUndershirt, FormalityScore: 2},
	}})
	require.NoError(t, err)
	return cat
}

func TestAssembleCombo_SlotsEveryCategory(t *testing.T) {
	cat := scoreTestCatalog(t)

	combo, extras, err := assembleCombo(cat, []string{
		"ocbd-white", "chino-khaki", "derby-brown",
		"belt-brown", "watch-field", "chore-navy", "undershirt-white",
	})

	require.NoError(t, err)
	assert.Equal(t, "ocbd-white", combo.Shirt.ID)
	assert.Equal(t, "chino-khaki", combo.Pants.ID)
	assert.Equal(t, "derby-brown", combo.Shoes.ID)
	require.NotNil(t, combo.Belt)
	assert.Equal(t, "belt-brown", combo.Belt.ID)
	require.NotNil(t, combo.Watch)
	assert.Equal(t, "watch-field", combo.Watch.ID)
	require.NotNil(t, combo.Jacket)
	assert.Equal(t, "chore-navy", combo.Jacket.ID)

	// Extras carry the shirt and the accessories, never the pants or shoes.
	extraIDs := make([]string, len(extras))
	for i, entry := range extras {
		extraIDs[i] = entry.ID
	}
	assert.ElementsMatch(t, []string{"ocbd-white", "belt-brown", "watch-field", "chore-navy", "undershirt-white"}, extraIDs)
}

func TestAssembleCombo_CoreOnly(t *testing.T) {
	cat := scoreTestCatalog(t)

	combo, extras, err := assembleCombo(cat, []string{"tee-olive", "chino-khaki", "derby-brown"})

	require.NoError(t, err)
	assert.Nil(t, combo.Belt)
	assert.Nil(t, combo.Watch)
	assert.Nil(t, combo.Jacket)
	require.Len(t, extras, 1)
	assert.Equal(t, "tee-olive", extras[0].ID)
}

func TestAssembleCombo_UnknownID(t *testing.T) {
	cat := scoreTestCatalog(t)

	_, _, err := assembleCombo(cat, []string{"ocbd-white", "chino-khaki", "sandal-tan"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sandal-tan")
}

func TestAssembleCombo_RejectsDuplicateCategory(t *testing.T) {
	cat := scoreTestCatalog(t)

	_, _, err := assembleCombo(cat, []string{"ocbd-white", "tee-olive", "chino-khaki", "derby-brown"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one Shirt")
}

func TestAssembleCombo_RequiresCorePieces(t *testing.T) {
	cat := scoreTestCatalog(t)

	_, _, err := assembleCombo(cat, []string{"ocbd-white", "chino-khaki", "belt-brown"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs shoes")
}
