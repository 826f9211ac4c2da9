package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caleb/outfitter/internal/config"
	"github.com/caleb/outfitter/internal/corpus"
	"github.com/caleb/outfitter/internal/store"
	"github.com/caleb/outfitter/internal/types"
)

// testWardrobe covers every category with enough variety for a real run.
func testWardrobe() *types.WardrobeDocument {
	return &types.WardrobeDocument{Items: []types.WardrobeItem{
		{ID: "ocbd-white", Category: types.CategoryShirt, Name: "White OCBD", FormalityScore: 6, CapsuleTags: []string{types.CapsuleRefined, types.CapsuleCrossover}},
		{ID: "henley-grey", Category: types.CategoryShirt, Name: "Grey Henley", FormalityScore: 3, CapsuleTags: []string{types.CapsuleCrossover, types.CapsuleAdventurer}},
		{ID: "tee-olive", Category: types.CategoryShirt, Name: "Olive Tee", FormalityScore: 2, CapsuleTags: []string{types.CapsuleAdventurer}},
		{ID: "chino-khaki", Category: types.CategoryPants, Name: "Khaki Chinos", FormalityScore: 5, CapsuleTags: []string{types.CapsuleCrossover, types.CapsuleRefined}},
		{ID: "jeans-indigo", Category: types.CategoryPants, Name: "Indigo Jeans", FormalityScore: 4, CapsuleTags: []string{types.CapsuleCrossover, types.CapsuleAdventurer}},
		{ID: "shorts-olive", Category: types.CategoryPants, Name: "Olive Shorts", FormalityScore: 2, CapsuleTags: []string{types.CapsuleAdventurer, types.CapsuleShorts}},
		{ID: "derby-brown", Category: types.CategoryShoes, Name: "Brown Derbies", FormalityScore: 7, CapsuleTags: []string{types.CapsuleRefined}},
		{ID: "chukka-sand", Category: types.CategoryShoes, Name: "Sand Chukka Boots", FormalityScore: 5, CapsuleTags: []string{types.CapsuleAdventurer, types.CapsuleCrossover}},
		{ID: "sneaker-white", Category: types.CategoryShoes, Name: "White Sneakers", FormalityScore: 3, CapsuleTags: []string{types.CapsuleCrossover, types.CapsuleAdventurer}},
		{ID: "belt-brown", Category: types.CategoryBelt, Name: "Brown Leather Belt", FormalityScore: 5, CapsuleTags: []string{types.CapsuleCrossover}},
		{ID: "watch-field", Category: types.CategoryWatch, Name: "Green Field Watch", FormalityScore: 4, CapsuleTags: []string{types.CapsuleAdventurer, types.CapsuleCrossover}},
		{ID: "chore-navy", Category: types.CategoryOuterwear, Name: "Navy Chore Jacket", FormalityScore: 5, CapsuleTags: []string{types.CapsuleCrossover, types.CapsuleAdventurer}},
		{ID: "undershirt-white", Category: types.CategoryUndershirt, Name: "White Undershirt", FormalityScore: 2},
	}}
}

func writeWardrobe(t *testing.T, dir string, doc *types.WardrobeDocument) {
	t.Helper()
	content, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wardrobe.json"), content, 0644))
}

func writeCorpus(t *testing.T, dir string, doc *types.CorpusDocument) {
	t.Helper()
	content, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "outfits.json"), content, 0644))
}

func testConfig(dir string, target int) config.Config {
	cfg := config.DefaultConfig()
	cfg.WardrobePath = filepath.Join(dir, "wardrobe.json")
	cfg.OutfitsPath = filepath.Join(dir, "outfits.json")
	cfg.TargetOutfits = target
	cfg.MinComboScore = -10
	return cfg
}

func runOnce(t *testing.T, dir string, target int) (*Report, *types.CorpusDocument) {
	t.Helper()
	cfg := testConfig(dir, target)
	st := store.NewFileStore(cfg.WardrobePath, cfg.OutfitsPath)
	report, err := Run(context.Background(), st, cfg)
	require.NoError(t, err)

	saved, err := st.LoadCorpus(context.Background())
	require.NoError(t, err)
	return report, saved
}

func TestRun_EndToEndGrowsCorpus(t *testing.T) {
	dir := t.TempDir()
	writeWardrobe(t, dir, testWardrobe())

	report, saved := runOnce(t, dir, 8)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 13, report.CatalogItems)
	assert.Equal(t, 0, report.CorpusKept)
	assert.Empty(t, report.Dropped)
	assert.Equal(t, 8, report.Target)
	assert.Equal(t, 8, report.Appended)
	assert.Equal(t, 8, report.CorpusSize)
	assert.Len(t, report.Selection.Picks, report.Appended)
	assert.Equal(t, report.Generation.Assembled,
		report.Generation.GuardRejected+report.Generation.Duplicates+report.Generation.BelowThreshold+report.Generation.Kept)

	require.Len(t, saved.Outfits, 8)
	seen := make(map[string]bool)
	for i, outfit := range saved.Outfits {
		assert.Equal(t, fmt.Sprintf("outfit-%04d", i+1), outfit.ID)
		assert.Equal(t, types.TuckTucked, outfit.Tuck)
		assert.NotEmpty(t, outfit.Items)

		key := corpus.Key(outfit.Items)
		assert.False(t, seen[key], "duplicate item set on %s", outfit.ID)
		seen[key] = true
	}
}

func TestRun_DeterministicAcrossFreshDirectories(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeWardrobe(t, dirA, testWardrobe())
	writeWardrobe(t, dirB, testWardrobe())

	runOnce(t, dirA, 6)
	runOnce(t, dirB, 6)

	contentA, err := os.ReadFile(filepath.Join(dirA, "outfits.json"))
	require.NoError(t, err)
	contentB, err := os.ReadFile(filepath.Join(dirB, "outfits.json"))
	require.NoError(t, err)
	assert.Equal(t, string(contentA), string(contentB))
}

func TestRun_RerunIsIdempotentAtTarget(t *testing.T) {
	dir := t.TempDir()
	writeWardrobe(t, dir, testWardrobe())

	runOnce(t, dir, 5)
	before, err := os.ReadFile(filepath.Join(dir, "outfits.json"))
	require.NoError(t, err)

	report, _ := runOnce(t, dir, 5)

	assert.Equal(t, 5, report.CorpusKept)
	assert.Equal(t, 0, report.Target)
	assert.Equal(t, 0, report.Appended)
	assert.Equal(t, 5, report.CorpusSize)

	after, err := os.ReadFile(filepath.Join(dir, "outfits.json"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestRun_RaisedTargetAppendsDisjointOutfits(t *testing.T) {
	dir := t.TempDir()
	writeWardrobe(t, dir, testWardrobe())

	_, first := runOnce(t, dir, 5)
	report, second := runOnce(t, dir, 9)

	assert.Equal(t, 5, report.CorpusKept)
	assert.Equal(t, 4, report.Target)
	assert.Equal(t, 4, report.Appended)
	require.Len(t, second.Outfits, 9)

	// The earlier outfits survive unchanged, in place.
	for i, outfit := range first.Outfits {
		assert.Equal(t, outfit.ID, second.Outfits[i].ID)
		assert.Equal(t, outfit.Items, second.Outfits[i].Items)
	}

	// No two outfits in the grown corpus share an item set.
	seen := make(map[string]bool)
	for _, outfit := range second.Outfits {
		key := corpus.Key(outfit.Items)
		assert.False(t, seen[key], "duplicate item set on %s", outfit.ID)
		seen[key] = true
	}
}

func TestRun_PersistsStaleDropsWithoutNewPicks(t *testing.T) {
	dir := t.TempDir()
	writeWardrobe(t, dir, testWardrobe())
	writeCorpus(t, dir, &types.CorpusDocument{Outfits: []types.CorpusOutfit{
		{ID: "outfit-0001", Items: []string{"ocbd-white", "chino-khaki", "derby-brown", "belt-brown"}, Tuck: types.TuckTucked},
		{ID: "outfit-0002", Items: []string{"linen-shirt-gone", "chino-khaki", "derby-brown"}, Tuck: types.TuckTucked},
	}})

	report, saved := runOnce(t, dir, 1)

	assert.Equal(t, 1, report.CorpusKept)
	require.Len(t, report.Dropped, 1)
	assert.Equal(t, "outfit-0002", report.Dropped[0].OutfitID)
	assert.Equal(t, []string{"linen-shirt-gone"}, report.Dropped[0].MissingIDs)
	assert.Equal(t, 0, report.Target)
	assert.Equal(t, 0, report.Appended)

	// The cleanup reached disk even though nothing new was selected.
	require.Len(t, saved.Outfits, 1)
	assert.Equal(t, "outfit-0001", saved.Outfits[0].ID)
}

func TestRun_EmptyPoolStillWritesCorpus(t *testing.T) {
	dir := t.TempDir()
	// No shoes, so no combination can complete and the pool stays empty.
	writeWardrobe(t, dir, &types.WardrobeDocument{Items: []types.WardrobeItem{
		{ID: "ocbd-white", Category: types.CategoryShirt, FormalityScore: 6},
		{ID: "chino-khaki", Category: types.CategoryPants, FormalityScore: 5},
	}})

	report, saved := runOnce(t, dir, 5)

	assert.Equal(t, 0, report.Generation.Kept)
	assert.Equal(t, 5, report.Target)
	assert.Equal(t, 0, report.Appended)
	assert.Equal(t, 0, report.CorpusSize)

	// An empty corpus document still lands on disk.
	require.NotNil(t, saved.Outfits)
	assert.Empty(t, saved.Outfits)
}

func TestRun_MissingWardrobeSurfacesStoreError(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir, 5)
	st := store.NewFileStore(cfg.WardrobePath, cfg.OutfitsPath)

	report, err := Run(context.Background(), st, cfg)

	assert.Nil(t, report)
	var loadErr *store.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, cfg.WardrobePath, loadErr.Path)

	_, statErr := os.Stat(cfg.OutfitsPath)
	assert.True(t, os.IsNotExist(statErr), "corpus must not be written on a failed run")
}

func TestRun_CatalogFailureLeavesCorpusUntouched(t *testing.T) {
	dir := t.TempDir()
	writeWardrobe(t, dir, &types.WardrobeDocument{Items: []types.WardrobeItem{
		{ID: "ocbd-white", Category: types.CategoryShirt, FormalityScore: 6},
		{ID: "ocbd-white", Category: types.CategoryShirt, FormalityScore: 5},
	}})
	cfg := testConfig(dir, 5)
	st := store.NewFileStore(cfg.WardrobePath, cfg.OutfitsPath)

	report, err := Run(context.Background(), st, cfg)

	assert.Nil(t, report)
	var engineErr *Error
	require.ErrorAs(t, err, &engineErr)
	assert.Contains(t, err.Error(), "failed to build catalog")

	_, statErr := os.Stat(cfg.OutfitsPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGuardRuntime_AllowsHostPlatform(t *testing.T) {
	assert.NoError(t, guardRuntime())
}
