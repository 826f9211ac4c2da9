package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWardrobeItem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		item    WardrobeItem
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid item",
			item: WardrobeItem{
				ID:             "shirt-ocbd-white",
				Category:       CategoryShirt,
				Name:           "White OCBD",
				FormalityScore: 6,
				CapsuleTags:    []string{CapsuleRefined, CapsuleCrossover},
			},
			wantErr: false,
		},
		{
			name: "valid item without formality",
			item: WardrobeItem{
				ID:       "watch-field-olive",
				Category: CategoryWatch,
				Name:     "Field Watch",
			},
			wantErr: false,
		},
		{
			name: "valid outerwear category",
			item: WardrobeItem{
				ID:       "jacket-chore-navy",
				Category: CategoryOuterwear,
				Name:     "Navy Chore Jacket",
			},
			wantErr: false,
		},
		{
			name: "missing id",
			item: WardrobeItem{
				Category: CategoryShirt,
				Name:     "Nameless",
			},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name: "unknown category",
			item: WardrobeItem{
				ID:       "hat-baseball",
				Category: "Hat",
				Name:     "Baseball Cap",
			},
			wantErr: true,
			errMsg:  "oneof",
		},
		{
			name: "formality above range",
			item: WardrobeItem{
				ID:             "shirt-tux",
				Category:       CategoryShirt,
				Name:           "Tuxedo Shirt",
				FormalityScore: 11,
			},
			wantErr: true,
			errMsg:  "lte",
		},
		{
			name: "unknown capsule tag",
			item: WardrobeItem{
				ID:          "pants-chino-olive",
				Category:    CategoryPants,
				Name:        "Olive Chinos",
				CapsuleTags: []string{"Streetwear"},
			},
			wantErr: true,
			errMsg:  "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestWardrobeItem_HasTag(t *testing.T) {
	item := WardrobeItem{
		ID:          "pants-jeans-dark",
		Category:    CategoryPants,
		CapsuleTags: []string{CapsuleCrossover, CapsuleAdventurer},
	}

	assert.True(t, item.HasTag(CapsuleCrossover))
	assert.True(t, item.HasTag("adventurer"), "tag matching should be case-insensitive")
	assert.False(t, item.HasTag(CapsuleRefined))

	bare := WardrobeItem{ID: "belt-brown", Category: CategoryBelt}
	assert.False(t, bare.HasTag(CapsuleRefined))
}

func TestWardrobeDocument_Unmarshal(t *testing.T) {
	raw := `{
		"items": [
			{
				"id": "shirt-linen-white",
				"category": "Shirt",
				"name": "White Linen Shirt",
				"formalityScore": 4,
				"capsuleTags": ["Crossover", "Shorts"]
			}
		]
	}`

	var doc WardrobeDocument
	err := json.Unmarshal([]byte(raw), &doc)
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)

	item := doc.Items[0]
	assert.Equal(t, "shirt-linen-white", item.ID)
	assert.Equal(t, CategoryShirt, item.Category)
	assert.Equal(t, 4, item.FormalityScore)
	assert.Equal(t, []string{CapsuleCrossover, CapsuleShorts}, item.CapsuleTags)
	assert.Empty(t, item.Silhouette)
}

func TestCorpusOutfit_Validation(t *testing.T) {
	valid := CorpusOutfit{
		ID:    "outfit-0001",
		Items: []string{"shirt-ocbd-white", "pants-chino-khaki", "shoes-loafer-brown"},
		Tuck:  TuckTucked,
	}
	require.NoError(t, valid.Validate())

	missingItems := CorpusOutfit{ID: "outfit-0002"}
	err := missingItems.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	emptyMember := CorpusOutfit{ID: "outfit-0003", Items: []string{"shirt-ocbd-white", ""}}
	err = emptyMember.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
