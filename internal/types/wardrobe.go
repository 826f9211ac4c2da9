// Package types provides type definitions for the wardrobe catalog, the
// outfit corpus, and the candidate records that flow through the engine.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Wardrobe item categories.
const (
	CategoryShirt      = "Shirt"
	CategoryUndershirt = "Undershirt"
	CategoryPants      = "Pants"
	CategoryShoes      = "Shoes"
	CategoryBelt       = "Belt"
	CategoryWatch      = "Watch"
	CategoryOuterwear  = "Jacket/Overshirt"
)

// Capsule tags. The first three are style families; Shorts is a seasonal
// marker and never counts as a dominant capsule.
const (
	CapsuleRefined    = "Refined"
	CapsuleCrossover  = "Crossover"
	CapsuleAdventurer = "Adventurer"
	CapsuleShorts     = "Shorts"
)

// CapsuleFamilies lists the style families in tie-break priority order.
var CapsuleFamilies = []string{CapsuleRefined, CapsuleCrossover, CapsuleAdventurer}

// Silhouette values the engine branches on. Items may declare a silhouette
// explicitly; otherwise the catalog derives one from the id and name.
const (
	SilhouetteShorts = "shorts"
	SilhouetteBoots  = "boots"
)

// LayerOuter marks outerwear-type garments (jackets, coats, overshirts).
const LayerOuter = "outer"

// WardrobeItem represents a single garment or accessory in the wardrobe.
type WardrobeItem struct {
	ID             string   `json:"id" validate:"required,min=1"`
	Category       string   `json:"category" validate:"required,oneof=Shirt Undershirt Pants Shoes Belt Watch Jacket/Overshirt"`
	Name           string   `json:"name"`
	FormalityScore int      `json:"formalityScore,omitempty" validate:"gte=0,lte=10"`
	CapsuleTags    []string `json:"capsuleTags,omitempty" validate:"dive,oneof=Refined Crossover Adventurer Shorts"`
	Silhouette     string   `json:"silhouette,omitempty"`
	Layer          string   `json:"layer,omitempty"`
}

// WardrobeDocument is the on-disk wardrobe catalog format.
type WardrobeDocument struct {
	Items []WardrobeItem `json:"items"`
}

// Validate validates the WardrobeItem using the validator.
func (i *WardrobeItem) Validate() error {
	validate := validator.New()
	return validate.Struct(i)
}

// HasTag reports whether the item carries the given capsule tag.
func (i *WardrobeItem) HasTag(tag string) bool {
	for _, t := range i.CapsuleTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
