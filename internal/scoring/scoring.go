// Package scoring implements the combination score. Capsule cohesion and
// color harmony push a combination up; formality spread pulls it down.
package scoring

import (
	"math"

	"github.com/caleb/outfitter/internal/attrs"
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

// Weights for the score components
const (
	formalityShirtPantsWeight = 0.15 // shirt vs pants distance
	formalityShoesWeight      = 0.10 // shoes vs core-average distance
	formalityJacketWeight     = 0.10 // jacket vs core-average distance
	colorPairWeight           = 0.25 // per harmonious adjacent color pair
	capsuleShirtPantsWeight   = 0.6
	capsulePantsShoesWeight   = 0.4
	capsuleShirtJacketWeight  = 0.3
	capsuleWatchWeight        = 0.2 // watch against the shirt and jacket tags combined
	capsuleBeltShoesWeight    = 0.1
)

// Combo is one fully assembled combination handed to the scorer. Shirt,
// pants, and shoes are required; the accessory slots may be nil. The
// undershirt never enters the score.
type Combo struct {
	Shirt  catalog.Entry
	Pants  catalog.Entry
	Shoes  catalog.Entry
	Belt   *catalog.Entry
	Watch  *catalog.Entry
	Jacket *catalog.Entry
}

// Score computes the combination score, rounded to three decimals:
// color bonus plus capsule bonus minus the formality penalty.
func Score(c Combo) float64 {
	penalty := computeFormalityPenalty(c)
	colorBonus := colorPairWeight * float64(countHarmoniousPairs(c))
	capsuleBonus := computeCapsuleBonus(c)

	return round3(colorBonus + capsuleBonus - penalty)
}

// computeFormalityPenalty penalizes formality spread: shirt against pants,
// then shoes and jacket against the core average.
func computeFormalityPenalty(c Combo) float64 {
	shirtForm := attrs.FormalityOrDefault(c.Shirt.WardrobeItem)
	pantsForm := attrs.FormalityOrDefault(c.Pants.WardrobeItem)
	shoesForm := attrs.FormalityOrDefault(c.Shoes.WardrobeItem)
	formAvg := float64(shirtForm+pantsForm+shoesForm) / 3.0

	penalty := formalityShirtPantsWeight * float64(attrs.FormalityDistance(shirtForm, pantsForm))
	penalty += formalityShoesWeight * math.Abs(formAvg-float64(shoesForm))
	if c.Jacket != nil {
		jacketForm := attrs.FormalityOrDefault(c.Jacket.WardrobeItem)
		penalty += formalityJacketWeight * math.Abs(formAvg-float64(jacketForm))
	}
	return penalty
}

// countHarmoniousPairs counts the adjacent pairs whose colors play nice:
// shirt/pants, pants/shoes, and pants/jacket when a jacket is chosen.
func countHarmoniousPairs(c Combo) int {
	pairs := 0
	if attrs.ColorsPlayNice(c.Shirt.Color, c.Pants.Color) {
		pairs++
	}
	if attrs.ColorsPlayNice(c.Pants.Color, c.Shoes.Color) {
		pairs++
	}
	if c.Jacket != nil && attrs.ColorsPlayNice(c.Pants.Color, c.Jacket.Color) {
		pairs++
	}
	return pairs
}

// computeCapsuleBonus rewards capsule-tag overlap between the pieces that
// read together on the body.
func computeCapsuleBonus(c Combo) float64 {
	bonus := capsuleShirtPantsWeight * float64(attrs.CapsuleOverlap(c.Shirt.WardrobeItem, c.Pants.WardrobeItem))
	bonus += capsulePantsShoesWeight * float64(attrs.CapsuleOverlap(c.Pants.WardrobeItem, c.Shoes.WardrobeItem))

	if c.Jacket != nil {
		bonus += capsuleShirtJacketWeight * float64(attrs.CapsuleOverlap(c.Shirt.WardrobeItem, c.Jacket.WardrobeItem))
	}
	if c.Watch != nil {
		anchors := []types.WardrobeItem{c.Shirt.WardrobeItem}
		if c.Jacket != nil {
			anchors = append(anchors, c.Jacket.WardrobeItem)
		}
		bonus += capsuleWatchWeight * float64(attrs.CapsuleOverlap(c.Watch.WardrobeItem, anchors...))
	}
	if c.Belt != nil {
		bonus += capsuleBeltShoesWeight * float64(attrs.CapsuleOverlap(c.Belt.WardrobeItem, c.Shoes.WardrobeItem))
	}
	return bonus
}

// round3 rounds to three decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
