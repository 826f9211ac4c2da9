// Package generation enumerates the bounded candidate pool. Shirts fan out
// to their best-ranked pants, pants to their best-ranked shoes, accessories
// slot in around each core, and every full combination must pass the style
// guard, the duplicate index, and the score floor before it is recorded.
package generation

import (
	"github.com/caleb/outfitter/internal/accessories"
	"github.com/caleb/outfitter/internal/attrs"
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/corpus"
	"github.com/caleb/outfitter/internal/scoring"
	"github.com/caleb/outfitter/internal/styleguard"
	"github.com/caleb/outfitter/internal/types"
)

// Fan-out caps for the core enumeration stages.
const (
	MaxPantsPerShirt = 4
	MaxShoesPerPant  = 3
)

// dressyFormalityFloor marks cores too dressy for a visible undershirt.
const dressyFormalityFloor = 6

// Stats counts what happened to the assembled combinations.
type Stats struct {
	Assembled      int `json:"assembled"`
	GuardRejected  int `json:"guardRejected"`
	Duplicates     int `json:"duplicates"`
	BelowThreshold int `json:"belowThreshold"`
	Kept           int `json:"kept"`
}

// generator carries the run-wide state through the enumeration stages.
type generator struct {
	cat      *catalog.Catalog
	idx      *corpus.Index
	minScore float64
	pool     []types.Candidate
	stats    Stats
}

// Generate enumerates the candidate pool for the catalog. The index must be
// seeded from the surviving corpus; it grows as candidates are recorded, so
// a combination enters the pool at most once per run and never repeats a
// persisted outfit. Enumeration order follows wardrobe document order, so
// identical inputs produce identical pools.
func Generate(cat *catalog.Catalog, idx *corpus.Index, minScore float64) ([]types.Candidate, Stats) {
	g := &generator{cat: cat, idx: idx, minScore: minScore}
	for _, shirt := range cat.ByCategory(types.CategoryShirt) {
		g.expandShirt(shirt)
	}
	return g.pool, g.stats
}

func (g *generator) expandShirt(shirt catalog.Entry) {
	for _, pants := range topPantsForShirt(g.cat, shirt) {
		for _, shoes := range topShoesForPants(g.cat, pants) {
			g.expandCore(shirt, pants, shoes)
		}
	}
}

// expandCore runs the accessory stages for one shirt/pants/shoes core. The
// belt is a single deterministic pick; jacket, watch, and undershirt each
// branch the variant into with and without. The vibe grows with every piece
// already chosen, so later slots see the whole running outfit.
func (g *generator) expandCore(shirt, pants, shoes catalog.Entry) {
	core := []catalog.Entry{shirt, pants, shoes}

	var belt *catalog.Entry
	if picked, ok := accessories.SelectBelt(g.cat, shoes, vibeOf(core)); ok {
		belt = &picked
	}
	chosen := withEntry(core, belt)

	for _, jacket := range optionSet(accessories.RankJackets(g.cat, shirt, pants, vibeOf(chosen))) {
		jacketChosen := withEntry(chosen, jacket)
		for _, watch := range optionSet(accessories.RankWatches(g.cat, vibeOf(jacketChosen))) {
			watchChosen := withEntry(jacketChosen, watch)
			for _, undershirt := range g.undershirtOptions(shirt, pants, watchChosen, jacket) {
				g.screen(variant{
					shirt: shirt, pants: pants, shoes: shoes,
					belt: belt, jacket: jacket, watch: watch, undershirt: undershirt,
				})
			}
		}
	}
}

// undershirtOptions returns the undershirt branches for a variant: the empty
// option, plus the preferred undershirt unless the slot is suppressed. A
// dressy core with nothing layered over it never takes an undershirt.
func (g *generator) undershirtOptions(shirt, pants catalog.Entry, chosen []catalog.Entry, jacket *catalog.Entry) []*catalog.Entry {
	if jacket == nil &&
		attrs.FormalityOrDefault(shirt.WardrobeItem) >= dressyFormalityFloor &&
		attrs.FormalityOrDefault(pants.WardrobeItem) >= dressyFormalityFloor {
		return []*catalog.Entry{nil}
	}

	picked, ok := accessories.SelectUndershirt(g.cat, vibeOf(chosen), jacket != nil)
	if !ok {
		return []*catalog.Entry{nil}
	}
	return []*catalog.Entry{nil, &picked}
}

// screen runs the style guard, the duplicate index, and the score floor over
// one fully assembled variant, recording it if everything passes.
func (g *generator) screen(v variant) {
	g.stats.Assembled++

	if violation := styleguard.Evaluate(styleguard.NewCheck(v.pants, v.shoes, v.extras()...)); violation != nil {
		g.stats.GuardRejected++
		return
	}

	ids := v.ids()
	if g.idx.Has(ids) {
		g.stats.Duplicates++
		return
	}

	score := scoring.Score(scoring.Combo{
		Shirt: v.shirt, Pants: v.pants, Shoes: v.shoes,
		Belt: v.belt, Watch: v.watch, Jacket: v.jacket,
	})
	if score < g.minScore {
		g.stats.BelowThreshold++
		return
	}

	g.idx.Add(ids)
	g.pool = append(g.pool, types.Candidate{
		Items:           ids,
		Score:           score,
		ShirtID:         v.shirt.ID,
		PantsID:         v.pants.ID,
		ShoesID:         v.shoes.ID,
		JacketID:        idOf(v.jacket),
		DominantCapsule: attrs.DominantCapsule(v.items()...),
		Tuck:            types.TuckTucked,
	})
	g.stats.Kept++
}
