package selection

// MMR weights: alpha weighs the candidate's own score, beta its novelty
// against the outfits already selected.
const (
	alpha = 0.75
	beta  = 0.25
)

// Group caps for the final set.
const (
	maxPerShirt      = 4 // outfits sharing one shirt
	maxPerPantsColor = 5 // outfits sharing one pants color
	maxShortsOutfits = 4 // shorts-based outfits in total
	maxPerSilhouette = 3 // outfits sharing one silhouette key
)

// selector carries the greedy loop's state across both passes.
type selector struct {
	pool     []entry
	selected []entry
	tracker  *tracker
	target   int
}

// runPass repeatedly picks the feasible candidate with the highest marginal
// value until the target is reached or nothing feasible remains. Strict
// passes enforce capsule quotas on top of the group caps. Ties keep the
// earliest candidate, so the pass is deterministic for a fixed pool order.
func (s *selector) runPass(strict bool) int {
	admitted := 0
	for len(s.selected) < s.target {
		best := -1
		bestValue := 0.0
		for i := range s.pool {
			if !s.tracker.fits(s.pool[i], strict) {
				continue
			}
			value := alpha*s.pool[i].candidate.Score + beta*novelty(s.pool[i], s.selected)
			if best == -1 || value > bestValue {
				best = i
				bestValue = value
			}
		}
		if best == -1 {
			break
		}

		pick := s.pool[best]
		s.pool = append(s.pool[:best], s.pool[best+1:]...)
		s.selected = append(s.selected, pick)
		s.tracker.admit(pick)
		admitted++
	}
	return admitted
}

// tracker counts selections per grouping key and enforces the caps. Quotas
// only bind when the pass is strict.
type tracker struct {
	quotas        Quotas
	perShirt      map[string]int
	perPantsColor map[string]int
	perSilhouette map[string]int
	perFamily     map[string]int
	shorts        int
}

func newTracker(quotas Quotas) *tracker {
	return &tracker{
		quotas:        quotas,
		perShirt:      make(map[string]int),
		perPantsColor: make(map[string]int),
		perSilhouette: make(map[string]int),
		perFamily:     make(map[string]int),
	}
}

func (t *tracker) fits(e entry, strict bool) bool {
	if t.perShirt[e.shirtID] >= maxPerShirt {
		return false
	}
	if t.perPantsColor[e.pantsColor] >= maxPerPantsColor {
		return false
	}
	if e.isShorts && t.shorts >= maxShortsOutfits {
		return false
	}
	if t.perSilhouette[e.silhouette] >= maxPerSilhouette {
		return false
	}
	if strict && t.perFamily[e.candidate.DominantCapsule] >= t.quotas[e.candidate.DominantCapsule] {
		return false
	}
	return true
}

func (t *tracker) admit(e entry) {
	t.perShirt[e.shirtID]++
	t.perPantsColor[e.pantsColor]++
	t.perSilhouette[e.silhouette]++
	t.perFamily[e.candidate.DominantCapsule]++
	if e.isShorts {
		t.shorts++
	}
}

// familyCounts returns a copy of the per-capsule tallies.
func (t *tracker) familyCounts() map[string]int {
	counts := make(map[string]int, len(t.perFamily))
	for family, count := range t.perFamily {
		counts[family] = count
	}
	return counts
}
