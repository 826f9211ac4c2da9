package corpus

import (
	"sort"
	"strings"

	"github.com/caleb/outfitter/internal/types"
)

// Index tracks the combinations already present in the corpus. Keys are the
// sorted, de-duplicated item ids joined with "|", so item order and repeated
// ids never produce distinct keys.
type Index struct {
	keys map[string]bool
}

// NewIndex returns an Index seeded with the given outfits.
func NewIndex(outfits []types.CorpusOutfit) *Index {
	idx := &Index{keys: make(map[string]bool, len(outfits))}
	for _, outfit := range outfits {
		idx.keys[Key(outfit.Items)] = true
	}
	return idx
}

// Key canonicalizes a combination to the sorted set of its distinct ids.
func Key(items []string) string {
	seen := make(map[string]bool, len(items))
	unique := make([]string, 0, len(items))
	for _, id := range items {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	sort.Strings(unique)
	return strings.Join(unique, "|")
}

// Has reports whether the combination is already indexed.
func (x *Index) Has(items []string) bool {
	return x.keys[Key(items)]
}

// Add indexes the combination.
func (x *Index) Add(items []string) {
	x.keys[Key(items)] = true
}

// Len returns the number of indexed combinations.
func (x *Index) Len() int {
	return len(x.keys)
}
