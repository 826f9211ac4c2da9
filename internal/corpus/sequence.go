package corpus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caleb/outfitter/internal/types"
)

// idFormat shapes generated outfit ids: outfit-0001, outfit-0002, ...
const idFormat = "outfit-%04d"

// Sequence allocates sequential outfit ids. It is seeded once from the
// highest numeric suffix among the existing ids and only counts up from
// there; allocation never re-scans the corpus or reuses gaps.
type Sequence struct {
	next int
}

// NewSequence seeds a Sequence from the surviving outfits. Ids without a
// numeric suffix are ignored.
func NewSequence(outfits []types.CorpusOutfit) *Sequence {
	highest := 0
	for _, outfit := range outfits {
		suffix := outfit.ID
		if i := strings.LastIndex(outfit.ID, "-"); i >= 0 {
			suffix = outfit.ID[i+1:]
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n <= highest {
			continue
		}
		highest = n
	}
	return &Sequence{next: highest + 1}
}

// Next returns the next outfit id.
func (s *Sequence) Next() string {
	id := fmt.Sprintf(idFormat, s.next)
	s.next++
	return id
}
