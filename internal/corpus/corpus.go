// Package corpus maintains the persistent outfit corpus: validation against
// the current wardrobe, the duplicate-combination index, sequential id
// allocation, and appending newly selected outfits.
package corpus

import (
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

// DropReport names a corpus outfit dropped during validation and the item
// ids it referenced that no longer exist in the wardrobe.
type DropReport struct {
	OutfitID   string   `json:"outfitId"`
	MissingIDs []string `json:"missingIds"`
}

// Validate keeps the outfits whose every item id still exists in the
// catalog. Dropped outfits come back as reports for the caller to log;
// stale corpus entries are recoverable, never fatal.
func Validate(doc *types.CorpusDocument, cat *catalog.Catalog) ([]types.CorpusOutfit, []DropReport) {
	if doc == nil {
		return nil, nil
	}

	kept := make([]types.CorpusOutfit, 0, len(doc.Outfits))
	var dropped []DropReport
	for _, outfit := range doc.Outfits {
		var missing []string
		for _, id := range outfit.Items {
			if !cat.Has(id) {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			dropped = append(dropped, DropReport{OutfitID: outfit.ID, MissingIDs: missing})
			continue
		}
		kept = append(kept, outfit)
	}
	return kept, dropped
}

// Append materializes the selected candidates as corpus outfits, allocating
// ids in selection order.
func Append(existing []types.CorpusOutfit, picks []types.Candidate, seq *Sequence) []types.CorpusOutfit {
	outfits := make([]types.CorpusOutfit, 0, len(existing)+len(picks))
	outfits = append(outfits, existing...)
	for _, pick := range picks {
		outfits = append(outfits, types.CorpusOutfit{
			ID:    seq.Next(),
			Items: pick.Items,
			Tuck:  pick.Tuck,
		})
	}
	return outfits
}
