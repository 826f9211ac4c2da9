// Package store persists the wardrobe and the outfit corpus. The file-backed
// store covers the normal batch flow; the Postgres-backed store serves setups
// that keep the documents in a database instead of on disk.
package store

import (
	"context"

	"github.com/caleb/outfitter/internal/types"
)

// Store loads the two input documents at the start of a run and persists the
// corpus once at the end.
type Store interface {
	LoadWardrobe(ctx context.Context) (*types.WardrobeDocument, error)
	LoadCorpus(ctx context.Context) (*types.CorpusDocument, error)
	SaveCorpus(ctx context.Context, doc *types.CorpusDocument) error
	Close()
}
