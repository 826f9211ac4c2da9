package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caleb/outfitter/internal/types"
)

// FileStore reads and writes the JSON documents on disk.
type FileStore struct {
	WardrobePath string
	CorpusPath   string
}

// NewFileStore returns a store over the two document paths.
func NewFileStore(wardrobePath, corpusPath string) *FileStore {
	return &FileStore{WardrobePath: wardrobePath, CorpusPath: corpusPath}
}

// LoadWardrobe reads and parses the wardrobe document. A missing wardrobe is
// an error; the engine has nothing to work with.
func (s *FileStore) LoadWardrobe(ctx context.Context) (*types.WardrobeDocument, error) {
	content, err := os.ReadFile(s.WardrobePath)
	if err != nil {
		return nil, &LoadError{
			Path:    s.WardrobePath,
			Message: "failed to read wardrobe",
			Cause:   err,
		}
	}

	var doc types.WardrobeDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Path:    s.WardrobePath,
			Message: "failed to unmarshal wardrobe JSON",
			Cause:   err,
		}
	}
	return &doc, nil
}

// LoadCorpus reads and parses the corpus document. A missing corpus is not an
// error; first runs start from an empty one.
func (s *FileStore) LoadCorpus(ctx context.Context) (*types.CorpusDocument, error) {
	content, err := os.ReadFile(s.CorpusPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &types.CorpusDocument{Outfits: []types.CorpusOutfit{}}, nil
		}
		return nil, &LoadError{
			Path:    s.CorpusPath,
			Message: "failed to read corpus",
			Cause:   err,
		}
	}

	var doc types.CorpusDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Path:    s.CorpusPath,
			Message: "failed to unmarshal corpus JSON",
			Cause:   err,
		}
	}
	if doc.Outfits == nil {
		doc.Outfits = []types.CorpusOutfit{}
	}
	return &doc, nil
}

// SaveCorpus writes the whole corpus document in one operation: marshal,
// write to a temp file next to the target, then rename over it. A crash
// mid-save leaves the previous corpus untouched.
func (s *FileStore) SaveCorpus(ctx context.Context, doc *types.CorpusDocument) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &SaveError{
			Path:    s.CorpusPath,
			Message: "failed to marshal corpus",
			Cause:   err,
		}
	}
	content = append(content, '\n')

	dir := filepath.Dir(s.CorpusPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &SaveError{
			Path:    s.CorpusPath,
			Message: "failed to create corpus directory",
			Cause:   err,
		}
	}

	tmp, err := os.CreateTemp(dir, ".outfits-*.json")
	if err != nil {
		return &SaveError{
			Path:    s.CorpusPath,
			Message: "failed to create temp file",
			Cause:   err,
		}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &SaveError{
			Path:    s.CorpusPath,
			Message: "failed to write corpus",
			Cause:   err,
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &SaveError{
			Path:    s.CorpusPath,
			Message: "failed to flush corpus",
			Cause:   err,
		}
	}
	if err := os.Rename(tmpPath, s.CorpusPath); err != nil {
		os.Remove(tmpPath)
		return &SaveError{
			Path:    s.CorpusPath,
			Message: "failed to replace corpus",
			Cause:   err,
		}
	}
	return nil
}

// Close is a no-op; the file store holds no resources between calls.
func (s *FileStore) Close() {}
