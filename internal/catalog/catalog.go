// Package catalog builds the indexed, attribute-derived view of the wardrobe
// that every downstream stage works against. The index is built once per run
// and passed explicitly; nothing in here is global.
package catalog

import (
	"fmt"

	"github.com/caleb/outfitter/internal/attrs"
	"github.com/caleb/outfitter/internal/types"
)

// Entry is a wardrobe item with its derived attributes resolved at build
// time: color token, silhouette, and layer.
type Entry struct {
	types.WardrobeItem
	Color      string
	Silhouette string
	Layer      string
}

// IsShorts reports whether the entry is a shorts-silhouette garment.
func (e Entry) IsShorts() bool { return e.Silhouette == types.SilhouetteShorts }

// IsBoots reports whether the entry is a boots-silhouette shoe.
func (e Entry) IsBoots() bool { return e.Silhouette == types.SilhouetteBoots }

// IsOuterLayer reports whether the entry sits on the outer layer.
func (e Entry) IsOuterLayer() bool { return e.Layer == types.LayerOuter }

// Catalog is the indexed wardrobe. Iteration helpers preserve wardrobe
// document order so runs stay deterministic.
type Catalog struct {
	entries    map[string]Entry
	order      []string
	byCategory map[string][]string
}

// Build validates the wardrobe document and derives per-item attributes.
// Structural problems (empty document, invalid items, duplicate ids) are
// fatal: the caller gets an error, never a partial catalog.
func Build(doc *types.WardrobeDocument) (*Catalog, error) {
	if doc == nil || len(doc.Items) == 0 {
		return nil, fmt.Errorf("wardrobe contains no items")
	}

	c := &Catalog{
		entries:    make(map[string]Entry, len(doc.Items)),
		byCategory: make(map[string][]string),
	}

	for i, item := range doc.Items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("invalid wardrobe item at index %d (%q): %w", i, item.ID, err)
		}
		if _, exists := c.entries[item.ID]; exists {
			return nil, fmt.Errorf("duplicate wardrobe item id %q", item.ID)
		}

		entry := Entry{
			WardrobeItem: item,
			Color:        attrs.ColorToken(item),
			Silhouette:   attrs.InferSilhouette(item),
			Layer:        attrs.InferLayer(item),
		}
		c.entries[item.ID] = entry
		c.order = append(c.order, item.ID)
		c.byCategory[item.Category] = append(c.byCategory[item.Category], item.ID)
	}

	return c, nil
}

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Has reports whether id exists in the wardrobe.
func (c *Catalog) Has(id string) bool {
	_, ok := c.entries[id]
	return ok
}

// ByCategory returns the entries of one category in document order.
func (c *Catalog) ByCategory(category string) []Entry {
	ids := c.byCategory[category]
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, c.entries[id])
	}
	return entries
}

// Entries returns every entry in document order.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		entries = append(entries, c.entries[id])
	}
	return entries
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// CategoryCounts returns the number of items per category.
func (c *Catalog) CategoryCounts() map[string]int {
	counts := make(map[string]int, len(c.byCategory))
	for category, ids := range c.byCategory {
		counts[category] = len(ids)
	}
	return counts
}
