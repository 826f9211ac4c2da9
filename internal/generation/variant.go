package generation

import (
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/types"
)

// variant is one fully assembled combination: the core triple plus whichever
// optional pieces this branch carries.
type variant struct {
	shirt catalog.Entry
	pants catalog.Entry
	shoes catalog.Entry

	belt       *catalog.Entry
	jacket     *catalog.Entry
	watch      *catalog.Entry
	undershirt *catalog.Entry
}

// entries returns every piece of the variant in slot order.
func (v variant) entries() []catalog.Entry {
	out := []catalog.Entry{v.shirt, v.pants, v.shoes}
	for _, extra := range []*catalog.Entry{v.belt, v.jacket, v.watch, v.undershirt} {
		if extra != nil {
			out = append(out, *extra)
		}
	}
	return out
}

// extras returns everything the style guard checks alongside pants and
// shoes.
func (v variant) extras() []catalog.Entry {
	out := []catalog.Entry{v.shirt}
	for _, extra := range []*catalog.Entry{v.belt, v.jacket, v.watch, v.undershirt} {
		if extra != nil {
			out = append(out, *extra)
		}
	}
	return out
}

func (v variant) ids() []string {
	entries := v.entries()
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	return ids
}

func (v variant) items() []types.WardrobeItem {
	entries := v.entries()
	items := make([]types.WardrobeItem, len(entries))
	for i, entry := range entries {
		items[i] = entry.WardrobeItem
	}
	return items
}

func idOf(entry *catalog.Entry) string {
	if entry == nil {
		return ""
	}
	return entry.ID
}
