// Package styleguard enforces the hard style-compatibility rules a
// combination must pass before it can join the candidate pool.
package styleguard

import (
	"fmt"

	"github.com/caleb/outfitter/internal/catalog"
)

// Violation describes the rule a combination broke.
type Violation struct {
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
}

// Check is the view of a combination the rules inspect. All holds every
// chosen entry, pants and shoes included, so layer rules can see
// sweaters and overshirts wherever they were slotted.
type Check struct {
	Pants catalog.Entry
	Shoes catalog.Entry
	All   []catalog.Entry
}

// NewCheck assembles a Check from the core pieces and any extras.
func NewCheck(pants, shoes catalog.Entry, extras ...catalog.Entry) Check {
	all := make([]catalog.Entry, 0, len(extras)+2)
	all = append(all, pants, shoes)
	all = append(all, extras...)
	return Check{Pants: pants, Shoes: shoes, All: all}
}

// rule reports a non-empty reason when the combination violates it.
type rule struct {
	name  string
	check func(Check) string
}

// rules are evaluated in order; the first hit wins.
var rules = []rule{
	{name: "no-outerwear-with-shorts", check: checkOuterwearWithShorts},
	{name: "no-boots-with-shorts", check: checkBootsWithShorts},
}

// Evaluate runs every rule in order and returns the first violation, or nil
// when the combination passes.
func Evaluate(check Check) *Violation {
	for _, r := range rules {
		if reason := r.check(check); reason != "" {
			return &Violation{Rule: r.name, Reason: reason}
		}
	}
	return nil
}

func checkOuterwearWithShorts(c Check) string {
	if !c.Pants.IsShorts() {
		return ""
	}
	for _, entry := range c.All {
		if entry.IsOuterLayer() {
			return fmt.Sprintf("shorts do not pair with the outer layer %s", entry.ID)
		}
	}
	return ""
}

func checkBootsWithShorts(c Check) string {
	if c.Pants.IsShorts() && c.Shoes.IsBoots() {
		return fmt.Sprintf("shorts do not pair with boots (%s)", c.Shoes.ID)
	}
	return ""
}
