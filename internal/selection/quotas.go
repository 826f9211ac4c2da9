package selection

import (
	"math"
	"sort"

	"github.com/caleb/outfitter/internal/types"
)

// Quotas holds the strict-pass selection target per capsule family.
type Quotas map[string]int

// ComputeQuotas splits the selection target across the capsule families by
// their configured fractions. Flooring each share leaves a remainder of
// slots; those go one at a time to the highest-fraction families, cycling,
// so the quotas always sum to the target.
func ComputeQuotas(target int, fractions map[string]float64) Quotas {
	quotas := make(Quotas, len(types.CapsuleFamilies))
	for _, family := range types.CapsuleFamilies {
		quotas[family] = 0
	}
	if target <= 0 {
		return quotas
	}

	assigned := 0
	for _, family := range types.CapsuleFamilies {
		count := int(math.Floor(fractions[family] * float64(target)))
		quotas[family] = count
		assigned += count
	}

	order := make([]string, len(types.CapsuleFamilies))
	copy(order, types.CapsuleFamilies)
	sort.SliceStable(order, func(i, j int) bool {
		return fractions[order[i]] > fractions[order[j]]
	})

	remainder := target - assigned
	for k := 0; k < remainder; k++ {
		quotas[order[k%len(order)]]++
	}
	return quotas
}
