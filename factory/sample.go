package factory

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lineage/demography"
)

// intBetween draws uniformly from the closed range [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// pickWeighted draws one entry with probability proportional to its weight.
// Zero-weight entries are never chosen.
// Complexity: O(n).
func pickWeighted(rng *rand.Rand, items []demography.Weighted) (string, error) {
	// Total mass; negative weights are rejected
	total := 0.0
	for _, it := range items {
		if it.Weight < 0 {
			return "", fmt.Errorf("%q has weight %g: %w", it.Name, it.Weight, ErrBadWeights)
		}
		total += it.Weight
	}
	if total <= 0 {
		return "", ErrBadWeights
	}

	// Walk the cumulative weights until r falls inside one
	r := rng.Float64() * total
	last := ""
	acc := 0.0
	for _, it := range items {
		if it.Weight == 0 {
			continue
		}
		acc += it.Weight
		last = it.Name
		if r < acc {
			return it.Name, nil
		}
	}
	// rounding left r at the very top of the range
	return last, nil
}
