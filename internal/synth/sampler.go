package synth

import (
	"math"
	"math/rand"

	"beautydash/domain/catalog"
)

// clamp constrains x to the closed interval [lo, hi]
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// round2 rounds to 2 decimal places
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// weightedIndex draws an index from a categorical weight vector using the
// cumulative method. Weights are assumed validated (positive, summing to 1);
// the final index absorbs any floating point remainder.
func weightedIndex(rng *rand.Rand, weights catalog.Weights) int {
	r := rng.Float64()
	cumulative := 0.0
	for i, weight := range weights {
		cumulative += weight
		if r <= cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// uniformRange draws uniformly from [lo, hi)
func uniformRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// uniformIntRange draws a uniform integer from [lo, hi] inclusive
func uniformIntRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
