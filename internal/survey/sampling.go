package survey

import (
	"math/rand"
)

// drawWithoutReplacement selects n values uniformly at random without
// replacement. The generator is owned by the caller; interleaved draws from
// the same rng (one per stratum) stay reproducible because strata are
// always visited in table order.
//
// Partial Fisher-Yates over an index slice: only the first n positions are
// shuffled, so a draw costs O(len(values)) setup and O(n) swaps.
func drawWithoutReplacement(rng *rand.Rand, values []float64, n int) []float64 {
	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}

	sample := make([]float64, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
		sample[i] = values[indices[i]]
	}
	return sample
}
