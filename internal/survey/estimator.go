package survey

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mhzhou/bikeshare-survey-go/internal/stats"
)

// zCritical95 is the two-sided Normal critical value for a 95% interval,
// the survey-package convention for large-sample means.
const zCritical95 = 1.96

// EstimateResult is the outcome of one estimator run. Immutable, returned
// by value.
type EstimateResult struct {
	Mean       float64 `json:"mean"`
	SE         float64 `json:"se"`
	Lower      float64 `json:"lci"`
	Upper      float64 `json:"uci"`
	SampleSize int     `json:"sampleSize"`
}

// Covers reports whether the confidence interval contains v
func (e EstimateResult) Covers(v float64) bool {
	return v >= e.Lower && v <= e.Upper
}

// SRSEstimate draws sampleSize records uniformly without replacement from
// the whole population and returns mean, SE = s/sqrt(n) and the 95% CI.
//
// No finite-population correction is applied: the designs here keep
// sampleSize below 10% of the population, where the correction is
// negligible by convention.
func SRSEstimate(pop Population, seed int64, sampleSize int) (EstimateResult, error) {
	if sampleSize <= 0 {
		return EstimateResult{}, fmt.Errorf("%w: sample size %d must be positive", ErrConfiguration, sampleSize)
	}
	if sampleSize > len(pop) {
		return EstimateResult{}, fmt.Errorf("%w: sample size %d exceeds population size %d",
			ErrInsufficientPopulation, sampleSize, len(pop))
	}
	// SRS is the degenerate single-stratum design: one group with weight 1
	// reduces the stratified SE to s/sqrt(n) exactly.
	return estimateStrata(seed, [][]float64{pop.Durations()}, []float64{1}, []int{sampleSize})
}

// Estimate draws each stratum's allocated sample and combines them into the
// stratified mean sum_h (N_h/N)*mean_h with
// SE = sqrt(sum_h (N_h/N)^2 * s_h^2 / n_h). The seed is applied once for
// the whole draw sequence; strata are visited in table order, so the same
// seed and population always reproduce the same combined sample.
func (t *StratumTable) Estimate(seed int64, plan *AllocationPlan) (EstimateResult, error) {
	groups := make([][]float64, len(t.Order))
	weights := make([]float64, len(t.Order))
	counts := make([]int, len(t.Order))

	for i, key := range t.Order {
		n, ok := plan.Counts[key]
		if !ok || n <= 0 {
			return EstimateResult{}, fmt.Errorf("%w: stratum %s has no allocated sample", ErrInvalidAllocation, key)
		}
		if n > t.Stats[key].Count {
			return EstimateResult{}, fmt.Errorf("%w: stratum %s needs %d samples but holds only %d records",
				ErrInsufficientPopulation, key, n, t.Stats[key].Count)
		}
		groups[i] = t.groups[key]
		weights[i] = t.Stats[key].Proportion
		counts[i] = n
	}
	return estimateStrata(seed, groups, weights, counts)
}

// estimateStrata is the shared sampling/CI core behind both estimators.
// Caller guarantees counts[i] >= 1 and counts[i] <= len(groups[i]).
func estimateStrata(seed int64, groups [][]float64, weights []float64, counts []int) (EstimateResult, error) {
	rng := rand.New(rand.NewSource(seed))

	var mean, variance float64
	var total int
	for i, group := range groups {
		sample := drawWithoutReplacement(rng, group, counts[i])
		groupMean := stats.Mean(sample)
		groupSD := stats.StdDev(sample)

		mean += weights[i] * groupMean
		variance += weights[i] * weights[i] * groupSD * groupSD / float64(counts[i])
		total += counts[i]
	}

	se := math.Sqrt(variance)
	margin := zCritical95 * se
	return EstimateResult{
		Mean:       mean,
		SE:         se,
		Lower:      mean - margin,
		Upper:      mean + margin,
		SampleSize: total,
	}, nil
}
