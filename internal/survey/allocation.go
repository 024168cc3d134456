package survey

import (
	"fmt"
	"math"
	"sort"
)

// AllocationPolicy names how a target total is split across strata
type AllocationPolicy string

const (
	PolicyProportional AllocationPolicy = "PROPORTIONAL"
	PolicyNeyman       AllocationPolicy = "NEYMAN"
)

// AllocationPlan maps each stratum to its integer sample size. After
// reconciliation the counts always sum to exactly Total.
type AllocationPlan struct {
	Policy AllocationPolicy   `json:"policy"`
	Counts map[StratumKey]int `json:"-"`
	Total  int                `json:"total"`
}

// ProportionalPlan allocates targetTotal across strata as
// n_h = round(p_h * targetTotal - adjustment).
//
// adjustment is a caller-supplied constant subtracted from every raw value
// before rounding; the reference analysis hand-tunes it against a known
// target. With adjustment 0 the always-on reconciliation step gives plain
// largest-remainder allocation, so callers can choose either behavior.
func ProportionalPlan(table *StratumTable, targetTotal int, adjustment float64) (*AllocationPlan, error) {
	raw := make([]float64, len(table.Order))
	for i, key := range table.Order {
		raw[i] = table.Stats[key].Proportion*float64(targetTotal) - adjustment
	}
	return buildPlan(table, PolicyProportional, raw, targetTotal)
}

// NeymanPlan allocates targetTotal across strata proportionally to
// w_h = N_h * S_h, concentrating samples in large, high-variance strata.
func NeymanPlan(table *StratumTable, targetTotal int) (*AllocationPlan, error) {
	weights := make([]float64, len(table.Order))
	var weightSum float64
	for i, key := range table.Order {
		s := table.Stats[key]
		weights[i] = float64(s.Count) * s.StdDev
		weightSum += weights[i]
	}
	if weightSum == 0 {
		return nil, fmt.Errorf("%w: all Neyman stratum weights are zero", ErrInvalidAllocation)
	}

	raw := make([]float64, len(table.Order))
	for i := range weights {
		raw[i] = float64(targetTotal) * weights[i] / weightSum
	}
	return buildPlan(table, PolicyNeyman, raw, targetTotal)
}

// buildPlan rounds the raw per-stratum values, reconciles the rounded
// counts to the target total, and validates the result against the stratum
// populations.
func buildPlan(table *StratumTable, policy AllocationPolicy, raw []float64, targetTotal int) (*AllocationPlan, error) {
	if targetTotal <= 0 {
		return nil, fmt.Errorf("%w: target total %d must be positive", ErrInvalidAllocation, targetTotal)
	}
	if targetTotal > table.Total() {
		return nil, fmt.Errorf("%w: target total %d exceeds population size %d",
			ErrInsufficientPopulation, targetTotal, table.Total())
	}

	counts := make([]int, len(raw))
	for i, v := range raw {
		counts[i] = int(math.Round(v))
	}

	if err := reconcile(counts, raw, targetTotal); err != nil {
		return nil, err
	}

	plan := &AllocationPlan{
		Policy: policy,
		Counts: make(map[StratumKey]int, len(table.Order)),
		Total:  targetTotal,
	}
	for i, key := range table.Order {
		n := counts[i]
		if n < 0 {
			return nil, fmt.Errorf("%w: stratum %s resolved to negative sample size %d",
				ErrInvalidAllocation, key, n)
		}
		if n > table.Stats[key].Count {
			return nil, fmt.Errorf("%w: stratum %s needs %d samples but holds only %d records",
				ErrInsufficientPopulation, key, n, table.Stats[key].Count)
		}
		plan.Counts[key] = n
	}
	return plan, nil
}

// reconcile adjusts rounded counts in place until they sum to targetTotal.
//
// Overshoot by k: decrement the k strata that rounded up with the smallest
// fractional excess over 0.5. Undershoot by k: increment the k strata that
// rounded down with the largest fractional part below 0.5. Ties on the
// distance from 0.5 break by stratum iteration order.
func reconcile(counts []int, raw []float64, targetTotal int) error {
	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum == targetTotal {
		return nil
	}

	type candidate struct {
		index    int
		distance float64 // |frac - 0.5|
	}

	overshoot := sum > targetTotal
	var candidates []candidate
	for i, v := range raw {
		frac := v - math.Floor(v)
		roundedUp := frac >= 0.5
		if roundedUp == overshoot {
			candidates = append(candidates, candidate{index: i, distance: math.Abs(frac - 0.5)})
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].distance < candidates[b].distance
	})

	excess := sum - targetTotal
	step := -1
	if excess < 0 {
		excess = -excess
		step = 1
	}
	if excess > len(candidates) {
		return fmt.Errorf("%w: cannot reconcile rounded counts (off by %d with %d adjustable strata)",
			ErrInvalidAllocation, excess, len(candidates))
	}
	for i := 0; i < excess; i++ {
		counts[candidates[i].index] += step
	}
	return nil
}
