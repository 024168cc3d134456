package survey

import (
	"fmt"

	"github.com/mhzhou/bikeshare-survey-go/internal/stats"
)

// StratumKey identifies a stratum by its (dayOfWeek, timeOfDay) pair
type StratumKey struct {
	DayOfWeek string `json:"dayOfWeek"`
	TimeOfDay string `json:"timeOfDay"`
}

// String returns the "Day/TimeOfDay" form used in reports
func (k StratumKey) String() string {
	return k.DayOfWeek + "/" + k.TimeOfDay
}

// StratumStats holds the population-level statistics of one stratum
type StratumStats struct {
	Count      int     `json:"count"`      // N_h
	Proportion float64 `json:"proportion"` // p_h = N_h / N
	StdDev     float64 `json:"stdDev"`     // S_h, sample std dev of duration
}

// StratumTable groups a population by stratum and exposes the strata in a
// fixed canonical order (weekday order crossed with time-of-day order).
// Every consumer iterates Order, which is what makes seeded draws and
// rounding tie-breaks deterministic.
type StratumTable struct {
	Order []StratumKey
	Stats map[StratumKey]StratumStats

	groups map[StratumKey][]float64
	total  int
}

// BuildStratumTable groups the population by (dayOfWeek, timeOfDay) and
// computes per-stratum counts, proportions and standard deviations.
// Records carrying a label outside the canonical sets fail the build.
func BuildStratumTable(pop Population) (*StratumTable, error) {
	if len(pop) == 0 {
		return nil, fmt.Errorf("%w: empty population", ErrConfiguration)
	}

	dayIndex := make(map[string]int, len(DayOfWeekOrder))
	for i, d := range DayOfWeekOrder {
		dayIndex[d] = i
	}
	todIndex := make(map[string]int, len(TimeOfDayOrder))
	for i, t := range TimeOfDayOrder {
		todIndex[t] = i
	}

	groups := make(map[StratumKey][]float64)
	for _, r := range pop {
		if _, ok := dayIndex[r.DayOfWeek]; !ok {
			return nil, fmt.Errorf("%w: unknown dayOfWeek label %q", ErrConfiguration, r.DayOfWeek)
		}
		if _, ok := todIndex[r.TimeOfDay]; !ok {
			return nil, fmt.Errorf("%w: unknown timeOfDay label %q", ErrConfiguration, r.TimeOfDay)
		}
		key := StratumKey{DayOfWeek: r.DayOfWeek, TimeOfDay: r.TimeOfDay}
		groups[key] = append(groups[key], r.Duration)
	}

	// Canonical order, keeping only strata actually present
	var order []StratumKey
	for _, d := range DayOfWeekOrder {
		for _, t := range TimeOfDayOrder {
			key := StratumKey{DayOfWeek: d, TimeOfDay: t}
			if _, ok := groups[key]; ok {
				order = append(order, key)
			}
		}
	}

	total := len(pop)
	statsByKey := make(map[StratumKey]StratumStats, len(order))
	for _, key := range order {
		values := groups[key]
		statsByKey[key] = StratumStats{
			Count:      len(values),
			Proportion: float64(len(values)) / float64(total),
			StdDev:     stats.StdDev(values),
		}
	}

	return &StratumTable{
		Order:  order,
		Stats:  statsByKey,
		groups: groups,
		total:  total,
	}, nil
}

// Total returns the population size N
func (t *StratumTable) Total() int {
	return t.total
}

// Durations returns the duration values of one stratum, in population order.
// The returned slice is the table's own backing slice and must not be
// modified.
func (t *StratumTable) Durations(key StratumKey) []float64 {
	return t.groups[key]
}
