package survey

import (
	"github.com/mhzhou/bikeshare-survey-go/internal/stats"
)

// DayOfWeek labels in canonical order. Stratum tables iterate days in this
// order, so every consumer sees the same stratum sequence.
var DayOfWeekOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// TimeOfDay labels in canonical order.
var TimeOfDayOrder = []string{"Morning", "Midday", "Evening", "Night"}

// TimeOfDayForHour maps an hour of day (0-23) to its time-of-day label
func TimeOfDayForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 11:
		return "Morning"
	case hour >= 11 && hour < 17:
		return "Midday"
	case hour >= 17 && hour < 22:
		return "Evening"
	default:
		return "Night"
	}
}

// Record is one trip observation reduced to the fields the survey designs
// need: the measured duration and the two stratification labels.
type Record struct {
	Duration  float64 // seconds
	DayOfWeek string
	TimeOfDay string
}

// Population is the full set of filtered records. It is treated as
// immutable once built.
type Population []Record

// FilterCeiling returns the population restricted to duration < ceiling.
// Pure filter, the input is left untouched.
func FilterCeiling(pop Population, ceiling float64) Population {
	filtered := make(Population, 0, len(pop))
	for _, r := range pop {
		if r.Duration < ceiling {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Durations extracts the duration values in population order.
func (p Population) Durations() []float64 {
	values := make([]float64, len(p))
	for i, r := range p {
		values[i] = r.Duration
	}
	return values
}

// TrueMean returns the mean duration of the full population. This is the
// reference value coverage is checked against in the repetition harness.
func (p Population) TrueMean() float64 {
	return stats.Mean(p.Durations())
}
