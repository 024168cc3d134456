package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// popOf builds a single-stratum population from duration values
func popOf(day, tod string, durations ...float64) Population {
	pop := make(Population, 0, len(durations))
	for _, d := range durations {
		pop = append(pop, Record{Duration: d, DayOfWeek: day, TimeOfDay: tod})
	}
	return pop
}

func TestFilterCeiling(t *testing.T) {
	pop := popOf("Monday", "Morning", 100, 86399, 86400, 90000)

	filtered := FilterCeiling(pop, 86400)
	assert.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.Less(t, r.Duration, 86400.0)
	}

	// Pure filter, input untouched
	assert.Len(t, pop, 4)
}

func TestTrueMean(t *testing.T) {
	pop := popOf("Monday", "Morning", 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000)
	assert.Equal(t, 550.0, pop.TrueMean())
}

func TestTimeOfDayForHour(t *testing.T) {
	cases := map[int]string{
		0:  "Night",
		5:  "Night",
		6:  "Morning",
		10: "Morning",
		11: "Midday",
		16: "Midday",
		17: "Evening",
		21: "Evening",
		22: "Night",
		23: "Night",
	}
	for hour, want := range cases {
		assert.Equal(t, want, TimeOfDayForHour(hour), "hour %d", hour)
	}
}
