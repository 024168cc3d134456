package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhzhou/bikeshare-survey-go/internal/stats"
)

func TestBuildStratumTable(t *testing.T) {
	// Record order deliberately does not follow the canonical stratum order
	var pop Population
	pop = append(pop, popOf("Sunday", "Night", 50, 60)...)
	pop = append(pop, popOf("Monday", "Evening", 10, 20, 30, 40)...)
	pop = append(pop, popOf("Monday", "Morning", 100, 200, 300, 400, 500, 600)...)

	table, err := BuildStratumTable(pop)
	require.NoError(t, err)

	assert.Equal(t, 12, table.Total())
	require.Equal(t, []StratumKey{
		{DayOfWeek: "Monday", TimeOfDay: "Morning"},
		{DayOfWeek: "Monday", TimeOfDay: "Evening"},
		{DayOfWeek: "Sunday", TimeOfDay: "Night"},
	}, table.Order)

	morning := table.Stats[StratumKey{DayOfWeek: "Monday", TimeOfDay: "Morning"}]
	assert.Equal(t, 6, morning.Count)
	assert.InDelta(t, 0.5, morning.Proportion, 1e-12)
	assert.InDelta(t, stats.StdDev([]float64{100, 200, 300, 400, 500, 600}), morning.StdDev, 1e-12)

	evening := table.Stats[StratumKey{DayOfWeek: "Monday", TimeOfDay: "Evening"}]
	assert.Equal(t, 4, evening.Count)
	assert.InDelta(t, 4.0/12.0, evening.Proportion, 1e-12)

	// Proportions cover the whole population
	var sum float64
	for _, key := range table.Order {
		sum += table.Stats[key].Proportion
	}
	assert.InDelta(t, 1.0, sum, 1e-12)

	assert.Equal(t, []float64{10, 20, 30, 40}, table.Durations(StratumKey{DayOfWeek: "Monday", TimeOfDay: "Evening"}))
}

func TestBuildStratumTableRejectsUnknownLabels(t *testing.T) {
	_, err := BuildStratumTable(popOf("Funday", "Morning", 100))
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = BuildStratumTable(popOf("Monday", "Brunch", 100))
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestBuildStratumTableRejectsEmptyPopulation(t *testing.T) {
	_, err := BuildStratumTable(nil)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestStratumKeyString(t *testing.T) {
	key := StratumKey{DayOfWeek: "Friday", TimeOfDay: "Night"}
	assert.Equal(t, "Friday/Night", key.String())
}
