package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func harnessFixture(t *testing.T) (*Harness, *StratumTable) {
	t.Helper()
	var pop Population
	// Both strata carry real spread so Neyman allocates at least one
	// sample to each
	pop = append(pop, popOf("Monday", "Morning", 100, 200, 300, 400, 500, 600)...)
	pop = append(pop, popOf("Monday", "Evening", 0, 500, 1000, 1500)...)
	table, err := BuildStratumTable(pop)
	require.NoError(t, err)
	return NewHarness(pop, table), table
}

func TestHarnessRunOrderAndCoverage(t *testing.T) {
	harness, table := harnessFixture(t)

	propPlan, err := ProportionalPlan(table, 5, 0)
	require.NoError(t, err)
	neymanPlan, err := NeymanPlan(table, 5)
	require.NoError(t, err)

	designs := []DesignSpec{
		{Type: DesignSRS, SampleSize: 4},
		{Type: DesignProportional, Plan: propPlan},
		{Type: DesignNeyman, Plan: neymanPlan},
	}
	seeds := []int64{11, 22, 33}

	rows, err := harness.Run(designs, seeds)
	require.NoError(t, err)
	require.Len(t, rows, 9)

	// Design-major, seed-minor ordering
	for i, row := range rows {
		assert.Equal(t, designs[i/3].Type, row.Design, "row %d", i)
		assert.Equal(t, seeds[i%3], row.Seed, "row %d", i)
	}

	trueMean := harness.TrueMean()
	for _, row := range rows {
		assert.Equal(t, trueMean, row.TrueMean)
		assert.Equal(t, row.Lower <= trueMean && trueMean <= row.Upper, row.Covered)
		assert.InDelta(t, 2*1.96*row.SE, row.Upper-row.Lower, 1e-9)
	}
}

func TestHarnessRowsAreReproducible(t *testing.T) {
	harness, table := harnessFixture(t)

	plan, err := ProportionalPlan(table, 5, 0)
	require.NoError(t, err)
	designs := []DesignSpec{{Type: DesignProportional, Plan: plan}}

	first, err := harness.Run(designs, []int64{5, 6})
	require.NoError(t, err)
	second, err := harness.Run(designs, []int64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHarnessAbortsOnFirstFailure(t *testing.T) {
	harness, _ := harnessFixture(t)

	designs := []DesignSpec{
		{Type: DesignSRS, SampleSize: 4},
		{Type: DesignSRS, SampleSize: 100}, // larger than the population
	}

	rows, err := harness.Run(designs, []int64{1})
	require.ErrorIs(t, err, ErrInsufficientPopulation)
	assert.Nil(t, rows)
}

func TestHarnessValidatesInputs(t *testing.T) {
	harness, _ := harnessFixture(t)

	_, err := harness.Run(nil, []int64{1})
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = harness.Run([]DesignSpec{{Type: DesignSRS, SampleSize: 2}}, nil)
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = harness.Run([]DesignSpec{{Type: "CLUSTER", SampleSize: 2}}, []int64{1})
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = harness.Run([]DesignSpec{{Type: DesignNeyman}}, []int64{1})
	require.ErrorIs(t, err, ErrConfiguration)
}
