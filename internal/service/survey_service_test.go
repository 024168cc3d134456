package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mhzhou/bikeshare-survey-go/internal/database"
	"github.com/mhzhou/bikeshare-survey-go/internal/models"
	"github.com/mhzhou/bikeshare-survey-go/internal/repository"
	"github.com/mhzhou/bikeshare-survey-go/internal/survey"
)

const (
	mondayMidnightUTC = int64(1704067200) // 2024-01-01 00:00:00 UTC, a Monday
	hour              = int64(3600)
)

func testServices(t *testing.T) (*TripService, *SurveyService) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.InitSchema(db))

	repo := repository.NewTripRepository(db)
	return NewTripService(repo), NewSurveyService(repo, 86400, 4)
}

// seedPopulation imports 8 Monday/Morning trips, 4 Tuesday/Evening trips
// and one over-ceiling outlier
func seedPopulation(t *testing.T, trips *TripService) {
	t.Helper()

	var imports []models.TripImport
	monMorning := mondayMidnightUTC + 8*hour
	for i := int64(1); i <= 8; i++ {
		imports = append(imports, models.TripImport{
			StartTime: monMorning,
			EndTime:   monMorning + i*600,
		})
	}
	tueEvening := mondayMidnightUTC + 24*hour + 18*hour
	for i := int64(1); i <= 4; i++ {
		imports = append(imports, models.TripImport{
			StartTime: tueEvening,
			EndTime:   tueEvening + 300 + (i-1)*600,
		})
	}
	// Outlier above the duration ceiling
	imports = append(imports, models.TripImport{
		StartTime: monMorning,
		EndTime:   monMorning + 90000,
	})

	count, err := trips.ImportTrips(imports)
	require.NoError(t, err)
	require.Equal(t, 13, count)
}

func TestImportDerivesLabelsAndSummaryFiltersOutliers(t *testing.T) {
	trips, surveys := testServices(t)
	seedPopulation(t, trips)

	listed, total, err := trips.GetTrips(models.TripFilter{DayOfWeek: "Monday", TimeOfDay: "Morning"})
	require.NoError(t, err)
	assert.EqualValues(t, 9, total) // 8 regular + the outlier
	for _, trip := range listed {
		assert.Equal(t, "Monday", trip.DayOfWeek)
		assert.Equal(t, "Morning", trip.TimeOfDay)
	}

	summary, err := surveys.GetPopulationSummary()
	require.NoError(t, err)
	assert.Equal(t, 12, summary.Count) // ceiling drops the outlier
	assert.Equal(t, 86400.0, summary.CeilingSeconds)
	assert.InDelta(t, 2200.0, summary.Mean, 1e-9) // (600+...+4800 + 300+900+1500+2100) / 12
	assert.Equal(t, 300.0, summary.Min)
	assert.Equal(t, 4800.0, summary.Max)
}

func TestGetStrata(t *testing.T) {
	trips, surveys := testServices(t)
	seedPopulation(t, trips)

	rows, err := surveys.GetStrata()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Monday", rows[0].DayOfWeek)
	assert.Equal(t, "Morning", rows[0].TimeOfDay)
	assert.Equal(t, 8, rows[0].Count)
	assert.InDelta(t, 8.0/12.0, rows[0].Proportion, 1e-12)

	assert.Equal(t, "Tuesday", rows[1].DayOfWeek)
	assert.Equal(t, "Evening", rows[1].TimeOfDay)
	assert.Equal(t, 4, rows[1].Count)
}

func TestBuildAllocation(t *testing.T) {
	trips, surveys := testServices(t)
	seedPopulation(t, trips)

	rows, err := surveys.BuildAllocation(models.AllocationRequest{
		Policy:      string(survey.PolicyProportional),
		TargetTotal: 5,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].SampleSize)
	assert.Equal(t, 2, rows[1].SampleSize)

	_, err = surveys.BuildAllocation(models.AllocationRequest{Policy: "QUOTA", TargetTotal: 5})
	require.ErrorIs(t, err, survey.ErrConfiguration)
}

func TestEstimateDesigns(t *testing.T) {
	trips, surveys := testServices(t)
	seedPopulation(t, trips)

	seed := int64(7)
	srs, err := surveys.Estimate(models.EstimateRequest{Design: "SRS", Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, 4, srs.SampleSize) // configured default

	prop, err := surveys.Estimate(models.EstimateRequest{Design: "PROPORTIONAL", Seed: &seed, TargetTotal: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, prop.SampleSize)

	neyman, err := surveys.Estimate(models.EstimateRequest{Design: "NEYMAN", Seed: &seed, TargetTotal: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, neyman.SampleSize)

	// Same seed reproduces bit-identically
	again, err := surveys.Estimate(models.EstimateRequest{Design: "PROPORTIONAL", Seed: &seed, TargetTotal: 5})
	require.NoError(t, err)
	assert.Equal(t, prop, again)

	_, err = surveys.Estimate(models.EstimateRequest{Design: "CLUSTER", Seed: &seed})
	require.ErrorIs(t, err, survey.ErrConfiguration)
}

func TestCompare(t *testing.T) {
	trips, surveys := testServices(t)
	seedPopulation(t, trips)

	rows, err := surveys.Compare(models.ComparisonRequest{
		Designs:     []string{"SRS", "PROPORTIONAL", "NEYMAN"},
		Seeds:       []int64{1, 2},
		TargetTotal: 5,
	})
	require.NoError(t, err)
	require.Len(t, rows, 6)

	wantDesigns := []survey.DesignType{
		survey.DesignSRS, survey.DesignSRS,
		survey.DesignProportional, survey.DesignProportional,
		survey.DesignNeyman, survey.DesignNeyman,
	}
	for i, row := range rows {
		assert.Equal(t, wantDesigns[i], row.Design)
		assert.InDelta(t, 2200.0, row.TrueMean, 1e-9)
		assert.Equal(t, row.Lower <= row.TrueMean && row.TrueMean <= row.Upper, row.Covered)
	}
}

func TestCorrectSampleSize(t *testing.T) {
	_, surveys := testServices(t)

	resp := surveys.CorrectSampleSize(models.CorrectionRequest{
		ComplexSE:      10,
		SRSSE:          8,
		SRSTargetTotal: 1000,
	})
	assert.InDelta(t, 1.25, resp.DesignEffect, 1e-12)
	assert.Equal(t, 1250, resp.NewTargetTotal)
}
