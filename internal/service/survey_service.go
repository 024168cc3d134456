package service

import (
	"fmt"

	"github.com/mhzhou/bikeshare-survey-go/internal/models"
	"github.com/mhzhou/bikeshare-survey-go/internal/repository"
	"github.com/mhzhou/bikeshare-survey-go/internal/stats"
	"github.com/mhzhou/bikeshare-survey-go/internal/survey"
)

// SurveyService runs the survey-sampling designs over the trip population.
// The population and stratum table are rebuilt per call: estimators are
// synchronous in-memory computations and the trip table can change between
// requests.
type SurveyService struct {
	tripRepo        *repository.TripRepository
	durationCeiling float64
	srsSampleSize   int
}

// NewSurveyService creates a new survey service
func NewSurveyService(tripRepo *repository.TripRepository, durationCeiling float64, srsSampleSize int) *SurveyService {
	return &SurveyService{
		tripRepo:        tripRepo,
		durationCeiling: durationCeiling,
		srsSampleSize:   srsSampleSize,
	}
}

// loadPopulation loads all trips and applies the outlier ceiling
func (s *SurveyService) loadPopulation() (survey.Population, error) {
	pop, err := s.tripRepo.GetPopulation()
	if err != nil {
		return nil, fmt.Errorf("failed to load population: %w", err)
	}
	filtered := survey.FilterCeiling(pop, s.durationCeiling)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: no trips below the duration ceiling", survey.ErrConfiguration)
	}
	return filtered, nil
}

// GetPopulationSummary describes the filtered population
func (s *SurveyService) GetPopulationSummary() (*models.PopulationSummary, error) {
	pop, err := s.loadPopulation()
	if err != nil {
		return nil, err
	}

	durations := pop.Durations()
	return &models.PopulationSummary{
		Count:          len(pop),
		CeilingSeconds: s.durationCeiling,
		Mean:           stats.Mean(durations),
		Median:         stats.Median(durations),
		StdDev:         stats.StdDev(durations),
		Min:            stats.Min(durations),
		Max:            stats.Max(durations),
	}, nil
}

// GetStrata returns the stratum table as report rows, in canonical order
func (s *SurveyService) GetStrata() ([]models.StratumRow, error) {
	_, table, err := s.loadTable()
	if err != nil {
		return nil, err
	}

	rows := make([]models.StratumRow, 0, len(table.Order))
	for _, key := range table.Order {
		st := table.Stats[key]
		rows = append(rows, models.StratumRow{
			DayOfWeek:  key.DayOfWeek,
			TimeOfDay:  key.TimeOfDay,
			Count:      st.Count,
			Proportion: st.Proportion,
			StdDev:     st.StdDev,
		})
	}
	return rows, nil
}

// BuildAllocation computes an allocation plan without drawing any sample
func (s *SurveyService) BuildAllocation(req models.AllocationRequest) ([]models.AllocationRow, error) {
	_, table, err := s.loadTable()
	if err != nil {
		return nil, err
	}

	plan, err := s.buildPlan(table, survey.AllocationPolicy(req.Policy), req.TargetTotal, req.Adjustment)
	if err != nil {
		return nil, err
	}

	rows := make([]models.AllocationRow, 0, len(table.Order))
	for _, key := range table.Order {
		rows = append(rows, models.AllocationRow{
			DayOfWeek:  key.DayOfWeek,
			TimeOfDay:  key.TimeOfDay,
			SampleSize: plan.Counts[key],
		})
	}
	return rows, nil
}

// Estimate runs a single estimator for the requested design and seed
func (s *SurveyService) Estimate(req models.EstimateRequest) (survey.EstimateResult, error) {
	pop, table, err := s.loadTable()
	if err != nil {
		return survey.EstimateResult{}, err
	}

	switch survey.DesignType(req.Design) {
	case survey.DesignSRS:
		size := req.SampleSize
		if size == 0 {
			size = s.srsSampleSize
		}
		return survey.SRSEstimate(pop, *req.Seed, size)
	case survey.DesignProportional:
		plan, err := survey.ProportionalPlan(table, req.TargetTotal, req.Adjustment)
		if err != nil {
			return survey.EstimateResult{}, err
		}
		return table.Estimate(*req.Seed, plan)
	case survey.DesignNeyman:
		plan, err := survey.NeymanPlan(table, req.TargetTotal)
		if err != nil {
			return survey.EstimateResult{}, err
		}
		return table.Estimate(*req.Seed, plan)
	default:
		return survey.EstimateResult{}, fmt.Errorf("%w: unknown design %q", survey.ErrConfiguration, req.Design)
	}
}

// CorrectSampleSize rescales an SRS target total by the observed design effect
func (s *SurveyService) CorrectSampleSize(req models.CorrectionRequest) models.CorrectionResponse {
	return models.CorrectionResponse{
		DesignEffect:   survey.DesignEffect(req.ComplexSE, req.SRSSE),
		NewTargetTotal: survey.CorrectedSampleSize(req.ComplexSE, req.SRSSE, req.SRSTargetTotal),
	}
}

// Compare runs the repetition harness across designs and seeds
func (s *SurveyService) Compare(req models.ComparisonRequest) ([]survey.ComparisonRow, error) {
	pop, table, err := s.loadTable()
	if err != nil {
		return nil, err
	}

	designs := make([]survey.DesignSpec, 0, len(req.Designs))
	for _, name := range req.Designs {
		switch survey.DesignType(name) {
		case survey.DesignSRS:
			size := req.SRSSampleSize
			if size == 0 {
				size = s.srsSampleSize
			}
			designs = append(designs, survey.DesignSpec{Type: survey.DesignSRS, SampleSize: size})
		case survey.DesignProportional:
			plan, err := survey.ProportionalPlan(table, req.TargetTotal, req.Adjustment)
			if err != nil {
				return nil, err
			}
			designs = append(designs, survey.DesignSpec{Type: survey.DesignProportional, Plan: plan})
		case survey.DesignNeyman:
			plan, err := survey.NeymanPlan(table, req.TargetTotal)
			if err != nil {
				return nil, err
			}
			designs = append(designs, survey.DesignSpec{Type: survey.DesignNeyman, Plan: plan})
		default:
			return nil, fmt.Errorf("%w: unknown design %q", survey.ErrConfiguration, name)
		}
	}

	harness := survey.NewHarness(pop, table)
	return harness.Run(designs, req.Seeds)
}

func (s *SurveyService) loadTable() (survey.Population, *survey.StratumTable, error) {
	pop, err := s.loadPopulation()
	if err != nil {
		return nil, nil, err
	}
	table, err := survey.BuildStratumTable(pop)
	if err != nil {
		return nil, nil, err
	}
	return pop, table, nil
}

func (s *SurveyService) buildPlan(table *survey.StratumTable, policy survey.AllocationPolicy, targetTotal int, adjustment float64) (*survey.AllocationPlan, error) {
	switch policy {
	case survey.PolicyProportional:
		return survey.ProportionalPlan(table, targetTotal, adjustment)
	case survey.PolicyNeyman:
		return survey.NeymanPlan(table, targetTotal)
	default:
		return nil, fmt.Errorf("%w: unknown allocation policy %q", survey.ErrConfiguration, policy)
	}
}
