package survey

import "fmt"

// DesignType names one of the compared sampling designs
type DesignType string

const (
	DesignSRS          DesignType = "SRS"
	DesignProportional DesignType = "PROPORTIONAL"
	DesignNeyman       DesignType = "NEYMAN"
)

// DesignSpec binds a design type to its sampling parameters. SRS uses
// SampleSize; the stratified designs consume a prebuilt allocation plan.
type DesignSpec struct {
	Type       DesignType
	SampleSize int
	Plan       *AllocationPlan
}

// ComparisonRow is one (design, seed) repetition of the coverage study
type ComparisonRow struct {
	Design   DesignType `json:"estimateType"`
	Seed     int64      `json:"seedValue"`
	Mean     float64    `json:"meanEstimate"`
	SE       float64    `json:"se"`
	Lower    float64    `json:"lci"`
	Upper    float64    `json:"uci"`
	TrueMean float64    `json:"trueMeanValue"`
	Covered  bool       `json:"withinConfLim"`
}

// Harness repeats estimators across seeds and tabulates whether each
// confidence interval covers the true population mean.
type Harness struct {
	pop      Population
	table    *StratumTable
	trueMean float64
}

// NewHarness builds a harness over an already-filtered population and its
// stratum table. The true mean is computed once, up front.
func NewHarness(pop Population, table *StratumTable) *Harness {
	return &Harness{
		pop:      pop,
		table:    table,
		trueMean: pop.TrueMean(),
	}
}

// TrueMean returns the reference mean coverage is checked against
func (h *Harness) TrueMean() float64 {
	return h.trueMean
}

// Run produces one ComparisonRow per (design, seed) pair in design-major,
// seed-minor order. The first estimator failure aborts the whole run; an
// analysis with a broken design has nothing useful to report partially.
func (h *Harness) Run(designs []DesignSpec, seeds []int64) ([]ComparisonRow, error) {
	if len(designs) == 0 {
		return nil, fmt.Errorf("%w: no designs given", ErrConfiguration)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: no seeds given", ErrConfiguration)
	}

	rows := make([]ComparisonRow, 0, len(designs)*len(seeds))
	for _, design := range designs {
		for _, seed := range seeds {
			result, err := h.estimate(design, seed)
			if err != nil {
				return nil, fmt.Errorf("design %s seed %d: %w", design.Type, seed, err)
			}
			rows = append(rows, ComparisonRow{
				Design:   design.Type,
				Seed:     seed,
				Mean:     result.Mean,
				SE:       result.SE,
				Lower:    result.Lower,
				Upper:    result.Upper,
				TrueMean: h.trueMean,
				Covered:  result.Covers(h.trueMean),
			})
		}
	}
	return rows, nil
}

func (h *Harness) estimate(design DesignSpec, seed int64) (EstimateResult, error) {
	switch design.Type {
	case DesignSRS:
		return SRSEstimate(h.pop, seed, design.SampleSize)
	case DesignProportional, DesignNeyman:
		if design.Plan == nil {
			return EstimateResult{}, fmt.Errorf("%w: design %s has no allocation plan", ErrConfiguration, design.Type)
		}
		return h.table.Estimate(seed, design.Plan)
	default:
		return EstimateResult{}, fmt.Errorf("%w: unknown design type %q", ErrConfiguration, design.Type)
	}
}
