package models

// StratumRow is one stratum of the population breakdown as reported by the
// API: count, proportion and within-stratum standard deviation of duration.
type StratumRow struct {
	DayOfWeek  string  `json:"dayOfWeek"`
	TimeOfDay  string  `json:"timeOfDay"`
	Count      int     `json:"count"`
	Proportion float64 `json:"proportion"`
	StdDev     float64 `json:"stdDev"`
}

// PopulationSummary describes the filtered population the estimators run on
type PopulationSummary struct {
	Count          int     `json:"count"`
	CeilingSeconds float64 `json:"ceilingSeconds"`
	Mean           float64 `json:"mean"`
	Median         float64 `json:"median"`
	StdDev         float64 `json:"stdDev"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
}

// EstimateRequest asks for a single estimator run.
// Design SRS uses sampleSize; PROPORTIONAL and NEYMAN use targetTotal, and
// PROPORTIONAL additionally honors the optional manual rounding adjustment
// (0 means plain largest-remainder allocation).
type EstimateRequest struct {
	Design      string  `json:"design" binding:"required"`
	Seed        *int64  `json:"seed" binding:"required"`
	SampleSize  int     `json:"sampleSize"`
	TargetTotal int     `json:"targetTotal"`
	Adjustment  float64 `json:"adjustment"`
}

// AllocationRequest asks for an allocation plan without drawing a sample
type AllocationRequest struct {
	Policy      string  `json:"policy" binding:"required"`
	TargetTotal int     `json:"targetTotal" binding:"required"`
	Adjustment  float64 `json:"adjustment"`
}

// AllocationRow is one stratum of a reported allocation plan
type AllocationRow struct {
	DayOfWeek  string `json:"dayOfWeek"`
	TimeOfDay  string `json:"timeOfDay"`
	SampleSize int    `json:"sampleSize"`
}

// CorrectionRequest asks for a design-effect corrected sample size
type CorrectionRequest struct {
	ComplexSE      float64 `json:"complexSe" binding:"required"`
	SRSSE          float64 `json:"srsSe" binding:"required"`
	SRSTargetTotal int     `json:"srsTargetTotal" binding:"required"`
}

// CorrectionResponse reports the design effect and rescaled total
type CorrectionResponse struct {
	DesignEffect   float64 `json:"designEffect"`
	NewTargetTotal int     `json:"newTargetTotal"`
}

// ComparisonRequest runs the repetition harness: every design in Designs is
// repeated once per seed, in design-major, seed-minor order.
type ComparisonRequest struct {
	Designs       []string `json:"designs" binding:"required"`
	Seeds         []int64  `json:"seeds" binding:"required"`
	SRSSampleSize int      `json:"srsSampleSize"`
	TargetTotal   int      `json:"targetTotal"`
	Adjustment    float64  `json:"adjustment"`
}
