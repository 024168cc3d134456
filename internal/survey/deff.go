package survey

import "math"

// DesignEffect returns the ratio of a complex design's standard error to
// the SRS standard error. Values near 1.0 mean the design gains or loses
// almost nothing versus simple random sampling.
func DesignEffect(complexSE, srsSE float64) float64 {
	return complexSE / srsSE
}

// CorrectedSampleSize rescales an SRS target total by the design effect so
// that the complex design reaches the same margin of error:
// newTotal = ceil(srsTargetTotal * deff).
func CorrectedSampleSize(complexSE, srsSE float64, srsTargetTotal int) int {
	deff := DesignEffect(complexSE, srsSE)
	return int(math.Ceil(float64(srsTargetTotal) * deff))
}
