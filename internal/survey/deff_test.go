package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectedSampleSize(t *testing.T) {
	// deff = 10/8 = 1.25 rescales 1000 to ceil(1250) = 1250
	assert.InDelta(t, 1.25, DesignEffect(10, 8), 1e-12)
	assert.Equal(t, 1250, CorrectedSampleSize(10, 8, 1000))
}

func TestCorrectedSampleSizeIdentity(t *testing.T) {
	// deff of exactly 1 is a no-op rescale
	for _, n := range []int{1, 37, 1000, 25000} {
		assert.Equal(t, n, CorrectedSampleSize(12.5, 12.5, n))
	}
}

func TestCorrectedSampleSizeRoundsUp(t *testing.T) {
	// deff = 1.0625 on 1000 needs 1063 samples, not 1062
	assert.Equal(t, 1063, CorrectedSampleSize(8.5, 8, 1000))
}

func TestCorrectedSampleSizeShrinksForEfficientDesigns(t *testing.T) {
	// A design beating SRS (deff < 1) needs fewer samples
	assert.Equal(t, 750, CorrectedSampleSize(6, 8, 1000))
}
