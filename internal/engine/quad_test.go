package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadAreaSqft(t *testing.T) {
	// Rectangular park: averaging degenerates to length * width
	assert.Equal(t, 3000.0, QuadAreaSqft(100, 100, 30, 30))

	// Trapezoid: (100+80)/2 * (30+30)/2 = 90 * 30
	assert.Equal(t, 2700.0, QuadAreaSqft(100, 80, 30, 30))
}

func TestQuadAreaAllSidesBlank(t *testing.T) {
	assert.Equal(t, 0.0, QuadAreaSqft(0, 0, 0, 0))
}

func TestQuadAreaPartialSidesUseZero(t *testing.T) {
	// Missing sides enter the average as zero; the record stays computable
	// even though the figure under-counts. This is intentional.
	assert.Equal(t, 750.0, QuadAreaSqft(100, 0, 30, 0))
}

func TestQuadAreaNonFiniteSides(t *testing.T) {
	assert.Equal(t, 0.0, QuadAreaSqft(math.NaN(), math.Inf(1), math.NaN(), math.Inf(-1)))
	assert.Equal(t, 450.0, QuadAreaSqft(60, math.NaN(), 30, 0))
}

func TestQuadAreaGaj(t *testing.T) {
	assert.InDelta(t, 333.33, QuadAreaGaj(100, 100, 30, 30), 0.01)
}
