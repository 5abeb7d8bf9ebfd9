package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitRoundTrip(t *testing.T) {
	for _, x := range []float64{1, 9, 100, 333.33, 1250.7, 98765.4321} {
		assert.InEpsilon(t, x, SqftToGaj(GajToSqft(x)), 1e-9, "round trip for %v", x)
	}
	assert.Equal(t, 0.0, SqftToGaj(GajToSqft(0)))
}

func TestSqftToGaj(t *testing.T) {
	assert.Equal(t, 1.0, SqftToGaj(9))
	assert.Equal(t, 100.0, SqftToGaj(900))
	assert.InDelta(t, 333.33, SqftToGaj(3000), 0.01)
}

func TestPriceConversions(t *testing.T) {
	assert.Equal(t, 900.0, PricePerSqftToPerGaj(100))
	assert.Equal(t, 100.0, PricePerGajToPerSqft(900))
}

func TestNonFiniteInputsCoerceToZero(t *testing.T) {
	assert.Equal(t, 0.0, SqftToGaj(math.NaN()))
	assert.Equal(t, 0.0, GajToSqft(math.Inf(1)))
	assert.Equal(t, 0.0, PricePerSqftToPerGaj(math.Inf(-1)))
	assert.Equal(t, 0.0, PricePerGajToPerSqft(math.NaN()))
}
