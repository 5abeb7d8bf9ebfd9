package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestRoadAreaGaj(t *testing.T) {
	road := Road{LengthFt: 100, WidthFt: 30}
	assert.Equal(t, 3000.0, road.AreaSqft())
	assert.InDelta(t, 333.33, road.AreaGaj(), 0.01)
}

func TestAmenityStoredAreaTakesPrecedence(t *testing.T) {
	// Record carries both a stored figure and raw sides; the stored figure
	// wins and the sides are ignored.
	amenity := Amenity{
		FrontFt: 90, BackFt: 90, LeftFt: 90, RightFt: 90,
		AreaGaj: floatPtr(50),
	}
	assert.Equal(t, 50.0, amenity.EffectiveAreaGaj())
}

func TestAmenityFallsBackToSides(t *testing.T) {
	amenity := Amenity{FrontFt: 90, BackFt: 90, LeftFt: 90, RightFt: 90}
	assert.Equal(t, 900.0, amenity.EffectiveAreaGaj())
}

func TestUsedAreaGaj(t *testing.T) {
	parcel := Parcel{
		TotalAreaGaj: 1000,
		Roads:        []Road{{LengthFt: 100, WidthFt: 30}, {LengthFt: 90, WidthFt: 30}},
		Amenities:    []Amenity{{AreaGaj: floatPtr(40)}},
	}
	// 3000/9 + 2700/9 + 40
	assert.InDelta(t, 673.33, UsedAreaGaj(parcel), 0.01)
}

func TestRemainingLandGajIsNotClamped(t *testing.T) {
	parcel := Parcel{
		TotalAreaGaj: 100,
		Amenities:    []Amenity{{AreaGaj: floatPtr(150)}},
	}
	// Over-allocation must surface as a negative figure, never 0.
	assert.Equal(t, -50.0, RemainingLandGaj(parcel, 0))

	// The calculator's salable area for the same inputs DOES floor at zero.
	result := Calculate(CalculatorInput{
		TotalAreaGaj: 100,
		Amenities:    []Amenity{{AreaGaj: floatPtr(150)}},
	})
	assert.Equal(t, 0.0, result.SalableAreaGaj)
}

func TestRemainingLandGajSubtractsSold(t *testing.T) {
	parcel := Parcel{TotalAreaGaj: 1000, Roads: []Road{{LengthFt: 300, WidthFt: 30}}}
	assert.Equal(t, 1000.0-1000.0-250.0, RemainingLandGaj(parcel, 250))
}
