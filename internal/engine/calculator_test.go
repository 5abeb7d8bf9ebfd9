package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBasicLayout(t *testing.T) {
	result := Calculate(CalculatorInput{
		TotalAreaGaj:     1000,
		PurchaseCost:     4500000,
		DesiredProfitPct: 20,
		Roads:            []Road{{LengthFt: 300, WidthFt: 30}}, // 9000 sqft = 1000 gaj
	})

	// The road consumes the entire parcel; nothing is salable.
	assert.Equal(t, 1000.0, result.RoadAreaGaj)
	assert.Equal(t, 0.0, result.SalableAreaGaj)
	assert.Equal(t, 0.0, result.SuggestedPricePerGaj)
}

func TestCalculateProfitMargin(t *testing.T) {
	result := Calculate(CalculatorInput{
		TotalAreaGaj:     1000,
		PurchaseCost:     4000000,
		DesiredProfitPct: 25,
		Roads:            []Road{{LengthFt: 150, WidthFt: 12}}, // 1800 sqft = 200 gaj
	})

	assert.Equal(t, 200.0, result.RoadAreaGaj)
	assert.Equal(t, 800.0, result.SalableAreaGaj)
	assert.Equal(t, 5000.0, result.EffectiveCostPerGaj)
	assert.Equal(t, 6250.0, result.SuggestedPricePerGaj)
	assert.Equal(t, 5000000.0, result.ProjectedRevenue)
	assert.Equal(t, 1000000.0, result.ProjectedProfit)
}

func TestCalculateAcceptsSqftTotal(t *testing.T) {
	result := Calculate(CalculatorInput{TotalAreaSqft: 9000})
	assert.Equal(t, 1000.0, result.TotalAreaGaj)
}

func TestCalculateIsOrderIndependent(t *testing.T) {
	roads := []Road{{LengthFt: 100, WidthFt: 20}, {LengthFt: 50, WidthFt: 10}}
	reversed := []Road{roads[1], roads[0]}

	a := Calculate(CalculatorInput{TotalAreaGaj: 1000, PurchaseCost: 100000, Roads: roads})
	b := Calculate(CalculatorInput{TotalAreaGaj: 1000, PurchaseCost: 100000, Roads: reversed})

	assert.Equal(t, a, b)
}

func TestCalculateZeroCost(t *testing.T) {
	result := Calculate(CalculatorInput{TotalAreaGaj: 500, DesiredProfitPct: 30})
	assert.Equal(t, 0.0, result.EffectiveCostPerGaj)
	assert.Equal(t, 0.0, result.SuggestedPricePerGaj)
}
