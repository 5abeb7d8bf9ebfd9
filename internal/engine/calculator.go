package engine

// CalculatorInput is a hypothetical layout entered by an operator: total land,
// proposed roads and parks, the purchase cost and a desired profit margin.
// Nothing here is read from or written to stored records; the calculator is a
// what-if preview with the same math as the land ledger.
type CalculatorInput struct {
	TotalAreaSqft    float64 // used when TotalAreaGaj is 0
	TotalAreaGaj     float64
	PurchaseCost     float64
	DesiredProfitPct float64
	Roads            []Road
	Amenities        []Amenity
}

// CalculatorResult is the derived preview.
type CalculatorResult struct {
	TotalAreaGaj         float64 `json:"total_area_gaj"`
	RoadAreaGaj          float64 `json:"road_area_gaj"`
	AmenityAreaGaj       float64 `json:"amenity_area_gaj"`
	UsedAreaGaj          float64 `json:"used_area_gaj"`
	SalableAreaGaj       float64 `json:"salable_area_gaj"`
	EffectiveCostPerGaj  float64 `json:"effective_cost_per_gaj"`
	SuggestedPricePerGaj float64 `json:"suggested_price_per_gaj"`
	ProjectedRevenue     float64 `json:"projected_revenue"`
	ProjectedProfit      float64 `json:"projected_profit"`
}

// Calculate derives the salable area and pricing preview for a hypothetical
// layout. Unlike RemainingLandGaj, the salable area here IS floored at zero:
// a proposed layout that over-allocates simply has nothing to sell, and the
// downstream cost-per-gaj division treats that as the degenerate case. The
// two call sites intentionally differ; keep both behaviors.
func Calculate(in CalculatorInput) CalculatorResult {
	totalGaj := sanitize(in.TotalAreaGaj)
	if totalGaj == 0 {
		totalGaj = SqftToGaj(in.TotalAreaSqft)
	}

	var roadGaj, amenityGaj float64
	for _, r := range in.Roads {
		roadGaj += r.AreaGaj()
	}
	for _, a := range in.Amenities {
		amenityGaj += a.EffectiveAreaGaj()
	}
	usedGaj := sanitize(roadGaj + amenityGaj)

	salable := totalGaj - usedGaj
	if salable < 0 {
		salable = 0
	}

	var costPerGaj, sellPerGaj float64
	if salable > 0 {
		costPerGaj = sanitize(sanitize(in.PurchaseCost) / salable)
		sellPerGaj = sanitize(costPerGaj * (1 + sanitize(in.DesiredProfitPct)/100))
	}

	revenue := sanitize(sellPerGaj * salable)

	return CalculatorResult{
		TotalAreaGaj:         totalGaj,
		RoadAreaGaj:          sanitize(roadGaj),
		AmenityAreaGaj:       sanitize(amenityGaj),
		UsedAreaGaj:          usedGaj,
		SalableAreaGaj:       salable,
		EffectiveCostPerGaj:  costPerGaj,
		SuggestedPricePerGaj: sellPerGaj,
		ProjectedRevenue:     revenue,
		ProjectedProfit:      revenue - sanitize(in.PurchaseCost),
	}
}
