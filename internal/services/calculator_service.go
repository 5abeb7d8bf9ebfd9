package services

import (
	"context"
	"fmt"

	"github.com/bhumicrm/bhumi-api/internal/engine"
	"github.com/bhumicrm/bhumi-api/internal/repository"
)

// CalculatorService runs what-if pricing scenarios. Nothing here touches
// stored figures; scenarios are computed and discarded.
type CalculatorService struct {
	colonyRepo repository.ColonyRepository
}

func NewCalculatorService(colonyRepo repository.ColonyRepository) *CalculatorService {
	return &CalculatorService{colonyRepo: colonyRepo}
}

// Calculate runs a scenario from caller-supplied inputs.
func (s *CalculatorService) Calculate(in engine.CalculatorInput) engine.CalculatorResult {
	return engine.Calculate(in)
}

// CalculateForColony prefills a scenario from a colony's stored area, cost
// and allocations, then applies the caller's desired profit percentage.
// Overrides in the input (non-zero area or cost, any roads or amenities)
// replace the stored values for this run only.
func (s *CalculatorService) CalculateForColony(ctx context.Context, colonyID uint, in engine.CalculatorInput) (*engine.CalculatorResult, error) {
	colony, err := s.colonyRepo.FindByIDWithDetails(ctx, colonyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load colony %d: %w", colonyID, err)
	}

	parcel := colony.ToParcel()
	if in.TotalAreaGaj == 0 && in.TotalAreaSqft == 0 {
		in.TotalAreaGaj = parcel.TotalAreaGaj
	}
	if in.PurchaseCost == 0 {
		in.PurchaseCost = parcel.PurchasePrice
	}
	if len(in.Roads) == 0 {
		in.Roads = parcel.Roads
	}
	if len(in.Amenities) == 0 {
		in.Amenities = parcel.Amenities
	}

	result := engine.Calculate(in)
	return &result, nil
}
