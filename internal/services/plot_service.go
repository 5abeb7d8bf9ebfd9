package services

import (
	"context"
	"fmt"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
)

type PlotService struct {
	repo       repository.PlotRepository
	colonyRepo repository.ColonyRepository
}

func NewPlotService(repo repository.PlotRepository, colonyRepo repository.ColonyRepository) *PlotService {
	return &PlotService{repo: repo, colonyRepo: colonyRepo}
}

func (s *PlotService) FindByID(ctx context.Context, id uint) (*models.Plot, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PlotService) FindByColony(ctx context.Context, colonyID uint) ([]models.Plot, error) {
	return s.repo.FindByColony(ctx, colonyID)
}

func (s *PlotService) FindByProperty(ctx context.Context, propertyID uint) ([]models.Plot, error) {
	return s.repo.FindByProperty(ctx, propertyID)
}

func (s *PlotService) List(ctx context.Context, query *repository.ListQuery) ([]models.Plot, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *PlotService) Create(ctx context.Context, plot *models.Plot) error {
	if plot.ColonyID != nil {
		if _, err := s.colonyRepo.FindByID(ctx, *plot.ColonyID); err != nil {
			return fmt.Errorf("colony %d not found: %w", *plot.ColonyID, err)
		}
	}
	if plot.Status == "" {
		plot.Status = models.PlotStatusAvailable
	}
	return s.repo.Create(ctx, plot)
}

func (s *PlotService) Update(ctx context.Context, plot *models.Plot) error {
	existing, err := s.repo.FindByID(ctx, plot.ID)
	if err != nil {
		return err
	}

	// Preserve critical fields if not provided. Status changes go through
	// the state machine, never through a plain update.
	plot.Status = existing.Status
	if plot.ColonyID == nil {
		plot.ColonyID = existing.ColonyID
	}
	if plot.PropertyID == nil {
		plot.PropertyID = existing.PropertyID
	}
	if plot.PlotNo == "" {
		plot.PlotNo = existing.PlotNo
	}
	if plot.RegistrationNumber == nil {
		plot.RegistrationNumber = existing.RegistrationNumber
	}
	if plot.AreaSqft == nil {
		plot.AreaSqft = existing.AreaSqft
	}
	if plot.AreaGaj == nil {
		plot.AreaGaj = existing.AreaGaj
	}
	if plot.FinalPricePerGaj == nil {
		plot.FinalPricePerGaj = existing.FinalPricePerGaj
	}
	if plot.PaidAmount == nil {
		plot.PaidAmount = existing.PaidAmount
	}
	if plot.Note == nil {
		plot.Note = existing.Note
	}

	return s.repo.Update(ctx, plot)
}

func (s *PlotService) Delete(ctx context.Context, id uint) error {
	plot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if plot.Status != models.PlotStatusAvailable {
		return fmt.Errorf("%w: plot %s is %s", ErrInvalidState, plot.PlotNo, plot.Status)
	}
	return s.repo.Delete(ctx, id)
}
