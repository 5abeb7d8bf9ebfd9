package services

import (
	"context"
	"fmt"

	"github.com/bhumicrm/bhumi-api/internal/engine"
	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
	"github.com/google/uuid"
)

type ColonyService struct {
	repo            repository.ColonyRepository
	plotRepo        repository.PlotRepository
	notificationSvc *NotificationService
	auditSvc        *AuditService
}

func NewColonyService(repo repository.ColonyRepository, plotRepo repository.PlotRepository, notificationSvc *NotificationService, auditSvc *AuditService) *ColonyService {
	return &ColonyService{
		repo:            repo,
		plotRepo:        plotRepo,
		notificationSvc: notificationSvc,
		auditSvc:        auditSvc,
	}
}

func (s *ColonyService) FindByID(ctx context.Context, id uint) (*models.Colony, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByIDWithDetails loads the colony with every association the derived
// land figures need: roads, parks, plots and the payment sequence.
func (s *ColonyService) FindByIDWithDetails(ctx context.Context, id uint) (*models.Colony, error) {
	return s.repo.FindByIDWithDetails(ctx, id)
}

func (s *ColonyService) List(ctx context.Context, query *repository.ListQuery) ([]models.Colony, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *ColonyService) Create(ctx context.Context, colony *models.Colony) error {
	// Auto-generate GUID if not provided
	if colony.GUID == "" {
		colony.GUID = uuid.New().String()
	}
	if colony.Status == "" {
		colony.Status = models.ColonyStatusActive
	}
	return s.repo.Create(ctx, colony)
}

func (s *ColonyService) Update(ctx context.Context, colony *models.Colony) error {
	existing, err := s.repo.FindByID(ctx, colony.ID)
	if err != nil {
		return err
	}

	// Preserve fields not provided (zero/nil)
	if colony.GUID == "" {
		colony.GUID = existing.GUID
	}
	if colony.Status == "" {
		colony.Status = existing.Status
	}
	if colony.TotalAreaSqft == nil {
		colony.TotalAreaSqft = existing.TotalAreaSqft
	}
	if colony.TotalAreaGaj == nil {
		colony.TotalAreaGaj = existing.TotalAreaGaj
	}
	if colony.PurchasePrice == nil {
		colony.PurchasePrice = existing.PurchasePrice
	}
	if colony.Note == nil {
		colony.Note = existing.Note
	}

	return s.repo.Update(ctx, colony)
}

func (s *ColonyService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// LandSummary recomputes the colony's derived land position from current
// records. Nothing here is read from storage as a figure; every number is
// produced by the engine on this call.
func (s *ColonyService) LandSummary(ctx context.Context, id uint) (*models.ColonyResponse, error) {
	colony, err := s.repo.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load colony %d: %w", id, err)
	}
	resp := colony.ToResponse()
	return &resp, nil
}

// CheckOverAllocation scans active colonies for negative remaining land and
// notifies admins for each colony whose payments have outrun its total area.
func (s *ColonyService) CheckOverAllocation(ctx context.Context) error {
	colonies, err := s.repo.FindActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active colonies: %w", err)
	}

	for i := range colonies {
		colony := &colonies[i]
		ledger := engine.ComputeLedger(colony.ToParcel(), models.KisanPaymentEvents(colony.Payments))
		if ledger.CurrentRemainingGaj >= 0 {
			continue
		}

		title := "Land over-allocated"
		message := fmt.Sprintf("Colony %s has %.2f gaj remaining: kisan payments exceed its total area", colony.Name, ledger.CurrentRemainingGaj)
		if err := s.notificationSvc.NotifyAdmins(ctx, title, message, models.NotificationTypeLandOverAllocated); err != nil {
			return fmt.Errorf("failed to notify admins for colony %d: %w", colony.ID, err)
		}
	}
	return nil
}

type PropertyService struct {
	repo       repository.PropertyRepository
	colonyRepo repository.ColonyRepository
}

func NewPropertyService(repo repository.PropertyRepository, colonyRepo repository.ColonyRepository) *PropertyService {
	return &PropertyService{repo: repo, colonyRepo: colonyRepo}
}

func (s *PropertyService) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) FindByIDWithDetails(ctx context.Context, id uint) (*models.Property, error) {
	return s.repo.FindByIDWithDetails(ctx, id)
}

func (s *PropertyService) FindByColony(ctx context.Context, colonyID uint) ([]models.Property, error) {
	return s.repo.FindByColony(ctx, colonyID)
}

func (s *PropertyService) List(ctx context.Context, query *repository.ListQuery) ([]models.Property, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *PropertyService) Create(ctx context.Context, property *models.Property) error {
	if property.ColonyID != nil {
		if _, err := s.colonyRepo.FindByID(ctx, *property.ColonyID); err != nil {
			return fmt.Errorf("colony %d not found: %w", *property.ColonyID, err)
		}
	}
	if property.GUID == "" {
		property.GUID = uuid.New().String()
	}
	return s.repo.Create(ctx, property)
}

func (s *PropertyService) Update(ctx context.Context, property *models.Property) error {
	existing, err := s.repo.FindByID(ctx, property.ID)
	if err != nil {
		return err
	}

	if property.ColonyID == nil {
		property.ColonyID = existing.ColonyID
	}
	if property.GUID == "" {
		property.GUID = existing.GUID
	}
	if property.Status == "" {
		property.Status = existing.Status
	}
	if property.TotalAreaSqft == nil {
		property.TotalAreaSqft = existing.TotalAreaSqft
	}
	if property.TotalAreaGaj == nil {
		property.TotalAreaGaj = existing.TotalAreaGaj
	}
	if property.PurchasePrice == nil {
		property.PurchasePrice = existing.PurchasePrice
	}

	return s.repo.Update(ctx, property)
}

func (s *PropertyService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// LandSummary recomputes the property's derived land position.
func (s *PropertyService) LandSummary(ctx context.Context, id uint) (*models.PropertyResponse, error) {
	property, err := s.repo.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load property %d: %w", id, err)
	}
	resp := property.ToResponse()
	return &resp, nil
}
