package services

import (
	"context"
	"fmt"

	"github.com/bhumicrm/bhumi-api/internal/engine"
	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
)

type KisanPaymentService struct {
	repo            repository.KisanPaymentRepository
	colonyRepo      repository.ColonyRepository
	notificationSvc *NotificationService
	auditSvc        *AuditService
}

func NewKisanPaymentService(repo repository.KisanPaymentRepository, colonyRepo repository.ColonyRepository, notificationSvc *NotificationService, auditSvc *AuditService) *KisanPaymentService {
	return &KisanPaymentService{
		repo:            repo,
		colonyRepo:      colonyRepo,
		notificationSvc: notificationSvc,
		auditSvc:        auditSvc,
	}
}

func (s *KisanPaymentService) FindByID(ctx context.Context, id uint) (*models.KisanPayment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *KisanPaymentService) List(ctx context.Context, query *repository.ListQuery) ([]models.KisanPayment, int64, error) {
	return s.repo.List(ctx, query)
}

// Create records a kisan payment. The creation timestamp becomes the entry's
// permanent position in the colony ledger; a payment is never repositioned.
func (s *KisanPaymentService) Create(ctx context.Context, payment *models.KisanPayment) error {
	colony, err := s.colonyRepo.FindByID(ctx, payment.ColonyID)
	if err != nil {
		return fmt.Errorf("colony %d not found: %w", payment.ColonyID, err)
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return fmt.Errorf("failed to record kisan payment: %w", err)
	}

	// Alert admins when this payment tips the colony over its total area.
	ledger, err := s.Ledger(ctx, colony.ID)
	if err == nil && ledger.Result.CurrentRemainingGaj < 0 {
		title := "Land over-allocated"
		message := fmt.Sprintf("Colony %s has %.2f gaj remaining after payment of ₹%.2f", colony.Name, ledger.Result.CurrentRemainingGaj, payment.Rupees)
		s.notificationSvc.NotifyAdmins(ctx, title, message, models.NotificationTypeLandOverAllocated)
	}
	return nil
}

// Update edits a payment's amount, land or note. The creation timestamp is
// immutable, so the entry keeps its ledger position; the running figures
// downstream of it simply come out different on the next read.
func (s *KisanPaymentService) Update(ctx context.Context, payment *models.KisanPayment) error {
	existing, err := s.repo.FindByID(ctx, payment.ID)
	if err != nil {
		return err
	}

	payment.ColonyID = existing.ColonyID
	payment.CreatedAt = existing.CreatedAt
	if payment.RegPlotNo == nil {
		payment.RegPlotNo = existing.RegPlotNo
	}
	if payment.Note == nil {
		payment.Note = existing.Note
	}

	return s.repo.Update(ctx, payment)
}

func (s *KisanPaymentService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// LedgerView is the derived payment ledger for one colony: each payment with
// its running remaining-land figure, plus the colony-level totals.
type LedgerView struct {
	ColonyID uint                          `json:"colony_id"`
	Result   engine.LedgerResult           `json:"summary"`
	Rows     []models.KisanPaymentResponse `json:"rows"`
}

// Ledger recomputes the full payment ledger for a colony. Entries walk in
// creation order regardless of how the caller stored or edited them, and the
// remaining-land series is derived fresh on every call.
func (s *KisanPaymentService) Ledger(ctx context.Context, colonyID uint) (*LedgerView, error) {
	colony, err := s.colonyRepo.FindByIDWithDetails(ctx, colonyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load colony %d: %w", colonyID, err)
	}

	payments, err := s.repo.FindByColony(ctx, colonyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for colony %d: %w", colonyID, err)
	}

	result := engine.ComputeLedger(colony.ToParcel(), models.KisanPaymentEvents(payments))

	byID := make(map[uint]*models.KisanPayment, len(payments))
	for i := range payments {
		byID[payments[i].ID] = &payments[i]
	}

	rows := make([]models.KisanPaymentResponse, 0, len(result.Rows))
	for _, row := range result.Rows {
		payment, ok := byID[row.Event.ID]
		if !ok {
			continue
		}
		rows = append(rows, payment.ToResponse(row))
	}

	return &LedgerView{
		ColonyID: colonyID,
		Result:   result,
		Rows:     rows,
	}, nil
}
