package services

import (
	"context"
	"fmt"

	"github.com/bhumicrm/bhumi-api/internal/engine"
	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
	"github.com/bhumicrm/bhumi-api/internal/statemachine"
)

// CommissionService derives commission amounts from bookings and manages the
// payout lifecycle. Amounts are computed on every read and thrown away after
// render; only the pending/approved/paid status is ever persisted.
type CommissionService struct {
	bookingRepo     repository.BookingRepository
	commissionRepo  repository.CommissionRepository
	notificationSvc *NotificationService
	emailSvc        *EmailService
	auditSvc        *AuditService
	tdsRatePct      float64
}

func NewCommissionService(
	bookingRepo repository.BookingRepository,
	commissionRepo repository.CommissionRepository,
	notificationSvc *NotificationService,
	emailSvc *EmailService,
	auditSvc *AuditService,
	tdsRatePct float64,
) *CommissionService {
	if tdsRatePct == 0 {
		tdsRatePct = engine.DefaultTDSRatePct
	}
	return &CommissionService{
		bookingRepo:     bookingRepo,
		commissionRepo:  commissionRepo,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
		auditSvc:        auditSvc,
		tdsRatePct:      tdsRatePct,
	}
}

// TDSRatePct returns the configured tax-deducted-at-source rate.
func (s *CommissionService) TDSRatePct() float64 {
	return s.tdsRatePct
}

// List derives commissions for all agent-carrying bookings, optionally
// filtered by lifecycle status and agent.
func (s *CommissionService) List(ctx context.Context, query *repository.ListQuery) ([]models.CommissionResponse, error) {
	bookings, err := s.bookingRepo.FindWithCommissionDetails(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	byID := make(map[uint]*models.Booking, len(bookings))
	records := make([]engine.BookingRecord, 0, len(bookings))
	for i := range bookings {
		byID[bookings[i].ID] = &bookings[i]
		records = append(records, bookings[i].ToBookingRecord())
	}

	commissions := engine.DeriveCommissions(records, s.tdsRatePct)
	if status := query.Filters["status"]; status != "" {
		commissions = engine.FilterByStatus(commissions, status)
	}

	responses := make([]models.CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		responses = append(responses, models.NewCommissionResponse(c, byID[c.BookingID]))
	}
	return responses, nil
}

// GetByBooking derives the commission for one booking.
func (s *CommissionService) GetByBooking(ctx context.Context, bookingID uint) (*models.CommissionResponse, error) {
	booking, err := s.bookingRepo.FindByIDWithDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	commission, ok := engine.DeriveCommission(booking.ToBookingRecord(), s.tdsRatePct)
	if !ok {
		return nil, ErrNoAgent
	}

	resp := models.NewCommissionResponse(commission, booking)
	return &resp, nil
}

// Approve moves a booking's commission pending→approved. The lifecycle
// record is created on first touch for bookings made before commission
// tracking existed.
func (s *CommissionService) Approve(ctx context.Context, bookingID, approverID uint) (*models.CommissionResponse, error) {
	booking, err := s.bookingRepo.FindByIDWithDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.AgentID == nil {
		return nil, ErrNoAgent
	}

	record, err := s.commissionRepo.FindOrCreateByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load commission record: %w", err)
	}

	fsm := statemachine.NewCommissionFSM(record)
	if err := fsm.Approve(ctx, approverID); err != nil {
		return nil, err
	}
	if err := s.commissionRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist commission status: %w", err)
	}
	booking.Commission = record

	commission, _ := engine.DeriveCommission(booking.ToBookingRecord(), s.tdsRatePct)
	resp := models.NewCommissionResponse(commission, booking)

	title := "Commission approved"
	message := fmt.Sprintf("Your commission of ₹%.2f for plot %s was approved", commission.FinalAmount, booking.Plot.PlotNo)
	s.notificationSvc.NotifyUser(ctx, *booking.AgentID, title, message, models.NotificationTypeCommissionApproved)

	if booking.Agent != nil && s.emailSvc != nil {
		s.emailSvc.SendCommissionApproved(ctx, booking.Agent, &resp)
	}

	return &resp, nil
}

// Pay records the payout: approved→paid with an optional payment reference.
func (s *CommissionService) Pay(ctx context.Context, bookingID uint, paymentRef string) (*models.CommissionResponse, error) {
	booking, err := s.bookingRepo.FindByIDWithDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.AgentID == nil {
		return nil, ErrNoAgent
	}

	record, err := s.commissionRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load commission record: %w", err)
	}

	fsm := statemachine.NewCommissionFSM(record)
	if err := fsm.Pay(ctx, paymentRef); err != nil {
		return nil, err
	}
	if err := s.commissionRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist commission status: %w", err)
	}
	booking.Commission = record

	commission, _ := engine.DeriveCommission(booking.ToBookingRecord(), s.tdsRatePct)
	resp := models.NewCommissionResponse(commission, booking)

	title := "Commission paid"
	message := fmt.Sprintf("Your commission of ₹%.2f for plot %s was paid", commission.FinalAmount, booking.Plot.PlotNo)
	s.notificationSvc.NotifyUser(ctx, *booking.AgentID, title, message, models.NotificationTypeCommissionPaid)

	if booking.Agent != nil && s.emailSvc != nil {
		s.emailSvc.SendCommissionPaid(ctx, booking.Agent, &resp, paymentRef)
	}

	return &resp, nil
}

// Revoke walks an approval back to pending before payout.
func (s *CommissionService) Revoke(ctx context.Context, bookingID uint) (*models.CommissionResponse, error) {
	booking, err := s.bookingRepo.FindByIDWithDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	record, err := s.commissionRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load commission record: %w", err)
	}

	fsm := statemachine.NewCommissionFSM(record)
	if err := fsm.Revoke(ctx); err != nil {
		return nil, err
	}
	if err := s.commissionRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist commission status: %w", err)
	}
	booking.Commission = record

	commission, _ := engine.DeriveCommission(booking.ToBookingRecord(), s.tdsRatePct)
	resp := models.NewCommissionResponse(commission, booking)
	return &resp, nil
}

// CommissionSummary aggregates derived commissions by lifecycle status.
type CommissionSummary struct {
	TotalCount     int     `json:"total_count"`
	TotalAmount    float64 `json:"total_amount"`
	TotalTDS       float64 `json:"total_tds"`
	TotalNet       float64 `json:"total_net"`
	PendingCount   int     `json:"pending_count"`
	PendingAmount  float64 `json:"pending_amount"`
	ApprovedCount  int     `json:"approved_count"`
	ApprovedAmount float64 `json:"approved_amount"`
	PaidCount      int     `json:"paid_count"`
	PaidAmount     float64 `json:"paid_amount"`
}

// Summary derives all commissions and totals them by status.
func (s *CommissionService) Summary(ctx context.Context, query *repository.ListQuery) (*CommissionSummary, error) {
	bookings, err := s.bookingRepo.FindWithCommissionDetails(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	records := make([]engine.BookingRecord, 0, len(bookings))
	for i := range bookings {
		records = append(records, bookings[i].ToBookingRecord())
	}

	summary := &CommissionSummary{}
	for _, c := range engine.DeriveCommissions(records, s.tdsRatePct) {
		summary.TotalCount++
		summary.TotalAmount += c.CommissionAmount
		summary.TotalTDS += c.TDSAmount
		summary.TotalNet += c.FinalAmount

		switch c.Status {
		case engine.CommissionStatusPending:
			summary.PendingCount++
			summary.PendingAmount += c.FinalAmount
		case engine.CommissionStatusApproved:
			summary.ApprovedCount++
			summary.ApprovedAmount += c.FinalAmount
		case engine.CommissionStatusPaid:
			summary.PaidCount++
			summary.PaidAmount += c.FinalAmount
		}
	}
	return summary, nil
}
