package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bhumicrm/bhumi-api/internal/engine"
	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
)

type mockBookingRepo struct {
	repository.BookingRepository
	mockFindByIDWithDetails       func(ctx context.Context, id uint) (*models.Booking, error)
	mockFindWithCommissionDetails func(ctx context.Context, query *repository.ListQuery) ([]models.Booking, error)
	mockFindStaleBooked           func(ctx context.Context, olderThan time.Time) ([]models.Booking, error)
	created                       *models.Booking
	updated                       *models.Booking
}

func (m *mockBookingRepo) FindByIDWithDetails(ctx context.Context, id uint) (*models.Booking, error) {
	return m.mockFindByIDWithDetails(ctx, id)
}

func (m *mockBookingRepo) FindWithCommissionDetails(ctx context.Context, query *repository.ListQuery) ([]models.Booking, error) {
	return m.mockFindWithCommissionDetails(ctx, query)
}

func (m *mockBookingRepo) FindStaleBooked(ctx context.Context, olderThan time.Time) ([]models.Booking, error) {
	return m.mockFindStaleBooked(ctx, olderThan)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = 1
	m.created = booking
	return nil
}

func (m *mockBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	m.updated = booking
	return nil
}

type mockCommissionRepo struct {
	repository.CommissionRepository
	mockFindByBookingID         func(ctx context.Context, bookingID uint) (*models.CommissionRecord, error)
	mockFindOrCreateByBookingID func(ctx context.Context, bookingID uint) (*models.CommissionRecord, error)
	updated                     *models.CommissionRecord
}

func (m *mockCommissionRepo) FindByBookingID(ctx context.Context, bookingID uint) (*models.CommissionRecord, error) {
	return m.mockFindByBookingID(ctx, bookingID)
}

func (m *mockCommissionRepo) FindOrCreateByBookingID(ctx context.Context, bookingID uint) (*models.CommissionRecord, error) {
	return m.mockFindOrCreateByBookingID(ctx, bookingID)
}

func (m *mockCommissionRepo) Update(ctx context.Context, record *models.CommissionRecord) error {
	m.updated = record
	return nil
}

type mockNotificationRepo struct {
	repository.NotificationRepository
	created []models.Notification
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	m.created = append(m.created, *n)
	return nil
}

func agentBooking(id uint, agentID uint, amount float64, ratePct *float64, status string) models.Booking {
	b := models.Booking{
		ID:           id,
		PlotID:       id,
		CustomerName: "Ram Kumar",
		AgentID:      &agentID,
		TotalAmount:  amount,
		RatePct:      ratePct,
		Status:       models.BookingStatusBooked,
		CreatedAt:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Plot:         models.Plot{ID: id, PlotNo: "P-12"},
	}
	if status != "" {
		b.Commission = &models.CommissionRecord{BookingID: id, Status: status}
	}
	return b
}

func TestCommissionService_List_DerivesAndFilters(t *testing.T) {
	rate := 2.0
	bookingRepo := &mockBookingRepo{
		mockFindWithCommissionDetails: func(ctx context.Context, query *repository.ListQuery) ([]models.Booking, error) {
			return []models.Booking{
				agentBooking(1, 7, 800_000, nil, ""),
				{ID: 2, CustomerName: "Direct Sale", TotalAmount: 500_000}, // no agent
				agentBooking(3, 8, 2_000_000, &rate, engine.CommissionStatusApproved),
			}, nil
		},
	}
	service := NewCommissionService(bookingRepo, &mockCommissionRepo{}, nil, nil, nil, 5.0)

	commissions, err := service.List(context.Background(), repository.NewListQuery())
	assert.NoError(t, err)
	// The agent-less booking is excluded outright, not zero-filled
	assert.Len(t, commissions, 2)

	first := commissions[0]
	assert.Equal(t, uint(1), first.BookingID)
	assert.Equal(t, 3.0, first.RatePct) // tier rate: sale under 10 lakh
	assert.Equal(t, 24000.0, first.CommissionAmount)
	assert.Equal(t, 1200.0, first.TDSAmount)
	assert.Equal(t, 22800.0, first.FinalAmount)
	assert.Equal(t, engine.CommissionStatusPending, first.Status)

	second := commissions[1]
	assert.Equal(t, 2.0, second.RatePct) // booking-level override wins
	assert.Equal(t, 40000.0, second.CommissionAmount)
	assert.Equal(t, engine.CommissionStatusApproved, second.Status)

	// Filter to approved only
	query := repository.NewListQuery()
	query.Filters["status"] = engine.CommissionStatusApproved
	approved, err := service.List(context.Background(), query)
	assert.NoError(t, err)
	assert.Len(t, approved, 1)
	assert.Equal(t, uint(3), approved[0].BookingID)
}

func TestCommissionService_GetByBooking_NoAgent(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		mockFindByIDWithDetails: func(ctx context.Context, id uint) (*models.Booking, error) {
			return &models.Booking{ID: id, CustomerName: "Direct Sale", TotalAmount: 100_000}, nil
		},
	}
	service := NewCommissionService(bookingRepo, &mockCommissionRepo{}, nil, nil, nil, 5.0)

	resp, err := service.GetByBooking(context.Background(), 9)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNoAgent)
}

func TestCommissionService_ApproveThenPay(t *testing.T) {
	booking := agentBooking(1, 7, 800_000, nil, "")
	record := &models.CommissionRecord{BookingID: 1, Status: engine.CommissionStatusPending}

	bookingRepo := &mockBookingRepo{
		mockFindByIDWithDetails: func(ctx context.Context, id uint) (*models.Booking, error) {
			copied := booking
			return &copied, nil
		},
	}
	commissionRepo := &mockCommissionRepo{
		mockFindByBookingID: func(ctx context.Context, bookingID uint) (*models.CommissionRecord, error) {
			return record, nil
		},
		mockFindOrCreateByBookingID: func(ctx context.Context, bookingID uint) (*models.CommissionRecord, error) {
			return record, nil
		},
	}
	notificationRepo := &mockNotificationRepo{}
	notificationSvc := NewNotificationService(notificationRepo, nil)
	service := NewCommissionService(bookingRepo, commissionRepo, notificationSvc, nil, nil, 5.0)

	resp, err := service.Approve(context.Background(), 1, 99)
	assert.NoError(t, err)
	assert.Equal(t, engine.CommissionStatusApproved, resp.Status)
	assert.Equal(t, engine.CommissionStatusApproved, record.Status)
	assert.NotNil(t, record.ApprovedAt)
	assert.Equal(t, uint(99), *record.ApprovedByID)
	assert.Equal(t, record, commissionRepo.updated)
	assert.Len(t, notificationRepo.created, 1)
	assert.Equal(t, uint(7), notificationRepo.created[0].UserID)

	// Second approval must fail: already approved
	_, err = service.Approve(context.Background(), 1, 99)
	assert.Error(t, err)

	resp, err = service.Pay(context.Background(), 1, "NEFT-4411")
	assert.NoError(t, err)
	assert.Equal(t, engine.CommissionStatusPaid, resp.Status)
	assert.NotNil(t, record.PaidAt)
	assert.Equal(t, "NEFT-4411", *record.PaymentRef)
}

func TestCommissionService_Pay_RequiresApproval(t *testing.T) {
	booking := agentBooking(1, 7, 800_000, nil, "")
	record := &models.CommissionRecord{BookingID: 1, Status: engine.CommissionStatusPending}

	bookingRepo := &mockBookingRepo{
		mockFindByIDWithDetails: func(ctx context.Context, id uint) (*models.Booking, error) {
			return &booking, nil
		},
	}
	commissionRepo := &mockCommissionRepo{
		mockFindByBookingID: func(ctx context.Context, bookingID uint) (*models.CommissionRecord, error) {
			return record, nil
		},
	}
	service := NewCommissionService(bookingRepo, commissionRepo, nil, nil, nil, 5.0)

	_, err := service.Pay(context.Background(), 1, "")
	assert.Error(t, err)
	assert.Equal(t, engine.CommissionStatusPending, record.Status)
}

func TestCommissionService_Summary(t *testing.T) {
	rate := 2.0
	bookingRepo := &mockBookingRepo{
		mockFindWithCommissionDetails: func(ctx context.Context, query *repository.ListQuery) ([]models.Booking, error) {
			return []models.Booking{
				agentBooking(1, 7, 800_000, nil, ""),                              // pending, net 22800
				agentBooking(2, 7, 2_000_000, &rate, engine.CommissionStatusPaid), // net 38000
			}, nil
		},
	}
	service := NewCommissionService(bookingRepo, &mockCommissionRepo{}, nil, nil, nil, 5.0)

	summary, err := service.Summary(context.Background(), repository.NewListQuery())
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalCount)
	assert.Equal(t, 64000.0, summary.TotalAmount)
	assert.Equal(t, 3200.0, summary.TotalTDS)
	assert.Equal(t, 60800.0, summary.TotalNet)
	assert.Equal(t, 1, summary.PendingCount)
	assert.Equal(t, 22800.0, summary.PendingAmount)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, 38000.0, summary.PaidAmount)
	assert.Equal(t, 0, summary.ApprovedCount)
}
