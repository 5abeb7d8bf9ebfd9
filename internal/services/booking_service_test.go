package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
)

type mockPlotRepo struct {
	repository.PlotRepository
	mockFindByID func(ctx context.Context, id uint) (*models.Plot, error)
	updated      *models.Plot
}

func (m *mockPlotRepo) FindByID(ctx context.Context, id uint) (*models.Plot, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockPlotRepo) Update(ctx context.Context, plot *models.Plot) error {
	m.updated = plot
	return nil
}

func TestBookingService_Create_BooksPlotAndOpensCommission(t *testing.T) {
	plot := &models.Plot{ID: 11, PlotNo: "P-12", Status: models.PlotStatusAvailable}
	plotRepo := &mockPlotRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Plot, error) {
			return plot, nil
		},
	}
	userRepo := &mockUserRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "suresh@bhumi.in", Role: models.RoleAgent}, nil
		},
	}
	var commissionOpenedFor uint
	commissionRepo := &mockCommissionRepo{
		mockFindOrCreateByBookingID: func(ctx context.Context, bookingID uint) (*models.CommissionRecord, error) {
			commissionOpenedFor = bookingID
			return &models.CommissionRecord{BookingID: bookingID, Status: "pending"}, nil
		},
	}
	bookingRepo := &mockBookingRepo{}
	service := NewBookingService(bookingRepo, plotRepo, commissionRepo, userRepo, nil, nil, nil)

	agentID := uint(7)
	booking := &models.Booking{PlotID: 11, CustomerName: "Ram Kumar", AgentID: &agentID, TotalAmount: 800_000}
	err := service.Create(context.Background(), booking)
	assert.NoError(t, err)

	assert.Equal(t, models.BookingStatusBooked, booking.Status)
	assert.Equal(t, models.PlotStatusBooked, plot.Status)
	assert.Equal(t, plot, plotRepo.updated)
	assert.Equal(t, booking, bookingRepo.created)
	assert.Equal(t, booking.ID, commissionOpenedFor)
}

func TestBookingService_Create_PlotUnavailable(t *testing.T) {
	plotRepo := &mockPlotRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Plot, error) {
			return &models.Plot{ID: id, PlotNo: "P-12", Status: models.PlotStatusSold}, nil
		},
	}
	service := NewBookingService(&mockBookingRepo{}, plotRepo, &mockCommissionRepo{}, &mockUserRepo{}, nil, nil, nil)

	err := service.Create(context.Background(), &models.Booking{PlotID: 11, CustomerName: "Ram Kumar"})
	assert.ErrorIs(t, err, ErrPlotUnavailable)
	assert.Nil(t, plotRepo.updated)
}

func TestBookingService_Create_ViewerCannotEarnCommission(t *testing.T) {
	plotRepo := &mockPlotRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.Plot, error) {
			return &models.Plot{ID: id, PlotNo: "P-12", Status: models.PlotStatusAvailable}, nil
		},
	}
	userRepo := &mockUserRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "viewer@bhumi.in", Role: models.RoleViewer}, nil
		},
	}
	service := NewBookingService(&mockBookingRepo{}, plotRepo, &mockCommissionRepo{}, userRepo, nil, nil, nil)

	viewerID := uint(3)
	err := service.Create(context.Background(), &models.Booking{PlotID: 11, CustomerName: "Ram Kumar", AgentID: &viewerID})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestBookingService_Confirm_SellsPlot(t *testing.T) {
	agentID := uint(7)
	booking := &models.Booking{
		ID:           1,
		PlotID:       11,
		CustomerName: "Ram Kumar",
		AgentID:      &agentID,
		Status:       models.BookingStatusBooked,
		Plot:         models.Plot{ID: 11, PlotNo: "P-12", Status: models.PlotStatusBooked},
	}
	bookingRepo := &mockBookingRepo{
		mockFindByIDWithDetails: func(ctx context.Context, id uint) (*models.Booking, error) {
			return booking, nil
		},
	}
	plotRepo := &mockPlotRepo{}
	notificationRepo := &mockNotificationRepo{}
	service := NewBookingService(bookingRepo, plotRepo, &mockCommissionRepo{}, &mockUserRepo{}, NewNotificationService(notificationRepo, nil), nil, nil)

	confirmed, err := service.Confirm(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)
	assert.Equal(t, models.PlotStatusSold, confirmed.Plot.Status)
	assert.Len(t, notificationRepo.created, 1)

	// A confirmed booking cannot be confirmed again
	_, err = service.Confirm(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestBookingService_Cancel_PlotStaysConsumed(t *testing.T) {
	booking := &models.Booking{
		ID:           1,
		PlotID:       11,
		CustomerName: "Ram Kumar",
		Status:       models.BookingStatusBooked,
		Plot:         models.Plot{ID: 11, PlotNo: "P-12", Status: models.PlotStatusBooked},
	}
	bookingRepo := &mockBookingRepo{
		mockFindByIDWithDetails: func(ctx context.Context, id uint) (*models.Booking, error) {
			return booking, nil
		},
	}
	plotRepo := &mockPlotRepo{}
	service := NewBookingService(bookingRepo, plotRepo, &mockCommissionRepo{}, &mockUserRepo{}, nil, nil, nil)

	cancelled, err := service.Cancel(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	// The plot never returns to the pool: its area stays consumed
	assert.Equal(t, models.PlotStatusBooked, cancelled.Plot.Status)
	assert.Nil(t, plotRepo.updated)
}

func TestBookingService_FlagStale_NotifiesAdminsWithoutTouchingPlots(t *testing.T) {
	agentID := uint(7)
	bookingRepo := &mockBookingRepo{
		mockFindStaleBooked: func(ctx context.Context, olderThan time.Time) ([]models.Booking, error) {
			return []models.Booking{
				{
					ID:           1,
					CustomerName: "Ram Kumar",
					AgentID:      &agentID,
					Status:       models.BookingStatusBooked,
					Plot:         models.Plot{ID: 11, PlotNo: "P-12", Status: models.PlotStatusBooked},
				},
				{
					ID:           2,
					CustomerName: "Shyam Singh",
					Status:       models.BookingStatusBooked,
					Plot:         models.Plot{ID: 12, PlotNo: "P-13", Status: models.PlotStatusBooked},
				},
			}, nil
		},
	}
	userRepo := &mockUserRepo{
		mockFindAdmins: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: 1, Email: "admin@bhumi.in", Role: models.RoleAdmin}}, nil
		},
	}
	notificationRepo := &mockNotificationRepo{}
	plotRepo := &mockPlotRepo{}
	service := NewBookingService(bookingRepo, plotRepo, &mockCommissionRepo{}, userRepo, NewNotificationService(notificationRepo, userRepo), nil, nil)

	flagged, err := service.FlagStale(context.Background(), 7*24*time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 2, flagged)
	assert.Len(t, notificationRepo.created, 2)
	assert.Equal(t, uint(1), notificationRepo.created[0].UserID)

	// Flagging is advisory only: no plot was released or updated
	assert.Nil(t, plotRepo.updated)
}
