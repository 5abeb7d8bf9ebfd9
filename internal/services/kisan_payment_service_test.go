package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
)

type mockColonyRepo struct {
	repository.ColonyRepository
	mockFindByID            func(ctx context.Context, id uint) (*models.Colony, error)
	mockFindByIDWithDetails func(ctx context.Context, id uint) (*models.Colony, error)
}

func (m *mockColonyRepo) FindByID(ctx context.Context, id uint) (*models.Colony, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockColonyRepo) FindByIDWithDetails(ctx context.Context, id uint) (*models.Colony, error) {
	return m.mockFindByIDWithDetails(ctx, id)
}

type mockKisanPaymentRepo struct {
	repository.KisanPaymentRepository
	mockFindByID     func(ctx context.Context, id uint) (*models.KisanPayment, error)
	mockFindByColony func(ctx context.Context, colonyID uint) ([]models.KisanPayment, error)
	updated          *models.KisanPayment
}

func (m *mockKisanPaymentRepo) FindByID(ctx context.Context, id uint) (*models.KisanPayment, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockKisanPaymentRepo) FindByColony(ctx context.Context, colonyID uint) ([]models.KisanPayment, error) {
	return m.mockFindByColony(ctx, colonyID)
}

func (m *mockKisanPaymentRepo) Update(ctx context.Context, payment *models.KisanPayment) error {
	m.updated = payment
	return nil
}

func day(d int) time.Time {
	return time.Date(2025, 4, d, 10, 0, 0, 0, time.UTC)
}

func TestKisanPaymentService_Ledger_OrdersByCreationTime(t *testing.T) {
	area := 1000.0
	colonyRepo := &mockColonyRepo{
		mockFindByIDWithDetails: func(ctx context.Context, id uint) (*models.Colony, error) {
			return &models.Colony{ID: id, Name: "Shanti Vihar", TotalAreaGaj: &area}, nil
		},
	}
	// Stored in reverse order; the ledger must still walk oldest first.
	paymentRepo := &mockKisanPaymentRepo{
		mockFindByColony: func(ctx context.Context, colonyID uint) ([]models.KisanPayment, error) {
			return []models.KisanPayment{
				{ID: 3, ColonyID: colonyID, Rupees: 100_000, Gaj: 300, CreatedAt: day(20)},
				{ID: 1, ColonyID: colonyID, Rupees: 50_000, Gaj: 200, CreatedAt: day(5)},
				{ID: 2, ColonyID: colonyID, Rupees: 75_000, Gaj: 100, CreatedAt: day(12)},
			}, nil
		},
	}
	service := NewKisanPaymentService(paymentRepo, colonyRepo, nil, nil)

	view, err := service.Ledger(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, uint(4), view.ColonyID)
	assert.Len(t, view.Rows, 3)

	assert.Equal(t, uint(1), view.Rows[0].ID)
	assert.Equal(t, 800.0, view.Rows[0].RemainingLandGaj)
	assert.Equal(t, uint(2), view.Rows[1].ID)
	assert.Equal(t, 700.0, view.Rows[1].RemainingLandGaj)
	assert.Equal(t, uint(3), view.Rows[2].ID)
	assert.Equal(t, 400.0, view.Rows[2].RemainingLandGaj)

	assert.Equal(t, 1000.0, view.Result.BaseRemainingGaj)
	assert.Equal(t, 400.0, view.Result.CurrentRemainingGaj)
	assert.Equal(t, 225_000.0, view.Result.TotalRupees)
	assert.Equal(t, 600.0, view.Result.TotalGaj)
}

func TestKisanPaymentService_Ledger_RemainingCanGoNegative(t *testing.T) {
	area := 500.0
	colonyRepo := &mockColonyRepo{
		mockFindByIDWithDetails: func(ctx context.Context, id uint) (*models.Colony, error) {
			return &models.Colony{ID: id, Name: "Green Valley", TotalAreaGaj: &area}, nil
		},
	}
	paymentRepo := &mockKisanPaymentRepo{
		mockFindByColony: func(ctx context.Context, colonyID uint) ([]models.KisanPayment, error) {
			return []models.KisanPayment{
				{ID: 1, ColonyID: colonyID, Rupees: 100_000, Gaj: 400, CreatedAt: day(1)},
				{ID: 2, ColonyID: colonyID, Rupees: 80_000, Gaj: 300, CreatedAt: day(2)},
			}, nil
		},
	}
	service := NewKisanPaymentService(paymentRepo, colonyRepo, nil, nil)

	view, err := service.Ledger(context.Background(), 1)
	assert.NoError(t, err)
	// Over-allocation is reported, never clamped to zero.
	assert.Equal(t, -200.0, view.Result.CurrentRemainingGaj)
	assert.Equal(t, -200.0, view.Rows[1].RemainingLandGaj)
	assert.Equal(t, 0.0, view.Result.PricePerGaj)
}

func TestKisanPaymentService_Update_KeepsLedgerPosition(t *testing.T) {
	createdAt := day(5)
	regPlot := "R-101"
	paymentRepo := &mockKisanPaymentRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.KisanPayment, error) {
			return &models.KisanPayment{
				ID:        id,
				ColonyID:  4,
				Rupees:    50_000,
				Gaj:       200,
				RegPlotNo: &regPlot,
				CreatedAt: createdAt,
			}, nil
		},
	}
	service := NewKisanPaymentService(paymentRepo, &mockColonyRepo{}, nil, nil)

	edit := &models.KisanPayment{ID: 1, ColonyID: 999, Rupees: 60_000, Gaj: 250}
	err := service.Update(context.Background(), edit)
	assert.NoError(t, err)

	// Colony and creation timestamp come from the stored record, not the edit.
	assert.Equal(t, uint(4), paymentRepo.updated.ColonyID)
	assert.Equal(t, createdAt, paymentRepo.updated.CreatedAt)
	assert.Equal(t, 60_000.0, paymentRepo.updated.Rupees)
	assert.Equal(t, 250.0, paymentRepo.updated.Gaj)
	assert.Equal(t, &regPlot, paymentRepo.updated.RegPlotNo)
}
