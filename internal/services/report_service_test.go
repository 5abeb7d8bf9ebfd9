package services

import (
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
)

func TestGenerateCommissionsCSV(t *testing.T) {
	agentID := uint(7)
	bookingRepo := &mockBookingRepo{
		mockFindWithCommissionDetails: func(ctx context.Context, query *repository.ListQuery) ([]models.Booking, error) {
			return []models.Booking{
				{
					ID:           1,
					PlotID:       11,
					CustomerName: "Ram Kumar",
					AgentID:      &agentID,
					TotalAmount:  800_000,
					CreatedAt:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					Plot: models.Plot{
						ID:     11,
						PlotNo: "P-12",
						Colony: &models.Colony{ID: 4, Name: "Shanti Vihar"},
					},
					Agent: &models.User{ID: agentID, FullName: "Suresh Yadav"},
				},
				// Outside the requested date range, must not appear
				{
					ID:           2,
					CustomerName: "Old Sale",
					AgentID:      &agentID,
					TotalAmount:  300_000,
					CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	service := NewReportService(bookingRepo, &mockColonyRepo{}, &mockKisanPaymentRepo{}, 5.0)

	buf, err := service.GenerateCommissionsCSV(context.Background(), "2025-01-01", "2025-12-31")
	assert.NoError(t, err)

	rows, err := csv.NewReader(buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, []string{"Booking ID", "Agent", "Customer", "Plot", "Colony", "Sale Amount", "Rate %", "Commission", "TDS", "Net Payable", "Status", "Booked On"}, rows[0])
	assert.Equal(t, []string{"1", "Suresh Yadav", "Ram Kumar", "P-12", "Shanti Vihar", "800000.00", "3.00", "24000.00", "1200.00", "22800.00", "pending", "2025-03-10"}, rows[1])
}

func TestGenerateKisanLedgerCSV(t *testing.T) {
	area := 1000.0
	colonyRepo := &mockColonyRepo{
		mockFindByIDWithDetails: func(ctx context.Context, id uint) (*models.Colony, error) {
			return &models.Colony{ID: id, Name: "Shanti Vihar", TotalAreaGaj: &area}, nil
		},
	}
	regPlot := "R-101"
	paymentRepo := &mockKisanPaymentRepo{
		mockFindByColony: func(ctx context.Context, colonyID uint) ([]models.KisanPayment, error) {
			return []models.KisanPayment{
				{ID: 1, ColonyID: colonyID, Rupees: 50_000, Gaj: 200, RegPlotNo: &regPlot, CreatedAt: day(5)},
				{ID: 2, ColonyID: colonyID, Rupees: 75_000, Gaj: 100, CreatedAt: day(12)},
			}, nil
		},
	}
	service := NewReportService(&mockBookingRepo{}, colonyRepo, paymentRepo, 5.0)

	buf, err := service.GenerateKisanLedgerCSV(context.Background(), 4)
	assert.NoError(t, err)

	r := csv.NewReader(buf)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	assert.NoError(t, err)

	// The reader drops the blank separator lines.
	assert.Equal(t, []string{"Colony", "Shanti Vihar"}, rows[0])
	assert.Equal(t, []string{"Total Area (gaj)", "1000.00"}, rows[1])
	assert.Equal(t, []string{"Base Remaining (gaj)", "1000.00"}, rows[2])
	assert.Equal(t, []string{"Payment ID", "Date", "Reg/Plot No", "Rupees", "Land (gaj)", "Remaining Land (gaj)"}, rows[3])
	assert.Equal(t, []string{"1", "2025-04-05", "R-101", "50000.00", "200.00", "800.00"}, rows[4])
	assert.Equal(t, []string{"2", "2025-04-12", "", "75000.00", "100.00", "700.00"}, rows[5])
	assert.Equal(t, []string{"Total Paid", "", "", "125000.00", "300.00", "700.00"}, rows[len(rows)-1])
}
