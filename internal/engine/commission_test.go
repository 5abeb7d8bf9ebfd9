package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uintPtr(u uint) *uint {
	return &u
}

func TestDeriveCommissionIdentity(t *testing.T) {
	booking := BookingRecord{
		ID:          7,
		SaleAmount:  850000,
		AgentID:     uintPtr(12),
		RatePctHint: 2.0,
	}

	c, ok := DeriveCommission(booking, DefaultTDSRatePct)

	assert.True(t, ok)
	assert.Equal(t, 850000*2.0/100, c.CommissionAmount)
	assert.Equal(t, c.CommissionAmount*DefaultTDSRatePct/100, c.TDSAmount)
	assert.Equal(t, c.CommissionAmount-c.TDSAmount, c.FinalAmount)
	assert.Equal(t, CommissionStatusPending, c.Status)
}

func TestDeriveCommissionExcludesAgentlessBookings(t *testing.T) {
	bookings := []BookingRecord{
		{ID: 1, SaleAmount: 500000, AgentID: uintPtr(3)},
		{ID: 2, SaleAmount: 900000}, // direct sale, no agent
		{ID: 3, SaleAmount: 200000, AgentID: uintPtr(4)},
	}

	commissions := DeriveCommissions(bookings, DefaultTDSRatePct)

	assert.Len(t, commissions, 2)
	assert.Equal(t, uint(1), commissions[0].BookingID)
	assert.Equal(t, uint(3), commissions[1].BookingID)
}

func TestCommissionRateTiers(t *testing.T) {
	assert.Equal(t, 3.0, CommissionRateFor(500000))
	assert.Equal(t, 3.0, CommissionRateFor(1000000))
	assert.Equal(t, 2.5, CommissionRateFor(2500000))
	assert.Equal(t, 2.0, CommissionRateFor(9000000))
}

func TestDeriveCommissionRateHintWinsOverTiers(t *testing.T) {
	booking := BookingRecord{ID: 1, SaleAmount: 500000, AgentID: uintPtr(1), RatePctHint: 1.25}

	c, _ := DeriveCommission(booking, DefaultTDSRatePct)

	assert.Equal(t, 1.25, c.RatePct)
}

func TestDeriveCommissionReflectsStoredStatus(t *testing.T) {
	booking := BookingRecord{ID: 1, SaleAmount: 500000, AgentID: uintPtr(1), Status: CommissionStatusApproved}

	c, _ := DeriveCommission(booking, DefaultTDSRatePct)

	assert.Equal(t, CommissionStatusApproved, c.Status)
}

func TestFilterByStatus(t *testing.T) {
	commissions := []Commission{
		{BookingID: 1, Status: CommissionStatusPending},
		{BookingID: 2, Status: CommissionStatusPaid},
		{BookingID: 3, Status: CommissionStatusPending},
	}

	pending := FilterByStatus(commissions, CommissionStatusPending)
	assert.Len(t, pending, 2)

	all := FilterByStatus(commissions, "")
	assert.Len(t, all, 3)
}
