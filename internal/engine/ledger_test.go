package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func paymentAt(id uint, offsetDays int, gaj, rupees float64) PaymentEvent {
	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	return PaymentEvent{
		ID:          id,
		SequenceKey: base.AddDate(0, 0, offsetDays),
		Gaj:         gaj,
		Rupees:      rupees,
	}
}

func TestComputeLedgerRunningSeries(t *testing.T) {
	parcel := Parcel{TotalAreaGaj: 1000}
	events := []PaymentEvent{
		paymentAt(1, 0, 100, 500000),
		paymentAt(2, 5, 250, 1200000),
	}

	result := ComputeLedger(parcel, events)

	assert.Equal(t, 1000.0, result.BaseRemainingGaj)
	assert.Len(t, result.Rows, 2)
	assert.Equal(t, 900.0, result.Rows[0].RemainingGaj)
	assert.Equal(t, 650.0, result.Rows[1].RemainingGaj)
	assert.Equal(t, 650.0, result.CurrentRemainingGaj)
	assert.Equal(t, 350.0, result.TotalGaj)
	assert.Equal(t, 1700000.0, result.TotalRupees)
}

func TestComputeLedgerSortsByCreationTime(t *testing.T) {
	parcel := Parcel{TotalAreaGaj: 1000}
	// Caller hands the list newest-first; the walk must still run oldest-first.
	events := []PaymentEvent{
		paymentAt(2, 5, 250, 0),
		paymentAt(1, 0, 100, 0),
	}

	result := ComputeLedger(parcel, events)

	assert.Equal(t, uint(1), result.Rows[0].Event.ID)
	assert.Equal(t, 900.0, result.Rows[0].RemainingGaj)
	assert.Equal(t, 650.0, result.Rows[1].RemainingGaj)
}

func TestComputeLedgerTieBreaksOnID(t *testing.T) {
	parcel := Parcel{TotalAreaGaj: 500}
	same := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	events := []PaymentEvent{
		{ID: 9, SequenceKey: same, Gaj: 50},
		{ID: 3, SequenceKey: same, Gaj: 100},
	}

	result := ComputeLedger(parcel, events)

	assert.Equal(t, uint(3), result.Rows[0].Event.ID)
	assert.Equal(t, 400.0, result.Rows[0].RemainingGaj)
	assert.Equal(t, 350.0, result.Rows[1].RemainingGaj)
}

func TestComputeLedgerMonotonicity(t *testing.T) {
	parcel := Parcel{TotalAreaGaj: 10000}
	var events []PaymentEvent
	for i := 0; i < 20; i++ {
		events = append(events, paymentAt(uint(i+1), i, float64(i*13%97), 0))
	}

	result := ComputeLedger(parcel, events)

	for i := 1; i < len(result.Rows); i++ {
		assert.LessOrEqual(t, result.Rows[i].RemainingGaj, result.Rows[i-1].RemainingGaj,
			"remaining land must be non-increasing at row %d", i)
	}
}

func TestComputeLedgerIdempotence(t *testing.T) {
	parcel := Parcel{
		TotalAreaGaj:  1000,
		PurchasePrice: 4500000,
		Roads:         []Road{{LengthFt: 100, WidthFt: 27}},
	}
	events := []PaymentEvent{
		paymentAt(1, 0, 120, 600000),
		paymentAt(2, 3, 80, 350000),
	}

	first := ComputeLedger(parcel, events)
	second := ComputeLedger(parcel, events)

	assert.Equal(t, first, second)
}

func TestComputeLedgerEmptyPayments(t *testing.T) {
	parcel := Parcel{TotalAreaGaj: 800, Roads: []Road{{LengthFt: 90, WidthFt: 10}}}

	result := ComputeLedger(parcel, nil)

	assert.Empty(t, result.Rows)
	assert.Equal(t, 700.0, result.BaseRemainingGaj)
	assert.Equal(t, 700.0, result.CurrentRemainingGaj)
}

func TestComputeLedgerDegeneratePrice(t *testing.T) {
	parcel := Parcel{TotalAreaGaj: 100, PurchasePrice: 500000}
	events := []PaymentEvent{paymentAt(1, 0, 100, 500000)}

	result := ComputeLedger(parcel, events)

	assert.Equal(t, 0.0, result.CurrentRemainingGaj)
	assert.Equal(t, 0.0, result.PricePerGaj, "exhausted parcel must price at 0, not Inf")
}

func TestComputeLedgerPricePerGaj(t *testing.T) {
	parcel := Parcel{TotalAreaGaj: 1000, PurchasePrice: 4500000}
	events := []PaymentEvent{paymentAt(1, 0, 100, 0)}

	result := ComputeLedger(parcel, events)

	assert.Equal(t, 5000.0, result.PricePerGaj)
}
