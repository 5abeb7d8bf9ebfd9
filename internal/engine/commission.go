package engine

import "time"

// Commission lifecycle states. Transitions are driven by the commission
// state machine and persisted on the status record; this package only ever
// reflects whatever status is attached to the source booking at read time.
const (
	CommissionStatusPending  = "pending"
	CommissionStatusApproved = "approved"
	CommissionStatusPaid     = "paid"
)

// DefaultTDSRatePct is the withholding rate applied to commission before
// payout (tax deducted at source on brokerage).
const DefaultTDSRatePct = 5.0

// Commission rate tiers applied when a booking carries no explicit rate.
const (
	tierOneCeiling   = 1_000_000.0 // up to 10 lakh
	tierTwoCeiling   = 5_000_000.0 // up to 50 lakh
	tierOneRatePct   = 3.0
	tierTwoRatePct   = 2.5
	tierThreeRatePct = 2.0
)

// BookingRecord is a normalized sale booking: the commission base, the
// assigned agent (nil when the sale was direct) and an optional per-booking
// commission rate overriding the tier table. Status carries whatever
// lifecycle state the record store has attached; blank means none recorded.
type BookingRecord struct {
	ID          uint
	SaleAmount  float64
	AgentID     *uint
	RatePctHint float64
	Status      string
	CreatedAt   time.Time
}

// Commission is the per-booking payout derivation. It is never persisted;
// amounts are recomputed from the booking on every read, and only the
// lifecycle status lives in the record store.
type Commission struct {
	BookingID        uint
	AgentID          uint
	SaleAmount       float64
	RatePct          float64
	CommissionAmount float64
	TDSAmount        float64
	FinalAmount      float64
	Status           string
	BookedAt         time.Time
}

// CommissionRateFor returns the tiered rate for a sale amount.
func CommissionRateFor(saleAmount float64) float64 {
	switch amount := sanitize(saleAmount); {
	case amount <= tierOneCeiling:
		return tierOneRatePct
	case amount <= tierTwoCeiling:
		return tierTwoRatePct
	default:
		return tierThreeRatePct
	}
}

// DeriveCommission computes the payout for a single booking, or false when
// the booking has no assigned agent (direct sales earn nothing and are
// excluded outright, not zero-filled).
func DeriveCommission(b BookingRecord, tdsRatePct float64) (Commission, bool) {
	if b.AgentID == nil {
		return Commission{}, false
	}

	rate := sanitize(b.RatePctHint)
	if rate <= 0 {
		rate = CommissionRateFor(b.SaleAmount)
	}

	sale := sanitize(b.SaleAmount)
	commission := sanitize(sale * rate / 100)
	tds := sanitize(commission * sanitize(tdsRatePct) / 100)

	status := b.Status
	if status == "" {
		status = CommissionStatusPending
	}

	return Commission{
		BookingID:        b.ID,
		AgentID:          *b.AgentID,
		SaleAmount:       sale,
		RatePct:          rate,
		CommissionAmount: commission,
		TDSAmount:        tds,
		FinalAmount:      commission - tds,
		Status:           status,
		BookedAt:         b.CreatedAt,
	}, true
}

// DeriveCommissions materializes one commission per eligible booking.
func DeriveCommissions(bookings []BookingRecord, tdsRatePct float64) []Commission {
	out := make([]Commission, 0, len(bookings))
	for _, b := range bookings {
		if c, ok := DeriveCommission(b, tdsRatePct); ok {
			out = append(out, c)
		}
	}
	return out
}

// FilterByStatus keeps only commissions in the given lifecycle state. An
// empty status returns the input unchanged.
func FilterByStatus(commissions []Commission, status string) []Commission {
	if status == "" {
		return commissions
	}
	out := make([]Commission, 0, len(commissions))
	for _, c := range commissions {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}
