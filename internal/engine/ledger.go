package engine

import (
	"sort"
	"time"
)

// PaymentEvent is a normalized kisan payment: cash received against a parcel
// together with the land area attributed to that payment. SequenceKey is the
// persisted creation timestamp; it, not any array order, defines the ledger
// order.
type PaymentEvent struct {
	ID          uint
	SequenceKey time.Time
	Rupees      float64
	Gaj         float64
	RegPlotNo   string
}

// LedgerRow is one line of the derived running-balance series.
type LedgerRow struct {
	Event        PaymentEvent
	ConsumedGaj  float64 // cumulative land consumed up to and including this event
	RemainingGaj float64 // baseRemaining - ConsumedGaj
}

// LedgerResult is the full derived view of a parcel's payment ledger. It is
// materialized per read and must not be cached across writes to the same
// parcel's payment list: editing or deleting any entry invalidates every row
// after it, and the only safe invalidation is recomputing the whole series.
type LedgerResult struct {
	BaseRemainingGaj    float64 // total land minus allocations, before payments
	CurrentRemainingGaj float64
	PricePerGaj         float64
	TotalRupees         float64
	TotalGaj            float64
	Rows                []LedgerRow
}

// ComputeLedger walks a parcel's payment events in persisted creation order
// and produces the running remaining-land series.
//
// The input slice is not trusted to be ordered: two clients can fetch the
// same list in different orders, so the walk always sorts a copy by
// SequenceKey ascending (ties broken by record ID) before accumulating.
func ComputeLedger(p Parcel, events []PaymentEvent) LedgerResult {
	base := sanitize(p.TotalAreaGaj) - UsedAreaGaj(p)

	ordered := make([]PaymentEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].SequenceKey.Equal(ordered[j].SequenceKey) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].SequenceKey.Before(ordered[j].SequenceKey)
	})

	result := LedgerResult{
		BaseRemainingGaj:    base,
		CurrentRemainingGaj: base,
		Rows:                make([]LedgerRow, 0, len(ordered)),
	}

	var consumed float64
	for _, ev := range ordered {
		consumed += sanitize(ev.Gaj)
		result.TotalRupees += sanitize(ev.Rupees)
		result.TotalGaj += sanitize(ev.Gaj)
		result.Rows = append(result.Rows, LedgerRow{
			Event:        ev,
			ConsumedGaj:  consumed,
			RemainingGaj: base - consumed,
		})
	}
	if len(result.Rows) > 0 {
		result.CurrentRemainingGaj = result.Rows[len(result.Rows)-1].RemainingGaj
	}

	// Degenerate-value policy: never divide by a zero or negative remainder.
	if result.CurrentRemainingGaj > 0 {
		result.PricePerGaj = sanitize(sanitize(p.PurchasePrice) / result.CurrentRemainingGaj)
	}

	return result
}
