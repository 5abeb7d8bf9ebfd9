package models

import (
	"time"

	"github.com/bhumicrm/bhumi-api/internal/engine"
)

// KisanPayment is an installment paid to the kisan (land seller) for a
// colony, together with the land area attributed to that payment. The
// creation timestamp is the ledger sequence key: entries are never reordered,
// and the running remaining-land series is recomputed from the full sequence
// on every read. No remaining-land figure is ever persisted here.
type KisanPayment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ColonyID  uint      `gorm:"not null;index" json:"colony_id"`
	Rupees    float64   `gorm:"type:decimal(15,2);not null" json:"rupees"`
	Gaj       float64   `gorm:"type:decimal(15,2);not null" json:"gaj"`
	RegPlotNo *string   `gorm:"index" json:"reg_plot_no"`
	Note      *string   `gorm:"type:text" json:"note"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Colony *Colony `gorm:"foreignKey:ColonyID" json:"colony,omitempty"`
}

// TableName specifies the table name for KisanPayment
func (KisanPayment) TableName() string {
	return "kisan_payments"
}

// ToEvent normalizes the record into the engine's payment event.
func (k *KisanPayment) ToEvent() engine.PaymentEvent {
	ev := engine.PaymentEvent{
		ID:          k.ID,
		SequenceKey: k.CreatedAt,
		Rupees:      k.Rupees,
		Gaj:         k.Gaj,
	}
	if k.RegPlotNo != nil {
		ev.RegPlotNo = *k.RegPlotNo
	}
	return ev
}

// KisanPaymentEvents normalizes a payment list for the ledger walk.
func KisanPaymentEvents(payments []KisanPayment) []engine.PaymentEvent {
	events := make([]engine.PaymentEvent, 0, len(payments))
	for i := range payments {
		events = append(events, payments[i].ToEvent())
	}
	return events
}

// KisanPaymentResponse is one row of the derived payment ledger view. The
// remaining-land figure is computed per read, never stored.
type KisanPaymentResponse struct {
	ID               uint      `json:"id"`
	ColonyID         uint      `json:"colony_id"`
	Rupees           float64   `json:"rupees"`
	Gaj              float64   `json:"gaj"`
	RegPlotNo        *string   `json:"reg_plot_no"`
	Note             *string   `json:"note"`
	ConsumedGaj      float64   `json:"consumed_gaj"`
	RemainingLandGaj float64   `json:"remaining_land_gaj"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToResponse converts KisanPayment plus its derived ledger row into the
// response shape.
func (k *KisanPayment) ToResponse(row engine.LedgerRow) KisanPaymentResponse {
	return KisanPaymentResponse{
		ID:               k.ID,
		ColonyID:         k.ColonyID,
		Rupees:           k.Rupees,
		Gaj:              k.Gaj,
		RegPlotNo:        k.RegPlotNo,
		Note:             k.Note,
		ConsumedGaj:      row.ConsumedGaj,
		RemainingLandGaj: row.RemainingGaj,
		CreatedAt:        k.CreatedAt,
	}
}
