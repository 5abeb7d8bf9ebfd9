package models

import (
	"time"

	"github.com/bhumicrm/bhumi-api/internal/engine"
)

// CommissionRecord persists ONLY the lifecycle state of a booking's
// commission. Every amount (rate, commission, TDS, net payable) is derived
// fresh from the booking on each read and discarded after render; the record
// store never holds a figure that could go stale.
type CommissionRecord struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	BookingID    uint       `gorm:"not null;uniqueIndex" json:"booking_id"`
	Status       string     `gorm:"default:pending;not null;index" json:"status"`
	ApprovedAt   *time.Time `json:"approved_at"`
	ApprovedByID *uint      `gorm:"index" json:"approved_by_id"`
	PaidAt       *time.Time `json:"paid_at"`
	PaymentRef   *string    `json:"payment_ref"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Associations
	Booking    *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	ApprovedBy *User    `gorm:"foreignKey:ApprovedByID" json:"approved_by,omitempty"`
}

// TableName specifies the table name for CommissionRecord
func (CommissionRecord) TableName() string {
	return "commission_records"
}

// MayApprove returns true if the commission can be approved.
func (c *CommissionRecord) MayApprove() bool {
	return c.Status == engine.CommissionStatusPending
}

// MayPay returns true if the commission payout can be recorded.
func (c *CommissionRecord) MayPay() bool {
	return c.Status == engine.CommissionStatusApproved
}

// CommissionResponse pairs the derived amounts with the persisted lifecycle
// fields for presentation.
type CommissionResponse struct {
	BookingID        uint       `json:"booking_id"`
	AgentID          uint       `json:"agent_id"`
	AgentName        string     `json:"agent_name,omitempty"`
	CustomerName     string     `json:"customer_name,omitempty"`
	PlotNo           string     `json:"plot_no,omitempty"`
	SaleAmount       float64    `json:"sale_amount"`
	RatePct          float64    `json:"rate_pct"`
	CommissionAmount float64    `json:"commission_amount"`
	TDSAmount        float64    `json:"tds_amount"`
	FinalAmount      float64    `json:"final_amount"`
	Status           string     `json:"status"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	BookedAt         time.Time  `json:"booked_at"`
}

// NewCommissionResponse builds the response from a derived commission and the
// booking it came from.
func NewCommissionResponse(c engine.Commission, booking *Booking) CommissionResponse {
	resp := CommissionResponse{
		BookingID:        c.BookingID,
		AgentID:          c.AgentID,
		SaleAmount:       c.SaleAmount,
		RatePct:          c.RatePct,
		CommissionAmount: c.CommissionAmount,
		TDSAmount:        c.TDSAmount,
		FinalAmount:      c.FinalAmount,
		Status:           c.Status,
		BookedAt:         c.BookedAt,
	}
	if booking != nil {
		resp.CustomerName = booking.CustomerName
		if booking.Agent != nil {
			resp.AgentName = booking.Agent.FullName
		}
		if booking.Plot.ID != 0 {
			resp.PlotNo = booking.Plot.PlotNo
		}
		if booking.Commission != nil {
			resp.ApprovedAt = booking.Commission.ApprovedAt
			resp.PaidAt = booking.Commission.PaidAt
		}
	}
	return resp
}
