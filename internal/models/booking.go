package models

import (
	"time"

	"github.com/bhumicrm/bhumi-api/internal/engine"
)

// Booking is a plot sale record: the commission base for the agent who closed
// it. Commission amounts are never stored; they are derived from this record
// on every read.
type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PlotID        uint      `gorm:"not null;index" json:"plot_id"`
	CustomerName  string    `gorm:"not null" json:"customer_name"`
	CustomerPhone *string   `json:"customer_phone"`
	AgentID       *uint     `gorm:"index" json:"agent_id"`
	TotalAmount   float64   `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	RatePct       *float64  `gorm:"type:decimal(5,2)" json:"rate_pct"`
	Status        string    `gorm:"default:booked;index" json:"status"`
	Note          *string   `gorm:"type:text" json:"note"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Associations
	Plot       Plot              `gorm:"foreignKey:PlotID" json:"plot,omitempty"`
	Agent      *User             `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	Commission *CommissionRecord `gorm:"foreignKey:BookingID" json:"commission,omitempty"`
}

// TableName specifies the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// Booking status constants
const (
	BookingStatusBooked    = "booked"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// ToBookingRecord normalizes the booking (and its attached commission status
// record, when loaded) into the engine's input shape.
func (b *Booking) ToBookingRecord() engine.BookingRecord {
	record := engine.BookingRecord{
		ID:         b.ID,
		SaleAmount: b.TotalAmount,
		AgentID:    b.AgentID,
		CreatedAt:  b.CreatedAt,
	}
	if b.RatePct != nil {
		record.RatePctHint = *b.RatePct
	}
	if b.Commission != nil {
		record.Status = b.Commission.Status
	}
	return record
}

// BookingResponse is the JSON response format for bookings.
type BookingResponse struct {
	ID            uint      `json:"id"`
	PlotID        uint      `json:"plot_id"`
	PlotNo        string    `json:"plot_no,omitempty"`
	ColonyName    string    `json:"colony_name,omitempty"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone *string   `json:"customer_phone"`
	AgentID       *uint     `json:"agent_id"`
	AgentName     string    `json:"agent_name,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	Note          *string   `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse converts Booking to BookingResponse.
func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		PlotID:        b.PlotID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		AgentID:       b.AgentID,
		TotalAmount:   b.TotalAmount,
		Status:        b.Status,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
	}
	if b.Plot.ID != 0 {
		resp.PlotNo = b.Plot.PlotNo
		if b.Plot.Colony != nil {
			resp.ColonyName = b.Plot.Colony.Name
		}
	}
	if b.Agent != nil {
		resp.AgentName = b.Agent.FullName
	}
	return resp
}
