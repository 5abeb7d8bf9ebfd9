package models

import (
	"time"

	"github.com/bhumicrm/bhumi-api/internal/engine"
)

// Plot represents a salable plot inside a colony or property.
type Plot struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ColonyID           *uint     `gorm:"index" json:"colony_id"`
	PropertyID         *uint     `gorm:"index" json:"property_id"`
	PlotNo             string    `gorm:"not null" json:"plot_no"`
	RegistrationNumber *string   `gorm:"index" json:"registration_number"`
	Status             string    `gorm:"default:available;index" json:"status"`
	AreaSqft           *float64  `gorm:"type:decimal(15,2)" json:"area_sqft"`
	AreaGaj            *float64  `gorm:"type:decimal(15,2)" json:"area_gaj"`
	FinalPricePerGaj   *float64  `gorm:"type:decimal(15,2)" json:"final_price_per_gaj"`
	PaidAmount         *float64  `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	Note               *string   `gorm:"type:text" json:"note"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Associations
	Colony   *Colony   `gorm:"foreignKey:ColonyID" json:"colony,omitempty"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Bookings []Booking `gorm:"foreignKey:PlotID" json:"bookings,omitempty"`
}

// TableName specifies the table name for Plot
func (Plot) TableName() string {
	return "plots"
}

// Plot status constants. A booked or sold plot consumes parcel area
// permanently; no transition returns it to the salable pool.
const (
	PlotStatusAvailable = "available"
	PlotStatusBooked    = "booked"
	PlotStatusSold      = "sold"
)

// AreaGajValue resolves the plot area: the stored gaj figure when present,
// otherwise converted from square feet.
func (p *Plot) AreaGajValue() float64 {
	if p.AreaGaj != nil {
		return *p.AreaGaj
	}
	if p.AreaSqft != nil {
		return engine.SqftToGaj(*p.AreaSqft)
	}
	return 0
}

// MayBook returns true if the plot can be booked.
func (p *Plot) MayBook() bool {
	return p.Status == PlotStatusAvailable
}

// MaySell returns true if the plot sale can be confirmed.
func (p *Plot) MaySell() bool {
	return p.Status == PlotStatusBooked
}

// TotalPrice is the asking price for the full plot area, or 0 when no final
// price per gaj has been agreed.
func (p *Plot) TotalPrice() float64 {
	if p.FinalPricePerGaj == nil {
		return 0
	}
	return *p.FinalPricePerGaj * p.AreaGajValue()
}

// DueAmount is the outstanding balance against the agreed price.
func (p *Plot) DueAmount() float64 {
	paid := 0.0
	if p.PaidAmount != nil {
		paid = *p.PaidAmount
	}
	return p.TotalPrice() - paid
}

// PlotResponse is the JSON response format for plots.
type PlotResponse struct {
	ID                 uint     `json:"id"`
	ColonyID           *uint    `json:"colony_id"`
	PropertyID         *uint    `json:"property_id"`
	ColonyName         string   `json:"colony_name,omitempty"`
	PropertyName       string   `json:"property_name,omitempty"`
	PlotNo             string   `json:"plot_no"`
	RegistrationNumber *string  `json:"registration_number"`
	Status             string   `json:"status"`
	AreaGaj            float64  `json:"area_gaj"`
	AreaSqft           float64  `json:"area_sqft"`
	FinalPricePerGaj   *float64 `json:"final_price_per_gaj"`
	TotalPrice         float64  `json:"total_price"`
	PaidAmount         float64  `json:"paid_amount"`
	DueAmount          float64  `json:"due_amount"`
	Note               *string  `json:"note"`
}

// ToResponse converts Plot to PlotResponse.
func (p *Plot) ToResponse() PlotResponse {
	resp := PlotResponse{
		ID:                 p.ID,
		ColonyID:           p.ColonyID,
		PropertyID:         p.PropertyID,
		PlotNo:             p.PlotNo,
		RegistrationNumber: p.RegistrationNumber,
		Status:             p.Status,
		AreaGaj:            p.AreaGajValue(),
		AreaSqft:           engine.GajToSqft(p.AreaGajValue()),
		FinalPricePerGaj:   p.FinalPricePerGaj,
		TotalPrice:         p.TotalPrice(),
		DueAmount:          p.DueAmount(),
		Note:               p.Note,
	}
	if p.PaidAmount != nil {
		resp.PaidAmount = *p.PaidAmount
	}
	if p.Colony != nil {
		resp.ColonyName = p.Colony.Name
	}
	if p.Property != nil {
		resp.PropertyName = p.Property.Name
	}
	return resp
}
