package models

import (
	"time"

	"github.com/bhumicrm/bhumi-api/internal/engine"
)

// Property represents a property inside a colony with its own area
// bookkeeping: like a colony it owns allocations and plots, but its kisan
// purchase (if any) is tracked on the parent colony.
type Property struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ColonyID      *uint     `gorm:"index" json:"colony_id"`
	GUID          string    `gorm:"column:guid;not null" json:"guid"`
	Name          string    `gorm:"not null" json:"name"`
	Address       string    `gorm:"type:text" json:"address"`
	Status        string    `gorm:"default:active;index" json:"status"`
	TotalAreaSqft *float64  `gorm:"type:decimal(15,2)" json:"total_area_sqft"`
	TotalAreaGaj  *float64  `gorm:"type:decimal(15,2)" json:"total_area_gaj"`
	PurchasePrice *float64  `gorm:"type:decimal(15,2)" json:"purchase_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Associations
	Colony *Colony          `gorm:"foreignKey:ColonyID" json:"colony,omitempty"`
	Roads  []RoadAllocation `gorm:"foreignKey:PropertyID" json:"roads,omitempty"`
	Parks  []ParkAllocation `gorm:"foreignKey:PropertyID" json:"parks,omitempty"`
	Plots  []Plot           `gorm:"foreignKey:PropertyID" json:"plots,omitempty"`
}

// TableName specifies the table name for Property
func (Property) TableName() string {
	return "properties"
}

// TotalAreaGajValue resolves the property's total area in gaj.
func (p *Property) TotalAreaGajValue() float64 {
	if p.TotalAreaGaj != nil {
		return *p.TotalAreaGaj
	}
	if p.TotalAreaSqft != nil {
		return engine.SqftToGaj(*p.TotalAreaSqft)
	}
	return 0
}

// ToParcel normalizes the property into the engine's parcel snapshot.
func (p *Property) ToParcel() engine.Parcel {
	parcel := engine.Parcel{TotalAreaGaj: p.TotalAreaGajValue()}
	if p.PurchasePrice != nil {
		parcel.PurchasePrice = *p.PurchasePrice
	}
	for _, r := range p.Roads {
		parcel.Roads = append(parcel.Roads, r.ToRoad())
	}
	for _, park := range p.Parks {
		parcel.Amenities = append(parcel.Amenities, park.ToAmenity())
	}
	return parcel
}

// SoldAreaGaj sums the area of booked and sold plots on the property.
func (p *Property) SoldAreaGaj() float64 {
	var sold float64
	for _, plot := range p.Plots {
		if plot.Status == PlotStatusBooked || plot.Status == PlotStatusSold {
			sold += plot.AreaGajValue()
		}
	}
	return sold
}

// PropertyResponse is the JSON response format for properties.
type PropertyResponse struct {
	ID               uint      `json:"id"`
	ColonyID         *uint     `json:"colony_id"`
	ColonyName       string    `json:"colony_name,omitempty"`
	GUID             string    `json:"guid"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Status           string    `json:"status"`
	TotalAreaGaj     float64   `json:"total_area_gaj"`
	UsedAreaGaj      float64   `json:"used_area_gaj"`
	SoldAreaGaj      float64   `json:"sold_area_gaj"`
	RemainingAreaGaj float64   `json:"remaining_area_gaj"`
	PlotCount        int       `json:"plot_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToResponse converts Property to PropertyResponse.
func (p *Property) ToResponse() PropertyResponse {
	parcel := p.ToParcel()
	resp := PropertyResponse{
		ID:               p.ID,
		ColonyID:         p.ColonyID,
		GUID:             p.GUID,
		Name:             p.Name,
		Address:          p.Address,
		Status:           p.Status,
		TotalAreaGaj:     parcel.TotalAreaGaj,
		UsedAreaGaj:      engine.UsedAreaGaj(parcel),
		SoldAreaGaj:      p.SoldAreaGaj(),
		RemainingAreaGaj: engine.RemainingLandGaj(parcel, p.SoldAreaGaj()),
		PlotCount:        len(p.Plots),
		CreatedAt:        p.CreatedAt,
	}
	if p.Colony != nil {
		resp.ColonyName = p.Colony.Name
	}
	return resp
}
