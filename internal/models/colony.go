package models

import (
	"time"

	"github.com/bhumicrm/bhumi-api/internal/engine"
)

// Colony represents a land colony purchased from kisans and carved into
// roads, parks, properties and plots.
type Colony struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	GUID          string    `gorm:"column:guid;not null" json:"guid"`
	Name          string    `gorm:"not null" json:"name"`
	Address       string    `gorm:"type:text" json:"address"`
	Status        string    `gorm:"default:active;index" json:"status"`
	TotalAreaSqft *float64  `gorm:"type:decimal(15,2)" json:"total_area_sqft"`
	TotalAreaGaj  *float64  `gorm:"type:decimal(15,2)" json:"total_area_gaj"`
	PurchasePrice *float64  `gorm:"type:decimal(15,2)" json:"purchase_price"`
	Note          *string   `gorm:"type:text" json:"note"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Associations
	Roads      []RoadAllocation `gorm:"foreignKey:ColonyID" json:"roads,omitempty"`
	Parks      []ParkAllocation `gorm:"foreignKey:ColonyID" json:"parks,omitempty"`
	Properties []Property       `gorm:"foreignKey:ColonyID" json:"properties,omitempty"`
	Plots      []Plot           `gorm:"foreignKey:ColonyID" json:"plots,omitempty"`
	Payments   []KisanPayment   `gorm:"foreignKey:ColonyID" json:"payments,omitempty"`
}

// TableName specifies the table name for Colony
func (Colony) TableName() string {
	return "colonies"
}

// Colony status constants
const (
	ColonyStatusActive   = "active"
	ColonyStatusSoldOut  = "sold_out"
	ColonyStatusArchived = "archived"
)

// TotalAreaGajValue resolves the colony's total area in gaj: the stored gaj
// figure when present, otherwise converted from the square-feet field.
func (c *Colony) TotalAreaGajValue() float64 {
	if c.TotalAreaGaj != nil {
		return *c.TotalAreaGaj
	}
	if c.TotalAreaSqft != nil {
		return engine.SqftToGaj(*c.TotalAreaSqft)
	}
	return 0
}

// PurchasePriceValue returns the purchase price or 0 when unset.
func (c *Colony) PurchasePriceValue() float64 {
	if c.PurchasePrice != nil {
		return *c.PurchasePrice
	}
	return 0
}

// ToParcel normalizes the colony and its loaded allocations into the engine's
// parcel snapshot. This is the single ingestion point; the engine never sees
// the stored record shapes.
func (c *Colony) ToParcel() engine.Parcel {
	parcel := engine.Parcel{
		TotalAreaGaj:  c.TotalAreaGajValue(),
		PurchasePrice: c.PurchasePriceValue(),
	}
	for _, r := range c.Roads {
		parcel.Roads = append(parcel.Roads, r.ToRoad())
	}
	for _, p := range c.Parks {
		parcel.Amenities = append(parcel.Amenities, p.ToAmenity())
	}
	return parcel
}

// SoldAreaGaj sums the area of plots no longer in the salable pool. A booked
// or sold plot consumes colony area permanently; there is no transition back.
func (c *Colony) SoldAreaGaj() float64 {
	var sold float64
	for _, p := range c.Plots {
		if p.Status == PlotStatusBooked || p.Status == PlotStatusSold {
			sold += p.AreaGajValue()
		}
	}
	return sold
}

// ColonyResponse is the JSON response format for colonies, including the
// derived land figures recomputed on every read.
type ColonyResponse struct {
	ID               uint      `json:"id"`
	GUID             string    `json:"guid"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Status           string    `json:"status"`
	TotalAreaGaj     float64   `json:"total_area_gaj"`
	PurchasePrice    float64   `json:"purchase_price"`
	UsedAreaGaj      float64   `json:"used_area_gaj"`
	SoldAreaGaj      float64   `json:"sold_area_gaj"`
	RemainingAreaGaj float64   `json:"remaining_area_gaj"`
	PricePerGaj      float64   `json:"price_per_gaj"`
	PlotCount        int       `json:"plot_count"`
	AvailablePlots   int       `json:"available_plots"`
	BookedPlots      int       `json:"booked_plots"`
	SoldPlots        int       `json:"sold_plots"`
	Note             *string   `json:"note"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToResponse converts Colony to ColonyResponse. Derived figures come from the
// engine against whatever associations are loaded; callers wanting the full
// picture must preload roads, parks, plots and payments.
func (c *Colony) ToResponse() ColonyResponse {
	parcel := c.ToParcel()
	ledger := engine.ComputeLedger(parcel, KisanPaymentEvents(c.Payments))

	var available, booked, sold int
	for _, p := range c.Plots {
		switch p.Status {
		case PlotStatusAvailable:
			available++
		case PlotStatusBooked:
			booked++
		case PlotStatusSold:
			sold++
		}
	}

	return ColonyResponse{
		ID:               c.ID,
		GUID:             c.GUID,
		Name:             c.Name,
		Address:          c.Address,
		Status:           c.Status,
		TotalAreaGaj:     parcel.TotalAreaGaj,
		PurchasePrice:    parcel.PurchasePrice,
		UsedAreaGaj:      engine.UsedAreaGaj(parcel),
		SoldAreaGaj:      c.SoldAreaGaj(),
		RemainingAreaGaj: ledger.CurrentRemainingGaj,
		PricePerGaj:      ledger.PricePerGaj,
		PlotCount:        len(c.Plots),
		AvailablePlots:   available,
		BookedPlots:      booked,
		SoldPlots:        sold,
		Note:             c.Note,
		CreatedAt:        c.CreatedAt,
	}
}
