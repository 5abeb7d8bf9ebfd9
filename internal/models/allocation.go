package models

import (
	"time"

	"github.com/bhumicrm/bhumi-api/internal/engine"
)

// RoadAllocation is a rectangular road strip declared against a colony or a
// property. Its area is always recomputed from the raw dimensions, never
// cached on the record.
type RoadAllocation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ColonyID   *uint     `gorm:"index" json:"colony_id"`
	PropertyID *uint     `gorm:"index" json:"property_id"`
	Name       string    `json:"name"`
	LengthFt   float64   `gorm:"type:decimal(10,2);not null" json:"length_ft"`
	WidthFt    float64   `gorm:"type:decimal(10,2);not null" json:"width_ft"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for RoadAllocation
func (RoadAllocation) TableName() string {
	return "road_allocations"
}

// ToRoad normalizes the record into the engine's road shape.
func (r *RoadAllocation) ToRoad() engine.Road {
	return engine.Road{LengthFt: r.LengthFt, WidthFt: r.WidthFt}
}

// RoadAllocationResponse is the JSON response format for road allocations.
type RoadAllocationResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	LengthFt float64 `json:"length_ft"`
	WidthFt  float64 `json:"width_ft"`
	AreaSqft float64 `json:"area_sqft"`
	AreaGaj  float64 `json:"area_gaj"`
}

// ToResponse converts RoadAllocation to RoadAllocationResponse.
func (r *RoadAllocation) ToResponse() RoadAllocationResponse {
	road := r.ToRoad()
	return RoadAllocationResponse{
		ID:       r.ID,
		Name:     r.Name,
		LengthFt: r.LengthFt,
		WidthFt:  r.WidthFt,
		AreaSqft: road.AreaSqft(),
		AreaGaj:  road.AreaGaj(),
	}
}

// ParkAllocation is a park or amenity carved out of a colony or property.
// Older records store a precomputed area in gaj; newer ones store the four
// side measurements and derive the area on read.
type ParkAllocation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ColonyID   *uint     `gorm:"index" json:"colony_id"`
	PropertyID *uint     `gorm:"index" json:"property_id"`
	Name       string    `json:"name"`
	FrontFt    float64   `gorm:"type:decimal(10,2)" json:"front_ft"`
	BackFt     float64   `gorm:"type:decimal(10,2)" json:"back_ft"`
	LeftFt     float64   `gorm:"type:decimal(10,2)" json:"left_ft"`
	RightFt    float64   `gorm:"type:decimal(10,2)" json:"right_ft"`
	AreaGaj    *float64  `gorm:"type:decimal(15,2)" json:"area_gaj"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for ParkAllocation
func (ParkAllocation) TableName() string {
	return "park_allocations"
}

// ToAmenity normalizes the record into the engine's amenity shape, keeping
// the stored-area-over-sides precedence.
func (p *ParkAllocation) ToAmenity() engine.Amenity {
	return engine.Amenity{
		FrontFt: p.FrontFt,
		BackFt:  p.BackFt,
		LeftFt:  p.LeftFt,
		RightFt: p.RightFt,
		AreaGaj: p.AreaGaj,
	}
}

// ParkAllocationResponse is the JSON response format for park allocations.
type ParkAllocationResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	FrontFt float64 `json:"front_ft"`
	BackFt  float64 `json:"back_ft"`
	LeftFt  float64 `json:"left_ft"`
	RightFt float64 `json:"right_ft"`
	AreaGaj float64 `json:"area_gaj"`
	Stored  bool    `json:"stored_area"`
}

// ToResponse converts ParkAllocation to ParkAllocationResponse.
func (p *ParkAllocation) ToResponse() ParkAllocationResponse {
	return ParkAllocationResponse{
		ID:      p.ID,
		Name:    p.Name,
		FrontFt: p.FrontFt,
		BackFt:  p.BackFt,
		LeftFt:  p.LeftFt,
		RightFt: p.RightFt,
		AreaGaj: p.ToAmenity().EffectiveAreaGaj(),
		Stored:  p.AreaGaj != nil,
	}
}
