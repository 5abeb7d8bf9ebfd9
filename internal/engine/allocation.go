package engine

// Road is a normalized road allocation: a rectangular strip carved out of a
// parcel, measured in feet.
type Road struct {
	LengthFt float64
	WidthFt  float64
}

// AreaSqft returns the road strip area in square feet.
func (r Road) AreaSqft() float64 {
	return sanitize(sanitize(r.LengthFt) * sanitize(r.WidthFt))
}

// AreaGaj returns the road strip area in gaj.
func (r Road) AreaGaj() float64 {
	return SqftToGaj(r.AreaSqft())
}

// Amenity is a normalized park/amenity allocation. Some records store a
// precomputed AreaGaj, others store only the four raw sides; the stored
// figure wins when present.
type Amenity struct {
	FrontFt float64
	BackFt  float64
	LeftFt  float64
	RightFt float64

	// AreaGaj is the directly stored area, taking precedence over the side
	// measurements when non-nil.
	AreaGaj *float64
}

// EffectiveAreaGaj resolves the amenity area: the stored gaj figure when the
// record carries one, otherwise the quad estimate from the raw sides.
func (a Amenity) EffectiveAreaGaj() float64 {
	if a.AreaGaj != nil {
		return sanitize(*a.AreaGaj)
	}
	return QuadAreaGaj(a.FrontFt, a.BackFt, a.LeftFt, a.RightFt)
}

// Parcel is the normalized snapshot of a colony or property: total land,
// optional purchase price, and its non-salable allocations. Build one via the
// model normalization helpers; the engine never reads stored records directly.
type Parcel struct {
	TotalAreaGaj  float64
	PurchasePrice float64
	Roads         []Road
	Amenities     []Amenity
}

// UsedAreaGaj sums the non-salable area declared against the parcel: every
// road strip plus every amenity.
func UsedAreaGaj(p Parcel) float64 {
	var used float64
	for _, r := range p.Roads {
		used += r.AreaGaj()
	}
	for _, a := range p.Amenities {
		used += a.EffectiveAreaGaj()
	}
	return sanitize(used)
}

// RemainingLandGaj is total land minus non-salable allocations minus the area
// already consumed by recorded sales. The result is deliberately NOT floored
// at zero: a negative figure signals over-allocation and must reach the
// operator, not be clamped away.
func RemainingLandGaj(p Parcel, soldAreaGaj float64) float64 {
	return sanitize(p.TotalAreaGaj) - UsedAreaGaj(p) - sanitize(soldAreaGaj)
}
