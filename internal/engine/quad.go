package engine

// QuadAreaSqft approximates the area of an irregular four-sided parcel from
// its side lengths in feet: ((front+back)/2) * ((left+right)/2). This is the
// trapezoidal averaging the business uses everywhere; it is exact only for
// trapezoids with perpendicular axes and is an accepted approximation, not a
// geometric area.
//
// Missing sides are treated as 0. A fully blank quad yields 0, and partial
// input still computes with zeros for the absent sides, which under-counts
// area for partially specified parks. That matches the historical records;
// do not reject partial input here.
func QuadAreaSqft(front, back, left, right float64) float64 {
	avgDepth := (sanitize(front) + sanitize(back)) / 2
	avgWidth := (sanitize(left) + sanitize(right)) / 2
	return sanitize(avgDepth * avgWidth)
}

// QuadAreaGaj is QuadAreaSqft converted to gaj.
func QuadAreaGaj(front, back, left, right float64) float64 {
	return SqftToGaj(QuadAreaSqft(front, back, left, right))
}
