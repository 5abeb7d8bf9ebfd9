// Package engine holds the derived-ledger computation core: pure,
// deterministic functions that turn raw colony/property records into
// remaining-land figures, running payment balances and commission payouts.
// Nothing in this package touches the database or caches results; every
// caller recomputes from a fresh snapshot.
package engine

import "math"

// SqftPerGaj is the fixed conversion ratio: 9 square feet = 1 gaj.
const SqftPerGaj = 9.0

// sanitize coerces NaN and ±Inf to 0 so no derived value ever leaks a
// non-finite number to the presentation layer.
func sanitize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// SqftToGaj converts an area in square feet to gaj.
func SqftToGaj(sqft float64) float64 {
	return sanitize(sqft) / SqftPerGaj
}

// GajToSqft converts an area in gaj to square feet.
func GajToSqft(gaj float64) float64 {
	return sanitize(gaj) * SqftPerGaj
}

// PricePerSqftToPerGaj converts a per-square-foot price to a per-gaj price.
func PricePerSqftToPerGaj(price float64) float64 {
	return sanitize(price) * SqftPerGaj
}

// PricePerGajToPerSqft converts a per-gaj price to a per-square-foot price.
func PricePerGajToPerSqft(price float64) float64 {
	return sanitize(price) / SqftPerGaj
}
