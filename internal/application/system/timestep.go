package system

import "math"

// Time step limits
const (
	NominalDelta = 1.0 / 60.0
	MaxDelta     = 0.5
)

// ClampDelta returns dt, or NominalDelta when dt is NaN, infinite,
// negative or larger than MaxDelta.
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 || dt > MaxDelta {
		return NominalDelta
	}
	return dt
}

// sanitizeDelta only rejects NaN, infinite and negative values (as 0).
// Used by components that trust the caller to have clamped already.
func sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}
