package domain

import "math"

// Magnus coefficients over water (hPa, °C).
const (
	magnusBase  = 6.112
	magnusSlope = 17.62
	magnusShift = 243.12
)

// SaturationPressure returns the saturation vapor pressure in hPa at the given
// temperature in °C. Non-finite input propagates.
func SaturationPressure(t float64) float64 {
	return magnusBase * math.Exp((magnusSlope*t)/(magnusShift+t))
}

// usableDivisor reports whether a saturation pressure is a positive finite number.
func usableDivisor(p float64) bool {
	return p > 0 && !math.IsInf(p, 1)
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
