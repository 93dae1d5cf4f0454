package domain

import "fmt"

// SIA 180 quadratic fit of the permissible indoor vapor pressure (Pa) over
// outdoor temperature (°C).
const (
	siaQuadratic = 0.3744
	siaLinear    = 27.607
	siaConstant  = 1112.2
)

// ComplianceAssessment is the SIA 180 humidity limit check for one measurement.
type ComplianceAssessment struct {
	MaxAllowedHumidity float64 `json:"max_allowed_humidity"`
	Compliant          bool    `json:"compliant"`
}

// MaxPermissibleVaporPressure returns the SIA 180 indoor vapor pressure limit
// in Pa for outdoor temperature ta in °C.
func MaxPermissibleVaporPressure(ta float64) float64 {
	return siaQuadratic*ta*ta + siaLinear*ta + siaConstant
}

// EvaluateCompliance computes the maximum permissible indoor relative humidity
// for room temperature t and outdoor temperature ta, and checks the measured
// phi against it. phi is compared as measured, without clamping, and
// phi_max is not bounded to [0, 100].
func EvaluateCompliance(t, phi, ta float64) (ComplianceAssessment, error) {
	if err := requireFinite(input{"room_temp", t}, input{"humidity", phi}, input{"outdoor_temp", ta}); err != nil {
		return ComplianceAssessment{}, fmt.Errorf("compliance: %w", err)
	}

	pMax := MaxPermissibleVaporPressure(ta)
	pSat := SaturationPressure(t) * 100
	if !usableDivisor(pSat) {
		return ComplianceAssessment{}, fmt.Errorf("compliance: saturation pressure %g Pa at %g °C: %w", pSat, t, ErrDegenerateArithmetic)
	}

	phiMax := 100 * pMax / pSat
	if !isFinite(phiMax) {
		return ComplianceAssessment{}, fmt.Errorf("compliance: %w", ErrDegenerateArithmetic)
	}

	return ComplianceAssessment{
		MaxAllowedHumidity: phiMax,
		Compliant:          phi <= phiMax,
	}, nil
}
