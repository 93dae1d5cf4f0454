package domain

import (
	"fmt"
	"math"
)

// RiskTier classifies surface relative humidity.
type RiskTier string

const (
	TierUnproblematic RiskTier = "unproblematic"
	TierCritical      RiskTier = "critical"
	TierMoldRisk      RiskTier = "mold_risk"
	TierCondensation  RiskTier = "condensation"
)

// RiskAssessment is the surface humidity result for one measurement.
type RiskAssessment struct {
	SurfaceHumidity float64  `json:"surface_humidity"`
	Tier            RiskTier `json:"tier"`
}

// tierRule maps every phi_w strictly below limit to tier.
type tierRule struct {
	limit float64
	tier  RiskTier
}

// tierRules are checked in order; anything at or above the last limit condenses.
var tierRules = []tierRule{
	{limit: 65, tier: TierUnproblematic},
	{limit: 70, tier: TierCritical},
	{limit: 100, tier: TierMoldRisk},
}

// ClassifyRiskTier maps a surface relative humidity in % to its risk tier.
func ClassifyRiskTier(phiW float64) RiskTier {
	for _, r := range tierRules {
		if phiW < r.limit {
			return r.tier
		}
	}
	return TierCondensation
}

// EvaluateSurfaceHumidity derives the relative humidity at a surface of
// temperature tw from room air at temperature t and humidity phi, and
// classifies it. phi is clamped to [0, 100] before use; the result is not.
func EvaluateSurfaceHumidity(t, phi, tw float64) (RiskAssessment, error) {
	if err := requireFinite(input{"room_temp", t}, input{"humidity", phi}, input{"surface_temp", tw}); err != nil {
		return RiskAssessment{}, fmt.Errorf("surface humidity: %w", err)
	}

	phiClamped := math.Min(100, math.Max(0, phi))
	e := (phiClamped / 100) * SaturationPressure(t)

	esW := SaturationPressure(tw)
	if !usableDivisor(esW) {
		return RiskAssessment{}, fmt.Errorf("surface humidity: saturation pressure %g hPa at %g °C: %w", esW, tw, ErrDegenerateArithmetic)
	}

	phiW := (e / esW) * 100
	if !isFinite(phiW) {
		return RiskAssessment{}, fmt.Errorf("surface humidity: %w", ErrDegenerateArithmetic)
	}

	return RiskAssessment{
		SurfaceHumidity: phiW,
		Tier:            ClassifyRiskTier(phiW),
	}, nil
}

// Label returns the human-readable tier name.
func (t RiskTier) Label() string {
	switch t {
	case TierUnproblematic:
		return "Unproblematic"
	case TierCritical:
		return "Critical"
	case TierMoldRisk:
		return "Mold risk"
	case TierCondensation:
		return "Dew point reached - condensation"
	default:
		return ""
	}
}

// Status returns the traffic-light code used by report renderers.
func (t RiskTier) Status() string {
	switch t {
	case TierUnproblematic:
		return "green"
	case TierCritical:
		return "yellow"
	case TierMoldRisk:
		return "red"
	case TierCondensation:
		return "blue"
	default:
		return ""
	}
}

// GaugePosition places a surface humidity on a 0–100 gauge that stretches the
// band around the critical limits: 0–60 % fills 0–60, 60–70 % fills 60–75,
// 70–100 % fills 75–95 and 100–120 % fills 95–100. Input outside [0, 120] is
// pinned to the ends.
func GaugePosition(phiW float64) float64 {
	x := math.Max(0, math.Min(phiW, 120))
	switch {
	case x <= 60:
		return x
	case x <= 70:
		return 60 + ((x-60)/10)*15
	case x <= 100:
		return 75 + ((x-70)/30)*20
	default:
		return 95 + ((x-100)/20)*5
	}
}
