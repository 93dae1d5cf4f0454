package domain

// FaultCategory names who is most likely responsible for a humidity problem.
type FaultCategory string

const (
	FaultBuildingAndOccupant FaultCategory = "building_and_occupant"
	FaultBuildingSide        FaultCategory = "building_side"
	FaultOccupantSide        FaultCategory = "occupant_side"
	FaultMixedUnclear        FaultCategory = "mixed_unclear"
)

// Surface temperature below which the envelope is treated as defective, and
// the room humidity / surface humidity limit of the envelope carve-out.
const (
	coldSurfaceLimit    = 13.0
	envelopeHumidityCap = 70.0
)

// FaultAttribution is the responsibility heuristic for one measurement.
// Rule names the decision rule that produced Category.
type FaultAttribution struct {
	Category FaultCategory `json:"category"`
	Rule     string        `json:"rule,omitempty"`
}

// faultInput bundles what the fault rules look at.
type faultInput struct {
	risk        RiskAssessment
	compliance  ComplianceAssessment
	humidity    float64
	surfaceTemp float64
}

// faultRule returns a category and true when it applies.
type faultRule struct {
	name  string
	match func(in faultInput) (FaultCategory, bool)
}

// faultRules are evaluated in order. The order decides ties and must not change.
var faultRules = []faultRule{
	{name: "cold surface", match: func(in faultInput) (FaultCategory, bool) {
		if in.surfaceTemp >= coldSurfaceLimit {
			return "", false
		}
		if in.humidity > in.compliance.MaxAllowedHumidity {
			return FaultBuildingAndOccupant, true
		}
		return FaultBuildingSide, true
	}},
	{name: "compliant room, humid surface", match: func(in faultInput) (FaultCategory, bool) {
		if in.compliance.Compliant && in.humidity < envelopeHumidityCap && in.risk.SurfaceHumidity > envelopeHumidityCap {
			return FaultBuildingSide, true
		}
		return "", false
	}},
	{name: "room above limit", match: func(in faultInput) (FaultCategory, bool) {
		if in.humidity > in.compliance.MaxAllowedHumidity {
			return FaultOccupantSide, true
		}
		return "", false
	}},
}

// EvaluateFault attributes responsibility from the two assessments of a
// measurement plus its raw humidity phi and surface temperature tw.
func EvaluateFault(risk RiskAssessment, compliance ComplianceAssessment, phi, tw float64) FaultAttribution {
	category, rule := matchFaultRule(faultInput{
		risk:        risk,
		compliance:  compliance,
		humidity:    phi,
		surfaceTemp: tw,
	})
	return FaultAttribution{Category: category, Rule: rule}
}

// matchFaultRule returns the first matching category and the name of the
// rule that produced it.
func matchFaultRule(in faultInput) (FaultCategory, string) {
	for _, r := range faultRules {
		if c, ok := r.match(in); ok {
			return c, r.name
		}
	}
	return FaultMixedUnclear, "fallback"
}

// Description explains the category in one sentence.
func (c FaultCategory) Description() string {
	switch c {
	case FaultBuildingAndOccupant:
		return "The surface is too cold and the room humidity exceeds the SIA 180 limit; building and occupant share responsibility."
	case FaultBuildingSide:
		return "The building envelope is the likely cause: the surface gets humid although room humidity is acceptable."
	case FaultOccupantSide:
		return "Room humidity exceeds the SIA 180 limit; ventilation and usage are the likely cause."
	case FaultMixedUnclear:
		return "No clear attribution; building and usage may both contribute."
	default:
		return ""
	}
}
