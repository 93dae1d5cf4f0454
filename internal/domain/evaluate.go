package domain

import "fmt"

// Section identifies one of the three independently present results.
type Section string

const (
	SectionRisk       Section = "risk"
	SectionCompliance Section = "compliance"
	SectionFault      Section = "fault"
)

// Issue explains why a section is absent.
type Issue struct {
	Section Section
	Err     error
}

func (i Issue) String() string {
	if i.Err == nil {
		return string(i.Section)
	}
	return i.Err.Error()
}

// Evaluation holds the three results for one measurement. A nil section is
// absent and has a matching entry in Issues.
type Evaluation struct {
	Risk       *RiskAssessment
	Compliance *ComplianceAssessment
	Fault      *FaultAttribution
	Issues     []Issue
}

// Complete reports whether all three sections are present.
func (e Evaluation) Complete() bool {
	return e.Risk != nil && e.Compliance != nil && e.Fault != nil
}

// Evaluate parses raw readings and runs the full evaluation. It never fails as
// a whole; missing or invalid readings only suppress the sections that need them.
func Evaluate(raw RawMeasurement) Evaluation {
	return EvaluateMeasurement(ParseMeasurement(raw))
}

// EvaluateMeasurement runs the surface humidity and compliance evaluators
// independently and attributes fault when both are present.
func EvaluateMeasurement(m Measurement) Evaluation {
	var eval Evaluation

	risk, err := EvaluateSurfaceHumidity(m.RoomTemp, m.Humidity, m.SurfaceTemp)
	if err != nil {
		eval.Issues = append(eval.Issues, Issue{Section: SectionRisk, Err: err})
	} else {
		eval.Risk = &risk
	}

	compliance, err := EvaluateCompliance(m.RoomTemp, m.Humidity, m.OutdoorTemp)
	if err != nil {
		eval.Issues = append(eval.Issues, Issue{Section: SectionCompliance, Err: err})
	} else {
		eval.Compliance = &compliance
	}

	if eval.Risk == nil || eval.Compliance == nil {
		eval.Issues = append(eval.Issues, Issue{
			Section: SectionFault,
			Err:     fmt.Errorf("fault: requires risk and compliance: %w", ErrIncompleteInput),
		})
		return eval
	}

	fault := EvaluateFault(risk, compliance, m.Humidity, m.SurfaceTemp)
	eval.Fault = &fault
	return eval
}
