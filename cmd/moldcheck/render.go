package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/couchcryptid/mold-risk-etl/internal/domain"
	"gopkg.in/yaml.v3"
)

const insufficient = "insufficient input"

// report is the rendered form of one evaluation. Nil sections are insufficient.
type report struct {
	Input      inputReport       `json:"input" yaml:"input"`
	Risk       *riskReport       `json:"risk" yaml:"risk"`
	Compliance *complianceReport `json:"compliance" yaml:"compliance"`
	Fault      *faultReport      `json:"fault" yaml:"fault"`
	Issues     []string          `json:"issues,omitempty" yaml:"issues,omitempty"`
}

type inputReport struct {
	RoomTemp    string `json:"room_temp" yaml:"room_temp"`
	Humidity    string `json:"humidity" yaml:"humidity"`
	SurfaceTemp string `json:"surface_temp" yaml:"surface_temp"`
	OutdoorTemp string `json:"outdoor_temp" yaml:"outdoor_temp"`
}

type riskReport struct {
	SurfaceHumidity float64         `json:"surface_humidity" yaml:"surface_humidity"`
	Tier            domain.RiskTier `json:"tier" yaml:"tier"`
	Label           string          `json:"label" yaml:"label"`
	Status          string          `json:"status" yaml:"status"`
	GaugePosition   float64         `json:"gauge_position" yaml:"gauge_position"`
}

type complianceReport struct {
	MaxAllowedHumidity float64 `json:"max_allowed_humidity" yaml:"max_allowed_humidity"`
	Compliant          bool    `json:"compliant" yaml:"compliant"`
}

type faultReport struct {
	Category    domain.FaultCategory `json:"category" yaml:"category"`
	Rule        string               `json:"rule" yaml:"rule"`
	Description string               `json:"description" yaml:"description"`
}

func newReport(raw domain.RawMeasurement, eval domain.Evaluation) report {
	r := report{
		Input: inputReport{
			RoomTemp:    string(raw.RoomTemp),
			Humidity:    string(raw.Humidity),
			SurfaceTemp: string(raw.SurfaceTemp),
			OutdoorTemp: string(raw.OutdoorTemp),
		},
	}
	if eval.Risk != nil {
		r.Risk = &riskReport{
			SurfaceHumidity: eval.Risk.SurfaceHumidity,
			Tier:            eval.Risk.Tier,
			Label:           eval.Risk.Tier.Label(),
			Status:          eval.Risk.Tier.Status(),
			GaugePosition:   domain.GaugePosition(eval.Risk.SurfaceHumidity),
		}
	}
	if eval.Compliance != nil {
		r.Compliance = &complianceReport{
			MaxAllowedHumidity: eval.Compliance.MaxAllowedHumidity,
			Compliant:          eval.Compliance.Compliant,
		}
	}
	if eval.Fault != nil {
		r.Fault = &faultReport{
			Category:    eval.Fault.Category,
			Rule:        eval.Fault.Rule,
			Description: eval.Fault.Category.Description(),
		}
	}
	for _, issue := range eval.Issues {
		r.Issues = append(r.Issues, issue.String())
	}
	return r
}

var renderers = map[string]func(io.Writer, report) error{
	"text": renderText,
	"json": renderJSON,
	"yaml": renderYAML,
}

func renderJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func renderYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func renderText(w io.Writer, r report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if r.Risk != nil {
		fmt.Fprintf(tw, "Surface humidity:\t%.1f %%\t%s (%s)\n", r.Risk.SurfaceHumidity, r.Risk.Label, r.Risk.Status)
	} else {
		fmt.Fprintf(tw, "Surface humidity:\t%s\t\n", insufficient)
	}

	if r.Compliance != nil {
		verdict := "exceeded"
		if r.Compliance.Compliant {
			verdict = "compliant"
		}
		fmt.Fprintf(tw, "SIA 180 limit:\t%.1f %%\t%s\n", r.Compliance.MaxAllowedHumidity, verdict)
	} else {
		fmt.Fprintf(tw, "SIA 180 limit:\t%s\t\n", insufficient)
	}

	if r.Fault != nil {
		fmt.Fprintf(tw, "Fault:\t%s\t%s\n", r.Fault.Category, r.Fault.Description)
	} else {
		fmt.Fprintf(tw, "Fault:\t%s\t\n", insufficient)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	for _, issue := range r.Issues {
		if _, err := fmt.Fprintf(w, "  - %s\n", issue); err != nil {
			return err
		}
	}
	return nil
}
