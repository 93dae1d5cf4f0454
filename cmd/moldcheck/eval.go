package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/mold-risk-etl/internal/domain"
	"github.com/spf13/cobra"
)

var errIncomplete = errors.New("evaluation incomplete")

type evalOptions struct {
	roomTemp    string
	humidity    string
	surfaceTemp string
	outdoorTemp string
	input       string
	output      string
	strict      bool
}

func newEvalCmd() *cobra.Command {
	opts := &evalOptions{}
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate one measurement",
		Long: `Evaluate one measurement given as flags, as a JSON document (--input), or
both. Flags override values read from the document. Use --input - to read
JSON from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEval(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.roomTemp, "room-temp", "", "room air temperature T in °C")
	f.StringVar(&opts.humidity, "humidity", "", "room relative humidity phi in %")
	f.StringVar(&opts.surfaceTemp, "surface-temp", "", "coldest surface temperature Tw in °C")
	f.StringVar(&opts.outdoorTemp, "outdoor-temp", "", "outdoor temperature Ta in °C")
	f.StringVarP(&opts.input, "input", "i", "", "JSON measurement file, or - for stdin")
	f.StringVarP(&opts.output, "output", "o", "text", "output format: text, json or yaml")
	f.BoolVar(&opts.strict, "strict", false, "exit non-zero when any section is insufficient")

	return cmd
}

func runEval(cmd *cobra.Command, opts *evalOptions) error {
	render, ok := renderers[opts.output]
	if !ok {
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", opts.output)
	}

	raw, err := loadInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, &raw)

	eval := domain.Evaluate(raw)
	if err := render(cmd.OutOrStdout(), newReport(raw, eval)); err != nil {
		return fmt.Errorf("render %s: %w", opts.output, err)
	}

	if opts.strict && !eval.Complete() {
		return fmt.Errorf("%w: %d section(s) insufficient", errIncomplete, len(eval.Issues))
	}
	return nil
}

func loadInput(stdin io.Reader, path string) (domain.RawMeasurement, error) {
	var raw domain.RawMeasurement
	if path == "" {
		return raw, nil
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return raw, fmt.Errorf("read input: %w", err)
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("decode input: %w", err)
	}
	return raw, nil
}

// applyFlags overrides document values with explicitly set flags.
func applyFlags(cmd *cobra.Command, opts *evalOptions, raw *domain.RawMeasurement) {
	f := cmd.Flags()
	if f.Changed("room-temp") {
		raw.RoomTemp = domain.Reading(opts.roomTemp)
	}
	if f.Changed("humidity") {
		raw.Humidity = domain.Reading(opts.humidity)
	}
	if f.Changed("surface-temp") {
		raw.SurfaceTemp = domain.Reading(opts.surfaceTemp)
	}
	if f.Changed("outdoor-temp") {
		raw.OutdoorTemp = domain.Reading(opts.outdoorTemp)
	}
}
