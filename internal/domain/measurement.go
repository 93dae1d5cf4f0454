package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Measurement is one parsed snapshot of room conditions.
type Measurement struct {
	RoomTemp    float64 `json:"room_temp"`    // T, °C
	Humidity    float64 `json:"humidity"`     // phi, %
	SurfaceTemp float64 `json:"surface_temp"` // Tw, °C
	OutdoorTemp float64 `json:"outdoor_temp"` // Ta, °C
}

// Reading is a numeric value as entered, before parsing. It decodes from a
// JSON string or a JSON number; null decodes to the empty reading.
type Reading string

// UnmarshalJSON implements json.Unmarshaler.
func (r *Reading) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Reading(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*r = Reading(n.String())
	}
	return nil
}

// Float parses the reading with [ParseNumber].
func (r Reading) Float() (float64, bool) {
	return ParseNumber(string(r))
}

// RawMeasurement is the boundary input: four readings plus optional metadata
// identifying where and when they were taken.
type RawMeasurement struct {
	RoomTemp    Reading `json:"room_temp"`
	Humidity    Reading `json:"humidity"`
	SurfaceTemp Reading `json:"surface_temp"`
	OutdoorTemp Reading `json:"outdoor_temp"`

	SensorID   string `json:"sensor_id,omitempty"`
	RecordedAt string `json:"recorded_at,omitempty"`
}

// ParseNumber parses the leading decimal number of s, accepting a comma as
// the decimal separator ("20,5"). Only the first comma is replaced, and text
// after the number is ignored, so "20 °C" is 20 and "1,000,5" is 1.
// Input without a leading number and non-finite values return false.
func ParseNumber(s string) (float64, bool) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	num := leadingDecimal(s)
	if num == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

// leadingDecimal returns the longest prefix of s of the form
// [sign] digits [. digits] [e [sign] digits] with at least one mantissa digit.
// An exponent marker without digits is not part of the number.
func leadingDecimal(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}
	return s[:end]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseMeasurement parses all four readings. A reading that does not parse
// becomes NaN, which the evaluators reject as incomplete input.
func ParseMeasurement(raw RawMeasurement) Measurement {
	return Measurement{
		RoomTemp:    parseOrNaN(raw.RoomTemp),
		Humidity:    parseOrNaN(raw.Humidity),
		SurfaceTemp: parseOrNaN(raw.SurfaceTemp),
		OutdoorTemp: parseOrNaN(raw.OutdoorTemp),
	}
}

func parseOrNaN(r Reading) float64 {
	v, ok := r.Float()
	if !ok {
		return math.NaN()
	}
	return v
}

// input pairs a reading with its name for error reporting.
type input struct {
	name  string
	value float64
}

// requireFinite returns ErrIncompleteInput naming every non-finite input.
func requireFinite(inputs ...input) error {
	var missing []string
	for _, in := range inputs {
		if !isFinite(in.value) {
			missing = append(missing, in.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrIncompleteInput, strings.Join(missing, ", "))
}
