package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"integer", "20", 20, true},
		{"decimal point", "20.5", 20.5, true},
		{"decimal comma", "20,5", 20.5, true},
		{"negative comma", "-3,25", -3.25, true},
		{"surrounding space", "  48 ", 48, true},
		{"exponent", "1e1", 10, true},
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
		{"text", "warm", 0, false},
		{"unit suffix", "20 °C", 20, true},
		{"percent suffix", "50 %", 50, true},
		{"degree sign", "15°", 15, true},
		{"comma with suffix", "-1,5 °C", -1.5, true},
		{"two commas", "1,000,5", 1, true},
		{"leading dot", ".5", 0.5, true},
		{"trailing dot", "5.", 5, true},
		{"dangling exponent", "2e", 2, true},
		{"signed exponent", "25E-1x", 2.5, true},
		{"sign only", "-", 0, false},
		{"dot only", ".", 0, false},
		{"unit before number", "°C 20", 0, false},
		{"infinity word", "Infinity", 0, false},
		{"infinity", "Inf", 0, false},
		{"nan", "NaN", 0, false},
		{"overflow", "1e400", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReading_UnmarshalJSON(t *testing.T) {
	var m RawMeasurement
	err := json.Unmarshal([]byte(`{"room_temp":20.5,"humidity":"48,5","surface_temp":null,"sensor_id":"bath-1"}`), &m)
	require.NoError(t, err)

	assert.Equal(t, Reading("20.5"), m.RoomTemp)
	assert.Equal(t, Reading("48,5"), m.Humidity)
	assert.Equal(t, Reading(""), m.SurfaceTemp)
	assert.Equal(t, Reading(""), m.OutdoorTemp)
	assert.Equal(t, "bath-1", m.SensorID)
}

func TestReading_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var m RawMeasurement
	err := json.Unmarshal([]byte(`{"room_temp":{"value":20}}`), &m)
	assert.Error(t, err)
}

func TestParseMeasurement(t *testing.T) {
	m := ParseMeasurement(RawMeasurement{
		RoomTemp:    "20",
		Humidity:    "50,5",
		SurfaceTemp: "cold",
	})

	assert.Equal(t, 20.0, m.RoomTemp)
	assert.Equal(t, 50.5, m.Humidity)
	assert.True(t, math.IsNaN(m.SurfaceTemp))
	assert.True(t, math.IsNaN(m.OutdoorTemp))
}
