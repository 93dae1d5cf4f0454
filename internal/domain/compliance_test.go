package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxPermissibleVaporPressure(t *testing.T) {
	tests := []struct {
		ta       float64
		expected float64
	}{
		{-5, 983.525},
		{0, 1112.2},
		{10, 1425.71},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			assert.InDelta(t, tt.expected, MaxPermissibleVaporPressure(tt.ta), 1e-9, "Ta %g", tt.ta)
		})
	}
}

func TestEvaluateCompliance(t *testing.T) {
	tests := []struct {
		name          string
		t, phi, ta    float64
		wantMax       float64
		wantCompliant bool
	}{
		{"winter room within limit", 20, 40, -5, 42.16, true},
		{"winter room above limit", 20, 45, -5, 42.16, false},
		{"mild outdoor", 20, 55, 10, 61.12, true},
		{"cold outdoor warm room", 22, 40, -10, 33.12, false},
		{"humidity above 100 compared raw", 20, 120, 30, 97.63, false},
		{"negative humidity compared raw", 20, -5, -20, 30.43, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := EvaluateCompliance(tt.t, tt.phi, tt.ta)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantMax, c.MaxAllowedHumidity, 0.01)
			assert.Equal(t, tt.wantCompliant, c.Compliant)
		})
	}
}

func TestEvaluateCompliance_ExactComparison(t *testing.T) {
	c, err := EvaluateCompliance(20, 0, -5)
	require.NoError(t, err)

	atLimit, err := EvaluateCompliance(20, c.MaxAllowedHumidity, -5)
	require.NoError(t, err)
	assert.True(t, atLimit.Compliant)

	above, err := EvaluateCompliance(20, math.Nextafter(c.MaxAllowedHumidity, 100), -5)
	require.NoError(t, err)
	assert.False(t, above.Compliant)
}

func TestEvaluateCompliance_MaxIsNotClamped(t *testing.T) {
	c, err := EvaluateCompliance(5, 50, 30)
	require.NoError(t, err)
	assert.Greater(t, c.MaxAllowedHumidity, 100.0)
}

func TestEvaluateCompliance_IncompleteInput(t *testing.T) {
	_, err := EvaluateCompliance(20, 40, math.NaN())
	require.ErrorIs(t, err, ErrIncompleteInput)
	assert.Contains(t, err.Error(), "outdoor_temp")
}

func TestEvaluateCompliance_DegenerateArithmetic(t *testing.T) {
	_, err := EvaluateCompliance(-magnusShift, 40, -5)
	require.ErrorIs(t, err, ErrDegenerateArithmetic)
}
