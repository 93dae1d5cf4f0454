package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRiskTier(t *testing.T) {
	tests := []struct {
		name     string
		phiW     float64
		expected RiskTier
	}{
		{"dry", 30, TierUnproblematic},
		{"just below 65", math.Nextafter(65, 0), TierUnproblematic},
		{"at 65", 65, TierCritical},
		{"just below 70", math.Nextafter(70, 0), TierCritical},
		{"at 70", 70, TierMoldRisk},
		{"just below 100", math.Nextafter(100, 0), TierMoldRisk},
		{"at 100", 100, TierCondensation},
		{"above 100", 131.4, TierCondensation},
		{"negative", -5, TierUnproblematic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRiskTier(tt.phiW))
		})
	}
}

func TestEvaluateSurfaceHumidity(t *testing.T) {
	t.Run("window reveal at 15 degrees is critical", func(t *testing.T) {
		risk, err := EvaluateSurfaceHumidity(20, 50, 15)
		require.NoError(t, err)
		assert.InDelta(t, 68.54, risk.SurfaceHumidity, 0.01)
		assert.Equal(t, TierCritical, risk.Tier)
	})

	t.Run("surface at 9 degrees condenses", func(t *testing.T) {
		risk, err := EvaluateSurfaceHumidity(20, 50, 9)
		require.NoError(t, err)
		assert.InDelta(t, 101.73, risk.SurfaceHumidity, 0.01)
		assert.Equal(t, TierCondensation, risk.Tier)
	})

	t.Run("surface at room temperature keeps room humidity", func(t *testing.T) {
		risk, err := EvaluateSurfaceHumidity(20, 50, 20)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, risk.SurfaceHumidity, 1e-9)
		assert.Equal(t, TierUnproblematic, risk.Tier)
	})

	t.Run("mold risk band", func(t *testing.T) {
		risk, err := EvaluateSurfaceHumidity(20, 50, 12)
		require.NoError(t, err)
		assert.InDelta(t, 83.31, risk.SurfaceHumidity, 0.01)
		assert.Equal(t, TierMoldRisk, risk.Tier)
	})

	t.Run("result is not clamped", func(t *testing.T) {
		risk, err := EvaluateSurfaceHumidity(25, 90, 0)
		require.NoError(t, err)
		assert.Greater(t, risk.SurfaceHumidity, 100.0)
	})
}

func TestEvaluateSurfaceHumidity_ClampsHumidity(t *testing.T) {
	tests := []struct {
		name    string
		phi     float64
		clamped float64
	}{
		{"below zero", -10, 0},
		{"above hundred", 110, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateSurfaceHumidity(21, tt.phi, 14)
			require.NoError(t, err)
			want, err := EvaluateSurfaceHumidity(21, tt.clamped, 14)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEvaluateSurfaceHumidity_ColderSurfaceIsMoreHumid(t *testing.T) {
	prev := math.Inf(-1)
	for tw := 30.0; tw >= -20; tw -= 0.5 {
		risk, err := EvaluateSurfaceHumidity(20, 50, tw)
		require.NoError(t, err)
		assert.Greater(t, risk.SurfaceHumidity, prev, "surface at %g", tw)
		prev = risk.SurfaceHumidity
	}
}

func TestEvaluateSurfaceHumidity_IncompleteInput(t *testing.T) {
	tests := []struct {
		name        string
		t, phi, tw  float64
		wantMissing string
	}{
		{"room temp NaN", math.NaN(), 50, 15, "room_temp"},
		{"humidity infinite", 20, math.Inf(1), 15, "humidity"},
		{"surface temp negative infinity", 20, 50, math.Inf(-1), "surface_temp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateSurfaceHumidity(tt.t, tt.phi, tt.tw)
			require.ErrorIs(t, err, ErrIncompleteInput)
			assert.Contains(t, err.Error(), tt.wantMissing)
		})
	}
}

func TestEvaluateSurfaceHumidity_DegenerateArithmetic(t *testing.T) {
	tests := []struct {
		name  string
		t, tw float64
	}{
		{"surface at the Magnus pole", 20, -magnusShift},
		{"surface just past the pole", 20, -243.2},
		{"room just past the pole", -243.2, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateSurfaceHumidity(tt.t, 50, tt.tw)
			require.ErrorIs(t, err, ErrDegenerateArithmetic)
		})
	}
}

func TestRiskTier_LabelAndStatus(t *testing.T) {
	tests := []struct {
		tier   RiskTier
		label  string
		status string
	}{
		{TierUnproblematic, "Unproblematic", "green"},
		{TierCritical, "Critical", "yellow"},
		{TierMoldRisk, "Mold risk", "red"},
		{TierCondensation, "Dew point reached - condensation", "blue"},
		{RiskTier("bogus"), "", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.label, tt.tier.Label())
			assert.Equal(t, tt.status, tt.tier.Status())
		})
	}
}

func TestGaugePosition(t *testing.T) {
	tests := []struct {
		phiW     float64
		expected float64
	}{
		{-10, 0},
		{0, 0},
		{30, 30},
		{60, 60},
		{65, 67.5},
		{70, 75},
		{85, 85},
		{100, 95},
		{110, 97.5},
		{120, 100},
		{500, 100},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			assert.InDelta(t, tt.expected, GaugePosition(tt.phiW), 1e-9, "phi_w %g", tt.phiW)
		})
	}
}
