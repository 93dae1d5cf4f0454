package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateFault(t *testing.T) {
	compliant := ComplianceAssessment{MaxAllowedHumidity: 60, Compliant: true}
	exceeded := ComplianceAssessment{MaxAllowedHumidity: 40, Compliant: false}

	tests := []struct {
		name       string
		risk       RiskAssessment
		compliance ComplianceAssessment
		phi, tw    float64
		want       FaultCategory
		wantRule   string
	}{
		{
			name:       "cold surface and humid room",
			risk:       RiskAssessment{SurfaceHumidity: 95, Tier: TierMoldRisk},
			compliance: exceeded,
			phi:        50,
			tw:         10,
			want:       FaultBuildingAndOccupant,
			wantRule:   "cold surface",
		},
		{
			name:       "cold surface and acceptable room",
			risk:       RiskAssessment{SurfaceHumidity: 80, Tier: TierMoldRisk},
			compliance: compliant,
			phi:        45,
			tw:         12.9,
			want:       FaultBuildingSide,
			wantRule:   "cold surface",
		},
		{
			name:       "cold surface at the limit counts as acceptable room",
			risk:       RiskAssessment{SurfaceHumidity: 80, Tier: TierMoldRisk},
			compliance: compliant,
			phi:        60,
			tw:         11,
			want:       FaultBuildingSide,
			wantRule:   "cold surface",
		},
		{
			name:       "compliant room with humid surface",
			risk:       RiskAssessment{SurfaceHumidity: 73, Tier: TierMoldRisk},
			compliance: compliant,
			phi:        50,
			tw:         14,
			want:       FaultBuildingSide,
			wantRule:   "compliant room, humid surface",
		},
		{
			name:       "surface exactly 70 is not humid enough for the envelope rule",
			risk:       RiskAssessment{SurfaceHumidity: 70, Tier: TierMoldRisk},
			compliance: compliant,
			phi:        50,
			tw:         14,
			want:       FaultMixedUnclear,
			wantRule:   "fallback",
		},
		{
			name:       "room above limit",
			risk:       RiskAssessment{SurfaceHumidity: 64, Tier: TierUnproblematic},
			compliance: exceeded,
			phi:        50,
			tw:         16,
			want:       FaultOccupantSide,
			wantRule:   "room above limit",
		},
		{
			name:       "nothing conclusive",
			risk:       RiskAssessment{SurfaceHumidity: 51, Tier: TierUnproblematic},
			compliance: compliant,
			phi:        40,
			tw:         16,
			want:       FaultMixedUnclear,
			wantRule:   "fallback",
		},
		{
			name:       "surface at 13 degrees is not cold",
			risk:       RiskAssessment{SurfaceHumidity: 60, Tier: TierUnproblematic},
			compliance: exceeded,
			phi:        50,
			tw:         13,
			want:       FaultOccupantSide,
			wantRule:   "room above limit",
		},
		{
			name:       "compliant but room humidity at 70 skips envelope rule",
			risk:       RiskAssessment{SurfaceHumidity: 90, Tier: TierMoldRisk},
			compliance: ComplianceAssessment{MaxAllowedHumidity: 97, Compliant: true},
			phi:        70,
			tw:         17,
			want:       FaultMixedUnclear,
			wantRule:   "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateFault(tt.risk, tt.compliance, tt.phi, tt.tw)
			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, tt.wantRule, got.Rule)
		})
	}
}

func TestEvaluateFault_ColdSurfaceOverridesLaterRules(t *testing.T) {
	// Every later rule would match on its own; the cold surface wins regardless.
	risk := RiskAssessment{SurfaceHumidity: 99, Tier: TierMoldRisk}

	withinLimit := EvaluateFault(risk, ComplianceAssessment{MaxAllowedHumidity: 65, Compliant: true}, 50, 10)
	assert.Equal(t, FaultBuildingSide, withinLimit.Category)

	aboveLimit := EvaluateFault(risk, ComplianceAssessment{MaxAllowedHumidity: 40, Compliant: false}, 50, 10)
	assert.Equal(t, FaultBuildingAndOccupant, aboveLimit.Category)
}

func TestFaultRules_Independently(t *testing.T) {
	require.Len(t, faultRules, 3)

	in := faultInput{
		risk:        RiskAssessment{SurfaceHumidity: 80},
		compliance:  ComplianceAssessment{MaxAllowedHumidity: 45, Compliant: false},
		humidity:    50,
		surfaceTemp: 10,
	}

	c, ok := faultRules[0].match(in)
	assert.True(t, ok)
	assert.Equal(t, FaultBuildingAndOccupant, c)

	_, ok = faultRules[1].match(in)
	assert.False(t, ok, "envelope rule needs a compliant room")

	c, ok = faultRules[2].match(in)
	assert.True(t, ok)
	assert.Equal(t, FaultOccupantSide, c)
}

func TestFaultCategory_Description(t *testing.T) {
	for _, c := range []FaultCategory{FaultBuildingAndOccupant, FaultBuildingSide, FaultOccupantSide, FaultMixedUnclear} {
		assert.NotEmpty(t, c.Description(), string(c))
	}
	assert.Empty(t, FaultCategory("bogus").Description())
}
