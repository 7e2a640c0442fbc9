package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

func TestRiskLevelFromScore_Buckets(t *testing.T) {
	tests := []struct {
		score int
		want  valueobject.RiskLevel
	}{
		{0, valueobject.RiskLevelLow},
		{25, valueobject.RiskLevelLow},
		{26, valueobject.RiskLevelMedium},
		{50, valueobject.RiskLevelMedium},
		{51, valueobject.RiskLevelHigh},
		{75, valueobject.RiskLevelHigh},
		{76, valueobject.RiskLevelCritical},
		{100, valueobject.RiskLevelCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, valueobject.RiskLevelFromScore(tt.score), "score %d", tt.score)
	}
}

func TestRiskLevelFromString(t *testing.T) {
	level, err := valueobject.RiskLevelFromString("critical")
	require.NoError(t, err)
	assert.Equal(t, valueobject.RiskLevelCritical, level)

	_, err = valueobject.RiskLevelFromString("extreme")
	assert.Error(t, err)
}

func TestRiskLevel_IsZero(t *testing.T) {
	var level valueobject.RiskLevel
	assert.True(t, level.IsZero())
	assert.False(t, valueobject.RiskLevelLow.IsZero())
}

func TestFactorKind_DisplayName(t *testing.T) {
	assert.Equal(t, "Budget Utilization", valueobject.FactorBudgetUtilization.DisplayName())
	assert.Equal(t, "Submitter Track Record", valueobject.FactorSubmitterTrackRecord.DisplayName())
}

func TestFactorKindFromString(t *testing.T) {
	kind, err := valueobject.FactorKindFromString("amount_anomaly")
	require.NoError(t, err)
	assert.True(t, kind.Equal(valueobject.FactorAmountAnomaly))

	_, err = valueobject.FactorKindFromString("unknown_factor")
	assert.Error(t, err)
}
