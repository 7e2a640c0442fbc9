package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdfmis/analytics-service/internal/domain/service"
	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

// midYear pins the analyzers to June, where expected utilization is 50%.
var midYear = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func budget(allocated, disbursed int64) *service.BudgetSnapshot {
	return &service.BudgetSnapshot{
		ConstituencyID:  uuid.New(),
		FiscalYear:      2026,
		TotalAllocation: decimal.NewFromInt(allocated),
		AmountDisbursed: decimal.NewFromInt(disbursed),
	}
}

func TestAnalyzeBudgetHealth_NoBudgetAllocated(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	advisories := engine.AnalyzeBudgetHealth(midYear, nil)

	require.Len(t, advisories, 1)
	assert.Equal(t, valueobject.AdvisoryWarning, advisories[0].Type)
	assert.Equal(t, "No Budget Allocated", advisories[0].Title)
	assert.Equal(t, valueobject.PriorityHigh, advisories[0].Priority)
	assert.True(t, advisories[0].Actionable)
}

func TestAnalyzeBudgetHealth_OnTrack(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	// 45% utilized in June: within [25%, 65%] and 55% remaining.
	advisories := engine.AnalyzeBudgetHealth(midYear, budget(1000000, 450000))

	require.Len(t, advisories, 1)
	assert.Equal(t, valueobject.AdvisoryInfo, advisories[0].Type)
	assert.Equal(t, "Budget Health Good", advisories[0].Title)
	assert.Equal(t, valueobject.PriorityLow, advisories[0].Priority)
	assert.False(t, advisories[0].Actionable)
	assert.Equal(t, "Budget utilization is on track at 45.0%.", advisories[0].Message)
}

func TestAnalyzeBudgetHealth_Underutilization(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	// 10% utilized in June, below half the expected 50%.
	advisories := engine.AnalyzeBudgetHealth(midYear, budget(1000000, 100000))

	require.Len(t, advisories, 1)
	assert.Equal(t, "Budget Underutilization", advisories[0].Title)
	assert.Equal(t, valueobject.PriorityMedium, advisories[0].Priority)
}

func TestAnalyzeBudgetHealth_RapidConsumptionAndLowRemaining(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	// 95% utilized in June trips both the pacing rule and the low-remaining
	// rule.
	advisories := engine.AnalyzeBudgetHealth(midYear, budget(1000000, 950000))

	require.Len(t, advisories, 2)
	assert.Equal(t, "Rapid Budget Consumption", advisories[0].Title)
	assert.Equal(t, "Low Budget Remaining", advisories[1].Title)
	assert.Equal(t, valueobject.PriorityHigh, advisories[1].Priority)
	assert.Contains(t, advisories[1].Message, "K50,000")
}

func TestAnalyzeBudgetHealth_ExpectedUtilizationTracksMonth(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	// 10% utilized is underutilization in June but healthy in February,
	// where the expected utilization is only 16.7%.
	february := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	advisories := engine.AnalyzeBudgetHealth(february, budget(1000000, 100000))

	require.Len(t, advisories, 1)
	assert.Equal(t, "Budget Health Good", advisories[0].Title)
}
