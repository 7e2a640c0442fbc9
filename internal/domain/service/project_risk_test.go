package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdfmis/analytics-service/internal/domain/service"
	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

func projectInput() service.ProjectRiskInput {
	return service.ProjectRiskInput{
		ProjectID:               uuid.New(),
		EstimatedCost:           decimal.NewFromInt(50000),
		ProjectType:             "education",
		ConstituencyBudget:      decimal.NewFromInt(1000000),
		ConstituencySpentAmount: decimal.NewFromInt(100000),
		SubmitterHistory: service.SubmitterHistory{
			TotalProjects:     10,
			CompletedProjects: 9,
			RejectedProjects:  0,
		},
		SimilarProjectsInArea: 1,
	}
}

func TestCalculateProjectRisk_LowRiskProposal(t *testing.T) {
	engine := service.NewRiskScoringEngine()

	result := engine.CalculateProjectRisk(projectInput())

	// budget 10, availability 10, track record 10, saturation 10, complexity 20
	assert.Equal(t, 12, result.Score)
	assert.Equal(t, valueobject.RiskLevelLow, result.Level)
	assert.Empty(t, result.Recommendations)
}

func TestCalculateProjectRisk_FactorOrderAndWeights(t *testing.T) {
	engine := service.NewRiskScoringEngine()

	result := engine.CalculateProjectRisk(projectInput())

	require.Len(t, result.Factors, 5)
	assert.Equal(t, valueobject.FactorBudgetImpact, result.Factors[0].Kind)
	assert.Equal(t, 25, result.Factors[0].Weight)
	assert.Equal(t, valueobject.FactorBudgetAvailability, result.Factors[1].Kind)
	assert.Equal(t, 20, result.Factors[1].Weight)
	assert.Equal(t, valueobject.FactorSubmitterTrackRecord, result.Factors[2].Kind)
	assert.Equal(t, 25, result.Factors[2].Weight)
	assert.Equal(t, valueobject.FactorProjectSaturation, result.Factors[3].Kind)
	assert.Equal(t, 15, result.Factors[3].Weight)
	assert.Equal(t, valueobject.FactorProjectComplexity, result.Factors[4].Kind)
	assert.Equal(t, 15, result.Factors[4].Weight)
}

func TestCalculateProjectRisk_CostExceedsRemainingBudget(t *testing.T) {
	engine := service.NewRiskScoringEngine()

	// 600000 proposal against a 700000 budget with 650000 already spent:
	// the cost exceeds what remains, so availability scores 95 outright.
	result := engine.CalculateProjectRisk(service.ProjectRiskInput{
		ProjectID:               uuid.New(),
		EstimatedCost:           decimal.NewFromInt(600000),
		ProjectType:             service.ProjectTypeInfrastructure,
		ConstituencyBudget:      decimal.NewFromInt(700000),
		ConstituencySpentAmount: decimal.NewFromInt(650000),
		SimilarProjectsInArea:   11,
	})

	require.Len(t, result.Factors, 5)
	assert.Equal(t, 90, result.Factors[0].Score) // 85.7% of budget
	assert.Equal(t, 95, result.Factors[1].Score) // exceeds remaining
	assert.Equal(t, 50, result.Factors[2].Score) // no submitter history
	assert.Equal(t, 70, result.Factors[3].Score) // saturated area
	assert.Equal(t, 70, result.Factors[4].Score) // complex type, high cost

	assert.Equal(t, 75, result.Score)
	assert.Equal(t, valueobject.RiskLevelHigh, result.Level)
	assert.Equal(t, []string{
		"Consider phased implementation to reduce budget impact",
		"Verify budget availability before approval",
		"Consider alternative locations or project types",
		"Require detailed implementation plan and technical review",
		"Conduct comprehensive risk assessment before approval",
	}, result.Recommendations)
}

func TestCalculateProjectRisk_FactorAtExactlySeventyRecommends(t *testing.T) {
	engine := service.NewRiskScoringEngine()

	// Saturation at 11 similar projects scores exactly 70, the
	// recommendation threshold.
	in := projectInput()
	in.SimilarProjectsInArea = 11

	result := engine.CalculateProjectRisk(in)

	assert.Equal(t, 70, result.Factors[3].Score)
	assert.Contains(t, result.Recommendations, "Consider alternative locations or project types")
}

func TestCalculateProjectRisk_FactorBelowSeventyDoesNotRecommend(t *testing.T) {
	engine := service.NewRiskScoringEngine()

	in := projectInput()
	in.SimilarProjectsInArea = 10 // scores 50

	result := engine.CalculateProjectRisk(in)

	assert.Equal(t, 50, result.Factors[3].Score)
	assert.NotContains(t, result.Recommendations, "Consider alternative locations or project types")
}

func TestCalculateProjectRisk_ComplexityTiers(t *testing.T) {
	engine := service.NewRiskScoringEngine()

	tests := []struct {
		name        string
		projectType string
		cost        int64
		want        int
	}{
		{"simple low cost", "education", 100000, 20},
		{"complex low cost", service.ProjectTypeWaterSanitation, 100000, 40},
		{"simple high cost", "education", 600000, 50},
		{"complex high cost", service.ProjectTypeInfrastructure, 600000, 70},
		{"threshold exactly is not high cost", "education", 500000, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := projectInput()
			in.ProjectType = tt.projectType
			in.EstimatedCost = decimal.NewFromInt(tt.cost)

			result := engine.CalculateProjectRisk(in)

			assert.Equal(t, tt.want, result.Factors[4].Score)
		})
	}
}

func TestCalculateProjectRisk_TrackRecordTiers(t *testing.T) {
	engine := service.NewRiskScoringEngine()

	tests := []struct {
		name      string
		total     int
		completed int
		rejected  int
		want      int
	}{
		{"no history", 0, 0, 0, 50},
		{"strong record", 10, 9, 0, 10},
		{"decent record", 10, 6, 2, 30},
		{"mixed record", 10, 4, 3, 50},
		{"poor record", 10, 2, 5, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := projectInput()
			in.SubmitterHistory = service.SubmitterHistory{
				TotalProjects:     tt.total,
				CompletedProjects: tt.completed,
				RejectedProjects:  tt.rejected,
			}

			result := engine.CalculateProjectRisk(in)

			assert.Equal(t, tt.want, result.Factors[2].Score)
		})
	}
}

func TestCalculateProjectRisk_ComplexityDescriptionFormatsCurrency(t *testing.T) {
	engine := service.NewRiskScoringEngine()

	in := projectInput()
	in.ProjectType = service.ProjectTypeInfrastructure
	in.EstimatedCost = decimal.NewFromInt(1250000)

	result := engine.CalculateProjectRisk(in)

	assert.Equal(t, "infrastructure project with K1,250,000 budget", result.Factors[4].Description)
}
