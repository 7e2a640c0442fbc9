package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
	"github.com/cdfmis/analytics-service/pkg/money"
)

// SubmitterHistory aggregates a submitter's prior project outcomes.
type SubmitterHistory struct {
	TotalProjects     int
	CompletedProjects int
	RejectedProjects  int
}

// ProjectRiskInput is the flat snapshot of facts needed to score a project
// proposal.
type ProjectRiskInput struct {
	ProjectID               uuid.UUID
	EstimatedCost           decimal.Decimal
	ProjectType             string
	ConstituencyBudget      decimal.Decimal
	ConstituencySpentAmount decimal.Decimal
	SubmitterHistory        SubmitterHistory
	SimilarProjectsInArea   int
}

// CalculateProjectRisk scores a project proposal across five weighted
// factors: budget impact (25), budget availability (20), submitter track
// record (25), project saturation (15) and project complexity (15).
func (e *RiskScoringEngine) CalculateProjectRisk(input ProjectRiskInput) RiskScore {
	factors := make([]valueobject.RiskFactor, 0, 5)

	costRatio := safeRatio(input.EstimatedCost, input.ConstituencyBudget)
	factors = append(factors, valueobject.RiskFactor{
		Kind:        valueobject.FactorBudgetImpact,
		Weight:      25,
		Score:       budgetRiskScore(costRatio),
		Description: fmt.Sprintf("Project would use %.1f%% of constituency budget", costRatio*100),
	})

	availableRatio := safeRatio(input.ConstituencyBudget.Sub(input.ConstituencySpentAmount), input.ConstituencyBudget)
	factors = append(factors, valueobject.RiskFactor{
		Kind:        valueobject.FactorBudgetAvailability,
		Weight:      20,
		Score:       availabilityRiskScore(availableRatio, costRatio),
		Description: fmt.Sprintf("%.1f%% of budget remaining", availableRatio*100),
	})

	completionRate := countRatio(input.SubmitterHistory.CompletedProjects, input.SubmitterHistory.TotalProjects)
	rejectionRate := countRatio(input.SubmitterHistory.RejectedProjects, input.SubmitterHistory.TotalProjects)
	factors = append(factors, valueobject.RiskFactor{
		Kind:   valueobject.FactorSubmitterTrackRecord,
		Weight: 25,
		Score:  trackRecordScore(completionRate, rejectionRate, input.SubmitterHistory.TotalProjects),
		Description: fmt.Sprintf("%.0f%% completion rate, %.0f%% rejection rate",
			completionRate*100, rejectionRate*100),
	})

	factors = append(factors, valueobject.RiskFactor{
		Kind:        valueobject.FactorProjectSaturation,
		Weight:      15,
		Score:       saturationScore(input.SimilarProjectsInArea),
		Description: fmt.Sprintf("%d similar projects in the area", input.SimilarProjectsInArea),
	})

	factors = append(factors, valueobject.RiskFactor{
		Kind:   valueobject.FactorProjectComplexity,
		Weight: 15,
		Score:  complexityScore(input.ProjectType, input.EstimatedCost),
		Description: fmt.Sprintf("%s project with %s budget",
			input.ProjectType, money.New(input.EstimatedCost, money.ZMW).Format()),
	})

	score := weightedScore(factors)

	return RiskScore{
		Score:           score,
		Level:           valueobject.RiskLevelFromScore(score),
		Factors:         factors,
		Recommendations: recommend(factors, score, projectRecommendations, projectEscalation),
	}
}
