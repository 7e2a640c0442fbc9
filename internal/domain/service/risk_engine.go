package service

import (
	"github.com/shopspring/decimal"

	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

// RiskScore is the result of scoring a payment or project: a weighted 0-100
// score, its level bucket, the contributing factors in evaluation order, and
// the advisory recommendations they triggered.
type RiskScore struct {
	Score           int
	Level           valueobject.RiskLevel
	Factors         []valueobject.RiskFactor
	Recommendations []string
}

// RiskScoringEngine combines named, weighted factors into a single risk score
// for payments and projects. It is a pure domain service: no I/O, no clock,
// no hidden state.
type RiskScoringEngine struct{}

// NewRiskScoringEngine creates a new RiskScoringEngine instance.
func NewRiskScoringEngine() *RiskScoringEngine {
	return &RiskScoringEngine{}
}

// recommendationThreshold is the factor sub-score at which the factor's
// recommendation fires.
const recommendationThreshold = 70

// escalationThreshold is the overall score at which the context's escalation
// recommendation is appended.
const escalationThreshold = 75

var paymentRecommendations = map[valueobject.FactorKind]string{
	valueobject.FactorBudgetUtilization:  "Consider splitting payment into smaller milestones",
	valueobject.FactorCumulativeSpending: "Review total project spending before approval",
	valueobject.FactorRecipientHistory:   "Conduct additional verification of recipient credentials",
	valueobject.FactorAmountAnomaly:      "Request detailed breakdown of payment components",
	valueobject.FactorApproverHistory:    "Consider secondary review by audit team",
}

var projectRecommendations = map[valueobject.FactorKind]string{
	valueobject.FactorBudgetImpact:         "Consider phased implementation to reduce budget impact",
	valueobject.FactorBudgetAvailability:   "Verify budget availability before approval",
	valueobject.FactorSubmitterTrackRecord: "Assign experienced project manager for oversight",
	valueobject.FactorProjectSaturation:    "Consider alternative locations or project types",
	valueobject.FactorProjectComplexity:    "Require detailed implementation plan and technical review",
}

const (
	paymentEscalation = "Escalate to senior management for review"
	projectEscalation = "Conduct comprehensive risk assessment before approval"
)

// weightedScore computes round-half-up(sum(score*weight) / sum(weight)).
func weightedScore(factors []valueobject.RiskFactor) int {
	totalScore := int64(0)
	totalWeight := int64(0)
	for _, f := range factors {
		totalScore += int64(f.Score) * int64(f.Weight)
		totalWeight += int64(f.Weight)
	}
	if totalWeight == 0 {
		return 0
	}
	return int(decimal.NewFromInt(totalScore).
		Div(decimal.NewFromInt(totalWeight)).
		Round(0).
		IntPart())
}

// recommend collects the recommendation for every factor scoring at or above
// the threshold, in factor evaluation order, then appends the escalation
// message when the overall score warrants it. No deduplication.
func recommend(factors []valueobject.RiskFactor, score int, table map[valueobject.FactorKind]string, escalation string) []string {
	recommendations := make([]string, 0)
	for _, f := range factors {
		if f.Score >= recommendationThreshold {
			if rec, ok := table[f.Kind]; ok {
				recommendations = append(recommendations, rec)
			}
		}
	}
	if score >= escalationThreshold {
		recommendations = append(recommendations, escalation)
	}
	return recommendations
}
