package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

// RecipientHistory aggregates a recipient's prior payments across the fund.
// Flagged payments are those rejected in review.
type RecipientHistory struct {
	TotalPayments   int
	TotalAmount     decimal.Decimal
	FlaggedPayments int
}

// ApproverHistory aggregates an approver's prior approvals. When no history
// exists, callers default AverageAmount to the payment amount itself so the
// anomaly ratio degrades to 1.0.
type ApproverHistory struct {
	TotalApprovals   int
	AverageAmount    decimal.Decimal
	FlaggedApprovals int
}

// PaymentRiskInput is the flat snapshot of facts needed to score a payment.
// The engine performs no lookups; callers supply every aggregate.
type PaymentRiskInput struct {
	PaymentID          uuid.UUID
	Amount             decimal.Decimal
	ProjectID          uuid.UUID
	ProjectBudget      decimal.Decimal
	ProjectSpentAmount decimal.Decimal
	RecipientName      string
	RecipientHistory   RecipientHistory
	ApproverHistory    ApproverHistory
}

// CalculatePaymentRisk scores a payment across five weighted factors:
// budget utilization (25), cumulative spending (20), recipient history (20),
// amount anomaly (20) and approver history (15). Always succeeds on
// well-typed input.
func (e *RiskScoringEngine) CalculatePaymentRisk(input PaymentRiskInput) RiskScore {
	factors := make([]valueobject.RiskFactor, 0, 5)

	budgetRatio := safeRatio(input.Amount, input.ProjectBudget)
	factors = append(factors, valueobject.RiskFactor{
		Kind:        valueobject.FactorBudgetUtilization,
		Weight:      25,
		Score:       budgetRiskScore(budgetRatio),
		Description: fmt.Sprintf("Payment is %.1f%% of project budget", budgetRatio*100),
	})

	spendingRatio := safeRatio(input.ProjectSpentAmount.Add(input.Amount), input.ProjectBudget)
	factors = append(factors, valueobject.RiskFactor{
		Kind:        valueobject.FactorCumulativeSpending,
		Weight:      20,
		Score:       spendingRiskScore(spendingRatio),
		Description: fmt.Sprintf("Total spending would be %.1f%% of budget", spendingRatio*100),
	})

	recipientFlagRate := countRatio(input.RecipientHistory.FlaggedPayments, input.RecipientHistory.TotalPayments)
	factors = append(factors, valueobject.RiskFactor{
		Kind:   valueobject.FactorRecipientHistory,
		Weight: 20,
		Score:  recipientRiskScore(recipientFlagRate, input.RecipientHistory.TotalPayments),
		Description: fmt.Sprintf("Recipient has %d flagged payments out of %d",
			input.RecipientHistory.FlaggedPayments, input.RecipientHistory.TotalPayments),
	})

	anomaly := anomalyRatio(input.Amount, input.ApproverHistory.AverageAmount)
	factors = append(factors, valueobject.RiskFactor{
		Kind:        valueobject.FactorAmountAnomaly,
		Weight:      20,
		Score:       anomalyRiskScore(anomaly),
		Description: fmt.Sprintf("Payment is %.2fx the average amount", anomaly),
	})

	approverFlagRate := countRatio(input.ApproverHistory.FlaggedApprovals, input.ApproverHistory.TotalApprovals)
	factors = append(factors, valueobject.RiskFactor{
		Kind:        valueobject.FactorApproverHistory,
		Weight:      15,
		Score:       approverRiskScore(approverFlagRate),
		Description: fmt.Sprintf("Approver has %.1f%% flagged approval rate", approverFlagRate*100),
	})

	score := weightedScore(factors)

	return RiskScore{
		Score:           score,
		Level:           valueobject.RiskLevelFromScore(score),
		Factors:         factors,
		Recommendations: recommend(factors, score, paymentRecommendations, paymentEscalation),
	}
}

// countRatio divides two counts with the zero-denominator guard.
func countRatio(num, den int) float64 {
	if den == 0 {
		den = 1
	}
	return float64(num) / float64(den)
}

// anomalyRatio is amount / averageAmount, forced to 1.0 when no average
// exists so a first-time approver scores the lowest anomaly tier.
func anomalyRatio(amount, average decimal.Decimal) float64 {
	if average.IsZero() {
		return 1.0
	}
	return amount.Div(average).InexactFloat64()
}
