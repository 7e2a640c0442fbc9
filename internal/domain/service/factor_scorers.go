package service

import "github.com/shopspring/decimal"

// Breakpoint scorers mapping a single ratio or count to a 0-100 sub-score.
// Each scorer is pure and exhaustive; the final branch is unconditional so no
// input can escape the table.

// safeRatio divides num by den, substituting 1 for a zero denominator so a
// payment against a zero budget degrades to treating the ratio as the raw
// amount instead of failing.
func safeRatio(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		den = decimal.NewFromInt(1)
	}
	return num.Div(den).InexactFloat64()
}

// budgetRiskScore rates a single payment or project cost against the budget
// it draws from.
func budgetRiskScore(ratio float64) int {
	switch {
	case ratio <= 0.1:
		return 10
	case ratio <= 0.25:
		return 25
	case ratio <= 0.5:
		return 50
	case ratio <= 0.75:
		return 75
	default:
		return 90
	}
}

// spendingRiskScore rates cumulative spending including the candidate payment.
func spendingRiskScore(ratio float64) int {
	switch {
	case ratio <= 0.5:
		return 10
	case ratio <= 0.75:
		return 30
	case ratio <= 0.9:
		return 60
	case ratio <= 1.0:
		return 80
	default:
		return 100 // over budget
	}
}

// recipientRiskScore rates a recipient by their flagged-payment rate.
// A recipient with no history at all scores a moderate 40.
func recipientRiskScore(flagRate float64, totalPayments int) int {
	switch {
	case totalPayments == 0:
		return 40
	case flagRate == 0:
		return 10
	case flagRate <= 0.1:
		return 30
	case flagRate <= 0.25:
		return 60
	default:
		return 90
	}
}

// anomalyRiskScore rates how far a payment deviates from the approver's
// average approved amount.
func anomalyRiskScore(ratio float64) int {
	switch {
	case ratio <= 1.5:
		return 10
	case ratio <= 2.0:
		return 30
	case ratio <= 3.0:
		return 60
	case ratio <= 5.0:
		return 80
	default:
		return 95
	}
}

// approverRiskScore rates an approver by their flagged-approval rate.
func approverRiskScore(flagRate float64) int {
	switch {
	case flagRate <= 0.05:
		return 10
	case flagRate <= 0.1:
		return 30
	case flagRate <= 0.2:
		return 60
	default:
		return 85
	}
}

// availabilityRiskScore rates remaining budget headroom. A cost exceeding
// what remains scores 95 outright regardless of the availability tiers.
func availabilityRiskScore(availableRatio, costRatio float64) int {
	if costRatio > availableRatio {
		return 95 // exceeds available budget
	}
	switch {
	case availableRatio >= 0.5:
		return 10
	case availableRatio >= 0.25:
		return 40
	default:
		return 70
	}
}

// trackRecordScore rates a submitter's project history. A submitter with no
// history scores a neutral 50.
func trackRecordScore(completionRate, rejectionRate float64, total int) int {
	switch {
	case total == 0:
		return 50
	case completionRate >= 0.8 && rejectionRate <= 0.1:
		return 10
	case completionRate >= 0.6 && rejectionRate <= 0.2:
		return 30
	case completionRate >= 0.4 && rejectionRate <= 0.3:
		return 50
	default:
		return 80
	}
}

// saturationScore rates how many similar projects already exist in the area.
func saturationScore(count int) int {
	switch {
	case count <= 2:
		return 10
	case count <= 5:
		return 30
	case count <= 10:
		return 50
	default:
		return 70
	}
}

// highCostThreshold marks projects whose estimated cost alone raises
// delivery complexity.
var highCostThreshold = decimal.NewFromInt(500000)

// complexityScore rates a project by type and cost. Infrastructure and
// water/sanitation projects are the structurally complex types.
func complexityScore(projectType string, cost decimal.Decimal) int {
	isComplex := projectType == ProjectTypeInfrastructure || projectType == ProjectTypeWaterSanitation
	isHighCost := cost.GreaterThan(highCostThreshold)

	switch {
	case !isComplex && !isHighCost:
		return 20
	case isComplex && !isHighCost:
		return 40
	case !isComplex && isHighCost:
		return 50
	default:
		return 70
	}
}
