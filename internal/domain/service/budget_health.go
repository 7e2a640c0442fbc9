package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
	"github.com/cdfmis/analytics-service/pkg/money"
)

// lowBudgetFraction is the remaining-budget share below which the low-budget
// warning fires.
var lowBudgetFraction = decimal.NewFromFloat(0.1)

// AnalyzeBudgetHealth checks the current fiscal year budget against a linear
// disbursement schedule. A nil budget means none was allocated. When no rule
// fires, a single all-good advisory is returned.
func (e *AdvisoryEngine) AnalyzeBudgetHealth(asOf time.Time, budget *BudgetSnapshot) []Advisory {
	advisories := make([]Advisory, 0)

	if budget == nil {
		advisories = append(advisories, Advisory{
			Type:            valueobject.AdvisoryWarning,
			Title:           "No Budget Allocated",
			Message:         "No budget has been allocated for this constituency for the current fiscal year.",
			Priority:        valueobject.PriorityHigh,
			Actionable:      true,
			SuggestedAction: "Contact the ministry to request budget allocation.",
		})
		return advisories
	}

	utilizationRate := safeRatio(budget.AmountDisbursed, budget.TotalAllocation)
	expectedUtilization := float64(asOf.Month()) / 12

	if utilizationRate < expectedUtilization*0.5 {
		advisories = append(advisories, Advisory{
			Type:  valueobject.AdvisoryWarning,
			Title: "Budget Underutilization",
			Message: fmt.Sprintf("Budget utilization is at %.1f%%, significantly below the expected %.0f%% for this time of year.",
				utilizationRate*100, expectedUtilization*100),
			Priority:        valueobject.PriorityMedium,
			Actionable:      true,
			SuggestedAction: "Review pending projects and expedite approvals to improve utilization.",
		})
	}

	if utilizationRate > expectedUtilization*1.3 {
		advisories = append(advisories, Advisory{
			Type:  valueobject.AdvisoryWarning,
			Title: "Rapid Budget Consumption",
			Message: fmt.Sprintf("Budget utilization is at %.1f%%, ahead of schedule. Consider pacing disbursements.",
				utilizationRate*100),
			Priority:        valueobject.PriorityMedium,
			Actionable:      true,
			SuggestedAction: "Review disbursement schedule to ensure funds last through the fiscal year.",
		})
	}

	remaining := budget.TotalAllocation.Sub(budget.AmountDisbursed)
	if remaining.LessThan(budget.TotalAllocation.Mul(lowBudgetFraction)) {
		advisories = append(advisories, Advisory{
			Type:  valueobject.AdvisoryWarning,
			Title: "Low Budget Remaining",
			Message: fmt.Sprintf("Only %s (%.1f%%) of budget remaining.",
				money.New(remaining, money.ZMW).Format(),
				safeRatio(remaining, budget.TotalAllocation)*100),
			Priority:        valueobject.PriorityHigh,
			Actionable:      true,
			SuggestedAction: "Prioritize critical projects and defer non-essential spending.",
		})
	}

	if len(advisories) == 0 {
		advisories = append(advisories, Advisory{
			Type:       valueobject.AdvisoryInfo,
			Title:      "Budget Health Good",
			Message:    fmt.Sprintf("Budget utilization is on track at %.1f%%.", utilizationRate*100),
			Priority:   valueobject.PriorityLow,
			Actionable: false,
		})
	}

	return advisories
}
