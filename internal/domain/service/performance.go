package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

// costEfficiencyFraction: total approved below 90% of total estimated counts
// as good cost efficiency.
var costEfficiencyFraction = decimal.NewFromFloat(0.9)

// AnalyzePerformance reports on projects completed in the current calendar
// year. Returns no advisories when nothing was completed.
func (e *AdvisoryEngine) AnalyzePerformance(completed []CompletedProjectRecord) []Advisory {
	advisories := make([]Advisory, 0)

	if len(completed) == 0 {
		return advisories
	}

	advisories = append(advisories, Advisory{
		Type:       valueobject.AdvisoryInsight,
		Title:      "Projects Completed This Year",
		Message:    fmt.Sprintf("%d project(s) successfully completed in the current fiscal year.", len(completed)),
		Priority:   valueobject.PriorityLow,
		Actionable: false,
	})

	totalEstimated := decimal.Zero
	totalApproved := decimal.Zero
	for _, p := range completed {
		totalEstimated = totalEstimated.Add(p.EstimatedCost)
		totalApproved = totalApproved.Add(p.ApprovedAmount)
	}

	if totalApproved.LessThan(totalEstimated.Mul(costEfficiencyFraction)) {
		advisories = append(advisories, Advisory{
			Type:  valueobject.AdvisoryInsight,
			Title: "Good Cost Efficiency",
			Message: fmt.Sprintf("Projects completed at %.0f%% of estimated cost.",
				safeRatio(totalApproved, totalEstimated)*100),
			Priority:   valueobject.PriorityLow,
			Actionable: false,
		})
	}

	return advisories
}
