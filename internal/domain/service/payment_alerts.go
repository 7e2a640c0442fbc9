package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
	"github.com/cdfmis/analytics-service/pkg/money"
)

const (
	agedPaymentDays    = 14
	paymentHighBacklog = 5
)

// AnalyzePaymentAlerts inspects open payments awaiting Panel A or Panel B
// approval, and flags any that have aged past two weeks. Callers supply
// payments already filtered to OpenPaymentStatuses.
func (e *AdvisoryEngine) AnalyzePaymentAlerts(asOf time.Time, payments []PaymentRecord) []Advisory {
	advisories := make([]Advisory, 0)

	var pendingCount, panelACount int
	pendingTotal := decimal.Zero
	panelATotal := decimal.Zero
	for _, p := range payments {
		switch p.Status {
		case PaymentStatusPending:
			pendingCount++
			pendingTotal = pendingTotal.Add(p.Amount)
		case PaymentStatusPanelAApproved:
			panelACount++
			panelATotal = panelATotal.Add(p.Amount)
		}
	}

	if pendingCount > 0 {
		advisories = append(advisories, Advisory{
			Type:  valueobject.AdvisoryAction,
			Title: "Pending Panel A Approvals",
			Message: fmt.Sprintf("%d payment(s) totaling %s awaiting Panel A approval.",
				pendingCount, money.New(pendingTotal, money.ZMW).Format()),
			Priority:        backlogPriority(pendingCount),
			Actionable:      true,
			SuggestedAction: "Review and process Panel A approvals.",
		})
	}

	if panelACount > 0 {
		advisories = append(advisories, Advisory{
			Type:  valueobject.AdvisoryAction,
			Title: "Pending Panel B Approvals",
			Message: fmt.Sprintf("%d payment(s) totaling %s awaiting Panel B approval.",
				panelACount, money.New(panelATotal, money.ZMW).Format()),
			Priority:        backlogPriority(panelACount),
			Actionable:      true,
			SuggestedAction: "Review and process Panel B approvals.",
		})
	}

	aged := 0
	for _, p := range payments {
		if daysBetween(p.CreatedAt, asOf) > agedPaymentDays {
			aged++
		}
	}
	if aged > 0 {
		advisories = append(advisories, Advisory{
			Type:            valueobject.AdvisoryWarning,
			Title:           "Aged Pending Payments",
			Message:         fmt.Sprintf("%d payment(s) have been pending for over 14 days.", aged),
			Priority:        valueobject.PriorityHigh,
			Actionable:      true,
			SuggestedAction: "Expedite processing of aged payments to avoid delays.",
		})
	}

	return advisories
}

func backlogPriority(count int) valueobject.AdvisoryPriority {
	if count > paymentHighBacklog {
		return valueobject.PriorityHigh
	}
	return valueobject.PriorityMedium
}
