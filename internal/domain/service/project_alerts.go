package service

import (
	"fmt"
	"time"

	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

const (
	stalledDraftDays        = 30
	pendingApprovalBacklog  = 5
	behindScheduleTolerance = 0.5
)

// AnalyzeProjectAlerts inspects active projects for stalled drafts, overdue
// implementations, work behind its linear schedule, and approval backlogs.
// Callers supply projects already filtered to ActiveProjectStatuses.
func (e *AdvisoryEngine) AnalyzeProjectAlerts(asOf time.Time, projects []ProjectRecord) []Advisory {
	advisories := make([]Advisory, 0)

	var stalled []ProjectRecord
	for _, p := range projects {
		if p.Status == ProjectStatusDraft && daysBetween(p.CreatedAt, asOf) > stalledDraftDays {
			stalled = append(stalled, p)
		}
	}
	if len(stalled) > 0 {
		advisories = append(advisories, Advisory{
			Type:            valueobject.AdvisoryWarning,
			Title:           "Stalled Draft Projects",
			Message:         fmt.Sprintf("%d project(s) have been in draft status for over 30 days.", len(stalled)),
			Priority:        valueobject.PriorityMedium,
			Actionable:      true,
			SuggestedAction: "Review and submit these projects or archive them.",
			RelatedEntities: projectEntities(stalled),
		})
	}

	var overdue []ProjectRecord
	for _, p := range projects {
		if p.Status == ProjectStatusImplementation && p.ExpectedEndDate != nil && p.ExpectedEndDate.Before(asOf) {
			overdue = append(overdue, p)
		}
	}
	if len(overdue) > 0 {
		advisories = append(advisories, Advisory{
			Type:            valueobject.AdvisoryWarning,
			Title:           "Overdue Projects",
			Message:         fmt.Sprintf("%d project(s) have passed their expected completion date.", len(overdue)),
			Priority:        valueobject.PriorityHigh,
			Actionable:      true,
			SuggestedAction: "Review project status and update timelines or escalate issues.",
			RelatedEntities: projectEntities(overdue),
		})
	}

	var behind []ProjectRecord
	for _, p := range projects {
		if p.Status != ProjectStatusImplementation || p.ExpectedEndDate == nil {
			continue
		}
		totalDuration := p.ExpectedEndDate.Sub(p.CreatedAt)
		if totalDuration <= 0 {
			continue
		}
		elapsed := asOf.Sub(p.CreatedAt)
		expectedProgress := float64(elapsed) / float64(totalDuration) * 100
		if p.ProgressPercent < expectedProgress*behindScheduleTolerance {
			behind = append(behind, p)
		}
	}
	if len(behind) > 0 {
		advisories = append(advisories, Advisory{
			Type:            valueobject.AdvisoryWarning,
			Title:           "Projects Behind Schedule",
			Message:         fmt.Sprintf("%d project(s) are significantly behind their expected progress.", len(behind)),
			Priority:        valueobject.PriorityMedium,
			Actionable:      true,
			SuggestedAction: "Investigate causes for delays and take corrective action.",
			RelatedEntities: projectEntities(behind),
		})
	}

	pending := 0
	for _, p := range projects {
		for _, s := range PendingApprovalStatuses {
			if p.Status == s {
				pending++
				break
			}
		}
	}
	if pending > pendingApprovalBacklog {
		advisories = append(advisories, Advisory{
			Type:            valueobject.AdvisoryAction,
			Title:           "Multiple Pending Approvals",
			Message:         fmt.Sprintf("%d projects are awaiting approval at various stages.", pending),
			Priority:        valueobject.PriorityMedium,
			Actionable:      true,
			SuggestedAction: "Schedule review meetings to process pending approvals.",
		})
	}

	return advisories
}
