package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

const meetingOverdueDays = 60

// requiredDocumentTypes must be on file for every implementation-stage project.
var requiredDocumentTypes = []string{DocumentTypeContract, DocumentTypeApprovalLetter}

// AnalyzeCompliance checks implementation projects for missing required
// documents and the committee meeting cadence. lastMeeting is nil when no
// meeting was ever recorded.
func (e *AdvisoryEngine) AnalyzeCompliance(asOf time.Time, projects []ProjectComplianceRecord, lastMeeting *MeetingRecord) []Advisory {
	advisories := make([]Advisory, 0)

	var missing []ProjectRecord
	for _, p := range projects {
		for _, required := range requiredDocumentTypes {
			if !slices.Contains(p.DocumentTypes, required) {
				missing = append(missing, ProjectRecord{ID: p.ID, Name: p.Name})
				break
			}
		}
	}
	if len(missing) > 0 {
		advisories = append(advisories, Advisory{
			Type:            valueobject.AdvisoryWarning,
			Title:           "Missing Required Documents",
			Message:         fmt.Sprintf("%d project(s) are missing required documentation.", len(missing)),
			Priority:        valueobject.PriorityHigh,
			Actionable:      true,
			SuggestedAction: "Upload missing contracts and approval letters.",
			RelatedEntities: projectEntities(missing),
		})
	}

	if lastMeeting == nil {
		advisories = append(advisories, Advisory{
			Type:            valueobject.AdvisoryWarning,
			Title:           "No Committee Meetings Recorded",
			Message:         "No CDFC meetings have been recorded for this constituency.",
			Priority:        valueobject.PriorityMedium,
			Actionable:      true,
			SuggestedAction: "Schedule and record committee meetings as required.",
		})
	} else if days := daysBetween(lastMeeting.MeetingDate, asOf); days > meetingOverdueDays {
		advisories = append(advisories, Advisory{
			Type:            valueobject.AdvisoryWarning,
			Title:           "Overdue Committee Meeting",
			Message:         fmt.Sprintf("Last committee meeting was %d days ago. Quarterly meetings are recommended.", days),
			Priority:        valueobject.PriorityMedium,
			Actionable:      true,
			SuggestedAction: "Schedule a committee meeting.",
		})
	}

	return advisories
}
