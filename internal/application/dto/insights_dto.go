package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/cdfmis/analytics-service/internal/domain/service"
)

// GenerateInsightsRequest is the input DTO for the dashboard insights use case.
// A zero AsOf defaults to the current time at the orchestration boundary.
type GenerateInsightsRequest struct {
	ConstituencyID uuid.UUID `json:"constituency_id"`
	AsOf           time.Time `json:"as_of,omitempty"`
}

// RelatedEntityDTO points an advisory at a dashboard record.
type RelatedEntityDTO struct {
	Type string    `json:"type"`
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AdvisoryDTO is one finding on the dashboard.
type AdvisoryDTO struct {
	Type            string             `json:"type"`
	Title           string             `json:"title"`
	Message         string             `json:"message"`
	Priority        string             `json:"priority"`
	Actionable      bool               `json:"actionable"`
	SuggestedAction string             `json:"suggested_action,omitempty"`
	RelatedEntities []RelatedEntityDTO `json:"related_entities,omitempty"`
}

// DashboardInsightsResponse is the five analyzer outputs in fixed order.
type DashboardInsightsResponse struct {
	BudgetHealth        []AdvisoryDTO `json:"budget_health"`
	ProjectAlerts       []AdvisoryDTO `json:"project_alerts"`
	PaymentAlerts       []AdvisoryDTO `json:"payment_alerts"`
	ComplianceAdvisory  []AdvisoryDTO `json:"compliance_advisory"`
	PerformanceInsights []AdvisoryDTO `json:"performance_insights"`
}

// FromInsights maps engine output to the response DTO.
func FromInsights(in service.DashboardInsights) DashboardInsightsResponse {
	return DashboardInsightsResponse{
		BudgetHealth:        advisoriesToDTO(in.BudgetHealth),
		ProjectAlerts:       advisoriesToDTO(in.ProjectAlerts),
		PaymentAlerts:       advisoriesToDTO(in.PaymentAlerts),
		ComplianceAdvisory:  advisoriesToDTO(in.ComplianceAdvisory),
		PerformanceInsights: advisoriesToDTO(in.PerformanceInsights),
	}
}

func advisoriesToDTO(advisories []service.Advisory) []AdvisoryDTO {
	out := make([]AdvisoryDTO, 0, len(advisories))
	for _, a := range advisories {
		var related []RelatedEntityDTO
		for _, e := range a.RelatedEntities {
			related = append(related, RelatedEntityDTO{Type: e.Type, ID: e.ID, Name: e.Name})
		}
		out = append(out, AdvisoryDTO{
			Type:            a.Type.String(),
			Title:           a.Title,
			Message:         a.Message,
			Priority:        a.Priority.String(),
			Actionable:      a.Actionable,
			SuggestedAction: a.SuggestedAction,
			RelatedEntities: related,
		})
	}
	return out
}
