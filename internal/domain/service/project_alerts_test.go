package service_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdfmis/analytics-service/internal/domain/service"
	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

func findAdvisory(t *testing.T, advisories []service.Advisory, title string) service.Advisory {
	t.Helper()
	for _, a := range advisories {
		if a.Title == title {
			return a
		}
	}
	t.Fatalf("advisory %q not found", title)
	return service.Advisory{}
}

func TestAnalyzeProjectAlerts_NoFindings(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	projects := []service.ProjectRecord{
		{ID: uuid.New(), Name: "Chilenje Clinic", Status: service.ProjectStatusDraft, CreatedAt: midYear.AddDate(0, 0, -5)},
	}

	advisories := engine.AnalyzeProjectAlerts(midYear, projects)

	assert.Empty(t, advisories)
}

func TestAnalyzeProjectAlerts_StalledDrafts(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	projects := []service.ProjectRecord{
		{ID: uuid.New(), Name: "Old Draft", Status: service.ProjectStatusDraft, CreatedAt: midYear.AddDate(0, 0, -45)},
		{ID: uuid.New(), Name: "Fresh Draft", Status: service.ProjectStatusDraft, CreatedAt: midYear.AddDate(0, 0, -10)},
	}

	advisories := engine.AnalyzeProjectAlerts(midYear, projects)

	require.Len(t, advisories, 1)
	assert.Equal(t, valueobject.AdvisoryWarning, advisories[0].Type)
	assert.Equal(t, "Stalled Draft Projects", advisories[0].Title)
	assert.Equal(t, "1 project(s) have been in draft status for over 30 days.", advisories[0].Message)
	require.Len(t, advisories[0].RelatedEntities, 1)
	assert.Equal(t, "Old Draft", advisories[0].RelatedEntities[0].Name)
	assert.Equal(t, "project", advisories[0].RelatedEntities[0].Type)
}

func TestAnalyzeProjectAlerts_RelatedEntitiesCappedAtFive(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	projects := make([]service.ProjectRecord, 0, 8)
	for i := 0; i < 8; i++ {
		projects = append(projects, service.ProjectRecord{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Stalled %d", i),
			Status:    service.ProjectStatusDraft,
			CreatedAt: midYear.AddDate(0, 0, -60),
		})
	}

	advisories := engine.AnalyzeProjectAlerts(midYear, projects)

	require.Len(t, advisories, 1)
	assert.Contains(t, advisories[0].Message, "8 project(s)")
	assert.Len(t, advisories[0].RelatedEntities, 5)
}

func TestAnalyzeProjectAlerts_OverdueImplementation(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	endDate := midYear.AddDate(0, -1, 0)
	projects := []service.ProjectRecord{
		{
			ID:              uuid.New(),
			Name:            "Borehole Rehab",
			Status:          service.ProjectStatusImplementation,
			CreatedAt:       midYear.AddDate(0, -6, 0),
			ExpectedEndDate: &endDate,
			ProgressPercent: 90,
		},
	}

	advisories := engine.AnalyzeProjectAlerts(midYear, projects)

	overdue := findAdvisory(t, advisories, "Overdue Projects")
	assert.Equal(t, valueobject.PriorityHigh, overdue.Priority)
	assert.Len(t, overdue.RelatedEntities, 1)
}

func TestAnalyzeProjectAlerts_BehindSchedule(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	// Halfway through its timeline the project should be near 50% progress;
	// 10% is less than half of that expectation.
	endDate := midYear.AddDate(0, 3, 0)
	projects := []service.ProjectRecord{
		{
			ID:              uuid.New(),
			Name:            "Market Shelter",
			Status:          service.ProjectStatusImplementation,
			CreatedAt:       midYear.AddDate(0, -3, 0),
			ExpectedEndDate: &endDate,
			ProgressPercent: 10,
		},
	}

	advisories := engine.AnalyzeProjectAlerts(midYear, projects)

	require.Len(t, advisories, 1)
	assert.Equal(t, "Projects Behind Schedule", advisories[0].Title)
}

func TestAnalyzeProjectAlerts_OnScheduleProducesNothing(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	endDate := midYear.AddDate(0, 3, 0)
	projects := []service.ProjectRecord{
		{
			ID:              uuid.New(),
			Name:            "Market Shelter",
			Status:          service.ProjectStatusImplementation,
			CreatedAt:       midYear.AddDate(0, -3, 0),
			ExpectedEndDate: &endDate,
			ProgressPercent: 45,
		},
	}

	advisories := engine.AnalyzeProjectAlerts(midYear, projects)

	assert.Empty(t, advisories)
}

func TestAnalyzeProjectAlerts_PendingApprovalBacklog(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	projects := make([]service.ProjectRecord, 0, 6)
	statuses := []string{
		service.ProjectStatusSubmitted,
		service.ProjectStatusCDFCReview,
		service.ProjectStatusTACAppraisal,
		service.ProjectStatusPLGOReview,
		service.ProjectStatusSubmitted,
		service.ProjectStatusCDFCReview,
	}
	for i, s := range statuses {
		projects = append(projects, service.ProjectRecord{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Pending %d", i),
			Status:    s,
			CreatedAt: midYear.AddDate(0, 0, -3),
		})
	}

	advisories := engine.AnalyzeProjectAlerts(midYear, projects)

	require.Len(t, advisories, 1)
	assert.Equal(t, valueobject.AdvisoryAction, advisories[0].Type)
	assert.Equal(t, "Multiple Pending Approvals", advisories[0].Title)
	assert.Equal(t, "6 projects are awaiting approval at various stages.", advisories[0].Message)
}

func TestAnalyzeProjectAlerts_FivePendingIsNotABacklog(t *testing.T) {
	engine := service.NewAdvisoryEngine()

	projects := make([]service.ProjectRecord, 0, 5)
	for i := 0; i < 5; i++ {
		projects = append(projects, service.ProjectRecord{
			ID:        uuid.New(),
			Status:    service.ProjectStatusSubmitted,
			CreatedAt: midYear.AddDate(0, 0, -3),
		})
	}

	advisories := engine.AnalyzeProjectAlerts(midYear, projects)

	assert.Empty(t, advisories)
}
