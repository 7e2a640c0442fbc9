package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

// RelatedEntity points an advisory at a specific record on the dashboard.
type RelatedEntity struct {
	Type string
	ID   uuid.UUID
	Name string
}

// Advisory is one human-readable finding produced by an analyzer.
type Advisory struct {
	Type            valueobject.AdvisoryType
	Title           string
	Message         string
	Priority        valueobject.AdvisoryPriority
	Actionable      bool
	SuggestedAction string
	RelatedEntities []RelatedEntity
}

// DashboardInsights is the fixed-shape result of the five advisory analyzers.
// The fields are positionally independent; no analyzer reads another's output.
type DashboardInsights struct {
	BudgetHealth        []Advisory
	ProjectAlerts       []Advisory
	PaymentAlerts       []Advisory
	ComplianceAdvisory  []Advisory
	PerformanceInsights []Advisory
}

// AdvisoryEngine evaluates a constituency's operating health across five
// independent rule domains. Every analyzer is pure: the caller supplies the
// snapshots and the asOf instant, and each call returns a fresh list.
type AdvisoryEngine struct{}

// NewAdvisoryEngine creates a new AdvisoryEngine instance.
func NewAdvisoryEngine() *AdvisoryEngine {
	return &AdvisoryEngine{}
}

// relatedEntityCap bounds the entities attached to a single advisory.
const relatedEntityCap = 5

func projectEntities(projects []ProjectRecord) []RelatedEntity {
	n := len(projects)
	if n > relatedEntityCap {
		n = relatedEntityCap
	}
	entities := make([]RelatedEntity, 0, n)
	for _, p := range projects[:n] {
		entities = append(entities, RelatedEntity{Type: "project", ID: p.ID, Name: p.Name})
	}
	return entities
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
