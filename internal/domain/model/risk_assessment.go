package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cdfmis/analytics-service/internal/domain/event"
	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
	"github.com/cdfmis/analytics-service/pkg/events"
)

// SubjectType distinguishes what a risk assessment was computed for.
type SubjectType string

const (
	SubjectPayment SubjectType = "payment"
	SubjectProject SubjectType = "project"
)

// Valid reports whether the subject type is one of the known values.
func (s SubjectType) Valid() bool {
	return s == SubjectPayment || s == SubjectProject
}

// RiskAssessment is the aggregate root for computed risk scores. It records
// the weighted result of one engine evaluation so approval workflows and
// auditors can read it back later.
type RiskAssessment struct {
	id              uuid.UUID
	subjectType     SubjectType
	subjectID       uuid.UUID
	riskScore       int
	riskLevel       valueobject.RiskLevel
	factors         []valueobject.RiskFactor
	recommendations []string
	assessedAt      time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time

	events.EventCollector
}

// NewRiskAssessment creates an unscored assessment for a subject.
// Call Assess() to apply an engine result.
func NewRiskAssessment(subjectType SubjectType, subjectID uuid.UUID) (*RiskAssessment, error) {
	if !subjectType.Valid() {
		return nil, fmt.Errorf("invalid subject type: %s", subjectType)
	}
	if subjectID == uuid.Nil {
		return nil, fmt.Errorf("subject ID is required")
	}

	now := time.Now().UTC()

	return &RiskAssessment{
		id:              uuid.New(),
		subjectType:     subjectType,
		subjectID:       subjectID,
		riskLevel:       valueobject.RiskLevelLow,
		factors:         make([]valueobject.RiskFactor, 0),
		recommendations: make([]string, 0),
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Assess applies an engine result to the assessment. The level is derived
// from the score, never stored independently of it.
func (a *RiskAssessment) Assess(riskScore int, factors []valueobject.RiskFactor, recommendations []string) error {
	if riskScore < 0 || riskScore > 100 {
		return fmt.Errorf("risk score must be between 0 and 100, got %d", riskScore)
	}

	a.riskScore = riskScore
	a.riskLevel = valueobject.RiskLevelFromScore(riskScore)
	a.factors = factors
	a.recommendations = recommendations
	a.assessedAt = time.Now().UTC()
	a.updatedAt = a.assessedAt
	a.version++

	a.Record(event.AssessmentCompleted{
		AssessmentID:    a.id,
		SubjectType:     string(a.subjectType),
		SubjectID:       a.subjectID,
		RiskScore:       a.riskScore,
		RiskLevel:       a.riskLevel.String(),
		Recommendations: a.recommendations,
		AssessedAt:      a.assessedAt,
	})

	if a.riskLevel.Equal(valueobject.RiskLevelCritical) {
		a.Record(event.HighRiskDetected{
			AssessmentID:    a.id,
			SubjectType:     string(a.subjectType),
			SubjectID:       a.subjectID,
			RiskScore:       a.riskScore,
			Recommendations: a.recommendations,
			DetectedAt:      a.assessedAt,
		})
	}

	return nil
}

// Reconstruct rebuilds a RiskAssessment from persisted data (no validation, no events).
func Reconstruct(
	id uuid.UUID,
	subjectType SubjectType,
	subjectID uuid.UUID,
	riskScore int,
	riskLevel valueobject.RiskLevel,
	factors []valueobject.RiskFactor,
	recommendations []string,
	assessedAt time.Time,
	version int,
	createdAt, updatedAt time.Time,
) *RiskAssessment {
	return &RiskAssessment{
		id:              id,
		subjectType:     subjectType,
		subjectID:       subjectID,
		riskScore:       riskScore,
		riskLevel:       riskLevel,
		factors:         factors,
		recommendations: recommendations,
		assessedAt:      assessedAt,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// --- Accessors ---

func (a *RiskAssessment) ID() uuid.UUID                        { return a.id }
func (a *RiskAssessment) SubjectType() SubjectType             { return a.subjectType }
func (a *RiskAssessment) SubjectID() uuid.UUID                 { return a.subjectID }
func (a *RiskAssessment) RiskScore() int                       { return a.riskScore }
func (a *RiskAssessment) RiskLevel() valueobject.RiskLevel     { return a.riskLevel }
func (a *RiskAssessment) Factors() []valueobject.RiskFactor    { return a.factors }
func (a *RiskAssessment) Recommendations() []string            { return a.recommendations }
func (a *RiskAssessment) AssessedAt() time.Time                { return a.assessedAt }
func (a *RiskAssessment) Version() int                         { return a.version }
func (a *RiskAssessment) CreatedAt() time.Time                 { return a.createdAt }
func (a *RiskAssessment) UpdatedAt() time.Time                 { return a.updatedAt }

// DomainEvents returns all accumulated domain events and clears them.
func (a *RiskAssessment) DomainEvents() []events.DomainEvent {
	return a.ClearEvents()
}
