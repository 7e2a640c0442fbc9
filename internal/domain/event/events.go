package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	// EventTypeAssessmentCompleted is emitted when a risk assessment finishes.
	EventTypeAssessmentCompleted = "analytics.assessment.completed"

	// EventTypeHighRiskDetected is emitted when a critical risk level is detected.
	EventTypeHighRiskDetected = "analytics.high_risk.detected"
)

// AssessmentCompleted is published when a payment or project risk assessment
// has been computed.
type AssessmentCompleted struct {
	AssessmentID    uuid.UUID `json:"assessment_id"`
	SubjectType     string    `json:"subject_type"`
	SubjectID       uuid.UUID `json:"subject_id"`
	RiskScore       int       `json:"risk_score"`
	RiskLevel       string    `json:"risk_level"`
	Recommendations []string  `json:"recommendations"`
	AssessedAt      time.Time `json:"assessed_at"`
}

// EventType returns the event type identifier.
func (e AssessmentCompleted) EventType() string {
	return EventTypeAssessmentCompleted
}

// AggregateID returns the assessment ID as the aggregate identifier.
func (e AssessmentCompleted) AggregateID() uuid.UUID {
	return e.AssessmentID
}

// HighRiskDetected is published when a subject is assessed at critical risk,
// prompting the approval workflow to escalate.
type HighRiskDetected struct {
	AssessmentID    uuid.UUID `json:"assessment_id"`
	SubjectType     string    `json:"subject_type"`
	SubjectID       uuid.UUID `json:"subject_id"`
	RiskScore       int       `json:"risk_score"`
	Recommendations []string  `json:"recommendations"`
	DetectedAt      time.Time `json:"detected_at"`
}

// EventType returns the event type identifier.
func (e HighRiskDetected) EventType() string {
	return EventTypeHighRiskDetected
}

// AggregateID returns the assessment ID as the aggregate identifier.
func (e HighRiskDetected) AggregateID() uuid.UUID {
	return e.AssessmentID
}
