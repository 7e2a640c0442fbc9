package port

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cdfmis/analytics-service/internal/domain/model"
	"github.com/cdfmis/analytics-service/internal/domain/service"
	"github.com/cdfmis/analytics-service/pkg/events"
)

// ErrPaymentNotFound is returned by SnapshotProvider when the referenced
// payment does not exist. It is the only domain error this subsystem raises
// and must reach the caller unchanged.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentSnapshot is a payment joined with its project budget and the
// project's sibling payments, as fetched for risk orchestration.
type PaymentSnapshot struct {
	PaymentID       uuid.UUID
	Amount          decimal.Decimal
	ProjectID       uuid.UUID
	RecipientName   string
	ProjectBudget   decimal.Decimal
	ProjectPayments []service.PaymentRecord
}

// SnapshotProvider supplies the input records the engines consume. The
// engines themselves never fetch data; implementations live in
// infrastructure and read the platform database.
type SnapshotProvider interface {
	// PaymentSnapshot fetches a payment with its project and the project's
	// payment history. Returns ErrPaymentNotFound when the id is absent.
	PaymentSnapshot(ctx context.Context, paymentID uuid.UUID) (*PaymentSnapshot, error)

	// PaymentsByRecipient fetches every payment made to the named recipient.
	PaymentsByRecipient(ctx context.Context, recipientName string) ([]service.PaymentRecord, error)

	// CurrentBudget fetches the constituency budget for the fiscal year,
	// or nil when none is allocated.
	CurrentBudget(ctx context.Context, constituencyID uuid.UUID, fiscalYear int) (*service.BudgetSnapshot, error)

	// ActiveProjects fetches the constituency's projects in active statuses.
	ActiveProjects(ctx context.Context, constituencyID uuid.UUID) ([]service.ProjectRecord, error)

	// OpenPayments fetches the constituency's payments awaiting panel approval.
	OpenPayments(ctx context.Context, constituencyID uuid.UUID) ([]service.PaymentRecord, error)

	// ImplementationCompliance fetches implementation-stage projects with
	// the document types on file for each.
	ImplementationCompliance(ctx context.Context, constituencyID uuid.UUID) ([]service.ProjectComplianceRecord, error)

	// LatestMeeting fetches the most recent committee meeting, or nil when
	// none was ever recorded.
	LatestMeeting(ctx context.Context, constituencyID uuid.UUID) (*service.MeetingRecord, error)

	// CompletedProjects fetches projects completed in the given calendar year.
	CompletedProjects(ctx context.Context, constituencyID uuid.UUID, year int) ([]service.CompletedProjectRecord, error)
}

// AssessmentRepository defines the persistence port for risk assessments.
type AssessmentRepository interface {
	// Save persists a new or updated risk assessment.
	Save(ctx context.Context, assessment *model.RiskAssessment) error

	// FindByID retrieves an assessment by its unique identifier, or nil
	// when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*model.RiskAssessment, error)

	// FindBySubject retrieves assessments for a subject, newest first.
	FindBySubject(ctx context.Context, subjectType model.SubjectType, subjectID uuid.UUID, limit, offset int) ([]*model.RiskAssessment, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
