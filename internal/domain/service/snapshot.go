package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Workflow statuses the engines branch on. The full platform carries more
// states; only these ones affect scoring and advisories.
const (
	ProjectStatusDraft          = "draft"
	ProjectStatusSubmitted      = "submitted"
	ProjectStatusCDFCReview     = "cdfc_review"
	ProjectStatusTACAppraisal   = "tac_appraisal"
	ProjectStatusPLGOReview     = "plgo_review"
	ProjectStatusImplementation = "implementation"
	ProjectStatusCompleted      = "completed"

	PaymentStatusPending        = "pending"
	PaymentStatusPanelAApproved = "panel_a_approved"
	PaymentStatusDisbursed      = "disbursed"
	PaymentStatusRejected       = "rejected"

	ProjectTypeInfrastructure  = "infrastructure"
	ProjectTypeWaterSanitation = "water_sanitation"

	DocumentTypeContract       = "contract"
	DocumentTypeApprovalLetter = "approval_letter"
)

// ActiveProjectStatuses are the statuses the project-alert analyzer inspects.
var ActiveProjectStatuses = []string{
	ProjectStatusDraft,
	ProjectStatusSubmitted,
	ProjectStatusCDFCReview,
	ProjectStatusTACAppraisal,
	ProjectStatusPLGOReview,
	ProjectStatusImplementation,
}

// PendingApprovalStatuses are the in-review subset of active statuses.
var PendingApprovalStatuses = []string{
	ProjectStatusSubmitted,
	ProjectStatusCDFCReview,
	ProjectStatusTACAppraisal,
	ProjectStatusPLGOReview,
}

// OpenPaymentStatuses are the statuses the payment-alert analyzer inspects.
var OpenPaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusPanelAApproved,
}

// BudgetSnapshot is the current fiscal year budget row for a constituency.
type BudgetSnapshot struct {
	ConstituencyID  uuid.UUID
	FiscalYear      int
	TotalAllocation decimal.Decimal
	AmountDisbursed decimal.Decimal
}

// ProjectRecord is the slice of a project the advisory analyzers need.
type ProjectRecord struct {
	ID              uuid.UUID
	Name            string
	Status          string
	CreatedAt       time.Time
	ExpectedEndDate *time.Time
	ProgressPercent float64
}

// PaymentRecord is the slice of a payment the engines need.
type PaymentRecord struct {
	ID            uuid.UUID
	Amount        decimal.Decimal
	Status        string
	RecipientName string
	CreatedAt     time.Time
}

// ProjectComplianceRecord pairs an implementation-stage project with the
// document types already on file for it.
type ProjectComplianceRecord struct {
	ID            uuid.UUID
	Name          string
	DocumentTypes []string
}

// MeetingRecord is a recorded committee meeting.
type MeetingRecord struct {
	ID          uuid.UUID
	MeetingDate time.Time
}

// CompletedProjectRecord is a project completed in the current calendar year.
type CompletedProjectRecord struct {
	ID             uuid.UUID
	Name           string
	EstimatedCost  decimal.Decimal
	ApprovedAmount decimal.Decimal
	ActualEndDate  time.Time
}
