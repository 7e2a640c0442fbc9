package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cdfmis/analytics-service/internal/domain/model"
	"github.com/cdfmis/analytics-service/internal/domain/service"
)

// AssessPaymentRiskRequest is the input DTO for the AssessPaymentRisk use case.
type AssessPaymentRiskRequest struct {
	PaymentID uuid.UUID `json:"payment_id"`
}

// RecipientHistoryDTO mirrors service.RecipientHistory for caller-supplied snapshots.
type RecipientHistoryDTO struct {
	TotalPayments   int             `json:"total_payments"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	FlaggedPayments int             `json:"flagged_payments"`
}

// ApproverHistoryDTO mirrors service.ApproverHistory.
type ApproverHistoryDTO struct {
	TotalApprovals   int             `json:"total_approvals"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
	FlaggedApprovals int             `json:"flagged_approvals"`
}

// CalculatePaymentRiskRequest carries a fully formed payment snapshot for
// direct scoring without a database fetch.
type CalculatePaymentRiskRequest struct {
	PaymentID          uuid.UUID           `json:"payment_id"`
	Amount             decimal.Decimal     `json:"amount"`
	ProjectID          uuid.UUID           `json:"project_id"`
	ProjectBudget      decimal.Decimal     `json:"project_budget"`
	ProjectSpentAmount decimal.Decimal     `json:"project_spent_amount"`
	RecipientName      string              `json:"recipient_name"`
	RecipientHistory   RecipientHistoryDTO `json:"recipient_history"`
	ApproverHistory    ApproverHistoryDTO  `json:"approver_history"`
}

// ToInput maps the request to the engine input.
func (r CalculatePaymentRiskRequest) ToInput() service.PaymentRiskInput {
	return service.PaymentRiskInput{
		PaymentID:          r.PaymentID,
		Amount:             r.Amount,
		ProjectID:          r.ProjectID,
		ProjectBudget:      r.ProjectBudget,
		ProjectSpentAmount: r.ProjectSpentAmount,
		RecipientName:      r.RecipientName,
		RecipientHistory: service.RecipientHistory{
			TotalPayments:   r.RecipientHistory.TotalPayments,
			TotalAmount:     r.RecipientHistory.TotalAmount,
			FlaggedPayments: r.RecipientHistory.FlaggedPayments,
		},
		ApproverHistory: service.ApproverHistory{
			TotalApprovals:   r.ApproverHistory.TotalApprovals,
			AverageAmount:    r.ApproverHistory.AverageAmount,
			FlaggedApprovals: r.ApproverHistory.FlaggedApprovals,
		},
	}
}

// SubmitterHistoryDTO mirrors service.SubmitterHistory.
type SubmitterHistoryDTO struct {
	TotalProjects     int `json:"total_projects"`
	CompletedProjects int `json:"completed_projects"`
	RejectedProjects  int `json:"rejected_projects"`
}

// CalculateProjectRiskRequest carries a fully formed project snapshot for
// direct scoring.
type CalculateProjectRiskRequest struct {
	ProjectID               uuid.UUID           `json:"project_id"`
	EstimatedCost           decimal.Decimal     `json:"estimated_cost"`
	ProjectType             string              `json:"project_type"`
	ConstituencyBudget      decimal.Decimal     `json:"constituency_budget"`
	ConstituencySpentAmount decimal.Decimal     `json:"constituency_spent_amount"`
	SubmitterHistory        SubmitterHistoryDTO `json:"submitter_history"`
	SimilarProjectsInArea   int                 `json:"similar_projects_in_area"`
}

// ToInput maps the request to the engine input.
func (r CalculateProjectRiskRequest) ToInput() service.ProjectRiskInput {
	return service.ProjectRiskInput{
		ProjectID:               r.ProjectID,
		EstimatedCost:           r.EstimatedCost,
		ProjectType:             r.ProjectType,
		ConstituencyBudget:      r.ConstituencyBudget,
		ConstituencySpentAmount: r.ConstituencySpentAmount,
		SubmitterHistory: service.SubmitterHistory{
			TotalProjects:     r.SubmitterHistory.TotalProjects,
			CompletedProjects: r.SubmitterHistory.CompletedProjects,
			RejectedProjects:  r.SubmitterHistory.RejectedProjects,
		},
		SimilarProjectsInArea: r.SimilarProjectsInArea,
	}
}

// GetAssessmentRequest is the input DTO for retrieving an assessment.
type GetAssessmentRequest struct {
	AssessmentID uuid.UUID `json:"assessment_id"`
}

// RiskFactorDTO is one weighted factor in a response.
type RiskFactorDTO struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// AssessmentResponse is the output DTO returned after an assessment.
type AssessmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	SubjectType     string          `json:"subject_type"`
	SubjectID       uuid.UUID       `json:"subject_id"`
	RiskScore       int             `json:"risk_score"`
	RiskLevel       string          `json:"risk_level"`
	Factors         []RiskFactorDTO `json:"factors"`
	Recommendations []string        `json:"recommendations"`
	AssessedAt      time.Time       `json:"assessed_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

// FromModel maps a domain model to the response DTO.
func FromModel(a *model.RiskAssessment) AssessmentResponse {
	factors := make([]RiskFactorDTO, 0, len(a.Factors()))
	for _, f := range a.Factors() {
		factors = append(factors, RiskFactorDTO{
			Kind:        f.Kind.String(),
			Name:        f.Kind.DisplayName(),
			Weight:      f.Weight,
			Score:       f.Score,
			Description: f.Description,
		})
	}

	return AssessmentResponse{
		ID:              a.ID(),
		SubjectType:     string(a.SubjectType()),
		SubjectID:       a.SubjectID(),
		RiskScore:       a.RiskScore(),
		RiskLevel:       a.RiskLevel().String(),
		Factors:         factors,
		Recommendations: a.Recommendations(),
		AssessedAt:      a.AssessedAt(),
		CreatedAt:       a.CreatedAt(),
	}
}
