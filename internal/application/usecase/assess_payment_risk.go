package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cdfmis/analytics-service/internal/application/dto"
	"github.com/cdfmis/analytics-service/internal/domain/model"
	"github.com/cdfmis/analytics-service/internal/domain/port"
	"github.com/cdfmis/analytics-service/internal/domain/service"
)

// AssessPaymentRisk is the use case for scoring a stored payment: it gathers
// the payment's project budget, spending and recipient history, runs the
// scoring engine, persists the assessment and publishes events.
type AssessPaymentRisk struct {
	snapshots port.SnapshotProvider
	repo      port.AssessmentRepository
	publisher port.EventPublisher
	engine    *service.RiskScoringEngine
}

// NewAssessPaymentRisk creates a new AssessPaymentRisk use case.
func NewAssessPaymentRisk(
	snapshots port.SnapshotProvider,
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
	engine *service.RiskScoringEngine,
) *AssessPaymentRisk {
	return &AssessPaymentRisk{
		snapshots: snapshots,
		repo:      repo,
		publisher: publisher,
		engine:    engine,
	}
}

// Execute assesses the payment identified by the request. A missing payment
// surfaces port.ErrPaymentNotFound to the caller unchanged.
func (uc *AssessPaymentRisk) Execute(ctx context.Context, req dto.AssessPaymentRiskRequest) (dto.AssessmentResponse, error) {
	snap, err := uc.snapshots.PaymentSnapshot(ctx, req.PaymentID)
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	// Spending to date counts only disbursed sibling payments.
	spent := decimal.Zero
	for _, p := range snap.ProjectPayments {
		if p.Status == service.PaymentStatusDisbursed {
			spent = spent.Add(p.Amount)
		}
	}

	recipientPayments, err := uc.snapshots.PaymentsByRecipient(ctx, snap.RecipientName)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to fetch recipient history: %w", err)
	}

	recipientHistory := service.RecipientHistory{TotalPayments: len(recipientPayments)}
	for _, p := range recipientPayments {
		recipientHistory.TotalAmount = recipientHistory.TotalAmount.Add(p.Amount)
		if p.Status == service.PaymentStatusRejected {
			recipientHistory.FlaggedPayments++
		}
	}

	result := uc.engine.CalculatePaymentRisk(service.PaymentRiskInput{
		PaymentID:          snap.PaymentID,
		Amount:             snap.Amount,
		ProjectID:          snap.ProjectID,
		ProjectBudget:      snap.ProjectBudget,
		ProjectSpentAmount: spent,
		RecipientName:      snap.RecipientName,
		RecipientHistory:   recipientHistory,
		// No approver history source yet; the default average forces the
		// anomaly ratio to 1.0.
		ApproverHistory: service.ApproverHistory{
			TotalApprovals:   0,
			AverageAmount:    snap.Amount,
			FlaggedApprovals: 0,
		},
	})

	return persistAssessment(ctx, uc.repo, uc.publisher, model.SubjectPayment, snap.PaymentID, result)
}

// persistAssessment stores an engine result as a RiskAssessment aggregate and
// publishes its domain events. Shared by the payment and project use cases.
func persistAssessment(
	ctx context.Context,
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
	subjectType model.SubjectType,
	subjectID uuid.UUID,
	result service.RiskScore,
) (dto.AssessmentResponse, error) {
	assessment, err := model.NewRiskAssessment(subjectType, subjectID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	if err := assessment.Assess(result.Score, result.Factors, result.Recommendations); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to assess %s: %w", subjectType, err)
	}

	if err := repo.Save(ctx, assessment); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to save assessment: %w", err)
	}

	events := assessment.DomainEvents()
	if len(events) > 0 {
		if err := publisher.Publish(ctx, events...); err != nil {
			return dto.AssessmentResponse{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	return dto.FromModel(assessment), nil
}
