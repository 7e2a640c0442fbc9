package usecase

import (
	"context"

	"github.com/cdfmis/analytics-service/internal/application/dto"
	"github.com/cdfmis/analytics-service/internal/domain/model"
	"github.com/cdfmis/analytics-service/internal/domain/port"
	"github.com/cdfmis/analytics-service/internal/domain/service"
)

// CalculatePaymentRisk scores a caller-supplied payment snapshot without any
// database lookups, then persists the result like every other assessment.
type CalculatePaymentRisk struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
	engine    *service.RiskScoringEngine
}

// NewCalculatePaymentRisk creates a new CalculatePaymentRisk use case.
func NewCalculatePaymentRisk(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
	engine *service.RiskScoringEngine,
) *CalculatePaymentRisk {
	return &CalculatePaymentRisk{repo: repo, publisher: publisher, engine: engine}
}

// Execute runs the scoring engine on the supplied snapshot.
func (uc *CalculatePaymentRisk) Execute(ctx context.Context, req dto.CalculatePaymentRiskRequest) (dto.AssessmentResponse, error) {
	result := uc.engine.CalculatePaymentRisk(req.ToInput())
	return persistAssessment(ctx, uc.repo, uc.publisher, model.SubjectPayment, req.PaymentID, result)
}
