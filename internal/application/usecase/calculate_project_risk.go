package usecase

import (
	"context"

	"github.com/cdfmis/analytics-service/internal/application/dto"
	"github.com/cdfmis/analytics-service/internal/domain/model"
	"github.com/cdfmis/analytics-service/internal/domain/port"
	"github.com/cdfmis/analytics-service/internal/domain/service"
)

// CalculateProjectRisk scores a caller-supplied project proposal snapshot.
type CalculateProjectRisk struct {
	repo      port.AssessmentRepository
	publisher port.EventPublisher
	engine    *service.RiskScoringEngine
}

// NewCalculateProjectRisk creates a new CalculateProjectRisk use case.
func NewCalculateProjectRisk(
	repo port.AssessmentRepository,
	publisher port.EventPublisher,
	engine *service.RiskScoringEngine,
) *CalculateProjectRisk {
	return &CalculateProjectRisk{repo: repo, publisher: publisher, engine: engine}
}

// Execute runs the scoring engine on the supplied snapshot.
func (uc *CalculateProjectRisk) Execute(ctx context.Context, req dto.CalculateProjectRiskRequest) (dto.AssessmentResponse, error) {
	result := uc.engine.CalculateProjectRisk(req.ToInput())
	return persistAssessment(ctx, uc.repo, uc.publisher, model.SubjectProject, req.ProjectID, result)
}
