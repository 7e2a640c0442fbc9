package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdfmis/analytics-service/internal/application/dto"
	"github.com/cdfmis/analytics-service/internal/application/usecase"
	"github.com/cdfmis/analytics-service/internal/domain/model"
	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
)

func storedAssessment(t *testing.T) *model.RiskAssessment {
	t.Helper()
	assessment, err := model.NewRiskAssessment(model.SubjectPayment, uuid.New())
	require.NoError(t, err)
	require.NoError(t, assessment.Assess(50, []valueobject.RiskFactor{
		{Kind: valueobject.FactorBudgetUtilization, Weight: 25, Score: 90, Description: "Payment is 85.7% of project budget"},
	}, []string{"Consider splitting payment into smaller milestones"}))
	return assessment
}

func TestGetAssessment_Execute(t *testing.T) {
	t.Run("returns a stored assessment", func(t *testing.T) {
		stored := storedAssessment(t)
		repo := &mockAssessmentRepository{
			findByIDFunc: func(_ context.Context, id uuid.UUID) (*model.RiskAssessment, error) {
				assert.Equal(t, stored.ID(), id)
				return stored, nil
			},
		}

		uc := usecase.NewGetAssessment(repo)

		resp, err := uc.Execute(context.Background(), dto.GetAssessmentRequest{AssessmentID: stored.ID()})

		require.NoError(t, err)
		assert.Equal(t, stored.ID(), resp.ID)
		assert.Equal(t, 50, resp.RiskScore)
		assert.Equal(t, "medium", resp.RiskLevel)
		require.Len(t, resp.Factors, 1)
		assert.Equal(t, "budget_utilization", resp.Factors[0].Kind)
		assert.Equal(t, "Budget Utilization", resp.Factors[0].Name)
	})

	t.Run("missing assessment is an error", func(t *testing.T) {
		uc := usecase.NewGetAssessment(&mockAssessmentRepository{})

		_, err := uc.Execute(context.Background(), dto.GetAssessmentRequest{AssessmentID: uuid.New()})

		assert.ErrorContains(t, err, "assessment not found")
	})

	t.Run("repository errors are wrapped", func(t *testing.T) {
		repo := &mockAssessmentRepository{
			findByIDFunc: func(_ context.Context, _ uuid.UUID) (*model.RiskAssessment, error) {
				return nil, fmt.Errorf("connection reset")
			},
		}

		uc := usecase.NewGetAssessment(repo)

		_, err := uc.Execute(context.Background(), dto.GetAssessmentRequest{AssessmentID: uuid.New()})

		assert.ErrorContains(t, err, "failed to find assessment")
	})
}
