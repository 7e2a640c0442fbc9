package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdfmis/analytics-service/internal/application/dto"
	"github.com/cdfmis/analytics-service/internal/application/usecase"
	"github.com/cdfmis/analytics-service/internal/domain/model"
	"github.com/cdfmis/analytics-service/internal/domain/port"
	"github.com/cdfmis/analytics-service/internal/domain/service"
	"github.com/cdfmis/analytics-service/pkg/events"
)

// --- Mock implementations ---

type mockAssessmentRepository struct {
	savedAssessment *model.RiskAssessment
	saveFunc        func(ctx context.Context, assessment *model.RiskAssessment) error
	findByIDFunc    func(ctx context.Context, id uuid.UUID) (*model.RiskAssessment, error)
}

func (m *mockAssessmentRepository) Save(ctx context.Context, assessment *model.RiskAssessment) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, assessment)
	}
	m.savedAssessment = assessment
	return nil
}

func (m *mockAssessmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RiskAssessment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssessmentRepository) FindBySubject(_ context.Context, _ model.SubjectType, _ uuid.UUID, _, _ int) ([]*model.RiskAssessment, error) {
	return nil, nil
}

type mockEventPublisher struct {
	publishedEvents []events.DomainEvent
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockSnapshotProvider struct {
	paymentSnapshotFunc     func(ctx context.Context, paymentID uuid.UUID) (*port.PaymentSnapshot, error)
	paymentsByRecipientFunc func(ctx context.Context, recipientName string) ([]service.PaymentRecord, error)
	currentBudgetFunc       func(ctx context.Context, constituencyID uuid.UUID, fiscalYear int) (*service.BudgetSnapshot, error)
	activeProjectsFunc      func(ctx context.Context, constituencyID uuid.UUID) ([]service.ProjectRecord, error)
	openPaymentsFunc        func(ctx context.Context, constituencyID uuid.UUID) ([]service.PaymentRecord, error)
	complianceFunc          func(ctx context.Context, constituencyID uuid.UUID) ([]service.ProjectComplianceRecord, error)
	latestMeetingFunc       func(ctx context.Context, constituencyID uuid.UUID) (*service.MeetingRecord, error)
	completedProjectsFunc   func(ctx context.Context, constituencyID uuid.UUID, year int) ([]service.CompletedProjectRecord, error)
}

func (m *mockSnapshotProvider) PaymentSnapshot(ctx context.Context, paymentID uuid.UUID) (*port.PaymentSnapshot, error) {
	if m.paymentSnapshotFunc != nil {
		return m.paymentSnapshotFunc(ctx, paymentID)
	}
	return nil, fmt.Errorf("%w: %s", port.ErrPaymentNotFound, paymentID)
}

func (m *mockSnapshotProvider) PaymentsByRecipient(ctx context.Context, recipientName string) ([]service.PaymentRecord, error) {
	if m.paymentsByRecipientFunc != nil {
		return m.paymentsByRecipientFunc(ctx, recipientName)
	}
	return nil, nil
}

func (m *mockSnapshotProvider) CurrentBudget(ctx context.Context, constituencyID uuid.UUID, fiscalYear int) (*service.BudgetSnapshot, error) {
	if m.currentBudgetFunc != nil {
		return m.currentBudgetFunc(ctx, constituencyID, fiscalYear)
	}
	return nil, nil
}

func (m *mockSnapshotProvider) ActiveProjects(ctx context.Context, constituencyID uuid.UUID) ([]service.ProjectRecord, error) {
	if m.activeProjectsFunc != nil {
		return m.activeProjectsFunc(ctx, constituencyID)
	}
	return nil, nil
}

func (m *mockSnapshotProvider) OpenPayments(ctx context.Context, constituencyID uuid.UUID) ([]service.PaymentRecord, error) {
	if m.openPaymentsFunc != nil {
		return m.openPaymentsFunc(ctx, constituencyID)
	}
	return nil, nil
}

func (m *mockSnapshotProvider) ImplementationCompliance(ctx context.Context, constituencyID uuid.UUID) ([]service.ProjectComplianceRecord, error) {
	if m.complianceFunc != nil {
		return m.complianceFunc(ctx, constituencyID)
	}
	return nil, nil
}

func (m *mockSnapshotProvider) LatestMeeting(ctx context.Context, constituencyID uuid.UUID) (*service.MeetingRecord, error) {
	if m.latestMeetingFunc != nil {
		return m.latestMeetingFunc(ctx, constituencyID)
	}
	return nil, nil
}

func (m *mockSnapshotProvider) CompletedProjects(ctx context.Context, constituencyID uuid.UUID, year int) ([]service.CompletedProjectRecord, error) {
	if m.completedProjectsFunc != nil {
		return m.completedProjectsFunc(ctx, constituencyID, year)
	}
	return nil, nil
}

// --- Tests ---

func paymentSnapshotFixture(paymentID uuid.UUID) *port.PaymentSnapshot {
	return &port.PaymentSnapshot{
		PaymentID:     paymentID,
		Amount:        decimal.NewFromInt(600000),
		ProjectID:     uuid.New(),
		RecipientName: "Mana Builders Ltd",
		ProjectBudget: decimal.NewFromInt(700000),
		ProjectPayments: []service.PaymentRecord{
			{ID: uuid.New(), Amount: decimal.NewFromInt(50000), Status: service.PaymentStatusDisbursed, CreatedAt: time.Now()},
			{ID: uuid.New(), Amount: decimal.NewFromInt(25000), Status: service.PaymentStatusPending, CreatedAt: time.Now()},
		},
	}
}

func TestAssessPaymentRisk_Execute(t *testing.T) {
	t.Run("assesses a stored payment", func(t *testing.T) {
		paymentID := uuid.New()
		snapshots := &mockSnapshotProvider{
			paymentSnapshotFunc: func(_ context.Context, id uuid.UUID) (*port.PaymentSnapshot, error) {
				assert.Equal(t, paymentID, id)
				return paymentSnapshotFixture(paymentID), nil
			},
			paymentsByRecipientFunc: func(_ context.Context, name string) ([]service.PaymentRecord, error) {
				assert.Equal(t, "Mana Builders Ltd", name)
				return nil, nil
			},
		}
		repo := &mockAssessmentRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewAssessPaymentRisk(snapshots, repo, publisher, service.NewRiskScoringEngine())

		resp, err := uc.Execute(context.Background(), dto.AssessPaymentRiskRequest{PaymentID: paymentID})

		require.NoError(t, err)
		assert.Equal(t, "payment", resp.SubjectType)
		assert.Equal(t, paymentID, resp.SubjectID)
		// Only the disbursed sibling counts toward spending, so this matches
		// the 600000/700000/50000 scenario.
		assert.Equal(t, 50, resp.RiskScore)
		assert.Equal(t, "medium", resp.RiskLevel)
		require.Len(t, resp.Factors, 5)
		assert.Equal(t, "Budget Utilization", resp.Factors[0].Name)

		require.NotNil(t, repo.savedAssessment)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "analytics.assessment.completed", publisher.publishedEvents[0].EventType())
	})

	t.Run("propagates payment not found", func(t *testing.T) {
		snapshots := &mockSnapshotProvider{}
		uc := usecase.NewAssessPaymentRisk(snapshots, &mockAssessmentRepository{}, &mockEventPublisher{}, service.NewRiskScoringEngine())

		_, err := uc.Execute(context.Background(), dto.AssessPaymentRiskRequest{PaymentID: uuid.New()})

		assert.ErrorIs(t, err, port.ErrPaymentNotFound)
	})

	t.Run("builds recipient history from rejected payments", func(t *testing.T) {
		paymentID := uuid.New()
		snapshots := &mockSnapshotProvider{
			paymentSnapshotFunc: func(_ context.Context, id uuid.UUID) (*port.PaymentSnapshot, error) {
				snap := paymentSnapshotFixture(paymentID)
				snap.Amount = decimal.NewFromInt(10000)
				snap.ProjectBudget = decimal.NewFromInt(1000000)
				return snap, nil
			},
			paymentsByRecipientFunc: func(_ context.Context, _ string) ([]service.PaymentRecord, error) {
				return []service.PaymentRecord{
					{Amount: decimal.NewFromInt(5000), Status: service.PaymentStatusDisbursed},
					{Amount: decimal.NewFromInt(8000), Status: service.PaymentStatusRejected},
					{Amount: decimal.NewFromInt(3000), Status: service.PaymentStatusRejected},
				}, nil
			},
		}
		repo := &mockAssessmentRepository{}

		uc := usecase.NewAssessPaymentRisk(snapshots, repo, &mockEventPublisher{}, service.NewRiskScoringEngine())

		resp, err := uc.Execute(context.Background(), dto.AssessPaymentRiskRequest{PaymentID: paymentID})

		require.NoError(t, err)
		// 2 of 3 payments flagged puts the recipient in the worst tier.
		assert.Equal(t, 90, resp.Factors[2].Score)
		assert.Equal(t, "Recipient has 2 flagged payments out of 3", resp.Factors[2].Description)
	})

	t.Run("returns save errors", func(t *testing.T) {
		paymentID := uuid.New()
		snapshots := &mockSnapshotProvider{
			paymentSnapshotFunc: func(_ context.Context, _ uuid.UUID) (*port.PaymentSnapshot, error) {
				return paymentSnapshotFixture(paymentID), nil
			},
		}
		repo := &mockAssessmentRepository{
			saveFunc: func(_ context.Context, _ *model.RiskAssessment) error {
				return fmt.Errorf("connection reset")
			},
		}

		uc := usecase.NewAssessPaymentRisk(snapshots, repo, &mockEventPublisher{}, service.NewRiskScoringEngine())

		_, err := uc.Execute(context.Background(), dto.AssessPaymentRiskRequest{PaymentID: paymentID})

		assert.ErrorContains(t, err, "failed to save assessment")
	})
}
