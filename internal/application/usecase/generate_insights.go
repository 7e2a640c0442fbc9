package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cdfmis/analytics-service/internal/application/dto"
	"github.com/cdfmis/analytics-service/internal/domain/port"
	"github.com/cdfmis/analytics-service/internal/domain/service"
)

// GenerateDashboardInsights fans the five independent advisory analyzers out
// over current-fiscal-year snapshots and merges their results positionally.
// The analyzers are pure; only the snapshot fetches can fail.
type GenerateDashboardInsights struct {
	snapshots port.SnapshotProvider
	engine    *service.AdvisoryEngine
}

// NewGenerateDashboardInsights creates a new GenerateDashboardInsights use case.
func NewGenerateDashboardInsights(snapshots port.SnapshotProvider, engine *service.AdvisoryEngine) *GenerateDashboardInsights {
	return &GenerateDashboardInsights{snapshots: snapshots, engine: engine}
}

// Execute produces dashboard insights for a constituency. A zero AsOf
// defaults to now; analyzers never read the clock themselves.
func (uc *GenerateDashboardInsights) Execute(ctx context.Context, req dto.GenerateInsightsRequest) (dto.DashboardInsightsResponse, error) {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	var insights service.DashboardInsights

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		budget, err := uc.snapshots.CurrentBudget(ctx, req.ConstituencyID, asOf.Year())
		if err != nil {
			return fmt.Errorf("budget snapshot: %w", err)
		}
		insights.BudgetHealth = uc.engine.AnalyzeBudgetHealth(asOf, budget)
		return nil
	})

	g.Go(func() error {
		projects, err := uc.snapshots.ActiveProjects(ctx, req.ConstituencyID)
		if err != nil {
			return fmt.Errorf("project snapshot: %w", err)
		}
		insights.ProjectAlerts = uc.engine.AnalyzeProjectAlerts(asOf, projects)
		return nil
	})

	g.Go(func() error {
		payments, err := uc.snapshots.OpenPayments(ctx, req.ConstituencyID)
		if err != nil {
			return fmt.Errorf("payment snapshot: %w", err)
		}
		insights.PaymentAlerts = uc.engine.AnalyzePaymentAlerts(asOf, payments)
		return nil
	})

	g.Go(func() error {
		compliance, err := uc.snapshots.ImplementationCompliance(ctx, req.ConstituencyID)
		if err != nil {
			return fmt.Errorf("compliance snapshot: %w", err)
		}
		meeting, err := uc.snapshots.LatestMeeting(ctx, req.ConstituencyID)
		if err != nil {
			return fmt.Errorf("meeting snapshot: %w", err)
		}
		insights.ComplianceAdvisory = uc.engine.AnalyzeCompliance(asOf, compliance, meeting)
		return nil
	})

	g.Go(func() error {
		completed, err := uc.snapshots.CompletedProjects(ctx, req.ConstituencyID, asOf.Year())
		if err != nil {
			return fmt.Errorf("performance snapshot: %w", err)
		}
		insights.PerformanceInsights = uc.engine.AnalyzePerformance(completed)
		return nil
	})

	if err := g.Wait(); err != nil {
		return dto.DashboardInsightsResponse{}, err
	}

	return dto.FromInsights(insights), nil
}
