package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cdfmis/analytics-service/internal/application/dto"
	"github.com/cdfmis/analytics-service/internal/application/usecase"
	"github.com/cdfmis/analytics-service/internal/domain/port"
)

// Compile-time assertion that AnalyticsHandler implements AnalyticsServiceServer.
var _ AnalyticsServiceServer = (*AnalyticsHandler)(nil)

// AnalyticsHandler implements the gRPC AnalyticsServiceServer interface.
type AnalyticsHandler struct {
	UnimplementedAnalyticsServiceServer
	assessPaymentRisk    *usecase.AssessPaymentRisk
	calculatePaymentRisk *usecase.CalculatePaymentRisk
	calculateProjectRisk *usecase.CalculateProjectRisk
	getAssessment        *usecase.GetAssessment
	generateInsights     *usecase.GenerateDashboardInsights
	logger               *slog.Logger
}

// NewAnalyticsHandler creates a new gRPC handler.
func NewAnalyticsHandler(
	assessPaymentRisk *usecase.AssessPaymentRisk,
	calculatePaymentRisk *usecase.CalculatePaymentRisk,
	calculateProjectRisk *usecase.CalculateProjectRisk,
	getAssessment *usecase.GetAssessment,
	generateInsights *usecase.GenerateDashboardInsights,
	logger *slog.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		assessPaymentRisk:    assessPaymentRisk,
		calculatePaymentRisk: calculatePaymentRisk,
		calculateProjectRisk: calculateProjectRisk,
		getAssessment:        getAssessment,
		generateInsights:     generateInsights,
		logger:               logger,
	}
}

// Proto-aligned request/response message types.

// AssessPaymentRiskRequest represents the proto AssessPaymentRiskRequest message.
type AssessPaymentRiskRequest struct {
	PaymentID string `json:"payment_id"`
}

// RecipientHistoryMsg represents the proto RecipientHistory message.
type RecipientHistoryMsg struct {
	TotalPayments   int32  `json:"total_payments"`
	TotalAmount     string `json:"total_amount"`
	FlaggedPayments int32  `json:"flagged_payments"`
}

// ApproverHistoryMsg represents the proto ApproverHistory message.
type ApproverHistoryMsg struct {
	TotalApprovals   int32  `json:"total_approvals"`
	AverageAmount    string `json:"average_amount"`
	FlaggedApprovals int32  `json:"flagged_approvals"`
}

// CalculatePaymentRiskRequest represents the proto CalculatePaymentRiskRequest message.
type CalculatePaymentRiskRequest struct {
	PaymentID          string               `json:"payment_id"`
	Amount             string               `json:"amount"`
	ProjectID          string               `json:"project_id"`
	ProjectBudget      string               `json:"project_budget"`
	ProjectSpentAmount string               `json:"project_spent_amount"`
	RecipientName      string               `json:"recipient_name"`
	RecipientHistory   *RecipientHistoryMsg `json:"recipient_history"`
	ApproverHistory    *ApproverHistoryMsg  `json:"approver_history"`
}

// SubmitterHistoryMsg represents the proto SubmitterHistory message.
type SubmitterHistoryMsg struct {
	TotalProjects     int32 `json:"total_projects"`
	CompletedProjects int32 `json:"completed_projects"`
	RejectedProjects  int32 `json:"rejected_projects"`
}

// CalculateProjectRiskRequest represents the proto CalculateProjectRiskRequest message.
type CalculateProjectRiskRequest struct {
	ProjectID               string               `json:"project_id"`
	EstimatedCost           string               `json:"estimated_cost"`
	ProjectType             string               `json:"project_type"`
	ConstituencyBudget      string               `json:"constituency_budget"`
	ConstituencySpentAmount string               `json:"constituency_spent_amount"`
	SubmitterHistory        *SubmitterHistoryMsg `json:"submitter_history"`
	SimilarProjectsInArea   int32                `json:"similar_projects_in_area"`
}

// GetAssessmentRequest represents the proto GetAssessmentRequest message.
type GetAssessmentRequest struct {
	ID string `json:"id"`
}

// RiskFactorMsg represents the proto RiskFactor message.
type RiskFactorMsg struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Weight      int32  `json:"weight"`
	Score       int32  `json:"score"`
	Description string `json:"description"`
}

// RiskScoreResponse represents the proto RiskScoreResponse message.
type RiskScoreResponse struct {
	ID              string           `json:"id"`
	SubjectType     string           `json:"subject_type"`
	SubjectID       string           `json:"subject_id"`
	RiskScore       int32            `json:"risk_score"`
	RiskLevel       string           `json:"risk_level"`
	Factors         []*RiskFactorMsg `json:"factors"`
	Recommendations []string         `json:"recommendations"`
	AssessedAt      string           `json:"assessed_at"`
}

// GenerateInsightsRequest represents the proto GenerateInsightsRequest message.
type GenerateInsightsRequest struct {
	ConstituencyID string `json:"constituency_id"`
	AsOf           string `json:"as_of"`
}

// RelatedEntityMsg represents the proto RelatedEntity message.
type RelatedEntityMsg struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdvisoryMsg represents the proto Advisory message.
type AdvisoryMsg struct {
	Type            string              `json:"type"`
	Title           string              `json:"title"`
	Message         string              `json:"message"`
	Priority        string              `json:"priority"`
	Actionable      bool                `json:"actionable"`
	SuggestedAction string              `json:"suggested_action"`
	RelatedEntities []*RelatedEntityMsg `json:"related_entities"`
}

// DashboardInsightsResponse represents the proto DashboardInsightsResponse message.
type DashboardInsightsResponse struct {
	BudgetHealth        []*AdvisoryMsg `json:"budget_health"`
	ProjectAlerts       []*AdvisoryMsg `json:"project_alerts"`
	PaymentAlerts       []*AdvisoryMsg `json:"payment_alerts"`
	ComplianceAdvisory  []*AdvisoryMsg `json:"compliance_advisory"`
	PerformanceInsights []*AdvisoryMsg `json:"performance_insights"`
}

// AssessPaymentRisk scores a stored payment against its project context.
func (h *AnalyticsHandler) AssessPaymentRisk(ctx context.Context, req *AssessPaymentRiskRequest) (*RiskScoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	paymentID, err := uuid.Parse(req.PaymentID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid payment_id: %v", err)
	}

	h.logger.Info("assessing payment risk",
		slog.String("payment_id", paymentID.String()),
	)

	result, err := h.assessPaymentRisk.Execute(ctx, dto.AssessPaymentRiskRequest{PaymentID: paymentID})
	if err != nil {
		if errors.Is(err, port.ErrPaymentNotFound) {
			return nil, status.Errorf(codes.NotFound, "payment %s not found", paymentID)
		}
		h.logger.Error("failed to assess payment risk",
			slog.String("payment_id", paymentID.String()),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return riskScoreResponse(result), nil
}

// CalculatePaymentRisk scores a caller-supplied payment snapshot.
func (h *AnalyticsHandler) CalculatePaymentRisk(ctx context.Context, req *CalculatePaymentRiskRequest) (*RiskScoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	paymentID, err := uuid.Parse(req.PaymentID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid payment_id: %v", err)
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid project_id: %v", err)
	}

	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}
	budget, err := parseAmount(req.ProjectBudget, "project_budget")
	if err != nil {
		return nil, err
	}
	spent, err := parseAmount(req.ProjectSpentAmount, "project_spent_amount")
	if err != nil {
		return nil, err
	}

	ucReq := dto.CalculatePaymentRiskRequest{
		PaymentID:          paymentID,
		Amount:             amount,
		ProjectID:          projectID,
		ProjectBudget:      budget,
		ProjectSpentAmount: spent,
		RecipientName:      req.RecipientName,
	}
	if req.RecipientHistory != nil {
		total, err := parseAmount(req.RecipientHistory.TotalAmount, "recipient_history.total_amount")
		if err != nil {
			return nil, err
		}
		ucReq.RecipientHistory = dto.RecipientHistoryDTO{
			TotalPayments:   int(req.RecipientHistory.TotalPayments),
			TotalAmount:     total,
			FlaggedPayments: int(req.RecipientHistory.FlaggedPayments),
		}
	}
	if req.ApproverHistory != nil {
		average, err := parseAmount(req.ApproverHistory.AverageAmount, "approver_history.average_amount")
		if err != nil {
			return nil, err
		}
		ucReq.ApproverHistory = dto.ApproverHistoryDTO{
			TotalApprovals:   int(req.ApproverHistory.TotalApprovals),
			AverageAmount:    average,
			FlaggedApprovals: int(req.ApproverHistory.FlaggedApprovals),
		}
	}

	result, err := h.calculatePaymentRisk.Execute(ctx, ucReq)
	if err != nil {
		h.logger.Error("failed to calculate payment risk",
			slog.String("payment_id", paymentID.String()),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return riskScoreResponse(result), nil
}

// CalculateProjectRisk scores a caller-supplied project proposal snapshot.
func (h *AnalyticsHandler) CalculateProjectRisk(ctx context.Context, req *CalculateProjectRiskRequest) (*RiskScoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid project_id: %v", err)
	}

	cost, err := parseAmount(req.EstimatedCost, "estimated_cost")
	if err != nil {
		return nil, err
	}
	budget, err := parseAmount(req.ConstituencyBudget, "constituency_budget")
	if err != nil {
		return nil, err
	}
	spent, err := parseAmount(req.ConstituencySpentAmount, "constituency_spent_amount")
	if err != nil {
		return nil, err
	}

	ucReq := dto.CalculateProjectRiskRequest{
		ProjectID:               projectID,
		EstimatedCost:           cost,
		ProjectType:             req.ProjectType,
		ConstituencyBudget:      budget,
		ConstituencySpentAmount: spent,
		SimilarProjectsInArea:   int(req.SimilarProjectsInArea),
	}
	if req.SubmitterHistory != nil {
		ucReq.SubmitterHistory = dto.SubmitterHistoryDTO{
			TotalProjects:     int(req.SubmitterHistory.TotalProjects),
			CompletedProjects: int(req.SubmitterHistory.CompletedProjects),
			RejectedProjects:  int(req.SubmitterHistory.RejectedProjects),
		}
	}

	result, err := h.calculateProjectRisk.Execute(ctx, ucReq)
	if err != nil {
		h.logger.Error("failed to calculate project risk",
			slog.String("project_id", projectID.String()),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return riskScoreResponse(result), nil
}

// GetAssessment retrieves a stored risk assessment by ID.
func (h *AnalyticsHandler) GetAssessment(ctx context.Context, req *GetAssessmentRequest) (*RiskScoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	assessmentID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id: %v", err)
	}

	result, err := h.getAssessment.Execute(ctx, dto.GetAssessmentRequest{AssessmentID: assessmentID})
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, status.Errorf(codes.NotFound, "assessment %s not found", assessmentID)
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return riskScoreResponse(result), nil
}

// GenerateDashboardInsights runs the advisory analyzers for a constituency.
func (h *AnalyticsHandler) GenerateDashboardInsights(ctx context.Context, req *GenerateInsightsRequest) (*DashboardInsightsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	constituencyID, err := uuid.Parse(req.ConstituencyID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid constituency_id: %v", err)
	}

	var asOf time.Time
	if req.AsOf != "" {
		asOf, err = time.Parse(time.RFC3339, req.AsOf)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid as_of: %v", err)
		}
	}

	h.logger.Info("generating dashboard insights",
		slog.String("constituency_id", constituencyID.String()),
	)

	result, err := h.generateInsights.Execute(ctx, dto.GenerateInsightsRequest{
		ConstituencyID: constituencyID,
		AsOf:           asOf,
	})
	if err != nil {
		h.logger.Error("failed to generate dashboard insights",
			slog.String("constituency_id", constituencyID.String()),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &DashboardInsightsResponse{
		BudgetHealth:        advisoryMsgs(result.BudgetHealth),
		ProjectAlerts:       advisoryMsgs(result.ProjectAlerts),
		PaymentAlerts:       advisoryMsgs(result.PaymentAlerts),
		ComplianceAdvisory:  advisoryMsgs(result.ComplianceAdvisory),
		PerformanceInsights: advisoryMsgs(result.PerformanceInsights),
	}, nil
}

func parseAmount(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

func riskScoreResponse(result dto.AssessmentResponse) *RiskScoreResponse {
	factors := make([]*RiskFactorMsg, 0, len(result.Factors))
	for _, f := range result.Factors {
		factors = append(factors, &RiskFactorMsg{
			Kind:        f.Kind,
			Name:        f.Name,
			Weight:      int32(f.Weight),
			Score:       int32(f.Score),
			Description: f.Description,
		})
	}

	return &RiskScoreResponse{
		ID:              result.ID.String(),
		SubjectType:     result.SubjectType,
		SubjectID:       result.SubjectID.String(),
		RiskScore:       int32(result.RiskScore),
		RiskLevel:       result.RiskLevel,
		Factors:         factors,
		Recommendations: result.Recommendations,
		AssessedAt:      result.AssessedAt.Format(time.RFC3339),
	}
}

func advisoryMsgs(advisories []dto.AdvisoryDTO) []*AdvisoryMsg {
	out := make([]*AdvisoryMsg, 0, len(advisories))
	for _, a := range advisories {
		var related []*RelatedEntityMsg
		for _, e := range a.RelatedEntities {
			related = append(related, &RelatedEntityMsg{Type: e.Type, ID: e.ID.String(), Name: e.Name})
		}
		out = append(out, &AdvisoryMsg{
			Type:            a.Type,
			Title:           a.Title,
			Message:         a.Message,
			Priority:        a.Priority,
			Actionable:      a.Actionable,
			SuggestedAction: a.SuggestedAction,
			RelatedEntities: related,
		})
	}
	return out
}
