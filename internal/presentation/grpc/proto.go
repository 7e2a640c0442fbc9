package grpc

// proto.go defines the gRPC server interface derived from cdf/analytics/v1/analytics.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/cdfmis/api/gen/go/cdf/analytics/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AnalyticsServiceServer is the server API for AnalyticsService.
type AnalyticsServiceServer interface {
	AssessPaymentRisk(context.Context, *AssessPaymentRiskRequest) (*RiskScoreResponse, error)
	CalculatePaymentRisk(context.Context, *CalculatePaymentRiskRequest) (*RiskScoreResponse, error)
	CalculateProjectRisk(context.Context, *CalculateProjectRiskRequest) (*RiskScoreResponse, error)
	GetAssessment(context.Context, *GetAssessmentRequest) (*RiskScoreResponse, error)
	GenerateDashboardInsights(context.Context, *GenerateInsightsRequest) (*DashboardInsightsResponse, error)
	mustEmbedUnimplementedAnalyticsServiceServer()
}

// UnimplementedAnalyticsServiceServer provides forward-compatible default implementations.
type UnimplementedAnalyticsServiceServer struct{}

func (UnimplementedAnalyticsServiceServer) AssessPaymentRisk(context.Context, *AssessPaymentRiskRequest) (*RiskScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessPaymentRisk not implemented")
}
func (UnimplementedAnalyticsServiceServer) CalculatePaymentRisk(context.Context, *CalculatePaymentRiskRequest) (*RiskScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculatePaymentRisk not implemented")
}
func (UnimplementedAnalyticsServiceServer) CalculateProjectRisk(context.Context, *CalculateProjectRiskRequest) (*RiskScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateProjectRisk not implemented")
}
func (UnimplementedAnalyticsServiceServer) GetAssessment(context.Context, *GetAssessmentRequest) (*RiskScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAssessment not implemented")
}
func (UnimplementedAnalyticsServiceServer) GenerateDashboardInsights(context.Context, *GenerateInsightsRequest) (*DashboardInsightsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateDashboardInsights not implemented")
}
func (UnimplementedAnalyticsServiceServer) mustEmbedUnimplementedAnalyticsServiceServer() {}

// RegisterAnalyticsServiceServer registers the AnalyticsServiceServer with the gRPC server.
func RegisterAnalyticsServiceServer(s *grpclib.Server, srv AnalyticsServiceServer) {
	s.RegisterService(&_AnalyticsService_serviceDesc, srv)
}

var _AnalyticsService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "cdf.analytics.v1.AnalyticsService",
	HandlerType: (*AnalyticsServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AssessPaymentRisk", Handler: _AnalyticsService_AssessPaymentRisk_Handler},
		{MethodName: "CalculatePaymentRisk", Handler: _AnalyticsService_CalculatePaymentRisk_Handler},
		{MethodName: "CalculateProjectRisk", Handler: _AnalyticsService_CalculateProjectRisk_Handler},
		{MethodName: "GetAssessment", Handler: _AnalyticsService_GetAssessment_Handler},
		{MethodName: "GenerateDashboardInsights", Handler: _AnalyticsService_GenerateDashboardInsights_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _AnalyticsService_AssessPaymentRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(AssessPaymentRiskRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(AnalyticsServiceServer).AssessPaymentRisk(ctx, req)
}

func _AnalyticsService_CalculatePaymentRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(CalculatePaymentRiskRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(AnalyticsServiceServer).CalculatePaymentRisk(ctx, req)
}

func _AnalyticsService_CalculateProjectRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(CalculateProjectRiskRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(AnalyticsServiceServer).CalculateProjectRisk(ctx, req)
}

func _AnalyticsService_GetAssessment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetAssessmentRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(AnalyticsServiceServer).GetAssessment(ctx, req)
}

func _AnalyticsService_GenerateDashboardInsights_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GenerateInsightsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(AnalyticsServiceServer).GenerateDashboardInsights(ctx, req)
}
