package catalog

import (
	"context"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/catalog-service/internal/app/catalog/queries/health"
	catalogv1 "github.com/light-bringer/catalog-service/proto/catalog/v1"
)

// HealthServer answers the standard gRPC health protocol from the Health Reporter.
type HealthServer struct {
	healthpb.UnimplementedHealthServer
	reporter *health.Reporter
}

// NewHealthServer creates a health server backed by reporter.
func NewHealthServer(reporter *health.Reporter) *HealthServer {
	return &HealthServer{reporter: reporter}
}

// Check reports SERVING when the store answers. The empty service name and the
// catalog service name are both known.
func (s *HealthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if req.GetService() != "" && req.GetService() != catalogv1.CatalogService_ServiceDesc.ServiceName {
		return nil, status.Error(codes.NotFound, "unknown service")
	}

	report := s.reporter.Check(ctx)
	if !report.OK {
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
