package catalog

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/catalog-service/internal/pkg/metrics"
	catalogv1 "github.com/light-bringer/catalog-service/proto/catalog/v1"
)

// NewServer creates a gRPC server exposing the catalog, health and reflection services.
func NewServer(handler *Handler, healthServer *HealthServer, logger *zap.Logger, m *metrics.Metrics, opts ...grpc.ServerOption) *grpc.Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	serverOpts := append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(logger),
			LoggingInterceptor(logger),
			MetricsInterceptor(m),
		),
	}, opts...)

	server := grpc.NewServer(serverOpts...)
	catalogv1.RegisterCatalogServiceServer(server, handler)
	healthpb.RegisterHealthServer(server, healthServer)

	// Enable reflection (for grpcurl and debugging)
	reflection.Register(server)
	return server
}
