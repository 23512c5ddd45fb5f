package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/light-bringer/catalog-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/catalog-service/internal/app/catalog/queries/health"
	"github.com/light-bringer/catalog-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/catalog-service/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-service/internal/app/catalog/schema"
	"github.com/light-bringer/catalog-service/internal/config"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
	"github.com/light-bringer/catalog-service/internal/pkg/metrics"
	"github.com/light-bringer/catalog-service/internal/platform/database"
	grpccatalog "github.com/light-bringer/catalog-service/internal/transport/grpc/catalog"
	httptransport "github.com/light-bringer/catalog-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
// Both front ends share one ReadModel.
type ServiceOptions struct {
	Target      database.Target
	Pool        *database.Pool
	SpannerPool *database.SpannerPool
	ReadModel   contracts.ReadModel
	Provisioner schema.Provisioner
	Reporter    *health.Reporter
	Metrics     *metrics.Metrics

	GRPCServer *grpc.Server
	HTTPRouter *gin.Engine

	logger *zap.Logger
}

// NewServiceOptions creates and wires up all application dependencies.
//
// No connection is attempted here unless cfg.DBEagerCheck is set. An empty
// DATABASE_URL wires a read model that fails every call with
// domain.ErrStoreNotConfigured.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*ServiceOptions, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}

	s := &ServiceOptions{Metrics: m, logger: logger}

	// 1. Store: pool, read model and schema provisioner for the configured driver
	if err := s.openStore(ctx, cfg); err != nil {
		return nil, err
	}

	// 2. Use cases and both front ends over the one read model
	s.wireFrontEnds(cfg)

	return s, nil
}

func (s *ServiceOptions) wireFrontEnds(cfg *config.Config) {
	getProductQuery := get_product.NewQuery(s.ReadModel)
	listProductsQuery := list_products.NewQuery(s.ReadModel, s.logger)
	s.Reporter = health.NewReporter(s.ReadModel, cfg.StoreConfigured(), clock.NewRealClock(), s.logger)

	grpcHandler := grpccatalog.NewHandler(getProductQuery, listProductsQuery, s.logger)
	s.GRPCServer = grpccatalog.NewServer(grpcHandler, grpccatalog.NewHealthServer(s.Reporter), s.logger, s.Metrics)

	httpHandler := httptransport.NewCatalogHandler(getProductQuery, listProductsQuery, s.Reporter, s.logger)
	s.HTTPRouter = httptransport.NewRouter(httpHandler, cfg.ServiceName, s.logger, s.Metrics)
}

func (s *ServiceOptions) openStore(ctx context.Context, cfg *config.Config) error {
	if !cfg.StoreConfigured() {
		s.logger.Warn("DATABASE_URL is not set, running without a store")
		s.ReadModel = repo.UnconfiguredReadModel{}
		s.Provisioner = schema.NopProvisioner{}
		return nil
	}

	target, err := database.ParseTarget(cfg.DatabaseURL, cfg.DBForcePlaintext)
	if err != nil {
		return fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	s.Target = target

	opts := database.Options{
		MaxConnections:  cfg.DBMaxConnections,
		ForcePlaintext:  cfg.DBForcePlaintext,
		EagerCheck:      cfg.DBEagerCheck,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		QueryTimeout:    cfg.DBQueryTimeout,
	}

	switch target.Driver {
	case database.DriverPostgres:
		pool, err := database.OpenTarget(ctx, target, opts)
		if err != nil {
			return err
		}
		if err := s.Metrics.RegisterDBStats(pool.DB(), "catalog"); err != nil {
			s.logger.Warn("Failed to register pool metrics", zap.Error(err))
		}
		s.Pool = pool
		s.ReadModel = repo.NewPostgresReadModel(pool, s.Metrics)
		s.Provisioner = schema.NewPostgresProvisioner(pool)

	case database.DriverSpanner:
		pool, err := database.OpenSpanner(ctx, target, opts)
		if err != nil {
			return err
		}
		s.SpannerPool = pool
		s.ReadModel = repo.NewSpannerReadModel(pool, s.Metrics)
		s.Provisioner = schema.NewSpannerProvisioner(target.Database, database.ClientOptions(target)...)

	case database.DriverMemory:
		s.ReadModel = repo.NewMemoryReadModel(repo.SeedCatalog()...)
		s.Provisioner = schema.NopProvisioner{}

	default:
		return fmt.Errorf("unsupported store driver %s", target.Driver)
	}

	s.logger.Info("Store configured",
		zap.String("driver", target.Driver.String()),
		zap.String("target", target.Redacted()),
		zap.Bool("plaintext", target.Plaintext),
		zap.Int("max_connections", cfg.DBMaxConnections),
	)
	return nil
}

// EnsureSchema provisions the store schema.
func (s *ServiceOptions) EnsureSchema(ctx context.Context) error {
	return s.Provisioner.EnsureSchema(ctx)
}

// Close closes all store resources.
func (s *ServiceOptions) Close() error {
	var errs []error
	if s.Pool != nil {
		errs = append(errs, s.Pool.Close())
	}
	if s.SpannerPool != nil {
		errs = append(errs, s.SpannerPool.Close())
	}
	return errors.Join(errs...)
}
