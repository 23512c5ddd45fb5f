package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/light-bringer/catalog-service/internal/config"
	"github.com/light-bringer/catalog-service/internal/pkg/logging"
	"github.com/light-bringer/catalog-service/internal/pkg/metrics"
	"github.com/light-bringer/catalog-service/internal/pkg/telemetry"
	"github.com/light-bringer/catalog-service/internal/services"
)

const readHeaderTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logging.Sync(logger)

	logger.Info("Starting catalog service",
		zap.String("http_addr", cfg.HTTPAddr()),
		zap.String("grpc_addr", cfg.GRPCAddr()),
		zap.Bool("store_configured", cfg.StoreConfigured()),
	)

	// 2. Tracing
	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}

	// 3. Initialize service dependencies (DI container)
	svc, err := services.NewServiceOptions(ctx, cfg, logger, metrics.New())
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}

	// 4. Start both front ends independently
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           svc.HTTPRouter,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go serveHTTP(httpServer, logger)
	go serveGRPC(svc.GRPCServer, cfg.GRPCAddr(), logger)

	// 5. Provision the schema; failure leaves the service up and degraded
	if cfg.DBProvisionSchema {
		go provisionSchema(ctx, svc, logger)
	}

	<-ctx.Done()
	logger.Info("Shutting down gracefully...")

	// 6. Stop both front ends, then release the store, then flush traces
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := shutdownServers(shutdownCtx, httpServer, svc.GRPCServer); err != nil {
		logger.Warn("Server shutdown incomplete", zap.Error(err))
	}
	if err := svc.Close(); err != nil {
		logger.Warn("Failed to close store", zap.Error(err))
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logger.Warn("Failed to flush traces", zap.Error(err))
	}

	logger.Info("Shutdown complete")
	return nil
}

func serveHTTP(server *http.Server, logger *zap.Logger) {
	logger.Info("HTTP server listening", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("HTTP server error", zap.Error(err))
	}
}

func serveGRPC(server *grpc.Server, addr string, logger *zap.Logger) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("Failed to listen on gRPC address", zap.String("addr", addr), zap.Error(err))
		return
	}

	logger.Info("gRPC server listening", zap.String("addr", addr))
	if err := server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		logger.Error("gRPC server error", zap.Error(err))
	}
}

func provisionSchema(ctx context.Context, svc *services.ServiceOptions, logger *zap.Logger) {
	start := time.Now()
	if err := svc.EnsureSchema(ctx); err != nil {
		logger.Error("Schema provisioning failed, continuing without it", zap.Error(err))
		return
	}
	logger.Info("Schema ready", zap.Duration("duration", time.Since(start)))
}

// shutdownServers stops both servers concurrently. gRPC falls back to a hard
// stop when in-flight calls outlive ctx.
func shutdownServers(ctx context.Context, httpServer *http.Server, grpcServer *grpc.Server) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return httpServer.Shutdown(ctx)
	})

	g.Go(func() error {
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
			return nil
		case <-ctx.Done():
			grpcServer.Stop()
			return ctx.Err()
		}
	})

	return g.Wait()
}
