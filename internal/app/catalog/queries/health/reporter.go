package health

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/catalog-service/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
)

// StoreStatus is the reported state of the backing store.
type StoreStatus string

const (
	StoreOK           StoreStatus = "ok"
	StoreError        StoreStatus = "error"
	StoreUnconfigured StoreStatus = "unconfigured"
)

// DefaultTimeout bounds a single health check.
const DefaultTimeout = 2 * time.Second

const unconfiguredMessage = "DATABASE_URL is not set"

// Report is the outcome of one health check.
type Report struct {
	OK        bool
	Store     StoreStatus
	Message   string
	CheckedAt time.Time
}

// Reporter derives service health from store reachability.
type Reporter struct {
	readModel  contracts.ReadModel
	configured bool
	clock      clock.Clock
	timeout    time.Duration
	logger     *zap.Logger
}

// NewReporter creates a reporter. When configured is false every check reports
// StoreUnconfigured without touching readModel.
func NewReporter(readModel contracts.ReadModel, configured bool, clk clock.Clock, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{
		readModel:  readModel,
		configured: configured,
		clock:      clk,
		timeout:    DefaultTimeout,
		logger:     logger,
	}
}

// Check pings the store and reports the result.
func (r *Reporter) Check(ctx context.Context) Report {
	now := r.clock.Now()
	if !r.configured {
		return Report{Store: StoreUnconfigured, Message: unconfiguredMessage, CheckedAt: now}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.readModel.Ping(ctx); err != nil {
		r.logger.Warn("Health check failed", zap.Error(err))
		return Report{Store: StoreError, Message: err.Error(), CheckedAt: now}
	}
	return Report{OK: true, Store: StoreOK, CheckedAt: now}
}
