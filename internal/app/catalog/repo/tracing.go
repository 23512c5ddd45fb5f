package repo

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/light-bringer/catalog-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/metrics"
)

const tracerName = "github.com/light-bringer/catalog-service/internal/app/catalog/repo"

// observer opens a span per store operation and records its duration and outcome.
type observer struct {
	system  string
	tracer  trace.Tracer
	metrics *metrics.Metrics
}

func newObserver(system string, m *metrics.Metrics) observer {
	return observer{
		system:  system,
		tracer:  otel.Tracer(tracerName),
		metrics: m,
	}
}

func (o observer) start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	attrs = append(attrs, attribute.String("db.system", o.system), attribute.String("db.operation", operation))
	ctx, span := o.tracer.Start(ctx, "catalog."+operation, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(attrs...))
	started := time.Now()

	return ctx, func(err error) {
		outcome := metrics.OutcomeOK
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			outcome = metrics.OutcomeNotFound
		case err != nil:
			outcome = metrics.OutcomeError
			span.RecordError(err)
			span.SetStatus(codes.Error, "store failure")
		}
		o.metrics.ObserveQuery(operation, outcome, time.Since(started))
		span.End()
	}
}
