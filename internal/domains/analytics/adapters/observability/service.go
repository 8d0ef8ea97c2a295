package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	analyticsdomain "github.com/Apurer/storefront-api/internal/domains/analytics/domain"
	analyticsports "github.com/Apurer/storefront-api/internal/domains/analytics/ports"
)

const tracerName = "github.com/Apurer/storefront-api/internal/domains/analytics/adapters/observability/service"

// Service decorates the analytics service with tracing, logging, and metrics.
type Service struct {
	inner   analyticsports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	revenue metric.Float64Gauge
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

// WithMeter publishes the last computed revenue as a gauge.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		if m == nil {
			return
		}
		s.revenue, _ = m.Float64Gauge("analytics.total_revenue", metric.WithDescription("Total revenue at the last metrics computation"))
	}
}

func New(inner analyticsports.Service, opts ...Option) analyticsports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Compute(ctx context.Context) (analyticsdomain.Metrics, error) {
	ctx, span := s.tracer.Start(ctx, "AnalyticsService.Compute")
	defer span.End()

	result, err := s.inner.Compute(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if s.logger != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "failed to compute analytics", slog.String("error", err.Error()))
		}
		return result, err
	}
	span.SetAttributes(
		attribute.Int("analytics.total_orders", result.TotalOrders),
		attribute.Int("analytics.pending_orders", result.PendingOrders),
		attribute.Float64("analytics.total_revenue", result.TotalRevenue),
	)
	if s.revenue != nil {
		s.revenue.Record(ctx, result.TotalRevenue)
	}
	return result, nil
}

var _ analyticsports.Service = (*Service)(nil)
