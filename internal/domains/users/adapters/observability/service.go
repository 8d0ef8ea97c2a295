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

	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	userports "github.com/Apurer/storefront-api/internal/domains/users/ports"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

const tracerName = "github.com/Apurer/storefront-api/internal/domains/users/adapters/observability/service"

// Service decorates the profile service with tracing, logging, and metrics.
type Service struct {
	inner   userports.ProfileService
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core profile service.
func New(inner userports.ProfileService, opts ...Option) userports.ProfileService {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) Get(ctx context.Context, userID string) (projection.Projection[userdomain.User], error) {
	ctx, span := s.tracer.Start(ctx, "ProfileService.Get", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()
	result, err := s.inner.Get(ctx, userID)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to load profile", slog.String("user.id", userID))
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, userID string, patch userdomain.Patch) (projection.Projection[userdomain.User], error) {
	ctx, span := s.tracer.Start(ctx, "ProfileService.Update", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()
	s.logInfo(ctx, "updating profile", slog.String("user.id", userID))
	result, err := s.inner.Update(ctx, userID, patch)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to update profile", slog.String("user.id", userID))
	}
	s.metrics.recordUpdated(ctx)
	s.logInfo(ctx, "profile updated", slog.String("user.id", userID))
	return result, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

type serviceMetrics struct {
	profilesUpdated metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	updated, _ := m.Int64Counter("users.profile.updated", metric.WithDescription("Number of self-service profile updates"))
	return serviceMetrics{profilesUpdated: updated}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.profilesUpdated != nil {
		m.profilesUpdated.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ userports.ProfileService = (*Service)(nil)
