// Package observability decorates resource services with tracing, logging
// and metrics.
package observability

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/storefront-api/internal/shared/pagination"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

const tracerName = "github.com/Apurer/storefront-api/internal/shared/resource/observability/service"

// Service decorates a resource service. Span names and metric names are
// derived from the resource name, e.g. "ProductService.Create" and
// "product.service.created".
type Service[T resource.Entity] struct {
	inner   resource.Service[T]
	name    string
	span    string
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type config struct {
	tracer trace.Tracer
	logger *slog.Logger
	meter  metric.Meter
}

type Option func(*config)

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(c *config) {
		c.meter = m
	}
}

// New wraps inner. name is the singular resource name in lower case.
func New[T resource.Entity](inner resource.Service[T], name string, opts ...Option) resource.Service[T] {
	cfg := config{
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.tracer == nil {
		cfg.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return &Service[T]{
		inner:   inner,
		name:    name,
		span:    spanPrefix(name),
		tracer:  cfg.tracer,
		logger:  cfg.logger,
		metrics: newServiceMetrics(cfg.meter, name),
	}
}

func (s *Service[T]) List(ctx context.Context, page, limit int) (pagination.Page[projection.Projection[T]], error) {
	ctx, span := s.tracer.Start(ctx, s.span+".List",
		trace.WithAttributes(attribute.Int("page", page), attribute.Int("limit", limit)))
	defer span.End()

	result, err := s.inner.List(ctx, page, limit)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to list "+s.name+"s")
	}
	span.SetAttributes(attribute.Int(s.name+".total", result.Total), attribute.Int(s.name+".returned", len(result.Items)))
	s.logInfo(ctx, s.name+"s listed", slog.Int("page", page), slog.Int("limit", limit), slog.Int("total", result.Total))
	return result, nil
}

func (s *Service[T]) Get(ctx context.Context, id string) (projection.Projection[T], error) {
	ctx, span := s.tracer.Start(ctx, s.span+".Get", trace.WithAttributes(attribute.String(s.name+".id", id)))
	defer span.End()

	result, err := s.inner.Get(ctx, id)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to load "+s.name, slog.String(s.name+".id", id))
	}
	return result, nil
}

func (s *Service[T]) Create(ctx context.Context, entity T) (projection.Projection[T], error) {
	ctx, span := s.tracer.Start(ctx, s.span+".Create")
	defer span.End()

	s.logInfo(ctx, "creating "+s.name)
	result, err := s.inner.Create(ctx, entity)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to create "+s.name)
	}
	span.SetAttributes(attribute.String(s.name+".id", result.ID))
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, s.name+" created", slog.String(s.name+".id", result.ID))
	return result, nil
}

func (s *Service[T]) Update(ctx context.Context, id string, patch resource.Patch[T]) (projection.Projection[T], error) {
	ctx, span := s.tracer.Start(ctx, s.span+".Update", trace.WithAttributes(attribute.String(s.name+".id", id)))
	defer span.End()

	s.logInfo(ctx, "updating "+s.name, slog.String(s.name+".id", id))
	result, err := s.inner.Update(ctx, id, patch)
	if err != nil {
		return result, s.handleError(ctx, span, err, "failed to update "+s.name, slog.String(s.name+".id", id))
	}
	s.metrics.recordUpdated(ctx)
	s.logInfo(ctx, s.name+" updated", slog.String(s.name+".id", id))
	return result, nil
}

func (s *Service[T]) Delete(ctx context.Context, id string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, s.span+".Delete", trace.WithAttributes(attribute.String(s.name+".id", id)))
	defer span.End()

	removed, err := s.inner.Delete(ctx, id)
	if err != nil {
		return false, s.handleError(ctx, span, err, "failed to delete "+s.name, slog.String(s.name+".id", id))
	}
	span.SetAttributes(attribute.Bool(s.name+".removed", removed))
	if removed {
		s.metrics.recordDeleted(ctx)
		s.logInfo(ctx, s.name+" deleted", slog.String(s.name+".id", id))
	}
	return removed, nil
}

func (s *Service[T]) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service[T]) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service[T]) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func spanPrefix(name string) string {
	if name == "" {
		return "ResourceService"
	}
	return strings.ToUpper(name[:1]) + name[1:] + "Service"
}

type serviceMetrics struct {
	created metric.Int64Counter
	updated metric.Int64Counter
	deleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter, name string) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter(name+".service.created", metric.WithDescription("Number of "+name+"s created"))
	updated, _ := m.Int64Counter(name+".service.updated", metric.WithDescription("Number of "+name+"s updated"))
	deleted, _ := m.Int64Counter(name+".service.deleted", metric.WithDescription("Number of "+name+"s deleted"))
	return serviceMetrics{created: created, updated: updated, deleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.created != nil {
		m.created.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.updated != nil {
		m.updated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.deleted != nil {
		m.deleted.Add(ctx, 1)
	}
}
