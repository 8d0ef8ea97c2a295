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

	orderdomain "github.com/Apurer/storefront-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/storefront-api/internal/domains/orders/ports"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

const tracerName = "github.com/Apurer/storefront-api/internal/domains/orders/adapters/observability/service"

// History decorates the order history service with tracing, logging, and metrics.
type History struct {
	inner   orderports.History
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*History)

func WithLogger(logger *slog.Logger) Option {
	return func(h *History) {
		h.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(h *History) {
		h.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(h *History) {
		h.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order history service.
func New(inner orderports.History, opts ...Option) orderports.History {
	h := &History{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	if h.tracer == nil {
		h.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return h
}

func (h *History) List(ctx context.Context, userID string) ([]projection.Projection[orderdomain.Order], error) {
	ctx, span := h.tracer.Start(ctx, "OrderHistory.List", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	result, err := h.inner.List(ctx, userID)
	if err != nil {
		return nil, h.handleError(ctx, span, err, "failed to list orders", slog.String("user.id", userID))
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (h *History) Get(ctx context.Context, userID, orderID string) (projection.Projection[orderdomain.Order], error) {
	ctx, span := h.tracer.Start(ctx, "OrderHistory.Get",
		trace.WithAttributes(attribute.String("user.id", userID), attribute.String("order.id", orderID)))
	defer span.End()

	result, err := h.inner.Get(ctx, userID, orderID)
	if err != nil {
		return result, h.handleError(ctx, span, err, "failed to load order", slog.String("order.id", orderID))
	}
	return result, nil
}

func (h *History) Cancel(ctx context.Context, userID, orderID string) (projection.Projection[orderdomain.Order], error) {
	ctx, span := h.tracer.Start(ctx, "OrderHistory.Cancel",
		trace.WithAttributes(attribute.String("user.id", userID), attribute.String("order.id", orderID)))
	defer span.End()

	h.logInfo(ctx, "cancelling order", slog.String("order.id", orderID), slog.String("user.id", userID))
	result, err := h.inner.Cancel(ctx, userID, orderID)
	if err != nil {
		return result, h.handleError(ctx, span, err, "failed to cancel order", slog.String("order.id", orderID))
	}
	h.metrics.recordCancelled(ctx)
	h.logInfo(ctx, "order cancelled", slog.String("order.id", orderID))
	return result, nil
}

func (h *History) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if h.logger == nil {
		return
	}
	h.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (h *History) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if h.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	h.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (h *History) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	h.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersCancelled metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	cancelled, _ := m.Int64Counter("orders.history.cancelled", metric.WithDescription("Number of orders cancelled by customers"))
	return serviceMetrics{ordersCancelled: cancelled}
}

func (m serviceMetrics) recordCancelled(ctx context.Context) {
	if m.ordersCancelled != nil {
		m.ordersCancelled.Add(ctx, 1)
	}
}

var _ orderports.History = (*History)(nil)
