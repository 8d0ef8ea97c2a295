package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	authports "github.com/Apurer/storefront-api/internal/domains/auth/ports"
	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

const tracerName = "github.com/Apurer/storefront-api/internal/domains/auth/adapters/observability/service"

// Service decorates the auth service with tracing, logging, and metrics.
type Service struct {
	inner   authports.Service
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

func New(inner authports.Service, opts ...Option) authports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
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
	return s
}

func (s *Service) Login(ctx context.Context, email, password string) (authports.Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()
	session, err := s.inner.Login(ctx, email, password)
	if err != nil {
		s.metrics.recordLogin(ctx, false)
		// Email is deliberately not logged for failed attempts.
		return session, s.handleError(ctx, span, err, "login failed")
	}
	span.SetAttributes(attribute.String("user.id", session.User.ID))
	s.metrics.recordLogin(ctx, true)
	s.logInfo(ctx, "user logged in", slog.String("user.id", session.User.ID))
	return session, nil
}

func (s *Service) Register(ctx context.Context, reg authports.Registration) (authports.Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Register")
	defer span.End()
	session, err := s.inner.Register(ctx, reg)
	if err != nil {
		return session, s.handleError(ctx, span, err, "registration failed")
	}
	span.SetAttributes(attribute.String("user.id", session.User.ID))
	s.metrics.recordRegistered(ctx)
	s.logInfo(ctx, "user registered", slog.String("user.id", session.User.ID))
	return session, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (authports.Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Refresh")
	defer span.End()
	session, err := s.inner.Refresh(ctx, refreshToken)
	if err != nil {
		return session, s.handleError(ctx, span, err, "token refresh failed")
	}
	span.SetAttributes(attribute.String("user.id", session.User.ID))
	return session, nil
}

func (s *Service) Logout(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "AuthService.Logout", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()
	if err := s.inner.Logout(ctx, userID); err != nil {
		return s.handleError(ctx, span, err, "logout failed", slog.String("user.id", userID))
	}
	s.logInfo(ctx, "user logged out", slog.String("user.id", userID))
	return nil
}

func (s *Service) Me(ctx context.Context, userID string) (projection.Projection[userdomain.User], error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Me", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()
	user, err := s.inner.Me(ctx, userID)
	if err != nil {
		return user, s.handleError(ctx, span, err, "failed to load current user", slog.String("user.id", userID))
	}
	return user, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	level := slog.LevelError
	if errors.Is(err, authports.ErrInvalidCredentials) || errors.Is(err, authports.ErrInvalidRefreshToken) {
		level = slog.LevelWarn
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, level, msg, attrs...)
	}
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

type serviceMetrics struct {
	logins     metric.Int64Counter
	registered metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	logins, _ := m.Int64Counter("auth.logins", metric.WithDescription("Number of login attempts by outcome"))
	registered, _ := m.Int64Counter("auth.registrations", metric.WithDescription("Number of accounts registered"))
	return serviceMetrics{logins: logins, registered: registered}
}

func (m serviceMetrics) recordLogin(ctx context.Context, ok bool) {
	if m.logins != nil {
		m.logins.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", ok)))
	}
}

func (m serviceMetrics) recordRegistered(ctx context.Context) {
	if m.registered != nil {
		m.registered.Add(ctx, 1)
	}
}

var _ authports.Service = (*Service)(nil)
