package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	authports "github.com/Apurer/storefront-api/internal/domains/auth/ports"
	platformobservability "github.com/Apurer/storefront-api/internal/platform/observability"
)

const serviceName = "storefront-api"

// Run boots the storefront HTTP API and blocks until ctx is cancelled, then
// drains in-flight requests.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName:    serviceName,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
		LogLevel:       cfg.Telemetry.LogLevel,
		TracesExporter: cfg.Telemetry.TracesExporter,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure:   cfg.Telemetry.OTLPInsecure,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	app, err := NewApp(ctx, cfg, instruments)
	if err != nil {
		return err
	}

	go purgeSessions(ctx, app.Sessions, cfg.SessionPurgeInterval, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("storefront API listening", slog.String("addr", srv.Addr), slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("storefront API server exited", slog.String("addr", srv.Addr), slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down storefront API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// purgeSessions drops expired refresh sessions every interval until ctx is
// done. A zero interval disables purging.
func purgeSessions(ctx context.Context, sessions authports.SessionStore, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := sessions.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("session purge failed", slog.String("error", err.Error()))
				continue
			}
			if purged > 0 {
				logger.Info("purged expired sessions", slog.Int("count", purged))
			}
		}
	}
}
