package api

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	require.Equal(t, "3001", cfg.Port)
	require.Equal(t, ":3001", cfg.Addr())
	require.Equal(t, 10, cfg.DefaultPageLimit)
	require.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	require.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	require.Equal(t, "access-secret", cfg.JWT.Secret)
	require.Equal(t, 5, cfg.AuthRateLimit.Burst)
	require.Equal(t, "otlp", cfg.Telemetry.TracesExporter)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(env.Options{Environment: map[string]string{
		"PORT":                 "8080",
		"CORS_ALLOWED_ORIGINS": "https://a.example.com,https://b.example.com",
		"JWT_ACCESS_TTL":       "5m",
		"DEFAULT_PAGE_LIMIT":   "25",
		"LOG_LEVEL":            "debug",
		"OTEL_TRACES_EXPORTER": "none",
	}})
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Len(t, cfg.AllowedOrigins, 2)
	require.Equal(t, 5*time.Minute, cfg.JWT.AccessTTL)
	require.Equal(t, 25, cfg.DefaultPageLimit)
	require.Equal(t, "debug", cfg.Telemetry.LogLevel)
	require.Equal(t, "none", cfg.Telemetry.TracesExporter)
}

func TestLoadConfigValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"bad port":          {"PORT": "http"},
		"bad gin mode":      {"GIN_MODE": "loud"},
		"bad log level":     {"LOG_LEVEL": "chatty"},
		"zero page limit":   {"DEFAULT_PAGE_LIMIT": "0"},
		"weak bcrypt":       {"BCRYPT_COST": "2"},
		"same secrets":      {"JWT_SECRET": "s", "JWT_REFRESH_SECRET": "s"},
		"default in prod":   {"ENVIRONMENT": "production"},
		"not a duration":    {"JWT_ACCESS_TTL": "soon"},
		"zero rate burst":   {"AUTH_RATE_LIMIT_BURST": "0"},
		"negative ttl":      {"JWT_REFRESH_TTL": "-1h"},
		"negative interval": {"SESSION_PURGE_INTERVAL": "-1s"},
	}
	for name, environ := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(env.Options{Environment: environ})
			require.Error(t, err)
		})
	}
}
