package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Apurer/storefront-api/internal/platform/observability"
)

const (
	defaultAccessSecret  = "access-secret"
	defaultRefreshSecret = "refresh-secret"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                 string        `env:"PORT" envDefault:"3001"`
	Environment          string        `env:"ENVIRONMENT" envDefault:"development"`
	GinMode              string        `env:"GIN_MODE" envDefault:"release"`
	Version              string        `env:"APP_VERSION" envDefault:"0.1.0"`
	SeedFile             string        `env:"SEED_FILE"`
	AllowedOrigins       []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	DefaultPageLimit     int           `env:"DEFAULT_PAGE_LIMIT" envDefault:"10"`
	BcryptCost           int           `env:"BCRYPT_COST" envDefault:"10"`
	SessionPurgeInterval time.Duration `env:"SESSION_PURGE_INTERVAL" envDefault:"10m"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	JWT           JWT           `envPrefix:"JWT_"`
	AuthRateLimit AuthRateLimit `envPrefix:"AUTH_RATE_LIMIT_"`
	Telemetry     Telemetry
}

// JWT configures token signing.
type JWT struct {
	Secret        string        `env:"SECRET" envDefault:"access-secret"`
	RefreshSecret string        `env:"REFRESH_SECRET" envDefault:"refresh-secret"`
	AccessTTL     time.Duration `env:"ACCESS_TTL" envDefault:"15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TTL" envDefault:"168h"`
}

// AuthRateLimit throttles login and registration per client: one attempt
// every Interval with bursts of Burst.
type AuthRateLimit struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"12s"`
	Burst    int           `env:"BURST" envDefault:"5"`
}

// Telemetry configures logging and trace export.
type Telemetry struct {
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	TracesExporter string `env:"OTEL_TRACES_EXPORTER" envDefault:"otlp"`
	OTLPEndpoint   string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure   bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{})
}

// LoadConfigFrom resolves configuration from vars alone, ignoring the process
// environment.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return loadConfig(env.Options{Environment: vars})
}

func loadConfig(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	var errs []error
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port))
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode))
	}
	if _, err := observability.ParseLevel(c.Telemetry.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if c.DefaultPageLimit <= 0 {
		errs = append(errs, errors.New("DEFAULT_PAGE_LIMIT must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.JWT.AccessTTL <= 0 || c.JWT.RefreshTTL <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_TTL and JWT_REFRESH_TTL must be positive"))
	}
	if c.JWT.Secret == c.JWT.RefreshSecret {
		errs = append(errs, errors.New("JWT_SECRET and JWT_REFRESH_SECRET must differ"))
	}
	if c.Environment == "production" && (c.JWT.Secret == defaultAccessSecret || c.JWT.RefreshSecret == defaultRefreshSecret) {
		errs = append(errs, errors.New("JWT secrets must be set in production"))
	}
	if c.AuthRateLimit.Interval < 0 || c.AuthRateLimit.Burst <= 0 {
		errs = append(errs, errors.New("AUTH_RATE_LIMIT_INTERVAL must not be negative and AUTH_RATE_LIMIT_BURST must be positive"))
	}
	if c.SessionPurgeInterval < 0 {
		errs = append(errs, errors.New("SESSION_PURGE_INTERVAL must not be negative"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}
