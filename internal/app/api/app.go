package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/storefront-api/internal/admin"
	activityapp "github.com/Apurer/storefront-api/internal/domains/activity/application"
	authcrypto "github.com/Apurer/storefront-api/internal/domains/auth/adapters/crypto"
	authmemory "github.com/Apurer/storefront-api/internal/domains/auth/adapters/memory"
	authobs "github.com/Apurer/storefront-api/internal/domains/auth/adapters/observability"
	authapp "github.com/Apurer/storefront-api/internal/domains/auth/application"
	orderobs "github.com/Apurer/storefront-api/internal/domains/orders/adapters/observability"
	orderapp "github.com/Apurer/storefront-api/internal/domains/orders/application"
	savedapp "github.com/Apurer/storefront-api/internal/domains/saveditems/application"
	usermemory "github.com/Apurer/storefront-api/internal/domains/users/adapters/memory"
	userobs "github.com/Apurer/storefront-api/internal/domains/users/adapters/observability"
	userapp "github.com/Apurer/storefront-api/internal/domains/users/application"
	platformobservability "github.com/Apurer/storefront-api/internal/platform/observability"
	"github.com/Apurer/storefront-api/internal/platform/ratelimit"
	"github.com/Apurer/storefront-api/internal/platform/seed"
	"github.com/Apurer/storefront-api/internal/platform/tokens"
	"github.com/Apurer/storefront-api/internal/server"
)

// App is the fully wired API process minus the listener.
type App struct {
	Router   *gin.Engine
	Stores   admin.Stores
	Sessions *authmemory.SessionStore
	Tokens   *tokens.Manager
}

// NewApp builds stores, loads fixtures, and wires services and routes.
func NewApp(ctx context.Context, cfg Config, instruments *platformobservability.Instruments) (*App, error) {
	logger := instruments.Logger
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(cfg.GinMode)

	stores := admin.NewStores()
	credentials := authmemory.NewCredentialStore()
	hasher := authcrypto.NewBcrypt(cfg.BcryptCost)

	fixtures, err := seed.LoadFile(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	if err := seed.Apply(ctx, fixtures, stores, seed.Credentials{Store: credentials, Hasher: hasher}); err != nil {
		return nil, fmt.Errorf("seed stores: %w", err)
	}
	logger.Info("stores seeded",
		slog.Int("users", stores.Users.Count(ctx)),
		slog.Int("products", stores.Products.Count(ctx)),
		slog.Int("orders", stores.Orders.Count(ctx)),
		slog.Int("payments", stores.Payments.Count(ctx)),
	)

	facade := admin.New(stores,
		admin.WithLogger(logger),
		admin.WithTracer(instruments.Tracer("internal.admin")),
		admin.WithMeter(instruments.Meter("internal.admin")),
	)

	activity := activityapp.NewService(stores.Activity)
	directory := usermemory.NewDirectory(stores.Users)
	manager := tokens.NewManager(cfg.JWT.Secret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	sessions := authmemory.NewSessionStore()

	authService := authobs.New(
		authapp.NewService(authapp.Deps{
			Users:       directory,
			Credentials: credentials,
			Sessions:    sessions,
			Hasher:      hasher,
			Issuer:      manager,
			Activity:    activity,
			Logger:      logger,
		}),
		authobs.WithLogger(logger),
		authobs.WithTracer(instruments.Tracer("internal.auth.application")),
		authobs.WithMeter(instruments.Meter("internal.auth.application")),
	)
	profileService := userobs.New(
		userapp.NewProfileService(stores.Users, activity, userapp.WithLogger(logger)),
		userobs.WithLogger(logger),
		userobs.WithTracer(instruments.Tracer("internal.users.application")),
		userobs.WithMeter(instruments.Meter("internal.users.application")),
	)
	orderHistory := orderobs.New(
		orderapp.NewHistory(stores.Orders, activity, orderapp.WithLogger(logger)),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	savedItems := savedapp.NewService(stores.SavedItems, stores.Products, activity, savedapp.WithLogger(logger))

	handlers := server.Handlers{
		Health:     server.NewHealthAPI(cfg.Version, time.Now()),
		Auth:       server.NewAuthAPI(authService),
		Profile:    server.NewProfileAPI(profileService),
		Orders:     server.NewOrderAPI(orderHistory),
		SavedItems: server.NewSavedItemAPI(savedItems),
		Activity:   server.NewActivityAPI(activity),
		Admin:      server.NewAdminAPI(facade, cfg.DefaultPageLimit),
	}
	router := server.NewRouter(handlers, server.Options{
		ServiceName:    serviceName,
		Logger:         logger,
		Tokens:         manager,
		Accounts:       directory,
		AllowedOrigins: cfg.AllowedOrigins,
		AuthRateLimit: ratelimit.Settings{
			Interval: cfg.AuthRateLimit.Interval,
			Burst:    cfg.AuthRateLimit.Burst,
		},
	})

	return &App{Router: router, Stores: stores, Sessions: sessions, Tokens: manager}, nil
}
