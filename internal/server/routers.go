package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Apurer/storefront-api/internal/platform/ratelimit"
	"github.com/Apurer/storefront-api/internal/shared/validation"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the generated Route.
type Routes []Route

// Handlers groups the API sections served by the router.
type Handlers struct {
	Health     HealthAPI
	Auth       AuthAPI
	Profile    ProfileAPI
	Orders     OrderAPI
	SavedItems SavedItemAPI
	Activity   ActivityAPI
	Admin      AdminAPI
}

// Options configures the router.
type Options struct {
	ServiceName    string
	Logger         *slog.Logger
	Tokens         TokenVerifier
	Accounts       AccountLookup
	AllowedOrigins []string
	AuthRateLimit  ratelimit.Settings
}

// NewRouter returns a new router.
func NewRouter(handlers Handlers, opts Options) *gin.Engine {
	validation.Init()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(Recovery(logger), RequestID(), RequestLogger(logger))
	if opts.ServiceName != "" {
		router.Use(otelgin.Middleware(opts.ServiceName))
	}
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	router.NoRoute(func(c *gin.Context) {
		responder.NotFound(c, "Route", c.Request.URL.Path)
	})

	limited := ratelimit.Middleware(opts.AuthRateLimit)
	authenticated := Authenticate(opts.Tokens, opts.Accounts)
	admin := RequireAdmin()

	public := Routes{
		{Name: "GetHealth", Method: http.MethodGet, Pattern: "/health", HandlerFunc: handlers.Health.Get},
		{Name: "Refresh", Method: http.MethodPost, Pattern: "/auth/refresh", HandlerFunc: handlers.Auth.Refresh},
	}
	throttled := Routes{
		{Name: "Login", Method: http.MethodPost, Pattern: "/auth/login", HandlerFunc: handlers.Auth.Login},
		{Name: "Register", Method: http.MethodPost, Pattern: "/auth/register", HandlerFunc: handlers.Auth.Register},
	}
	customer := Routes{
		{Name: "Logout", Method: http.MethodPost, Pattern: "/auth/logout", HandlerFunc: handlers.Auth.Logout},
		{Name: "Me", Method: http.MethodGet, Pattern: "/auth/me", HandlerFunc: handlers.Auth.Me},
		{Name: "GetProfile", Method: http.MethodGet, Pattern: "/profile", HandlerFunc: handlers.Profile.Get},
		{Name: "UpdateProfile", Method: http.MethodPut, Pattern: "/profile", HandlerFunc: handlers.Profile.Update},
		{Name: "ListOrders", Method: http.MethodGet, Pattern: "/orders", HandlerFunc: handlers.Orders.List},
		{Name: "GetOrder", Method: http.MethodGet, Pattern: "/orders/:id", HandlerFunc: handlers.Orders.Get},
		{Name: "CancelOrder", Method: http.MethodPost, Pattern: "/orders/:id/cancel", HandlerFunc: handlers.Orders.Cancel},
		{Name: "ListSavedItems", Method: http.MethodGet, Pattern: "/saved-items", HandlerFunc: handlers.SavedItems.List},
		{Name: "SaveItem", Method: http.MethodPost, Pattern: "/saved-items", HandlerFunc: handlers.SavedItems.Save},
		{Name: "RemoveSavedItem", Method: http.MethodDelete, Pattern: "/saved-items/:id", HandlerFunc: handlers.SavedItems.Remove},
		{Name: "ListActivity", Method: http.MethodGet, Pattern: "/activity", HandlerFunc: handlers.Activity.List},
	}

	register(router, public)
	register(router, throttled, limited)
	register(router, customer, authenticated)
	register(router, handlers.Admin.routes(), authenticated, admin)
	return router
}

func register(router *gin.Engine, routes Routes, middleware ...gin.HandlerFunc) {
	for _, route := range routes {
		chain := append(append([]gin.HandlerFunc{}, middleware...), route.HandlerFunc)
		router.Handle(route.Method, route.Pattern, chain...)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", HeaderRequestID, "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
