// Package admin binds the generic resource services of the back-office
// entities to named accessors.
package admin

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	activitydomain "github.com/Apurer/storefront-api/internal/domains/activity/domain"
	analyticsobs "github.com/Apurer/storefront-api/internal/domains/analytics/adapters/observability"
	analyticsapp "github.com/Apurer/storefront-api/internal/domains/analytics/application"
	analyticsdomain "github.com/Apurer/storefront-api/internal/domains/analytics/domain"
	analyticsports "github.com/Apurer/storefront-api/internal/domains/analytics/ports"
	orderdomain "github.com/Apurer/storefront-api/internal/domains/orders/domain"
	paymentdomain "github.com/Apurer/storefront-api/internal/domains/payments/domain"
	productdomain "github.com/Apurer/storefront-api/internal/domains/products/domain"
	saveddomain "github.com/Apurer/storefront-api/internal/domains/saveditems/domain"
	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/shared/resource"
	resourceapp "github.com/Apurer/storefront-api/internal/shared/resource/application"
	resourceobs "github.com/Apurer/storefront-api/internal/shared/resource/observability"
)

// Stores holds one record store per entity type. Each process (or test)
// builds its own set.
type Stores struct {
	Users      *resource.Store[userdomain.User]
	Products   *resource.Store[productdomain.Product]
	Orders     *resource.Store[orderdomain.Order]
	Payments   *resource.Store[paymentdomain.Payment]
	Activity   *resource.Store[activitydomain.Activity]
	SavedItems *resource.Store[saveddomain.SavedItem]
}

// NewStores returns empty stores. Back-office entities get sequential ids,
// feed entries and saved items get UUIDs. opts apply to every store.
func NewStores(opts ...resource.Option) Stores {
	uuids := append([]resource.Option{resource.WithIDGenerator(resource.UUIDs{})}, opts...)
	return Stores{
		Users:      resource.NewStore[userdomain.User](opts...),
		Products:   resource.NewStore[productdomain.Product](opts...),
		Orders:     resource.NewStore[orderdomain.Order](opts...),
		Payments:   resource.NewStore[paymentdomain.Payment](opts...),
		Activity:   resource.NewStore[activitydomain.Activity](uuids...),
		SavedItems: resource.NewStore[saveddomain.SavedItem](uuids...),
	}
}

// Facade exposes the CRUD services of every back-office entity plus the
// dashboard metrics. It adds no behavior of its own.
type Facade struct {
	Users     resource.Service[userdomain.User]
	Products  resource.Service[productdomain.Product]
	Orders    resource.Service[orderdomain.Order]
	Payments  resource.Service[paymentdomain.Payment]
	Analytics analyticsports.Service
}

type options struct {
	logger *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(o *options) { o.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(o *options) { o.meter = m }
}

// New wires the facade over stores.
func New(stores Stores, opts ...Option) *Facade {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	resourceOpts := []resourceobs.Option{resourceobs.WithLogger(o.logger), resourceobs.WithTracer(o.tracer), resourceobs.WithMeter(o.meter)}

	analytics := analyticsapp.NewService(stores.Users, stores.Products, OrderSource{store: stores.Orders})
	return &Facade{
		Users:     resourceobs.New[userdomain.User](resourceapp.NewService[userdomain.User](stores.Users), "user", resourceOpts...),
		Products:  resourceobs.New[productdomain.Product](resourceapp.NewService[productdomain.Product](stores.Products), "product", resourceOpts...),
		Orders:    resourceobs.New[orderdomain.Order](resourceapp.NewService[orderdomain.Order](stores.Orders), "order", resourceOpts...),
		Payments:  resourceobs.New[paymentdomain.Payment](resourceapp.NewService[paymentdomain.Payment](stores.Payments), "payment", resourceOpts...),
		Analytics: analyticsobs.New(analytics, analyticsobs.WithLogger(o.logger), analyticsobs.WithTracer(o.tracer), analyticsobs.WithMeter(o.meter)),
	}
}

func (f *Facade) ComputeAnalytics(ctx context.Context) (analyticsdomain.Metrics, error) {
	return f.Analytics.Compute(ctx)
}

// OrderSource feeds the analytics aggregator from the order store.
type OrderSource struct {
	store *resource.Store[orderdomain.Order]
}

func NewOrderSource(store *resource.Store[orderdomain.Order]) OrderSource {
	return OrderSource{store: store}
}

func (s OrderSource) Orders(ctx context.Context) []orderdomain.Order {
	recs := s.store.All(ctx)
	out := make([]orderdomain.Order, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Entity)
	}
	return out
}

var _ analyticsports.OrderSource = OrderSource{}
