package ports

import (
	"context"

	"github.com/Apurer/storefront-api/internal/domains/analytics/domain"
	orderdomain "github.com/Apurer/storefront-api/internal/domains/orders/domain"
)

// Counter reports how many records a store holds.
type Counter interface {
	Count(ctx context.Context) int
}

// OrderSource lists every order currently stored.
type OrderSource interface {
	Orders(ctx context.Context) []orderdomain.Order
}

// Service exposes the dashboard metrics to adapters.
type Service interface {
	Compute(ctx context.Context) (domain.Metrics, error)
}
