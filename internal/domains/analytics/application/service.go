package application

import (
	"context"

	"github.com/Apurer/storefront-api/internal/domains/analytics/domain"
	"github.com/Apurer/storefront-api/internal/domains/analytics/ports"
)

// Service recomputes the metrics snapshot from the live stores on every call.
type Service struct {
	users    ports.Counter
	products ports.Counter
	orders   ports.OrderSource
}

func NewService(users, products ports.Counter, orders ports.OrderSource) *Service {
	return &Service{users: users, products: products, orders: orders}
}

func (s *Service) Compute(ctx context.Context) (domain.Metrics, error) {
	return domain.Compute(s.users.Count(ctx), s.products.Count(ctx), s.orders.Orders(ctx)), nil
}

var _ ports.Service = (*Service)(nil)
