package ports

import (
	"context"
	"errors"

	"github.com/Apurer/storefront-api/internal/domains/orders/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// ErrNotCancellable is returned when cancelling an order that is no longer pending.
var ErrNotCancellable = errors.New("only pending orders can be cancelled")

// History exposes a customer's own orders to adapters.
type History interface {
	List(ctx context.Context, userID string) ([]projection.Projection[domain.Order], error)
	Get(ctx context.Context, userID, orderID string) (projection.Projection[domain.Order], error)
	Cancel(ctx context.Context, userID, orderID string) (projection.Projection[domain.Order], error)
}
