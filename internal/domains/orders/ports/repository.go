package ports

import (
	"context"

	"github.com/Apurer/storefront-api/internal/domains/orders/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

// Repository is the slice of the order store used by customer-facing use cases.
type Repository interface {
	Get(ctx context.Context, id string) (projection.Projection[domain.Order], bool)
	Find(ctx context.Context, pred func(projection.Projection[domain.Order]) bool) []projection.Projection[domain.Order]
	Update(ctx context.Context, id string, patch resource.Patch[domain.Order]) (projection.Projection[domain.Order], error)
}
