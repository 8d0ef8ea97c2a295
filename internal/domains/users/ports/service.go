package ports

import (
	"context"

	"github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// ProfileService exposes the self-service profile use cases to adapters.
type ProfileService interface {
	Get(ctx context.Context, userID string) (projection.Projection[domain.User], error)
	Update(ctx context.Context, userID string, patch domain.Patch) (projection.Projection[domain.User], error)
}
