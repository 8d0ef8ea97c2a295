package ports

import (
	"context"

	"github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

// Repository is the slice of the user store the profile use cases need.
type Repository interface {
	Get(ctx context.Context, id string) (projection.Projection[domain.User], bool)
	Update(ctx context.Context, id string, patch resource.Patch[domain.User]) (projection.Projection[domain.User], error)
}

// Directory resolves and registers accounts by their login email.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (projection.Projection[domain.User], bool)
	Get(ctx context.Context, id string) (projection.Projection[domain.User], bool)
	Create(ctx context.Context, user domain.User) (projection.Projection[domain.User], error)
}
