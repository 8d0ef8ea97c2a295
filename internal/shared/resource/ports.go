package resource

import (
	"context"

	"github.com/Apurer/storefront-api/internal/shared/pagination"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// Entity is implemented by every type kept in a Store.
type Entity interface {
	Validate() error
}

// Repository is the persistence port behind a resource Service.
type Repository[T Entity] interface {
	List(ctx context.Context, page, limit int) pagination.Page[projection.Projection[T]]
	Get(ctx context.Context, id string) (projection.Projection[T], bool)
	Create(ctx context.Context, entity T) (projection.Projection[T], error)
	Update(ctx context.Context, id string, patch Patch[T]) (projection.Projection[T], error)
	Delete(ctx context.Context, id string) bool
}

// Service exposes the CRUD use cases of one entity type to adapters.
type Service[T Entity] interface {
	List(ctx context.Context, page, limit int) (pagination.Page[projection.Projection[T]], error)
	Get(ctx context.Context, id string) (projection.Projection[T], error)
	Create(ctx context.Context, entity T) (projection.Projection[T], error)
	Update(ctx context.Context, id string, patch Patch[T]) (projection.Projection[T], error)
	Delete(ctx context.Context, id string) (bool, error)
}
