package ports

import (
	"context"
	"fmt"

	productdomain "github.com/Apurer/storefront-api/internal/domains/products/domain"
	"github.com/Apurer/storefront-api/internal/domains/saveditems/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

// ErrProductNotFound is returned when saving a product that does not exist.
var ErrProductNotFound = fmt.Errorf("product %w", resource.ErrNotFound)

// Repository persists saved items.
type Repository interface {
	Get(ctx context.Context, id string) (projection.Projection[domain.SavedItem], bool)
	Create(ctx context.Context, item domain.SavedItem) (projection.Projection[domain.SavedItem], error)
	Delete(ctx context.Context, id string) bool
	Find(ctx context.Context, pred func(projection.Projection[domain.SavedItem]) bool) []projection.Projection[domain.SavedItem]
}

// Catalog resolves products being saved.
type Catalog interface {
	Get(ctx context.Context, id string) (projection.Projection[productdomain.Product], bool)
}

// Service exposes wishlist use cases to adapters.
type Service interface {
	List(ctx context.Context, userID string) ([]projection.Projection[domain.SavedItem], error)
	// Save reports created=false when the product was already saved.
	Save(ctx context.Context, userID, productID string) (item projection.Projection[domain.SavedItem], created bool, err error)
	Remove(ctx context.Context, userID, itemID string) error
}
