package mapper

import (
	productdomain "github.com/Apurer/storefront-api/internal/domains/products/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// Product represents the transport-level product payload.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CreateProduct is the admin payload for creating a product.
type CreateProduct struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

// UpdateProduct is the admin partial update payload.
type UpdateProduct struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
}

func ToDomainProduct(model CreateProduct) (productdomain.Product, error) {
	return productdomain.NewProduct(model.Name, model.Description, model.Price, model.Stock)
}

func ToPatch(model UpdateProduct) productdomain.Patch {
	return productdomain.Patch{
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Stock:       model.Stock,
	}
}

func FromProjection(rec projection.Projection[productdomain.Product]) Product {
	return Product{
		ID:          rec.ID,
		Name:        rec.Entity.Name,
		Description: rec.Entity.Description,
		Price:       rec.Entity.Price,
		Stock:       rec.Entity.Stock,
		CreatedAt:   projection.FormatTimestamp(rec.Metadata.CreatedAt),
		UpdatedAt:   projection.FormatTimestamp(rec.Metadata.UpdatedAt),
	}
}
