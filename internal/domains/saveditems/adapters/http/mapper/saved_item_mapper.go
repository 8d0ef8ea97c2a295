package mapper

import (
	saveddomain "github.com/Apurer/storefront-api/internal/domains/saveditems/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// SavedItem represents the transport-level wishlist entry.
type SavedItem struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	ProductImage  string  `json:"productImage,omitempty"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	AddedAt       string  `json:"addedAt"`
	InStock       bool    `json:"inStock"`
	Discount      int     `json:"discount,omitempty"`
}

// SaveItem is the payload for saving a product.
type SaveItem struct {
	ProductID string `json:"productId" binding:"required"`
}

func FromProjection(rec projection.Projection[saveddomain.SavedItem]) SavedItem {
	return SavedItem{
		ID:            rec.ID,
		UserID:        rec.Entity.UserID,
		ProductID:     rec.Entity.ProductID,
		ProductName:   rec.Entity.ProductName,
		ProductImage:  rec.Entity.ProductImage,
		Price:         rec.Entity.Price,
		OriginalPrice: rec.Entity.OriginalPrice,
		AddedAt:       projection.FormatTimestamp(rec.Metadata.CreatedAt),
		InStock:       rec.Entity.InStock,
		Discount:      rec.Entity.Discount,
	}
}

func FromProjections(recs []projection.Projection[saveddomain.SavedItem]) []SavedItem {
	result := make([]SavedItem, 0, len(recs))
	for _, rec := range recs {
		result = append(result, FromProjection(rec))
	}
	return result
}
