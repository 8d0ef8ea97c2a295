package mapper

import (
	orderdomain "github.com/Apurer/storefront-api/internal/domains/orders/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// Order represents the transport-level order payload.
type Order struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	ProductID  string  `json:"productId"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// CreateOrder is the admin payload for creating an order.
type CreateOrder struct {
	UserID     string  `json:"userId"`
	ProductID  string  `json:"productId"`
	Quantity   int     `json:"quantity" binding:"gt=0"`
	TotalPrice float64 `json:"totalPrice" binding:"gte=0"`
	Status     string  `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// UpdateOrder is the admin partial update payload.
type UpdateOrder struct {
	UserID     *string  `json:"userId"`
	ProductID  *string  `json:"productId"`
	Quantity   *int     `json:"quantity" binding:"omitempty,gt=0"`
	TotalPrice *float64 `json:"totalPrice" binding:"omitempty,gte=0"`
	Status     *string  `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// ToDomainOrder converts a create payload into the domain model.
func ToDomainOrder(order CreateOrder) (orderdomain.Order, error) {
	return orderdomain.NewOrder(
		order.UserID,
		order.ProductID,
		order.Quantity,
		order.TotalPrice,
		orderdomain.Status(order.Status),
	)
}

// ToPatch converts an update payload into a domain patch.
func ToPatch(order UpdateOrder) orderdomain.Patch {
	patch := orderdomain.Patch{
		UserID:     order.UserID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
	}
	if order.Status != nil {
		status := orderdomain.Status(*order.Status)
		patch.Status = &status
	}
	return patch
}

// FromProjection converts a stored order to the transport representation.
func FromProjection(rec projection.Projection[orderdomain.Order]) Order {
	return Order{
		ID:         rec.ID,
		UserID:     rec.Entity.UserID,
		ProductID:  rec.Entity.ProductID,
		Quantity:   rec.Entity.Quantity,
		TotalPrice: rec.Entity.TotalPrice,
		Status:     string(rec.Entity.Status),
		CreatedAt:  projection.FormatTimestamp(rec.Metadata.CreatedAt),
		UpdatedAt:  projection.FormatTimestamp(rec.Metadata.UpdatedAt),
	}
}

// FromProjections converts a list of stored orders.
func FromProjections(recs []projection.Projection[orderdomain.Order]) []Order {
	result := make([]Order, 0, len(recs))
	for _, rec := range recs {
		result = append(result, FromProjection(rec))
	}
	return result
}
