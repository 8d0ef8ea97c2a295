package mapper

import (
	paymentdomain "github.com/Apurer/storefront-api/internal/domains/payments/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// Payment represents the transport-level payment payload.
type Payment struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Method    string  `json:"method"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// CreatePayment is the admin payload for recording a payment.
type CreatePayment struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount" binding:"gte=0"`
	Status  string  `json:"status" binding:"omitempty,oneof=pending completed failed"`
	Method  string  `json:"method" binding:"required"`
}

// UpdatePayment is the admin partial update payload.
type UpdatePayment struct {
	OrderID *string  `json:"orderId"`
	Amount  *float64 `json:"amount" binding:"omitempty,gte=0"`
	Status  *string  `json:"status" binding:"omitempty,oneof=pending completed failed"`
	Method  *string  `json:"method"`
}

func ToDomainPayment(model CreatePayment) (paymentdomain.Payment, error) {
	return paymentdomain.NewPayment(model.OrderID, model.Amount, paymentdomain.Status(model.Status), model.Method)
}

func ToPatch(model UpdatePayment) paymentdomain.Patch {
	patch := paymentdomain.Patch{
		OrderID: model.OrderID,
		Amount:  model.Amount,
		Method:  model.Method,
	}
	if model.Status != nil {
		status := paymentdomain.Status(*model.Status)
		patch.Status = &status
	}
	return patch
}

func FromProjection(rec projection.Projection[paymentdomain.Payment]) Payment {
	return Payment{
		ID:        rec.ID,
		OrderID:   rec.Entity.OrderID,
		Amount:    rec.Entity.Amount,
		Status:    string(rec.Entity.Status),
		Method:    rec.Entity.Method,
		CreatedAt: projection.FormatTimestamp(rec.Metadata.CreatedAt),
		UpdatedAt: projection.FormatTimestamp(rec.Metadata.UpdatedAt),
	}
}
