package domain

import "errors"

// Status enumerates order progression.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrNegativeTotal   = errors.New("total price must not be negative")
	ErrInvalidStatus   = errors.New("order status is invalid")
)

// Order records a purchase of one product by one user. UserID and ProductID
// are plain references and are not checked against their stores.
type Order struct {
	UserID     string
	ProductID  string
	Quantity   int
	TotalPrice float64
	Status     Status
}

// NewOrder validates and constructs an order. An empty status defaults to
// pending.
func NewOrder(userID, productID string, quantity int, totalPrice float64, status Status) (Order, error) {
	order := Order{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: totalPrice,
	}
	if err := order.UpdateStatus(status); err != nil {
		return Order{}, err
	}
	if err := order.Validate(); err != nil {
		return Order{}, err
	}
	return order, nil
}

// Validate enforces invariants on the entity.
func (o Order) Validate() error {
	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if o.TotalPrice < 0 {
		return ErrNegativeTotal
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// UpdateStatus ensures only known states are accepted and defaults to pending.
func (o *Order) UpdateStatus(status Status) error {
	if status == "" {
		status = StatusPending
	}
	if !isValidStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Patch lists the order fields that may change after creation.
type Patch struct {
	UserID     *string
	ProductID  *string
	Quantity   *int
	TotalPrice *float64
	Status     *Status
}

// Apply implements resource.Patch.
func (p Patch) Apply(o Order) Order {
	if p.UserID != nil {
		o.UserID = *p.UserID
	}
	if p.ProductID != nil {
		o.ProductID = *p.ProductID
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.TotalPrice != nil {
		o.TotalPrice = *p.TotalPrice
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	return o
}
