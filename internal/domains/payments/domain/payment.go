package domain

import (
	"errors"
	"strings"
)

// Status enumerates payment settlement states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrInvalidStatus  = errors.New("payment status is invalid")
	ErrMissingMethod  = errors.New("payment method is required")
)

// Payment settles an order. OrderID is a plain reference.
type Payment struct {
	OrderID string
	Amount  float64
	Status  Status
	Method  string
}

// NewPayment validates and constructs a payment. An empty status defaults to
// pending.
func NewPayment(orderID string, amount float64, status Status, method string) (Payment, error) {
	if status == "" {
		status = StatusPending
	}
	p := Payment{
		OrderID: orderID,
		Amount:  amount,
		Status:  status,
		Method:  strings.TrimSpace(method),
	}
	if err := p.Validate(); err != nil {
		return Payment{}, err
	}
	return p, nil
}

// Validate enforces invariants on the entity.
func (p Payment) Validate() error {
	if p.Amount < 0 {
		return ErrNegativeAmount
	}
	switch p.Status {
	case StatusPending, StatusCompleted, StatusFailed:
	default:
		return ErrInvalidStatus
	}
	if strings.TrimSpace(p.Method) == "" {
		return ErrMissingMethod
	}
	return nil
}

// Patch lists the payment fields that may change after creation.
type Patch struct {
	OrderID *string
	Amount  *float64
	Status  *Status
	Method  *string
}

// Apply implements resource.Patch.
func (p Patch) Apply(payment Payment) Payment {
	if p.OrderID != nil {
		payment.OrderID = *p.OrderID
	}
	if p.Amount != nil {
		payment.Amount = *p.Amount
	}
	if p.Status != nil {
		payment.Status = *p.Status
	}
	if p.Method != nil {
		payment.Method = strings.TrimSpace(*p.Method)
	}
	return payment
}
