package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingUser    = errors.New("saved item must belong to a user")
	ErrMissingProduct = errors.New("saved item must reference a product")
	ErrNegativePrice  = errors.New("price must not be negative")
)

// SavedItem is a wishlist entry. Product fields are a snapshot taken when the
// item was saved.
type SavedItem struct {
	UserID        string
	ProductID     string
	ProductName   string
	ProductImage  string
	Price         float64
	OriginalPrice float64
	InStock       bool
	Discount      int
}

func (s SavedItem) Validate() error {
	if strings.TrimSpace(s.UserID) == "" {
		return ErrMissingUser
	}
	if strings.TrimSpace(s.ProductID) == "" {
		return ErrMissingProduct
	}
	if s.Price < 0 || s.OriginalPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}
