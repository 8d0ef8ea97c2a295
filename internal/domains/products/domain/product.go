package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("product name is required")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrNegativeStock = errors.New("stock must not be negative")
)

// Product is an item offered in the catalogue.
type Product struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// NewProduct validates and constructs a product.
func NewProduct(name, description string, price float64, stock int) (Product, error) {
	p := Product{
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		Stock:       stock,
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Validate enforces invariants on the entity.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool { return p.Stock > 0 }

// Patch lists the product fields that may change after creation.
type Patch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// Apply implements resource.Patch.
func (p Patch) Apply(product Product) Product {
	if p.Name != nil {
		product.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	return product
}
