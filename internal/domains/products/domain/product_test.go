package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(" Laptop ", "", 1200, 15)
	require.NoError(t, err)
	require.Equal(t, "Laptop", p.Name)
	require.True(t, p.InStock())
}

func TestNewProductInvariants(t *testing.T) {
	_, err := NewProduct("", "", 1, 1)
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("Mouse", "", -1, 1)
	require.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewProduct("Mouse", "", 1, -1)
	require.ErrorIs(t, err, ErrNegativeStock)

	zero, err := NewProduct("Free sample", "", 0, 0)
	require.NoError(t, err)
	require.False(t, zero.InStock())
}

func TestPatchOnlyTouchesSetFields(t *testing.T) {
	price := 1100.0
	p := Patch{Price: &price}.Apply(Product{Name: "Laptop", Price: 1200, Stock: 15})

	require.Equal(t, Product{Name: "Laptop", Price: 1100, Stock: 15}, p)
}
