package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	orderdomain "github.com/Apurer/storefront-api/internal/domains/orders/domain"
)

type fixedCount int

func (c fixedCount) Count(context.Context) int { return int(c) }

type fakeOrders struct {
	orders []orderdomain.Order
}

func (f *fakeOrders) Orders(context.Context) []orderdomain.Order { return f.orders }

func TestComputeReadsLiveData(t *testing.T) {
	orders := &fakeOrders{orders: []orderdomain.Order{{TotalPrice: 100, Status: orderdomain.StatusCompleted}}}
	svc := NewService(fixedCount(2), fixedCount(5), orders)

	first, err := svc.Compute(context.Background())
	require.NoError(t, err)
	require.Equal(t, 100.0, first.AverageOrderValue)

	orders.orders = append(orders.orders, orderdomain.Order{TotalPrice: 20, Status: orderdomain.StatusPending})
	second, err := svc.Compute(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, second.TotalOrders)
	require.Equal(t, 120.0, second.TotalRevenue)
	require.Equal(t, 1, second.PendingOrders)
	require.Equal(t, 2, second.TotalUsers)
	require.Equal(t, 5, second.TotalProducts)
}
