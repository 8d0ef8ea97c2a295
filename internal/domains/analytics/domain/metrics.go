// Package domain computes the admin dashboard metrics snapshot.
package domain

import orderdomain "github.com/Apurer/storefront-api/internal/domains/orders/domain"

// Metrics is a point-in-time summary of the stores.
type Metrics struct {
	TotalUsers        int
	TotalOrders       int
	TotalRevenue      float64
	AverageOrderValue float64
	TotalProducts     int
	PendingOrders     int
}

// Compute derives the snapshot from the entity counts and the current orders.
// Revenue sums every order regardless of status, while the average divides
// it by the number of completed orders only. With no completed orders the
// average is zero.
func Compute(totalUsers, totalProducts int, orders []orderdomain.Order) Metrics {
	m := Metrics{
		TotalUsers:    totalUsers,
		TotalProducts: totalProducts,
		TotalOrders:   len(orders),
	}
	completed := 0
	for _, o := range orders {
		m.TotalRevenue += o.TotalPrice
		switch o.Status {
		case orderdomain.StatusCompleted:
			completed++
		case orderdomain.StatusPending:
			m.PendingOrders++
		}
	}
	if completed > 0 {
		m.AverageOrderValue = m.TotalRevenue / float64(completed)
	}
	return m
}
