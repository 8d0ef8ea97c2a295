package mapper

import analyticsdomain "github.com/Apurer/storefront-api/internal/domains/analytics/domain"

// Metrics is the transport-level analytics snapshot.
type Metrics struct {
	TotalUsers        int     `json:"totalUsers"`
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TotalProducts     int     `json:"totalProducts"`
	PendingOrders     int     `json:"pendingOrders"`
}

func FromDomain(m analyticsdomain.Metrics) Metrics {
	return Metrics{
		TotalUsers:        m.TotalUsers,
		TotalOrders:       m.TotalOrders,
		TotalRevenue:      m.TotalRevenue,
		AverageOrderValue: m.AverageOrderValue,
		TotalProducts:     m.TotalProducts,
		PendingOrders:     m.PendingOrders,
	}
}
