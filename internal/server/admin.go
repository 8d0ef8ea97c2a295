package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/storefront-api/internal/admin"
	analyticsmapper "github.com/Apurer/storefront-api/internal/domains/analytics/adapters/http/mapper"
	ordermapper "github.com/Apurer/storefront-api/internal/domains/orders/adapters/http/mapper"
	orderdomain "github.com/Apurer/storefront-api/internal/domains/orders/domain"
	paymentmapper "github.com/Apurer/storefront-api/internal/domains/payments/adapters/http/mapper"
	paymentdomain "github.com/Apurer/storefront-api/internal/domains/payments/domain"
	productmapper "github.com/Apurer/storefront-api/internal/domains/products/adapters/http/mapper"
	productdomain "github.com/Apurer/storefront-api/internal/domains/products/domain"
	usermapper "github.com/Apurer/storefront-api/internal/domains/users/adapters/http/mapper"
	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

// AdminAPI implements the back-office section: analytics plus CRUD over
// users, products, orders and payments.
type AdminAPI struct {
	facade   *admin.Facade
	users    *ResourceAPI[userdomain.User, usermapper.CreateUser, usermapper.UpdateUser, usermapper.User]
	products *ResourceAPI[productdomain.Product, productmapper.CreateProduct, productmapper.UpdateProduct, productmapper.Product]
	orders   *ResourceAPI[orderdomain.Order, ordermapper.CreateOrder, ordermapper.UpdateOrder, ordermapper.Order]
	payments *ResourceAPI[paymentdomain.Payment, paymentmapper.CreatePayment, paymentmapper.UpdatePayment, paymentmapper.Payment]
}

// NewAdminAPI wires dependencies.
func NewAdminAPI(facade *admin.Facade, defaultLimit int) AdminAPI {
	return AdminAPI{
		facade: facade,
		users: NewResourceAPI(facade.Users, Codec[userdomain.User, usermapper.CreateUser, usermapper.UpdateUser, usermapper.User]{
			Name:     "User",
			ToEntity: usermapper.ToDomainUser,
			ToPatch:  userPatch,
			ToWire:   usermapper.FromProjection,
		}, defaultLimit),
		products: NewResourceAPI(facade.Products, Codec[productdomain.Product, productmapper.CreateProduct, productmapper.UpdateProduct, productmapper.Product]{
			Name:     "Product",
			ToEntity: productmapper.ToDomainProduct,
			ToPatch:  productPatch,
			ToWire:   productmapper.FromProjection,
		}, defaultLimit),
		orders: NewResourceAPI(facade.Orders, Codec[orderdomain.Order, ordermapper.CreateOrder, ordermapper.UpdateOrder, ordermapper.Order]{
			Name:     "Order",
			ToEntity: ordermapper.ToDomainOrder,
			ToPatch:  orderPatch,
			ToWire:   ordermapper.FromProjection,
		}, defaultLimit),
		payments: NewResourceAPI(facade.Payments, Codec[paymentdomain.Payment, paymentmapper.CreatePayment, paymentmapper.UpdatePayment, paymentmapper.Payment]{
			Name:     "Payment",
			ToEntity: paymentmapper.ToDomainPayment,
			ToPatch:  paymentPatch,
			ToWire:   paymentmapper.FromProjection,
		}, defaultLimit),
	}
}

func userPatch(m usermapper.UpdateUser) resource.Patch[userdomain.User] {
	return usermapper.ToPatch(m)
}

func productPatch(m productmapper.UpdateProduct) resource.Patch[productdomain.Product] {
	return productmapper.ToPatch(m)
}

func orderPatch(m ordermapper.UpdateOrder) resource.Patch[orderdomain.Order] {
	return ordermapper.ToPatch(m)
}

func paymentPatch(m paymentmapper.UpdatePayment) resource.Patch[paymentdomain.Payment] {
	return paymentmapper.ToPatch(m)
}

// Get /admin/analytics
// Dashboard metrics over the live stores
func (api *AdminAPI) Analytics(c *gin.Context) {
	metrics, err := api.facade.ComputeAnalytics(c.Request.Context())
	if err != nil {
		respondError(c, "", "", err)
		return
	}
	c.JSON(http.StatusOK, analyticsmapper.FromDomain(metrics))
}

func (api *AdminAPI) routes() Routes {
	routes := Routes{
		{Name: "GetAnalytics", Method: http.MethodGet, Pattern: "/admin/analytics", HandlerFunc: api.Analytics},
	}
	routes = append(routes, api.users.routes("User", "/admin/users")...)
	routes = append(routes, api.products.routes("Product", "/admin/products")...)
	routes = append(routes, api.orders.routes("Order", "/admin/orders")...)
	routes = append(routes, api.payments.routes("Payment", "/admin/payments")...)
	return routes
}
