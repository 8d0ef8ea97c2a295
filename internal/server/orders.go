package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/Apurer/storefront-api/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Apurer/storefront-api/internal/domains/orders/ports"
)

// OrderAPI serves the caller's order history.
type OrderAPI struct {
	history orderports.History
}

func NewOrderAPI(history orderports.History) OrderAPI {
	return OrderAPI{history: history}
}

// Get /orders
func (api *OrderAPI) List(c *gin.Context) {
	orders, err := api.history.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, "Order", "", err)
		return
	}
	c.JSON(http.StatusOK, ok(ordermapper.FromProjections(orders)))
}

// Get /orders/:id
func (api *OrderAPI) Get(c *gin.Context) {
	id := c.Param("id")
	order, err := api.history.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, "Order", id, err)
		return
	}
	c.JSON(http.StatusOK, ok(ordermapper.FromProjection(order)))
}

// Post /orders/:id/cancel
// Cancels a pending order
func (api *OrderAPI) Cancel(c *gin.Context) {
	id := c.Param("id")
	order, err := api.history.Cancel(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, "Order", id, err)
		return
	}
	c.JSON(http.StatusOK, okMessage(ordermapper.FromProjection(order), "Order cancelled successfully"))
}
