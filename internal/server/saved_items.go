package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	savedmapper "github.com/Apurer/storefront-api/internal/domains/saveditems/adapters/http/mapper"
	savedports "github.com/Apurer/storefront-api/internal/domains/saveditems/ports"
)

// SavedItemAPI serves the caller's wishlist.
type SavedItemAPI struct {
	service savedports.Service
}

func NewSavedItemAPI(service savedports.Service) SavedItemAPI {
	return SavedItemAPI{service: service}
}

// Get /saved-items
func (api *SavedItemAPI) List(c *gin.Context) {
	items, err := api.service.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, "SavedItem", "", err)
		return
	}
	c.JSON(http.StatusOK, ok(savedmapper.FromProjections(items)))
}

// Post /saved-items
// Saving an already saved product answers 200 with the existing entry.
func (api *SavedItemAPI) Save(c *gin.Context) {
	var payload savedmapper.SaveItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	item, created, err := api.service.Save(c.Request.Context(), currentUserID(c), payload.ProductID)
	if err != nil {
		respondError(c, "Product", payload.ProductID, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, ok(savedmapper.FromProjection(item)))
}

// Delete /saved-items/:id
func (api *SavedItemAPI) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := api.service.Remove(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, "SavedItem", id, err)
		return
	}
	c.JSON(http.StatusOK, okMessage(nil, "Item removed successfully"))
}
