package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	activitymapper "github.com/Apurer/storefront-api/internal/domains/activity/adapters/http/mapper"
	activityports "github.com/Apurer/storefront-api/internal/domains/activity/ports"
)

// ActivityAPI serves the caller's activity feed.
type ActivityAPI struct {
	service activityports.Service
}

func NewActivityAPI(service activityports.Service) ActivityAPI {
	return ActivityAPI{service: service}
}

// Get /activity
// Newest entries first
func (api *ActivityAPI) List(c *gin.Context) {
	entries, err := api.service.Feed(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, "", "", err)
		return
	}
	c.JSON(http.StatusOK, ok(activitymapper.FromProjections(entries)))
}
