package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usermapper "github.com/Apurer/storefront-api/internal/domains/users/adapters/http/mapper"
	userports "github.com/Apurer/storefront-api/internal/domains/users/ports"
)

// ProfileAPI lets the caller read and edit their own account.
type ProfileAPI struct {
	service userports.ProfileService
}

func NewProfileAPI(service userports.ProfileService) ProfileAPI {
	return ProfileAPI{service: service}
}

// Get /profile
func (api *ProfileAPI) Get(c *gin.Context) {
	id := currentUserID(c)
	user, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "User", id, err)
		return
	}
	c.JSON(http.StatusOK, ok(usermapper.FromProjection(user)))
}

// Put /profile
func (api *ProfileAPI) Update(c *gin.Context) {
	id := currentUserID(c)
	var payload usermapper.UpdateProfile
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := api.service.Update(c.Request.Context(), id, usermapper.ToProfilePatch(payload))
	if err != nil {
		respondError(c, "User", id, err)
		return
	}
	c.JSON(http.StatusOK, okMessage(usermapper.FromProjection(user), "Profile updated successfully"))
}
