package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authmapper "github.com/Apurer/storefront-api/internal/domains/auth/adapters/http/mapper"
	authports "github.com/Apurer/storefront-api/internal/domains/auth/ports"
	usermapper "github.com/Apurer/storefront-api/internal/domains/users/adapters/http/mapper"
)

// AuthAPI implements the authentication section.
type AuthAPI struct {
	service authports.Service
}

// NewAuthAPI wires dependencies.
func NewAuthAPI(service authports.Service) AuthAPI {
	return AuthAPI{service: service}
}

// Post /auth/login
// Exchanges credentials for an access and refresh token
func (api *AuthAPI) Login(c *gin.Context) {
	var payload authmapper.Login
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	session, err := api.service.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, "", "", err)
		return
	}
	c.JSON(http.StatusOK, authmapper.FromSession(session))
}

// Post /auth/register
// Opens a customer account
func (api *AuthAPI) Register(c *gin.Context) {
	var payload authmapper.Register
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	session, err := api.service.Register(c.Request.Context(), authmapper.ToRegistration(payload))
	if err != nil {
		respondError(c, "", "", err)
		return
	}
	c.JSON(http.StatusCreated, authmapper.FromSession(session))
}

// Post /auth/refresh
// Rotates the token pair of a live session
func (api *AuthAPI) Refresh(c *gin.Context) {
	var payload authmapper.Refresh
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	session, err := api.service.Refresh(c.Request.Context(), payload.RefreshToken)
	if err != nil {
		respondError(c, "", "", err)
		return
	}
	c.JSON(http.StatusOK, authmapper.FromTokens(session))
}

// Post /auth/logout
// Revokes the caller's refresh session
func (api *AuthAPI) Logout(c *gin.Context) {
	if err := api.service.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, "", "", err)
		return
	}
	c.JSON(http.StatusOK, okMessage(nil, "Logged out successfully"))
}

// Get /auth/me
func (api *AuthAPI) Me(c *gin.Context) {
	id := currentUserID(c)
	user, err := api.service.Me(c.Request.Context(), id)
	if err != nil {
		respondError(c, "User", id, err)
		return
	}
	c.JSON(http.StatusOK, ok(usermapper.FromProjection(user)))
}
