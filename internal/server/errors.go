package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	authports "github.com/Apurer/storefront-api/internal/domains/auth/ports"
	orderports "github.com/Apurer/storefront-api/internal/domains/orders/ports"
	"github.com/Apurer/storefront-api/internal/platform/tokens"
	apierrors "github.com/Apurer/storefront-api/internal/shared/errors"
	"github.com/Apurer/storefront-api/internal/shared/resource"
	"github.com/Apurer/storefront-api/internal/shared/validation"
)

// responder turns application errors into problem documents.
var responder = apierrors.NewChainedResponder("", mapResourceError, mapAuthError, mapOrderError)

func mapResourceError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, resource.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, resource.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, resource.ErrConflict):
		return apierrors.ErrConflict.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapAuthError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, authports.ErrInvalidCredentials):
		return apierrors.ErrUnauthorized.WithDetail(authports.ErrInvalidCredentials.Error()), true
	case errors.Is(err, authports.ErrInvalidRefreshToken):
		return apierrors.ErrUnauthorized.WithDetail(authports.ErrInvalidRefreshToken.Error()), true
	case errors.Is(err, tokens.ErrInvalidToken):
		return apierrors.ErrUnauthorized.WithDetail(tokens.ErrInvalidToken.Error()), true
	case errors.Is(err, authports.ErrEmailTaken):
		return apierrors.ErrConflict.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapOrderError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, orderports.ErrNotCancellable) {
		return apierrors.ErrConflict.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

// respondError answers with a 404 naming the resource when err is a miss
// on id, and goes through the mapper chain otherwise.
func respondError(c *gin.Context, resourceType, id string, err error) {
	if err == nil {
		return
	}
	if id != "" && errors.Is(err, resource.ErrNotFound) {
		responder.NotFound(c, resourceType, id)
		return
	}
	responder.RespondError(c, err)
}

// respondBindError reports a payload that failed to decode or validate.
func respondBindError(c *gin.Context, err error) {
	responder.ValidationFailed(c, validation.ToDetails(err))
}
