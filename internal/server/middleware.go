package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/platform/tokens"
	apierrors "github.com/Apurer/storefront-api/internal/shared/errors"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

const (
	// HeaderRequestID carries the request id in both directions.
	HeaderRequestID = "X-Request-ID"

	ctxRequestIDKey = apierrors.ContextRequestIDKey
	ctxClaimsKey    = "claims"
	ctxAccountKey   = "account"
)

// TokenVerifier validates bearer access tokens.
type TokenVerifier interface {
	ParseAccessToken(token string) (*tokens.Claims, error)
}

// AccountLookup resolves the account a token was issued to.
type AccountLookup interface {
	Get(ctx context.Context, id string) (projection.Projection[userdomain.User], bool)
}

// RequestID reuses the caller's X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger writes one line per request. Errors attached to the context
// with c.Error are included.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("request_id", c.GetString(ctxRequestIDKey)),
			slog.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "http request", attrs...)
	}
}

// Recovery converts panics into a 500 problem response.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			slog.Any("panic", recovered),
			slog.String("request_id", c.GetString(ctxRequestIDKey)),
		)
		apierrors.Respond(c, apierrors.ErrInternal)
	})
}

// Authenticate requires a valid bearer access token whose account still
// exists. The claims and the current account record are stored in the
// context.
func Authenticate(verifier TokenVerifier, accounts AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			responder.Unauthorized(c, "missing bearer token")
			return
		}
		claims, err := verifier.ParseAccessToken(strings.TrimSpace(token))
		if err != nil {
			responder.Unauthorized(c, "invalid access token")
			return
		}
		account, ok := accounts.Get(c.Request.Context(), claims.UserID)
		if !ok {
			responder.Unauthorized(c, "account no longer exists")
			return
		}
		c.Set(ctxClaimsKey, claims)
		c.Set(ctxAccountKey, account)
		c.Next()
	}
}

// RequireAdmin rejects callers whose account is not an administrator. The
// role is read from the account record, not the token, so demotions apply
// immediately. It must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := currentAccount(c)
		if !ok {
			responder.Unauthorized(c, "missing bearer token")
			return
		}
		if !account.Entity.IsAdmin() {
			responder.Forbidden(c, "administrator access required")
			return
		}
		c.Next()
	}
}

func currentAccount(c *gin.Context) (projection.Projection[userdomain.User], bool) {
	value, ok := c.Get(ctxAccountKey)
	if !ok {
		return projection.Projection[userdomain.User]{}, false
	}
	account, ok := value.(projection.Projection[userdomain.User])
	return account, ok
}

func currentClaims(c *gin.Context) *tokens.Claims {
	value, ok := c.Get(ctxClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*tokens.Claims)
	return claims
}

func currentUserID(c *gin.Context) string {
	if claims := currentClaims(c); claims != nil {
		return claims.UserID
	}
	return ""
}
