package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/platform/tokens"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

type stubVerifier map[string]*tokens.Claims

func (s stubVerifier) ParseAccessToken(token string) (*tokens.Claims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, errors.New("unknown token")
}

type stubAccounts map[string]userdomain.Role

func (s stubAccounts) Get(_ context.Context, id string) (projection.Projection[userdomain.User], bool) {
	role, ok := s[id]
	if !ok {
		return projection.Projection[userdomain.User]{}, false
	}
	return projection.Projection[userdomain.User]{
		ID:     id,
		Entity: userdomain.User{Email: id + "@example.com", Name: "User " + id, Role: role},
	}, true
}

func newMiddlewareRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	verifier := stubVerifier{
		"customer": {UserID: "1"},
		"admin":    {UserID: "2", Admin: true},
		"demoted":  {UserID: "3", Admin: true},
		"deleted":  {UserID: "9", Admin: true},
	}
	accounts := stubAccounts{
		"1": userdomain.RoleUser,
		"2": userdomain.RoleAdmin,
		"3": userdomain.RoleUser,
	}
	r := gin.New()
	r.Use(Recovery(logger), RequestID(), RequestLogger(logger))
	r.GET("/me", Authenticate(verifier, accounts), func(c *gin.Context) {
		c.String(http.StatusOK, currentUserID(c))
	})
	r.GET("/admin", Authenticate(verifier, accounts), RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r
}

func serve(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	r := newMiddlewareRouter()

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic customer", status: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", status: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer forged", status: http.StatusUnauthorized},
		{name: "account gone", header: "Bearer deleted", status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer customer", status: http.StatusOK, body: "1"},
		{name: "scheme is case insensitive", header: "bearer admin", status: http.StatusOK, body: "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(r, "/me", map[string]string{"Authorization": tt.header})
			require.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				require.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	r := newMiddlewareRouter()

	rec := serve(r, "/admin", map[string]string{"Authorization": "Bearer customer"})
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	rec = serve(r, "/admin", map[string]string{"Authorization": "Bearer admin"})
	require.Equal(t, http.StatusOK, rec.Code)

	// the token still says admin, the account no longer does
	rec = serve(r, "/admin", map[string]string{"Authorization": "Bearer demoted"})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequestID(t *testing.T) {
	r := newMiddlewareRouter()

	rec := serve(r, "/me", map[string]string{HeaderRequestID: "req-123"})
	require.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))

	rec = serve(r, "/me", nil)
	require.Len(t, rec.Header().Get(HeaderRequestID), 36)
}

func TestRecoveryAnswersProblem(t *testing.T) {
	r := newMiddlewareRouter()

	rec := serve(r, "/panic", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "/problems/internal-error")
	require.NotContains(t, rec.Body.String(), "boom")
}

func TestCorsConfig(t *testing.T) {
	open := corsConfig(nil)
	require.True(t, open.AllowAllOrigins)
	require.False(t, open.AllowCredentials)

	restricted := corsConfig([]string{"http://localhost:3000"})
	require.False(t, restricted.AllowAllOrigins)
	require.True(t, restricted.AllowCredentials)
	require.Equal(t, []string{"http://localhost:3000"}, restricted.AllowOrigins)
	require.NoError(t, restricted.Validate())
}
