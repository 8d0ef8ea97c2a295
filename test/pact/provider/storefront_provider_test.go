//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	pacttest "github.com/Apurer/storefront-api/test/pact"

	"github.com/Apurer/storefront-api/internal/app/api"
	platformobservability "github.com/Apurer/storefront-api/internal/platform/observability"
	"github.com/Apurer/storefront-api/internal/platform/tokens"

	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestStorefrontProviderPact(t *testing.T) {
	t.Helper()

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	reset := func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
		if setup {
			app.reset(t)
		}
		return nil, nil
	}
	verifier := pactprovider.NewVerifier()
	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers: models.StateHandlers{
			pacttest.StateAdminAccount:    reset,
			pacttest.StateCatalogBaseline: reset,
			pacttest.StateProductExists:   reset,
			pacttest.StateProductMissing:  reset,
		},
		RequestFilter: app.injectAdminToken,
	})
	require.NoError(t, err)
}

// contractProviderApp serves a freshly seeded app per provider state.
type contractProviderApp struct {
	mu      sync.RWMutex
	current *api.App
	server  *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()
	a := &contractProviderApp{}
	a.reset(t)
	a.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.mu.RLock()
		router := a.current.Router
		a.mu.RUnlock()
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(a.server.Close)
	return a
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	cfg, err := api.LoadConfigFrom(map[string]string{
		"GIN_MODE":              "test",
		"BCRYPT_COST":           "4",
		"AUTH_RATE_LIMIT_BURST": "100",
	})
	require.NoError(t, err)
	app, err := api.NewApp(context.Background(), cfg, &platformobservability.Instruments{})
	require.NoError(t, err)

	a.mu.Lock()
	a.current = app
	a.mu.Unlock()
}

// injectAdminToken replaces the consumer's placeholder bearer token with one
// signed by the running app.
func (a *contractProviderApp) injectAdminToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			a.mu.RLock()
			manager := a.current.Tokens
			a.mu.RUnlock()
			pair, err := manager.Issue(tokens.Subject{
				UserID: pacttest.AdminUserID,
				Email:  pacttest.AdminEmail,
				Admin:  true,
			})
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			r.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		}
		next.ServeHTTP(w, r)
	})
}
