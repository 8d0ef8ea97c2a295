//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "storefront-api"
	ConsumerName = "admin-portal"

	StateCatalogBaseline = "catalog baseline"
	StateProductExists   = "product with id 1 exists"
	StateProductMissing  = "no product with id 999"
	StateAdminAccount    = "admin account exists"
)

const (
	ExistingProductID = "1"
	MissingProductID  = "999"

	AdminEmail    = "admin@example.com"
	AdminPassword = "password"
	AdminUserID   = "2"

	// PlaceholderToken is what the consumer records; the provider swaps in a
	// freshly signed admin token before verification.
	PlaceholderToken = "Bearer pact-admin-token"
	BearerPattern    = `^Bearer \S+$`
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the admin portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleProductPayload matches the seeded laptop.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":          ExistingProductID,
		"name":        "Laptop",
		"description": "High-performance laptop",
		"price":       1200,
		"stock":       15,
		"createdAt":   "2024-01-01T00:00:00.000Z",
		"updatedAt":   "2024-01-01T00:00:00.000Z",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
