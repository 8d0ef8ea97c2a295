package memory

import (
	"context"
	"errors"
	"sync"

	authports "github.com/Apurer/storefront-api/internal/domains/auth/ports"
)

var _ authports.CredentialStore = (*CredentialStore)(nil)

// CredentialStore keeps password hashes in memory.
type CredentialStore struct {
	mu     sync.RWMutex
	hashes map[string]string
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{hashes: map[string]string{}}
}

func (s *CredentialStore) Save(_ context.Context, userID, passwordHash string) error {
	if userID == "" || passwordHash == "" {
		return errors.New("user id and password hash are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[userID] = passwordHash
	return nil
}

func (s *CredentialStore) Hash(_ context.Context, userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hash, ok := s.hashes[userID]
	return hash, ok
}
