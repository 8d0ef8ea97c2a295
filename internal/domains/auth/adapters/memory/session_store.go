package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	authports "github.com/Apurer/storefront-api/internal/domains/auth/ports"
)

var _ authports.SessionStore = (*SessionStore)(nil)

type session struct {
	token     string
	expiresAt time.Time
}

// SessionStore is an in-memory SessionStore implementation holding one
// refresh session per user.
type SessionStore struct {
	session sync.Map
	now     func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{now: time.Now}
}

// WithClock overrides the time source, useful for deterministic tests.
func (s *SessionStore) WithClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *SessionStore) Save(_ context.Context, userID, token string, expiresAt time.Time) error {
	userID = strings.TrimSpace(userID)
	token = strings.TrimSpace(token)
	if userID == "" || token == "" {
		return errors.New("user id and token are required")
	}
	s.session.Store(userID, session{token: token, expiresAt: expiresAt})
	return nil
}

// Lookup returns the live refresh token of the user. Expired sessions are
// treated as absent.
func (s *SessionStore) Lookup(_ context.Context, userID string) (string, bool) {
	value, ok := s.session.Load(userID)
	if !ok {
		return "", false
	}
	sess := value.(session)
	if !sess.expiresAt.IsZero() && !s.now().Before(sess.expiresAt) {
		return "", false
	}
	return sess.token, true
}

func (s *SessionStore) Delete(_ context.Context, userID string) error {
	s.session.Delete(userID)
	return nil
}

// PurgeExpired removes expired sessions and reports how many were dropped.
func (s *SessionStore) PurgeExpired(_ context.Context) (int, error) {
	now := s.now()
	purged := 0
	s.session.Range(func(key, value any) bool {
		sess := value.(session)
		if !sess.expiresAt.IsZero() && !now.Before(sess.expiresAt) {
			s.session.Delete(key)
			purged++
		}
		return true
	})
	return purged, nil
}
