package ports

import (
	"context"
	"errors"
	"time"

	"github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/platform/tokens"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrWeakPassword        = errors.New("password must be at least 6 characters")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// CredentialStore keeps password hashes keyed by user id.
type CredentialStore interface {
	Save(ctx context.Context, userID, passwordHash string) error
	Hash(ctx context.Context, userID string) (string, bool)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// SessionStore tracks the live refresh token of each user.
type SessionStore interface {
	Save(ctx context.Context, userID, refreshToken string, expiresAt time.Time) error
	Lookup(ctx context.Context, userID string) (string, bool)
	Delete(ctx context.Context, userID string) error
	PurgeExpired(ctx context.Context) (int, error)
}

// TokenIssuer signs and verifies client tokens.
type TokenIssuer interface {
	Issue(subject tokens.Subject) (tokens.Pair, error)
	ParseRefreshToken(token string) (*tokens.Claims, error)
}

// Session is the result of a successful authentication.
type Session struct {
	User   projection.Projection[domain.User]
	Tokens tokens.Pair
}

// Registration carries the fields needed to open an account.
type Registration struct {
	Email    string
	Password string
	Name     string
}

// Service exposes authentication use cases to adapters.
type Service interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Register(ctx context.Context, reg Registration) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (Session, error)
	Logout(ctx context.Context, userID string) error
	Me(ctx context.Context, userID string) (projection.Projection[domain.User], error)
}
