package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	activitydomain "github.com/Apurer/storefront-api/internal/domains/activity/domain"
	activityports "github.com/Apurer/storefront-api/internal/domains/activity/ports"
	"github.com/Apurer/storefront-api/internal/domains/auth/ports"
	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	userports "github.com/Apurer/storefront-api/internal/domains/users/ports"
	"github.com/Apurer/storefront-api/internal/platform/tokens"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

const minPasswordLength = 6

// Service authenticates users and manages their refresh sessions.
type Service struct {
	users       userports.Directory
	credentials ports.CredentialStore
	sessions    ports.SessionStore
	hasher      ports.PasswordHasher
	issuer      ports.TokenIssuer
	activity    activityports.Recorder
	logger      *slog.Logger
}

// Deps groups the collaborators of Service.
type Deps struct {
	Users       userports.Directory
	Credentials ports.CredentialStore
	Sessions    ports.SessionStore
	Hasher      ports.PasswordHasher
	Issuer      ports.TokenIssuer
	Activity    activityports.Recorder
	Logger      *slog.Logger
}

func NewService(deps Deps) *Service {
	if deps.Activity == nil {
		deps.Activity = activityports.NoopRecorder
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		users:       deps.Users,
		credentials: deps.Credentials,
		sessions:    deps.Sessions,
		hasher:      deps.Hasher,
		issuer:      deps.Issuer,
		activity:    deps.Activity,
		logger:      deps.Logger,
	}
}

// Login checks the password of the account registered under email. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (ports.Session, error) {
	user, ok := s.users.FindByEmail(ctx, email)
	if !ok {
		return ports.Session{}, ports.ErrInvalidCredentials
	}
	hash, ok := s.credentials.Hash(ctx, user.ID)
	if !ok || !s.hasher.Compare(hash, password) {
		return ports.Session{}, ports.ErrInvalidCredentials
	}
	session, err := s.openSession(ctx, user)
	if err != nil {
		return ports.Session{}, err
	}
	activityports.RecordOrWarn(ctx, s.activity, s.logger, activitydomain.Activity{
		UserID:      user.ID,
		Type:        activitydomain.TypeLogin,
		Title:       "Signed In",
		Description: "You signed in to your account",
	})
	return session, nil
}

// Register opens a customer account and signs it in.
func (s *Service) Register(ctx context.Context, reg ports.Registration) (ports.Session, error) {
	if len(reg.Password) < minPasswordLength {
		return ports.Session{}, fmt.Errorf("%w: %w", resource.ErrInvalidInput, ports.ErrWeakPassword)
	}
	if _, taken := s.users.FindByEmail(ctx, reg.Email); taken {
		return ports.Session{}, ports.ErrEmailTaken
	}
	user, err := userdomain.NewUser(reg.Email, reg.Name, userdomain.RoleUser)
	if err != nil {
		return ports.Session{}, fmt.Errorf("%w: %w", resource.ErrInvalidInput, err)
	}
	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return ports.Session{}, fmt.Errorf("hash password: %w", err)
	}
	rec, err := s.users.Create(ctx, user)
	if errors.Is(err, resource.ErrConflict) {
		return ports.Session{}, ports.ErrEmailTaken
	}
	if err != nil {
		return ports.Session{}, err
	}
	if err := s.credentials.Save(ctx, rec.ID, hash); err != nil {
		return ports.Session{}, fmt.Errorf("save credentials: %w", err)
	}
	return s.openSession(ctx, rec)
}

// Refresh exchanges the current refresh token for a new pair. A token that
// was rotated away or revoked by Logout is rejected.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (ports.Session, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return ports.Session{}, ports.ErrInvalidRefreshToken
	}
	claims, err := s.issuer.ParseRefreshToken(refreshToken)
	if err != nil {
		return ports.Session{}, errors.Join(ports.ErrInvalidRefreshToken, err)
	}
	current, ok := s.sessions.Lookup(ctx, claims.UserID)
	if !ok || current != refreshToken {
		return ports.Session{}, ports.ErrInvalidRefreshToken
	}
	user, ok := s.users.Get(ctx, claims.UserID)
	if !ok {
		return ports.Session{}, ports.ErrInvalidRefreshToken
	}
	return s.openSession(ctx, user)
}

func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, userID)
}

func (s *Service) Me(ctx context.Context, userID string) (projection.Projection[userdomain.User], error) {
	user, ok := s.users.Get(ctx, userID)
	if !ok {
		return projection.Projection[userdomain.User]{}, resource.ErrNotFound
	}
	return user, nil
}

func (s *Service) openSession(ctx context.Context, user projection.Projection[userdomain.User]) (ports.Session, error) {
	pair, err := s.issuer.Issue(tokens.Subject{
		UserID: user.ID,
		Email:  user.Entity.Email,
		Name:   user.Entity.Name,
		Admin:  user.Entity.IsAdmin(),
	})
	if err != nil {
		return ports.Session{}, fmt.Errorf("issue tokens: %w", err)
	}
	if err := s.sessions.Save(ctx, user.ID, pair.RefreshToken, pair.RefreshExpiresAt); err != nil {
		return ports.Session{}, fmt.Errorf("save session: %w", err)
	}
	return ports.Session{User: user, Tokens: pair}, nil
}

var _ ports.Service = (*Service)(nil)
