package application

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	activitydomain "github.com/Apurer/storefront-api/internal/domains/activity/domain"
	"github.com/Apurer/storefront-api/internal/domains/auth/adapters/crypto"
	authmemory "github.com/Apurer/storefront-api/internal/domains/auth/adapters/memory"
	"github.com/Apurer/storefront-api/internal/domains/auth/ports"
	usermemory "github.com/Apurer/storefront-api/internal/domains/users/adapters/memory"
	userdomain "github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/platform/tokens"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

type fakeRecorder struct {
	entries []activitydomain.Activity
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, entry activitydomain.Activity) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

type fixture struct {
	svc      *Service
	deps     Deps
	sessions *authmemory.SessionStore
	recorder *fakeRecorder
	advance  func(time.Duration)
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	users := resource.NewStore[userdomain.User]()
	require.NoError(t, users.Seed(
		projection.Projection[userdomain.User]{ID: "1", Entity: userdomain.User{Email: "admin@example.com", Name: "Admin User", Role: userdomain.RoleAdmin}},
		projection.Projection[userdomain.User]{ID: "2", Entity: userdomain.User{Email: "user1@example.com", Name: "John Doe", Role: userdomain.RoleUser}},
	))

	hasher := crypto.NewBcrypt(bcrypt.MinCost)
	credentials := authmemory.NewCredentialStore()
	for _, id := range []string{"1", "2"} {
		hash, err := hasher.Hash("password")
		require.NoError(t, err)
		require.NoError(t, credentials.Save(ctx, id, hash))
	}
	sessions := authmemory.NewSessionStore()
	sessions.WithClock(clock)
	recorder := &fakeRecorder{}

	deps := Deps{
		Users:       usermemory.NewDirectory(users),
		Credentials: credentials,
		Sessions:    sessions,
		Hasher:      hasher,
		Issuer:      tokens.NewManager("access", "refresh", 15*time.Minute, 7*24*time.Hour, tokens.WithClock(clock)),
		Activity:    recorder,
	}
	return fixture{
		svc:      NewService(deps),
		deps:     deps,
		sessions: sessions,
		recorder: recorder,
		advance:  func(d time.Duration) { now = now.Add(d) },
	}
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Login(ctx, "ADMIN@example.com", "password")
	require.NoError(t, err)
	require.Equal(t, "1", session.User.ID)
	require.NotEmpty(t, session.Tokens.AccessToken)
	require.NotEmpty(t, session.Tokens.RefreshToken)

	stored, ok := f.sessions.Lookup(ctx, "1")
	require.True(t, ok)
	require.Equal(t, session.Tokens.RefreshToken, stored)

	require.Len(t, f.recorder.entries, 1)
	require.Equal(t, activitydomain.TypeLogin, f.recorder.entries[0].Type)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, "admin@example.com", "wrong")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, "nobody@example.com", "password")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
	require.Empty(t, f.recorder.entries)
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Register(ctx, ports.Registration{Email: "new@example.com", Password: "secret1", Name: "New User"})
	require.NoError(t, err)
	require.Equal(t, "3", session.User.ID)
	require.Equal(t, userdomain.RoleUser, session.User.Entity.Role)

	_, err = f.svc.Login(ctx, "new@example.com", "secret1")
	require.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, ports.Registration{Email: "user1@example.com", Password: "secret1", Name: "Dup"})
	require.ErrorIs(t, err, ports.ErrEmailTaken)

	_, err = f.svc.Register(ctx, ports.Registration{Email: "short@example.com", Password: "12345", Name: "Short"})
	require.ErrorIs(t, err, ports.ErrWeakPassword)
	require.ErrorIs(t, err, resource.ErrInvalidInput)

	_, err = f.svc.Register(ctx, ports.Registration{Email: "not-an-email", Password: "secret1", Name: "Bad"})
	require.ErrorIs(t, err, resource.ErrInvalidInput)
	require.ErrorIs(t, err, userdomain.ErrInvalidEmail)
}

func TestRefreshRotatesToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Login(ctx, "user1@example.com", "password")
	require.NoError(t, err)

	f.advance(time.Minute)
	second, err := f.svc.Refresh(ctx, first.Tokens.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, "2", second.User.ID)
	require.NotEqual(t, first.Tokens.RefreshToken, second.Tokens.RefreshToken)

	_, err = f.svc.Refresh(ctx, first.Tokens.RefreshToken)
	require.ErrorIs(t, err, ports.ErrInvalidRefreshToken)
}

func TestRefreshRejectsRevokedAndGarbage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Login(ctx, "user1@example.com", "password")
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(ctx, "2"))

	_, err = f.svc.Refresh(ctx, session.Tokens.RefreshToken)
	require.ErrorIs(t, err, ports.ErrInvalidRefreshToken)

	_, err = f.svc.Refresh(ctx, "garbage")
	require.ErrorIs(t, err, ports.ErrInvalidRefreshToken)

	_, err = f.svc.Refresh(ctx, session.Tokens.AccessToken)
	require.ErrorIs(t, err, ports.ErrInvalidRefreshToken)

	_, err = f.svc.Refresh(ctx, "")
	require.ErrorIs(t, err, ports.ErrInvalidRefreshToken)
}

func TestMe(t *testing.T) {
	f := newFixture(t)

	user, err := f.svc.Me(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, user.Entity.IsAdmin())

	_, err = f.svc.Me(context.Background(), "42")
	require.ErrorIs(t, err, resource.ErrNotFound)
}

func TestLoginLogsActivityFailure(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	f.recorder.err = errors.New("feed unavailable")
	f.deps.Logger = slog.New(slog.NewTextHandler(&buf, nil))
	svc := NewService(f.deps)

	session, err := svc.Login(context.Background(), "user1@example.com", "password")
	require.NoError(t, err)
	require.Equal(t, "2", session.User.ID)
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "failed to record activity")
	require.Contains(t, buf.String(), "user.id=2")
	require.Contains(t, buf.String(), "activity.type=login")
}

// lateDirectory misses every email lookup, so a duplicate is only caught
// when the store rejects the insert.
type lateDirectory struct {
	*usermemory.Directory
}

func (lateDirectory) FindByEmail(context.Context, string) (projection.Projection[userdomain.User], bool) {
	return projection.Projection[userdomain.User]{}, false
}

func TestRegisterReportsStoreConflictAsEmailTaken(t *testing.T) {
	f := newFixture(t)
	f.deps.Users = lateDirectory{Directory: f.deps.Users.(*usermemory.Directory)}
	svc := NewService(f.deps)

	_, err := svc.Register(context.Background(), ports.Registration{Email: "User1@Example.com", Password: "secret1", Name: "Copy"})
	require.ErrorIs(t, err, ports.ErrEmailTaken)
}
