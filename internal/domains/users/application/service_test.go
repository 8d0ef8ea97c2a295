package application

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	activitydomain "github.com/Apurer/storefront-api/internal/domains/activity/domain"
	"github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

type fakeRecorder struct {
	entries []activitydomain.Activity
}

func (f *fakeRecorder) Record(_ context.Context, entry activitydomain.Activity) error {
	f.entries = append(f.entries, entry)
	return nil
}

func seededStore(t *testing.T) *resource.Store[domain.User] {
	t.Helper()
	store := resource.NewStore[domain.User]()
	require.NoError(t, store.Seed(projection.Projection[domain.User]{
		ID:     "1",
		Entity: domain.User{Email: "user1@example.com", Name: "John Doe", Role: domain.RoleUser},
	}))
	return store
}

func TestProfileGet(t *testing.T) {
	svc := NewProfileService(seededStore(t), nil)

	rec, err := svc.Get(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "John Doe", rec.Entity.Name)

	_, err = svc.Get(context.Background(), "2")
	require.ErrorIs(t, err, resource.ErrNotFound)
}

func TestProfileUpdateIgnoresAccountFields(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewProfileService(seededStore(t), recorder)
	name := "Johnny"
	email := "hijack@example.com"
	role := domain.RoleAdmin

	rec, err := svc.Update(context.Background(), "1", domain.Patch{
		Name:        &name,
		Email:       &email,
		Role:        &role,
		Preferences: &domain.Preferences{Theme: domain.ThemeDark},
	})
	require.NoError(t, err)
	require.Equal(t, "Johnny", rec.Entity.Name)
	require.Equal(t, "user1@example.com", rec.Entity.Email)
	require.Equal(t, domain.RoleUser, rec.Entity.Role)
	require.Equal(t, domain.ThemeDark, rec.Entity.Preferences.Theme)

	require.Len(t, recorder.entries, 1)
	require.Equal(t, activitydomain.TypeProfileUpdated, recorder.entries[0].Type)
}

func TestProfileUpdateRejectsInvalidPatch(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewProfileService(seededStore(t), recorder)
	blank := ""

	_, err := svc.Update(context.Background(), "1", domain.Patch{Name: &blank})
	require.ErrorIs(t, err, resource.ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyName)
	require.Empty(t, recorder.entries)

	_, err = svc.Update(context.Background(), "9", domain.Patch{})
	require.ErrorIs(t, err, resource.ErrNotFound)
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, activitydomain.Activity) error {
	return errors.New("feed unavailable")
}

func TestProfileUpdateLogsActivityFailure(t *testing.T) {
	var buf bytes.Buffer
	svc := NewProfileService(seededStore(t), failingRecorder{}, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	name := "Johnny"

	rec, err := svc.Update(context.Background(), "1", domain.Patch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Johnny", rec.Entity.Name)
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "failed to record activity")
	require.Contains(t, buf.String(), "user.id=1")
	require.Contains(t, buf.String(), "activity.type=profile_updated")
}
