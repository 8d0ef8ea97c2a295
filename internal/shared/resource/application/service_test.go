package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/storefront-api/internal/shared/resource"
)

type note struct {
	Text string
}

func (n note) Validate() error {
	if n.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

type notePatch struct {
	Text *string
}

func (p notePatch) Apply(n note) note {
	if p.Text != nil {
		n.Text = *p.Text
	}
	return n
}

func newService() *Service[note] {
	return NewService[note](resource.NewStore[note]())
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.Get(context.Background(), "1")
	require.ErrorIs(t, err, resource.ErrNotFound)
}

func TestCreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, note{Text: "hello"})
	require.NoError(t, err)

	text := "bye"
	updated, err := svc.Update(ctx, created.ID, notePatch{Text: &text})
	require.NoError(t, err)
	require.Equal(t, "bye", updated.Entity.Text)

	page, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)

	removed, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestCreateInvalidInput(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), note{})
	require.ErrorIs(t, err, resource.ErrInvalidInput)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.Update(context.Background(), "9", nil)
	require.ErrorIs(t, err, resource.ErrNotFound)
}

var _ resource.Service[note] = (*Service[note])(nil)
