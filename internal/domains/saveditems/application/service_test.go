package application

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	activitydomain "github.com/Apurer/storefront-api/internal/domains/activity/domain"
	productdomain "github.com/Apurer/storefront-api/internal/domains/products/domain"
	"github.com/Apurer/storefront-api/internal/domains/saveditems/domain"
	"github.com/Apurer/storefront-api/internal/domains/saveditems/ports"
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

func newService(t *testing.T) (*Service, *fakeRecorder) {
	t.Helper()
	products := resource.NewStore[productdomain.Product]()
	require.NoError(t, products.Seed(
		projection.Projection[productdomain.Product]{ID: "1", Entity: productdomain.Product{Name: "Laptop", Price: 1200, Stock: 15}},
		projection.Projection[productdomain.Product]{ID: "2", Entity: productdomain.Product{Name: "Mouse", Price: 25, Stock: 0}},
	))
	items := resource.NewStore[domain.SavedItem](resource.WithIDGenerator(resource.UUIDs{}))
	recorder := &fakeRecorder{}
	return NewService(items, products, recorder), recorder
}

func TestSaveSnapshotsProduct(t *testing.T) {
	ctx := context.Background()
	svc, recorder := newService(t)

	item, created, err := svc.Save(ctx, "1", "2")
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "Mouse", item.Entity.ProductName)
	require.Equal(t, 25.0, item.Entity.Price)
	require.False(t, item.Entity.InStock)
	require.Len(t, recorder.entries, 1)
	require.Equal(t, activitydomain.TypeItemSaved, recorder.entries[0].Type)
}

func TestSaveIsIdempotentPerProduct(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	first, _, err := svc.Save(ctx, "1", "1")
	require.NoError(t, err)
	second, created, err := svc.Save(ctx, "1", "1")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)

	other, created, err := svc.Save(ctx, "3", "1")
	require.NoError(t, err)
	require.True(t, created)
	require.NotEqual(t, first.ID, other.ID)

	list, err := svc.List(ctx, "1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestSaveUnknownProduct(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.Save(context.Background(), "1", "404")
	require.ErrorIs(t, err, ports.ErrProductNotFound)
	require.ErrorIs(t, err, resource.ErrNotFound)
}

func TestRemoveChecksOwnership(t *testing.T) {
	ctx := context.Background()
	svc, recorder := newService(t)
	item, _, err := svc.Save(ctx, "1", "1")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Remove(ctx, "3", item.ID), resource.ErrNotFound)
	require.NoError(t, svc.Remove(ctx, "1", item.ID))
	require.ErrorIs(t, svc.Remove(ctx, "1", item.ID), resource.ErrNotFound)
	require.Equal(t, activitydomain.TypeItemRemoved, recorder.entries[len(recorder.entries)-1].Type)
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, activitydomain.Activity) error {
	return errors.New("feed unavailable")
}

func TestSaveAndRemoveLogActivityFailures(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	products := resource.NewStore[productdomain.Product]()
	require.NoError(t, products.Seed(
		projection.Projection[productdomain.Product]{ID: "1", Entity: productdomain.Product{Name: "Laptop", Price: 1200, Stock: 15}},
	))
	items := resource.NewStore[domain.SavedItem]()
	svc := NewService(items, products, failingRecorder{}, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	item, created, err := svc.Save(ctx, "1", "1")
	require.NoError(t, err)
	require.True(t, created)
	require.NoError(t, svc.Remove(ctx, "1", item.ID))
	require.Zero(t, items.Count(ctx))

	logged := buf.String()
	require.Equal(t, 2, strings.Count(logged, "failed to record activity"))
	require.Contains(t, logged, "activity.type=item_saved")
	require.Contains(t, logged, "activity.type=item_removed")
	require.Equal(t, 2, strings.Count(logged, "level=WARN"))
}
