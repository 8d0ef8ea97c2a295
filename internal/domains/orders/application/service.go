package application

import (
	"context"
	"io"
	"log/slog"

	activitydomain "github.com/Apurer/storefront-api/internal/domains/activity/domain"
	activityports "github.com/Apurer/storefront-api/internal/domains/activity/ports"
	"github.com/Apurer/storefront-api/internal/domains/orders/domain"
	"github.com/Apurer/storefront-api/internal/domains/orders/ports"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

// History serves a customer's view of the shared order store. Orders owned by
// someone else are reported as not found.
type History struct {
	repo     ports.Repository
	activity activityports.Recorder
	logger   *slog.Logger
}

// Option configures a History.
type Option func(*History)

// WithLogger sets the logger used for activity feed failures.
func WithLogger(logger *slog.Logger) Option {
	return func(h *History) {
		if logger != nil {
			h.logger = logger
		}
	}
}

func NewHistory(repo ports.Repository, activity activityports.Recorder, opts ...Option) *History {
	if activity == nil {
		activity = activityports.NoopRecorder
	}
	h := &History{repo: repo, activity: activity, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *History) List(ctx context.Context, userID string) ([]projection.Projection[domain.Order], error) {
	return h.repo.Find(ctx, func(rec projection.Projection[domain.Order]) bool {
		return rec.Entity.UserID == userID
	}), nil
}

func (h *History) Get(ctx context.Context, userID, orderID string) (projection.Projection[domain.Order], error) {
	rec, ok := h.repo.Get(ctx, orderID)
	if !ok || rec.Entity.UserID != userID {
		return projection.Projection[domain.Order]{}, resource.ErrNotFound
	}
	return rec, nil
}

// Cancel moves a pending order of userID to cancelled. The ownership and
// status checks run inside the repository update, so an order completed
// concurrently is never cancelled.
func (h *History) Cancel(ctx context.Context, userID, orderID string) (projection.Projection[domain.Order], error) {
	cancelled := domain.StatusCancelled
	cancellable := func(order domain.Order) error {
		if order.UserID != userID {
			return resource.ErrNotFound
		}
		if order.Status != domain.StatusPending {
			return ports.ErrNotCancellable
		}
		return nil
	}
	rec, err := h.repo.Update(ctx, orderID, resource.Conditional[domain.Order](cancellable, domain.Patch{Status: &cancelled}))
	if err != nil {
		return projection.Projection[domain.Order]{}, err
	}
	activityports.RecordOrWarn(ctx, h.activity, h.logger, activitydomain.Activity{
		UserID:      userID,
		Type:        activitydomain.TypeOrderCancelled,
		Title:       "Order Cancelled",
		Description: "Order " + orderID + " has been cancelled",
		Metadata:    map[string]any{"orderId": orderID, "amount": rec.Entity.TotalPrice},
	})
	return rec, nil
}

var _ ports.History = (*History)(nil)
