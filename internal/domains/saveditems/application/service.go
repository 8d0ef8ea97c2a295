package application

import (
	"context"
	"io"
	"log/slog"

	activitydomain "github.com/Apurer/storefront-api/internal/domains/activity/domain"
	activityports "github.com/Apurer/storefront-api/internal/domains/activity/ports"
	"github.com/Apurer/storefront-api/internal/domains/saveditems/domain"
	"github.com/Apurer/storefront-api/internal/domains/saveditems/ports"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

// Service manages per-user wishlists.
type Service struct {
	repo     ports.Repository
	catalog  ports.Catalog
	activity activityports.Recorder
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for activity feed failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewService(repo ports.Repository, catalog ports.Catalog, activity activityports.Recorder, opts ...Option) *Service {
	if activity == nil {
		activity = activityports.NoopRecorder
	}
	s := &Service{repo: repo, catalog: catalog, activity: activity, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) List(ctx context.Context, userID string) ([]projection.Projection[domain.SavedItem], error) {
	return s.repo.Find(ctx, func(rec projection.Projection[domain.SavedItem]) bool {
		return rec.Entity.UserID == userID
	}), nil
}

func (s *Service) Save(ctx context.Context, userID, productID string) (projection.Projection[domain.SavedItem], bool, error) {
	existing := s.repo.Find(ctx, func(rec projection.Projection[domain.SavedItem]) bool {
		return rec.Entity.UserID == userID && rec.Entity.ProductID == productID
	})
	if len(existing) > 0 {
		return existing[0], false, nil
	}
	product, ok := s.catalog.Get(ctx, productID)
	if !ok {
		return projection.Projection[domain.SavedItem]{}, false, ports.ErrProductNotFound
	}
	rec, err := s.repo.Create(ctx, domain.SavedItem{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Entity.Name,
		Price:       product.Entity.Price,
		InStock:     product.Entity.InStock(),
	})
	if err != nil {
		return projection.Projection[domain.SavedItem]{}, false, err
	}
	activityports.RecordOrWarn(ctx, s.activity, s.logger, activitydomain.Activity{
		UserID:      userID,
		Type:        activitydomain.TypeItemSaved,
		Title:       "Item Saved",
		Description: product.Entity.Name + " has been saved to your wishlist",
		Metadata:    map[string]any{"productId": product.ID, "productName": product.Entity.Name},
	})
	return rec, true, nil
}

func (s *Service) Remove(ctx context.Context, userID, itemID string) error {
	rec, ok := s.repo.Get(ctx, itemID)
	if !ok || rec.Entity.UserID != userID {
		return resource.ErrNotFound
	}
	if !s.repo.Delete(ctx, itemID) {
		return resource.ErrNotFound
	}
	activityports.RecordOrWarn(ctx, s.activity, s.logger, activitydomain.Activity{
		UserID:      userID,
		Type:        activitydomain.TypeItemRemoved,
		Title:       "Item Removed",
		Description: rec.Entity.ProductName + " has been removed from your wishlist",
		Metadata:    map[string]any{"productId": rec.Entity.ProductID, "productName": rec.Entity.ProductName},
	})
	return nil
}

var _ ports.Service = (*Service)(nil)
