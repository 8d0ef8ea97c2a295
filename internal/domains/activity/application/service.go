package application

import (
	"context"
	"sort"

	"github.com/Apurer/storefront-api/internal/domains/activity/domain"
	"github.com/Apurer/storefront-api/internal/domains/activity/ports"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// Service records and reads activity feeds.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, entry domain.Activity) error {
	_, err := s.repo.Create(ctx, entry)
	return err
}

// Feed returns the user's entries, newest first. Entries created at the same
// instant keep their insertion order.
func (s *Service) Feed(ctx context.Context, userID string) ([]projection.Projection[domain.Activity], error) {
	entries := s.repo.Find(ctx, func(rec projection.Projection[domain.Activity]) bool {
		return rec.Entity.UserID == userID
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Metadata.CreatedAt.After(entries[j].Metadata.CreatedAt)
	})
	return entries, nil
}

var _ ports.Service = (*Service)(nil)
