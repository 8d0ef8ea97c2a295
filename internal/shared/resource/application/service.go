// Package application holds the use cases shared by every CRUD resource.
package application

import (
	"context"

	"github.com/Apurer/storefront-api/internal/shared/pagination"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

// Service orchestrates CRUD use cases for one entity type.
type Service[T resource.Entity] struct {
	repo resource.Repository[T]
}

func NewService[T resource.Entity](repo resource.Repository[T]) *Service[T] {
	return &Service[T]{repo: repo}
}

func (s *Service[T]) List(ctx context.Context, page, limit int) (pagination.Page[projection.Projection[T]], error) {
	return s.repo.List(ctx, page, limit), nil
}

func (s *Service[T]) Get(ctx context.Context, id string) (projection.Projection[T], error) {
	rec, ok := s.repo.Get(ctx, id)
	if !ok {
		return projection.Projection[T]{}, resource.ErrNotFound
	}
	return rec, nil
}

func (s *Service[T]) Create(ctx context.Context, entity T) (projection.Projection[T], error) {
	return s.repo.Create(ctx, entity)
}

func (s *Service[T]) Update(ctx context.Context, id string, patch resource.Patch[T]) (projection.Projection[T], error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete reports false with a nil error when nothing was stored under id.
func (s *Service[T]) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id), nil
}
