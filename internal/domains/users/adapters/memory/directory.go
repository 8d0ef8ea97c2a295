package memory

import (
	"context"
	"strings"

	"github.com/Apurer/storefront-api/internal/domains/users/domain"
	"github.com/Apurer/storefront-api/internal/domains/users/ports"
	"github.com/Apurer/storefront-api/internal/shared/projection"
	"github.com/Apurer/storefront-api/internal/shared/resource"
)

var _ ports.Directory = (*Directory)(nil)

// Directory looks users up by email in the shared user store and registers
// new accounts in it.
type Directory struct {
	store *resource.Store[domain.User]
}

func NewDirectory(store *resource.Store[domain.User]) *Directory {
	return &Directory{store: store}
}

// FindByEmail matches emails case-insensitively.
func (d *Directory) FindByEmail(ctx context.Context, email string) (projection.Projection[domain.User], bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		return projection.Projection[domain.User]{}, false
	}
	matches := d.store.Find(ctx, func(rec projection.Projection[domain.User]) bool {
		return strings.EqualFold(rec.Entity.Email, email)
	})
	if len(matches) == 0 {
		return projection.Projection[domain.User]{}, false
	}
	return matches[0], true
}

func (d *Directory) Get(ctx context.Context, id string) (projection.Projection[domain.User], bool) {
	return d.store.Get(ctx, id)
}

func (d *Directory) Create(ctx context.Context, user domain.User) (projection.Projection[domain.User], error) {
	return d.store.Create(ctx, user)
}
