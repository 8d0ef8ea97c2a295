package resource

import (
	"time"

	"github.com/Apurer/storefront-api/internal/shared/projection"
)

// Patch is a partial update for an entity of type T. Implementations carry
// optional fields for the keys callers may change and must not mutate the
// entity they are given.
type Patch[T any] interface {
	Apply(T) T
}

// PatchFunc adapts a plain function to Patch.
type PatchFunc[T any] func(T) T

// Apply implements Patch.
func (f PatchFunc[T]) Apply(entity T) T { return f(entity) }

// Guard is implemented by patches that only apply to entities in a given
// state. Store.Update calls Check on the current entity and aborts with its
// error before merging.
type Guard[T any] interface {
	Check(T) error
}

// Conditional wraps patch so it is applied only when check accepts the
// current entity.
func Conditional[T any](check func(T) error, patch Patch[T]) Patch[T] {
	return conditional[T]{check: check, patch: patch}
}

type conditional[T any] struct {
	check func(T) error
	patch Patch[T]
}

func (c conditional[T]) Check(entity T) error {
	if c.check == nil {
		return nil
	}
	return c.check(entity)
}

func (c conditional[T]) Apply(entity T) T {
	if c.patch == nil {
		return entity
	}
	return c.patch.Apply(entity)
}

// Merge applies patch to the entity of existing and returns the updated record.
// The id and creation time always come from existing and UpdatedAt is set to
// now, never earlier than CreatedAt. A nil patch only refreshes UpdatedAt.
func Merge[T any](existing projection.Projection[T], patch Patch[T], now time.Time) projection.Projection[T] {
	entity := existing.Entity
	if patch != nil {
		entity = patch.Apply(entity)
	}
	if now.Before(existing.Metadata.CreatedAt) {
		now = existing.Metadata.CreatedAt
	}
	return projection.Projection[T]{
		ID:     existing.ID,
		Entity: entity,
		Metadata: projection.Metadata{
			CreatedAt: existing.Metadata.CreatedAt,
			UpdatedAt: now,
		},
	}
}
