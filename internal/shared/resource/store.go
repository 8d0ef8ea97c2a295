// Package resource implements the generic in-memory record store, partial
// update merging and the ports shared by every CRUD-style entity.
package resource

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Apurer/storefront-api/internal/shared/pagination"
	"github.com/Apurer/storefront-api/internal/shared/projection"
)

var _ Repository[noopEntity] = (*Store[noopEntity])(nil)

type noopEntity struct{}

func (noopEntity) Validate() error { return nil }

type storeConfig struct {
	now func() time.Time
	ids IDGenerator
}

// Option configures a Store.
type Option func(*storeConfig)

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(cfg *storeConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithIDGenerator overrides the default Sequence id generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(cfg *storeConfig) {
		if ids != nil {
			cfg.ids = ids
		}
	}
}

// Store keeps records of one entity type in insertion order. A single lock
// guards the whole collection.
type Store[T Entity] struct {
	mu      sync.RWMutex
	order   []string
	records map[string]projection.Projection[T]
	now     func() time.Time
	ids     IDGenerator
}

// NewStore returns an empty store.
func NewStore[T Entity](opts ...Option) *Store[T] {
	cfg := storeConfig{now: time.Now, ids: NewSequence()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[T]{
		records: map[string]projection.Projection[T]{},
		now:     cfg.now,
		ids:     cfg.ids,
	}
}

// List returns one page of records in insertion order.
func (s *Store[T]) List(_ context.Context, page, limit int) pagination.Page[projection.Projection[T]] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pagination.Map(pagination.Slice(s.order, page, limit), func(id string) projection.Projection[T] {
		return cloneRecord(s.records[id])
	})
}

// Get looks a record up by id.
func (s *Store[T]) Get(_ context.Context, id string) (projection.Projection[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return projection.Projection[T]{}, false
	}
	return cloneRecord(rec), true
}

// Create validates entity, assigns it a fresh id and appends it.
func (s *Store[T]) Create(_ context.Context, entity T) (projection.Projection[T], error) {
	if err := entity.Validate(); err != nil {
		return projection.Projection[T]{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keyTaken(entity, "") {
		return projection.Projection[T]{}, conflictError(entity)
	}
	id := s.ids.Next()
	for s.exists(id) {
		id = s.ids.Next()
	}
	now := s.now()
	rec := projection.Projection[T]{
		ID:       id,
		Entity:   cloneEntity(entity),
		Metadata: projection.Metadata{CreatedAt: now, UpdatedAt: now},
	}
	s.records[id] = rec
	s.order = append(s.order, id)
	return cloneRecord(rec), nil
}

// Update merges patch into the record with the given id. The record keeps its
// position in the iteration order. A patch that also implements Guard is
// checked against the current entity first, under the same lock.
func (s *Store[T]) Update(_ context.Context, id string, patch Patch[T]) (projection.Projection[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.records[id]
	if !ok {
		return projection.Projection[T]{}, ErrNotFound
	}
	if guard, ok := patch.(Guard[T]); ok {
		if err := guard.Check(cloneEntity(existing.Entity)); err != nil {
			return projection.Projection[T]{}, err
		}
	}
	merged := Merge(cloneRecord(existing), patch, s.now())
	if err := merged.Entity.Validate(); err != nil {
		return projection.Projection[T]{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if s.keyTaken(merged.Entity, id) {
		return projection.Projection[T]{}, conflictError(merged.Entity)
	}
	s.records[id] = merged
	return cloneRecord(merged), nil
}

// Delete removes the record with the given id and reports whether it existed.
func (s *Store[T]) Delete(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	for i, candidate := range s.order {
		if candidate == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns every record in insertion order.
func (s *Store[T]) All(ctx context.Context) []projection.Projection[T] {
	return s.Find(ctx, nil)
}

// Find returns the records matching pred in insertion order. A nil pred
// matches everything.
func (s *Store[T]) Find(_ context.Context, pred func(projection.Projection[T]) bool) []projection.Projection[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]projection.Projection[T], 0, len(s.order))
	for _, id := range s.order {
		rec := s.records[id]
		if pred == nil || pred(rec) {
			out = append(out, cloneRecord(rec))
		}
	}
	return out
}

// Count reports the number of stored records.
func (s *Store[T]) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Seed loads records with caller-supplied ids, typically fixtures at startup.
// Zero timestamps are filled from the store clock. Numeric ids are reserved so
// later creates never reuse them.
func (s *Store[T]) Seed(records ...projection.Projection[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]struct{}{}
	keys := map[string]struct{}{}
	for _, rec := range records {
		if rec.ID == "" {
			return fmt.Errorf("%w: seed record without id", ErrInvalidInput)
		}
		if _, dup := seen[rec.ID]; dup || s.exists(rec.ID) {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidInput, rec.ID)
		}
		if err := rec.Entity.Validate(); err != nil {
			return fmt.Errorf("%w: record %q: %w", ErrInvalidInput, rec.ID, err)
		}
		if key := uniqueKey(rec.Entity); key != "" {
			if _, dup := keys[key]; dup || s.keyTaken(rec.Entity, "") {
				return fmt.Errorf("%w: record %q", ErrConflict, rec.ID)
			}
			keys[key] = struct{}{}
		}
		seen[rec.ID] = struct{}{}
	}
	now := s.now()
	for _, rec := range records {
		if rec.Metadata.CreatedAt.IsZero() {
			rec.Metadata.CreatedAt = now
		}
		if rec.Metadata.UpdatedAt.Before(rec.Metadata.CreatedAt) {
			rec.Metadata.UpdatedAt = rec.Metadata.CreatedAt
		}
		s.ids.Reserve(rec.ID)
		s.records[rec.ID] = cloneRecord(rec)
		s.order = append(s.order, rec.ID)
	}
	return nil
}

func (s *Store[T]) exists(id string) bool {
	_, ok := s.records[id]
	return ok
}

// keyTaken reports whether a record other than except already holds the
// unique key of entity. Callers hold the lock.
func (s *Store[T]) keyTaken(entity T, except string) bool {
	key := uniqueKey(entity)
	if key == "" {
		return false
	}
	for id, rec := range s.records {
		if id != except && uniqueKey(rec.Entity) == key {
			return true
		}
	}
	return false
}

// Keyed is implemented by entities carrying a natural key that must be unique
// within a store. An empty key is not constrained.
type Keyed interface {
	UniqueKey() string
}

func conflictError[T any](entity T) error {
	return fmt.Errorf("%w: %q is already in use", ErrConflict, uniqueKey(entity))
}

func uniqueKey[T any](entity T) string {
	if k, ok := any(entity).(Keyed); ok {
		return k.UniqueKey()
	}
	return ""
}

// Cloner is implemented by entities holding reference-typed fields so the
// store never shares them with callers.
type Cloner[T any] interface {
	Clone() T
}

func cloneEntity[T any](entity T) T {
	if c, ok := any(entity).(Cloner[T]); ok {
		return c.Clone()
	}
	return entity
}

func cloneRecord[T any](rec projection.Projection[T]) projection.Projection[T] {
	rec.Entity = cloneEntity(rec.Entity)
	return rec
}

// IsNotFound reports whether err signals a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
