// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/olegiv/ocms-admin/internal/model"
)

type options struct {
	newID       func() string
	newestFirst bool
	limit       int
}

// Option configures a Registry.
type Option func(*options)

// WithIDGenerator sets the function used to mint ids for new records.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.newID = fn
	}
}

// WithNewestFirst makes Create insert at the front instead of appending.
// The activity log uses it so the most recent entries come first.
func WithNewestFirst() Option {
	return func(o *options) {
		o.newestFirst = true
	}
}

// WithLimit caps the registry at n records. Create drops the oldest record
// once the cap is reached. n <= 0 means no cap.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// Registry is an in-memory, ordered Repository. Order is insertion order
// (or reverse insertion order with WithNewestFirst) and is never re-sorted.
type Registry[T Record[T]] struct {
	mu    sync.RWMutex
	items []T
	opts  options
}

var _ Repository[model.Content] = (*Registry[model.Content])(nil)

// NewRegistry creates a registry holding a copy of seed, trimmed to the
// limit if one is set.
func NewRegistry[T Record[T]](seed []T, opts ...Option) *Registry[T] {
	o := options{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Registry[T]{
		items: slices.Clone(seed),
		opts:  o,
	}
	r.trim()
	return r
}

// Len returns the number of records.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// List implements Repository.
func (r *Registry[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

// Get implements Repository.
func (r *Registry[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return zero, fmt.Errorf("getting %q: %w", id, ErrNotFound)
	}
	return r.items[i], nil
}

// Create implements Repository.
func (r *Registry[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if rec.RecordID() == "" {
		rec = rec.WithID(r.opts.newID())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(rec.RecordID()) >= 0 {
		return zero, fmt.Errorf("creating %q: %w", rec.RecordID(), ErrConflict)
	}
	if r.opts.newestFirst {
		r.items = slices.Insert(r.items, 0, rec)
	} else {
		r.items = append(r.items, rec)
	}
	r.trim()
	return rec, nil
}

// Update implements Repository.
func (r *Registry[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(rec.RecordID())
	if i < 0 {
		return zero, fmt.Errorf("updating %q: %w", rec.RecordID(), ErrNotFound)
	}
	r.items[i] = rec
	return rec, nil
}

// Delete implements Repository.
func (r *Registry[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("deleting %q: %w", id, ErrNotFound)
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

// trim drops the oldest records past the limit. r.mu must be held.
func (r *Registry[T]) trim() {
	n := r.opts.limit
	if n <= 0 || len(r.items) <= n {
		return
	}
	if r.opts.newestFirst {
		clear(r.items[n:])
		r.items = r.items[:n]
		return
	}
	r.items = slices.Delete(r.items, 0, len(r.items)-n)
}

// indexOf must be called with r.mu held.
func (r *Registry[T]) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(item T) bool {
		return item.RecordID() == id
	})
}
