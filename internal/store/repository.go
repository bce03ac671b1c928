// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store holds the admin panel's record registries: ordered
// in-memory collections seeded at start-up and exposed through the
// Repository contract so a remote backend can replace them.
package store

import (
	"context"
	"errors"
)

// Errors returned by Repository implementations. Callers match them with
// errors.Is; implementations wrap them with context.
var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a record with the same id already exists.
	ErrConflict = errors.New("record already exists")
	// ErrValidation is returned when a backend rejects a record's content.
	ErrValidation = errors.New("record is invalid")
	// ErrTransport is returned when a remote backend cannot be reached.
	ErrTransport = errors.New("repository transport failure")
)

// Record is implemented by every entity kept in a registry.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
}

// Repository is the per-entity data contract used by the admin screens.
type Repository[T any] interface {
	// List returns all records in registry order.
	List(ctx context.Context) ([]T, error)
	// Get returns the record with the given id.
	Get(ctx context.Context, id string) (T, error)
	// Create stores a new record, assigning an id when it has none.
	Create(ctx context.Context, rec T) (T, error)
	// Update replaces the record with the same id.
	Update(ctx context.Context, rec T) (T, error)
	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
}
