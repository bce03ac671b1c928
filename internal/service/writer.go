// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the logic shared by the admin screens: the
// dashboard summary, record changes and description rendering.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/ocms-admin/internal/logging"
	"github.com/olegiv/ocms-admin/internal/metrics"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/store"
)

// Change describes who did what, for the activity log.
type Change struct {
	Actor   string
	Action  string
	Details string
}

// Writer applies confirmed changes to a repository. With persistence off
// every method succeeds without touching the repository, so screens only
// show the notification and revert to their data on the next visit.
// Every accepted change is recorded in the activity log either way.
type Writer[T store.Record[T]] struct {
	repo    store.Repository[T]
	kind    model.Kind
	persist bool
	metrics *metrics.Metrics
}

// NewWriter creates a Writer for one entity kind. m may be nil.
func NewWriter[T store.Record[T]](repo store.Repository[T], kind model.Kind, persist bool, m *metrics.Metrics) *Writer[T] {
	return &Writer[T]{repo: repo, kind: kind, persist: persist, metrics: m}
}

// Persisting reports whether changes reach the repository.
func (w *Writer[T]) Persisting() bool { return w.persist }

// Create stores rec and returns it with its assigned id.
func (w *Writer[T]) Create(ctx context.Context, rec T, c Change) (T, error) {
	w.metrics.Mutation(string(w.kind), "create", w.persist)
	if !w.persist {
		w.audit(ctx, c)
		return rec, nil
	}
	created, err := w.repo.Create(ctx, rec)
	if err != nil {
		return rec, fmt.Errorf("creating %s: %w", w.kind, err)
	}
	w.audit(ctx, c)
	return created, nil
}

// Update replaces the record with rec's id.
func (w *Writer[T]) Update(ctx context.Context, rec T, c Change) (T, error) {
	w.metrics.Mutation(string(w.kind), "update", w.persist)
	if !w.persist {
		w.audit(ctx, c)
		return rec, nil
	}
	updated, err := w.repo.Update(ctx, rec)
	if err != nil {
		return rec, fmt.Errorf("updating %s %q: %w", w.kind, rec.RecordID(), err)
	}
	w.audit(ctx, c)
	return updated, nil
}

// Patch loads the record with id, applies fn and stores the result. op
// names the change for metrics, e.g. "publish" or "toggle".
func (w *Writer[T]) Patch(ctx context.Context, id, op string, fn func(T) T, c Change) error {
	w.metrics.Mutation(string(w.kind), op, w.persist)
	if !w.persist {
		w.audit(ctx, c)
		return nil
	}
	rec, err := w.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("loading %s %q: %w", w.kind, id, err)
	}
	if _, err := w.repo.Update(ctx, fn(rec)); err != nil {
		return fmt.Errorf("patching %s %q: %w", w.kind, id, err)
	}
	w.audit(ctx, c)
	return nil
}

// Delete removes the record with id.
func (w *Writer[T]) Delete(ctx context.Context, id string, c Change) error {
	w.metrics.Mutation(string(w.kind), "delete", w.persist)
	if !w.persist {
		w.audit(ctx, c)
		return nil
	}
	if err := w.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting %s %q: %w", w.kind, id, err)
	}
	w.audit(ctx, c)
	return nil
}

func (w *Writer[T]) audit(ctx context.Context, c Change) {
	if c.Action == "" {
		return
	}
	slog.InfoContext(ctx, "record changed",
		logging.AttrAction, c.Action,
		logging.AttrUser, c.Actor,
		logging.AttrDetails, c.Details,
		"kind", string(w.kind),
		"persisted", w.persist,
	)
}
