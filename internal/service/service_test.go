// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-admin/internal/logging"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/store"
)

func TestDashboard_SeedSummary(t *testing.T) {
	stats, err := NewDashboard(store.New()).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.PublishedContent)
	assert.Equal(t, 6, stats.TotalContent)
	assert.Equal(t, 2, stats.UpcomingEvents)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 3, stats.ActiveForms)
	assert.Equal(t, 145+234+89+67, stats.TotalResponses)
	assert.Equal(t, 4, stats.ActiveUsers)
	assert.Equal(t, 5, stats.TotalUsers)

	require.Len(t, stats.RecentActivity, RecentActivityLimit)
	assert.Equal(t, "1", stats.RecentActivity[0].ID)

	views := make([]int, 0, len(stats.TopViewed))
	for _, c := range stats.TopViewed {
		views = append(views, c.Views)
	}
	assert.Equal(t, []int{2340, 1250, 890, 560}, views)
}

func TestDashboard_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDashboard(store.New()).Summary(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriter_NotPersisting(t *testing.T) {
	s := store.New()
	w := NewWriter(s.Content, model.KindContent, false, nil)
	ctx := context.Background()

	assert.False(t, w.Persisting())

	_, err := w.Create(ctx, model.Content{Title: "x", Category: "y"}, Change{})
	require.NoError(t, err)
	require.NoError(t, w.Delete(ctx, "1", Change{}))
	require.NoError(t, w.Patch(ctx, "404", "publish", func(c model.Content) model.Content { return c }, Change{}))

	assert.Equal(t, 6, s.Content.Len(), "registry must keep its seed data")
	_, err = s.Content.Get(ctx, "1")
	assert.NoError(t, err)
}

// auditTo routes the default logger into logs for the rest of the test.
func auditTo(t *testing.T, logs *store.Registry[model.Log]) {
	t.Helper()
	orig := slog.Default()
	slog.SetDefault(logging.NewLogger(io.Discard, slog.LevelError, logs))
	t.Cleanup(func() { slog.SetDefault(orig) })
}

func TestWriter_AuditsWithoutPersisting(t *testing.T) {
	s := store.New()
	auditTo(t, s.Logs)
	w := NewWriter(s.Content, model.KindContent, false, nil)
	ctx := context.Background()
	before := s.Logs.Len()

	require.NoError(t, w.Delete(ctx, "1", Change{
		Actor:   "Admin User",
		Action:  model.ActionContentDeleted,
		Details: "Deleted content: Income Tax Amendments 2025",
	}))

	assert.Equal(t, 6, s.Content.Len())
	require.Equal(t, before+1, s.Logs.Len())
	items, err := s.Logs.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ActionContentDeleted, items[0].Action)
	assert.Equal(t, "Admin User", items[0].User)
	assert.Equal(t, "Deleted content: Income Tax Amendments 2025", items[0].Details)
}

func TestWriter_NoAuditOnFailure(t *testing.T) {
	s := store.New()
	auditTo(t, s.Logs)
	w := NewWriter(s.Users, model.KindUser, true, nil)
	before := s.Logs.Len()

	err := w.Delete(context.Background(), "missing", Change{Action: model.ActionUserDeleted, Actor: "Admin User"})
	require.Error(t, err)
	assert.Equal(t, before, s.Logs.Len())
}

func TestWriter_Persisting(t *testing.T) {
	s := store.New()
	w := NewWriter(s.Content, model.KindContent, true, nil)
	ctx := context.Background()

	created, err := w.Create(ctx, model.Content{Title: "x", Category: "y"}, Change{})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 7, s.Content.Len())

	err = w.Patch(ctx, "4", "publish", func(c model.Content) model.Content {
		c.Status = model.ContentPublished
		return c
	}, Change{})
	require.NoError(t, err)
	got, err := s.Content.Get(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, model.ContentPublished, got.Status)

	got.Title = "Renamed"
	_, err = w.Update(ctx, got, Change{})
	require.NoError(t, err)

	require.NoError(t, w.Delete(ctx, "4", Change{}))
	assert.Equal(t, 6, s.Content.Len())
}

func TestWriter_PersistingNotFound(t *testing.T) {
	s := store.New()
	w := NewWriter(s.Users, model.KindUser, true, nil)
	ctx := context.Background()

	err := w.Delete(ctx, "missing", Change{})
	assert.True(t, errors.Is(err, store.ErrNotFound))

	err = w.Patch(ctx, "missing", "toggle", func(u model.User) model.User { return u }, Change{})
	assert.True(t, errors.Is(err, store.ErrNotFound))

	_, err = w.Update(ctx, model.User{ID: "missing"}, Change{})
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    []string
		notWant []string
	}{
		{"emphasis", "Annual **tax** summit", []string{"<strong>tax</strong>"}, nil},
		{"list", "- one\n- two", []string{"<li>one</li>", "<li>two</li>"}, nil},
		{"script stripped", "hi <script>alert(1)</script>", nil, []string{"<script>"}},
		{"javascript link", "[x](javascript:alert(1))", nil, []string{"javascript:"}},
		{"plain", "Online webinar", []string{"<p>Online webinar</p>"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(RenderMarkdown(tt.src))
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, w := range tt.notWant {
				assert.False(t, strings.Contains(got, w), "unexpected %q in %q", w, got)
			}
		})
	}
}
