// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/service"
	"github.com/olegiv/ocms-admin/internal/session"
)

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	h := NewAdminHandler(env.renderer, service.NewDashboard(env.store))

	rec := httptest.NewRecorder()
	h.Dashboard(rec, env.request(t, http.MethodGet, "/admin", nil, moderatorIdentity))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Published Content")
	assert.Contains(t, body, "535 total responses")
	assert.Contains(t, body, "5 total users")
	assert.Contains(t, body, "Recent Activity")
	assert.Contains(t, body, "Top Viewed Content")
	assert.Contains(t, body, "Moderator User")
	assert.NotContains(t, body, `href="/admin/users"`)
}

func TestFormsScreen(t *testing.T) {
	env := newTestEnv(t)
	w := service.NewWriter(env.store.Forms, model.KindForm, true, nil)
	h := NewFormsHandler(env.renderer, env.store.Forms, w)

	t.Run("create", func(t *testing.T) {
		req := env.postForm(t, "/admin/forms", url.Values{"title": {"Quiz"}, "description": {"Weekly quiz"}}, editorIdentity)
		h.Create(httptest.NewRecorder(), req)

		forms, err := env.store.Forms.List(context.Background())
		require.NoError(t, err)
		created := forms[len(forms)-1]
		assert.Equal(t, "Quiz", created.Title)
		assert.Equal(t, model.StatusActive, created.Status)
		assert.Equal(t, "2025-01-15", created.CreatedAt)
		assert.Zero(t, created.Responses)
	})

	t.Run("toggle", func(t *testing.T) {
		req := withID(env.request(t, http.MethodPost, "/admin/forms/4/toggle", nil, editorIdentity), "4")
		h.Toggle(httptest.NewRecorder(), req)

		got, err := env.store.Forms.Get(context.Background(), "4")
		require.NoError(t, err)
		assert.Equal(t, model.StatusActive, got.Status)
	})

	t.Run("export only notifies", func(t *testing.T) {
		before := env.store.Forms.Len()
		req := withID(env.request(t, http.MethodPost, "/admin/forms/1/export", nil, editorIdentity), "1")
		rec := httptest.NewRecorder()
		h.Export(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		msg, _ := env.flash(req)
		assert.Equal(t, "Exporting form responses...", msg)
		assert.Equal(t, before, env.store.Forms.Len())
	})

	t.Run("edit form", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.EditForm(rec, withID(env.request(t, http.MethodGet, "/admin/forms/2", nil, editorIdentity), "2"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Edit Form")
		assert.Contains(t, rec.Body.String(), `action="/admin/forms/2"`)
	})
}

func TestDiscussionsScreen(t *testing.T) {
	env := newTestEnv(t)
	w := service.NewWriter(env.store.Discussions, model.KindDiscussion, true, nil)
	h := NewDiscussionsHandler(env.renderer, env.store.Discussions, w)

	t.Run("list counters", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.List(rec, env.request(t, http.MethodGet, "/admin/discussions", nil, moderatorIdentity))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "All Queries")
		assert.Contains(t, body, "Over 3 days")
		assert.Contains(t, body, `class="overdue"`)
	})

	t.Run("approve answered", func(t *testing.T) {
		req := withID(env.request(t, http.MethodPost, "/admin/discussions/3/approve", nil, moderatorIdentity), "3")
		h.Approve(httptest.NewRecorder(), req)

		got, err := env.store.Discussions.Get(context.Background(), "3")
		require.NoError(t, err)
		assert.Equal(t, model.DiscussionResolved, got.Status)
		msg, _ := env.flash(req)
		assert.Equal(t, "Response approved and published", msg)
	})

	t.Run("approve pending is a no-op", func(t *testing.T) {
		req := withID(env.request(t, http.MethodPost, "/admin/discussions/1/approve", nil, moderatorIdentity), "1")
		h.Approve(httptest.NewRecorder(), req)

		got, err := env.store.Discussions.Get(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, model.DiscussionPending, got.Status)
	})

	t.Run("assign", func(t *testing.T) {
		req := withID(env.request(t, http.MethodPost, "/admin/discussions/1/assign", nil, moderatorIdentity), "1")
		h.Assign(httptest.NewRecorder(), req)

		msg, kind := env.flash(req)
		assert.Equal(t, "Assign to panelist functionality", msg)
		assert.Equal(t, session.FlashInfo, kind)
	})
}

func TestMenuScreen(t *testing.T) {
	env := newTestEnv(t)
	w := service.NewWriter(env.store.Menu, model.KindMenuItem, true, nil)
	h := NewMenuHandler(env.renderer, env.store.Menu, w)

	rec := httptest.NewRecorder()
	h.List(rec, env.request(t, http.MethodGet, "/admin/menu", nil, adminIdentity))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Menu Instructions")
	assert.Contains(t, rec.Body.String(), "Publications")

	req := withID(env.request(t, http.MethodPost, "/admin/menu/7/delete", nil, adminIdentity), "7")
	h.Delete(httptest.NewRecorder(), req)
	assert.Equal(t, 6, env.store.Menu.Len())
	msg, _ := env.flash(req)
	assert.Equal(t, "Menu item deleted", msg)
}

func TestNotFound(t *testing.T) {
	tests := []struct {
		name     string
		signedIn bool
		wantHome string
	}{
		{name: "anonymous", wantHome: `href="/login"`},
		{name: "signed in", signedIn: true, wantHome: `href="/admin"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			h := NewNotFoundHandler(env.renderer, env.sessions)

			req := env.request(t, http.MethodGet, "/nowhere", nil, model.Identity{})
			if tt.signedIn {
				require.NoError(t, env.sessions.Login(req.Context(), adminIdentity))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "/nowhere")
			assert.Contains(t, rec.Body.String(), tt.wantHome)
		})
	}
}
