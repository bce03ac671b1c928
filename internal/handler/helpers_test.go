// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-admin/internal/middleware"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/session"
	"github.com/olegiv/ocms-admin/internal/store"
	"github.com/olegiv/ocms-admin/web"
)

var (
	adminIdentity     = model.Identity{Name: "Admin User", Email: "admin@icai.org", Role: model.RoleAdmin}
	editorIdentity    = model.Identity{Name: "Editor User", Email: "editor@icai.org", Role: model.RoleEditor}
	moderatorIdentity = model.Identity{Name: "Moderator User", Email: "moderator@icai.org", Role: model.RoleModerator}
)

// testEnv holds the collaborators every handler test needs.
type testEnv struct {
	store    *store.Store
	sessions *session.Store
	renderer *render.Renderer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	sessions := session.New(0, true)
	templatesFS, err := web.TemplatesFS()
	require.NoError(t, err)
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS, Sessions: sessions})
	require.NoError(t, err)

	fixedToday(t, "2025-01-15")

	return &testEnv{store: store.New(), sessions: sessions, renderer: renderer}
}

// fixedToday pins the date handlers stamp on records.
func fixedToday(t *testing.T, date string) {
	t.Helper()
	orig := today
	today = func() string { return date }
	t.Cleanup(func() { today = orig })
}

// request builds a request with a loaded session. A non-anonymous id is
// placed in the context the way RequireAuth does.
func (e *testEnv) request(t *testing.T, method, target string, body io.Reader, id model.Identity) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	ctx, err := e.sessions.Manager.Load(req.Context(), "")
	require.NoError(t, err)
	if !id.IsAnonymous() {
		ctx = middleware.WithIdentity(ctx, id)
	}
	return req.WithContext(ctx)
}

// postForm builds a url-encoded POST request.
func (e *testEnv) postForm(t *testing.T, target string, form url.Values, id model.Identity) *http.Request {
	t.Helper()
	req := e.request(t, http.MethodPost, target, strings.NewReader(form.Encode()), id)
	req.Header.Set(HeaderContentType, "application/x-www-form-urlencoded")
	return req
}

// postMultipart builds a multipart POST request. files maps field names to
// file names with a small body.
func (e *testEnv) postMultipart(t *testing.T, target string, fields, files map[string]string, id model.Identity) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, name := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := e.request(t, http.MethodPost, target, &buf, id)
	req.Header.Set(HeaderContentType, mw.FormDataContentType())
	return req
}

// flash pops the pending flash message of req's session.
func (e *testEnv) flash(req *http.Request) (string, string) {
	return e.sessions.PopFlash(req.Context())
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withID is requestWithURLParams for the common {id} parameter.
func withID(r *http.Request, id string) *http.Request {
	return requestWithURLParams(r, map[string]string{"id": id})
}
