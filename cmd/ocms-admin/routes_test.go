// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-admin/internal/auth"
	"github.com/olegiv/ocms-admin/internal/config"
	"github.com/olegiv/ocms-admin/internal/metrics"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/session"
	"github.com/olegiv/ocms-admin/internal/store"
	"github.com/olegiv/ocms-admin/internal/version"
	"github.com/olegiv/ocms-admin/web"
)

type testApp struct {
	handler http.Handler
	store   *store.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{
		SessionSecret:   "k7#Qm2$vX9pL4nR8wT1yB6cF3hJ5gD0s",
		ServerHost:      "localhost",
		ServerPort:      8080,
		Env:             "development",
		LogLevel:        "error",
		SessionLifetime: time.Hour,
		PersistEdits:    true,
	}

	sessions := session.New(cfg.SessionLifetime, true)
	templatesFS, err := web.TemplatesFS()
	require.NoError(t, err)
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS, Sessions: sessions})
	require.NoError(t, err)

	directory, err := auth.NewDirectory(auth.DefaultCredentials)
	require.NoError(t, err)

	s := store.New()
	h, err := newRouter(deps{
		cfg:       cfg,
		store:     s,
		sessions:  sessions,
		renderer:  renderer,
		directory: directory,
		metrics:   metrics.New(),
		version:   version.Info{Version: "test"},
	})
	require.NoError(t, err)

	return &testApp{handler: h, store: s}
}

func (a *testApp) do(t *testing.T, req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// login signs in and returns the session cookies.
func (a *testApp) login(t *testing.T, email, password string) []*http.Cookie {
	t.Helper()

	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := a.do(t, req, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestPublicRoutes(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name         string
		target       string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "root", target: "/", wantStatus: http.StatusSeeOther, wantLocation: "/login"},
		{name: "login page", target: "/login", wantStatus: http.StatusOK, wantBody: "Sign in to access the admin panel"},
		{name: "health", target: "/health", wantStatus: http.StatusOK, wantBody: `"status":"healthy"`},
		{name: "metrics", target: "/metrics", wantStatus: http.StatusOK, wantBody: "ocms_admin_"},
		{name: "stylesheet", target: "/static/admin.css", wantStatus: http.StatusOK, wantBody: ".sidebar"},
		{name: "dashboard anonymous", target: "/admin", wantStatus: http.StatusSeeOther, wantLocation: "/login"},
		{name: "screen anonymous", target: "/admin/reports", wantStatus: http.StatusSeeOther, wantLocation: "/login"},
		{name: "unknown path", target: "/no/such/page", wantStatus: http.StatusNotFound, wantBody: "/no/such/page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, httptest.NewRequest(http.MethodGet, tt.target, nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/login", nil), nil)

	assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{"email": {"admin@icai.org"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := app.do(t, req, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	page := app.do(t, httptest.NewRequest(http.MethodGet, "/login", nil), rec.Result().Cookies())
	assert.Contains(t, page.Body.String(), "Invalid credentials")
}

func TestRoleGating(t *testing.T) {
	app := newTestApp(t)

	admin := app.login(t, "admin@icai.org", "admin")
	editor := app.login(t, "editor@icai.org", "editor")
	moderator := app.login(t, "moderator@icai.org", "moderator")

	tests := []struct {
		name       string
		cookies    []*http.Cookie
		target     string
		wantStatus int
	}{
		{"admin dashboard", admin, "/admin", http.StatusOK},
		{"admin users", admin, "/admin/users", http.StatusOK},
		{"admin menu", admin, "/admin/menu", http.StatusOK},
		{"editor content", editor, "/admin/content", http.StatusOK},
		{"editor events", editor, "/admin/events", http.StatusOK},
		{"editor registrations", editor, "/admin/events/1/registrations", http.StatusOK},
		{"editor users", editor, "/admin/users", http.StatusForbidden},
		{"editor discussions", editor, "/admin/discussions", http.StatusForbidden},
		{"editor reports", editor, "/admin/reports", http.StatusForbidden},
		{"moderator discussions", moderator, "/admin/discussions", http.StatusOK},
		{"moderator reports", moderator, "/admin/reports", http.StatusOK},
		{"moderator content", moderator, "/admin/content", http.StatusForbidden},
		{"moderator menu", moderator, "/admin/menu", http.StatusForbidden},
		{"signed-in unknown", editor, "/admin/nowhere", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, httptest.NewRequest(http.MethodGet, tt.target, nil), tt.cookies)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLoginPage_SignedInRedirects(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t, "editor@icai.org", "editor")

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/login", nil), cookies)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
}

func TestPublishThroughRouter(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t, "editor@icai.org", "editor")

	rec := app.do(t, httptest.NewRequest(http.MethodPost, "/admin/content/4/publish", nil), cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/content", rec.Header().Get("Location"))

	got, err := app.store.Content.Get(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, model.ContentPublished, got.Status)
}

func TestCrossOriginPostRejected(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t, "admin@icai.org", "admin")

	req := httptest.NewRequest(http.MethodPost, "/admin/menu/1/delete", nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	rec := app.do(t, req, cookies)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 7, app.store.Menu.Len())
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	cookies := app.login(t, "admin@icai.org", "admin")

	rec := app.do(t, httptest.NewRequest(http.MethodPost, "/logout", nil), cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/admin", nil), cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}
