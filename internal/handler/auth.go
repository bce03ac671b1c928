// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/olegiv/ocms-admin/internal/auth"
	"github.com/olegiv/ocms-admin/internal/logging"
	"github.com/olegiv/ocms-admin/internal/metrics"
	"github.com/olegiv/ocms-admin/internal/middleware"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/session"
	"github.com/olegiv/ocms-admin/internal/util"
)

// Login screen messages.
const (
	msgLoginSuccess       = "Login successful!"
	msgInvalidCredentials = "Invalid credentials"
	msgLoggedOut          = "You have been signed out"
)

// AuthHandler handles authentication routes.
type AuthHandler struct {
	renderer  *render.Renderer
	sessions  *session.Store
	directory auth.Authenticator
	metrics   *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler. m may be nil.
func NewAuthHandler(renderer *render.Renderer, sessions *session.Store, directory auth.Authenticator, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		renderer:  renderer,
		sessions:  sessions,
		directory: directory,
		metrics:   m,
	}
}

// LoginData holds data for the login template.
type LoginData struct {
	Email string
}

// LoginForm renders the login page. Signed-in users go straight to the
// dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Identity(r.Context()).IsAnonymous() {
		http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
		return
	}

	h.renderer.RenderPage(w, r, "auth/login", render.TemplateData{
		Title: "Sign in",
		Data:  LoginData{Email: r.URL.Query().Get("email")},
	})
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, redirectLogin, "Invalid form data")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	ip := middleware.ClientIP(r)

	identity, ok := h.directory.Authenticate(r.Context(), email, password)
	if !ok {
		slog.WarnContext(r.Context(), "login failed",
			logging.AttrAction, model.ActionLoginFailed,
			logging.AttrUser, loginName(email),
			logging.AttrDetails, "Failed login attempt from "+ip,
		)
		h.metrics.LoginFailed()
		flashError(w, r, h.renderer, redirectLogin, msgInvalidCredentials)
		return
	}

	if err := h.sessions.Login(r.Context(), identity); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	slog.InfoContext(r.Context(), "user logged in",
		logging.AttrAction, model.ActionUserLogin,
		logging.AttrUser, identity.Name,
		logging.AttrDetails, "Successful login from "+ip+" ("+util.DescribeClient(r.UserAgent())+")",
		"email", identity.Email,
		"role", string(identity.Role),
	)
	h.metrics.LoginSucceeded()

	flashSuccess(w, r, h.renderer, redirectAdmin, msgLoginSuccess)
}

// Logout clears the session unconditionally.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity := h.sessions.Identity(r.Context())
	if !identity.IsAnonymous() {
		slog.InfoContext(r.Context(), "user logged out",
			logging.AttrAction, model.ActionUserLogout,
			logging.AttrUser, identity.Name,
			logging.AttrDetails, "Signed out from "+middleware.ClientIP(r),
		)
	}

	if err := h.sessions.Logout(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	flashInfo(w, r, h.renderer, redirectLogin, msgLoggedOut)
}

// loginName is the user recorded for a failed attempt.
func loginName(email string) string {
	if email = strings.TrimSpace(email); email != "" {
		return email
	}
	return "Anonymous"
}
