// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, CSRF protection, security headers and login throttling.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/olegiv/ocms-admin/internal/auth"
	"github.com/olegiv/ocms-admin/internal/logging"
	"github.com/olegiv/ocms-admin/internal/metrics"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/session"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyIdentity holds the signed-in model.Identity.
const ContextKeyIdentity ContextKey = "identity"

// LoginPath is where anonymous visitors are sent.
const LoginPath = "/login"

// RequireAuth redirects anonymous requests to the login page and stores the
// session identity in the request context for everything downstream.
func RequireAuth(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sessions.Identity(r.Context())
			if id.IsAnonymous() {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id model.Identity) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, id)
}

// GetIdentity returns the identity stored by RequireAuth, or the anonymous
// identity.
func GetIdentity(r *http.Request) model.Identity {
	id, _ := r.Context().Value(ContextKeyIdentity).(model.Identity)
	return id
}

// RequireCapability rejects requests whose role lacks c with 403. The
// denial is logged at WARN so it also lands in the activity log. m may be
// nil.
func RequireCapability(c auth.Capability, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := GetIdentity(r)
			if id.IsAnonymous() {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			if !auth.Can(id.Role, c) {
				slog.WarnContext(r.Context(), "access denied",
					logging.AttrAction, model.ActionAccessDenied,
					logging.AttrUser, id.Name,
					logging.AttrDetails, fmt.Sprintf("%s %s requires %s (role %s)", r.Method, r.URL.Path, c, id.Role),
					"status", http.StatusForbidden,
					"remote_addr", r.RemoteAddr,
				)
				m.AccessDenied(string(id.Role))
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
