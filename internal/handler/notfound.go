// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/session"
)

// NotFoundHandler renders the not-found page for unknown paths.
type NotFoundHandler struct {
	renderer *render.Renderer
	sessions *session.Store
}

// NewNotFoundHandler creates a new NotFoundHandler.
func NewNotFoundHandler(renderer *render.Renderer, sessions *session.Store) *NotFoundHandler {
	return &NotFoundHandler{renderer: renderer, sessions: sessions}
}

// NotFoundData holds data for the not-found template.
type NotFoundData struct {
	Path string
	// Home is where the "go back" link points: the dashboard when signed
	// in, the login page otherwise.
	Home string
}

// ServeHTTP renders the not-found page with status 404.
func (h *NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	home := redirectLogin
	if !h.sessions.Identity(r.Context()).IsAnonymous() {
		home = redirectAdmin
	}

	h.renderer.RenderPageStatus(w, r, http.StatusNotFound, "errors/404", render.TemplateData{
		Title: "Page not found",
		Data:  NotFoundData{Path: r.URL.Path, Home: home},
	})
}
