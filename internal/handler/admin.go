// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler implements the HTTP handlers of the admin panel: sign-in,
// the dashboard and one handler type per management screen.
package handler

import (
	"net/http"

	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/service"
)

// AdminHandler handles the dashboard.
type AdminHandler struct {
	renderer  *render.Renderer
	dashboard *service.Dashboard
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(renderer *render.Renderer, dashboard *service.Dashboard) *AdminHandler {
	return &AdminHandler{
		renderer:  renderer,
		dashboard: dashboard,
	}
}

// Dashboard renders the admin dashboard with stats and recent activity.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Summary(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to compute dashboard", "error", err)
		return
	}

	h.renderer.RenderPage(w, r, "admin/dashboard", pageData(r, "Dashboard", stats))
}
