// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/service"
	"github.com/olegiv/ocms-admin/internal/store"
)

// MenuHandler handles the site menu manager.
type MenuHandler struct {
	renderer *render.Renderer
	menu     store.Repository[model.MenuItem]
	writer   *service.Writer[model.MenuItem]
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(renderer *render.Renderer, menu store.Repository[model.MenuItem], writer *service.Writer[model.MenuItem]) *MenuHandler {
	return &MenuHandler{renderer: renderer, menu: menu, writer: writer}
}

// MenuData holds data for the menu template.
type MenuData struct {
	Items []model.MenuItem
}

// List handles GET /admin/menu.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list menu items", "error", err)
		return
	}

	h.renderer.RenderPage(w, r, "admin/menu", pageData(r, "Menu Manager", MenuData{Items: items}))
}

// Delete handles POST /admin/menu/{id}/delete.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	details := "Deleted menu item: " + id
	if item, err := h.menu.Get(r.Context(), id); err == nil {
		details = "Deleted menu item: " + item.Title
	}
	if err := h.writer.Delete(r.Context(), id, change(r, model.ActionMenuItemDeleted, details)); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminMenu, "Menu item", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminMenu, "Menu item deleted")
}
