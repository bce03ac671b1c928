// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/ocms-admin/internal/filter"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/service"
	"github.com/olegiv/ocms-admin/internal/store"
)

// DiscussionsHandler handles the discussion forum moderation screen.
type DiscussionsHandler struct {
	renderer    *render.Renderer
	discussions store.Repository[model.Discussion]
	writer      *service.Writer[model.Discussion]
}

// NewDiscussionsHandler creates a new DiscussionsHandler.
func NewDiscussionsHandler(renderer *render.Renderer, discussions store.Repository[model.Discussion], writer *service.Writer[model.Discussion]) *DiscussionsHandler {
	return &DiscussionsHandler{renderer: renderer, discussions: discussions, writer: writer}
}

// DiscussionsListData holds data for the discussions template.
type DiscussionsListData struct {
	Query  string
	Counts filter.DiscussionCounts
	Items  []model.Discussion
	Total  int
}

// List handles GET /admin/discussions. The counters cover every query,
// not only the filtered ones.
func (h *DiscussionsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.discussions.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list discussions", "error", err)
		return
	}

	query := r.URL.Query().Get("q")
	h.renderer.RenderPage(w, r, "admin/discussions", pageData(r, "Discussion Forum", DiscussionsListData{
		Query:  query,
		Counts: filter.CountDiscussions(items),
		Items:  filter.Discussions(items, query),
		Total:  len(items),
	}))
}

// Assign handles POST /admin/discussions/{id}/assign. Panelists are not
// modelled, so this only notifies.
func (h *DiscussionsHandler) Assign(w http.ResponseWriter, r *http.Request) {
	flashInfo(w, r, h.renderer, redirectAdminDiscussions, "Assign to panelist functionality")
}

// Approve handles POST /admin/discussions/{id}/approve. An answered query
// becomes resolved; other statuses are left alone.
func (h *DiscussionsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	details := "Approved response: " + id
	if d, err := h.discussions.Get(r.Context(), id); err == nil {
		details = "Approved response: " + d.Title
	}

	err := h.writer.Patch(r.Context(), id, "approve", func(d model.Discussion) model.Discussion {
		if d.Status == model.DiscussionAnswered {
			d.Status = model.DiscussionResolved
		}
		return d
	}, change(r, model.ActionDiscussionApproved, details))
	if err != nil {
		changeFailed(w, r, h.renderer, redirectAdminDiscussions, "Discussion", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminDiscussions, "Response approved and published")
}
