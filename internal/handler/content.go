// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/ocms-admin/internal/filter"
	"github.com/olegiv/ocms-admin/internal/middleware"
	"github.com/olegiv/ocms-admin/internal/modal"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/service"
	"github.com/olegiv/ocms-admin/internal/session"
	"github.com/olegiv/ocms-admin/internal/store"
	"github.com/olegiv/ocms-admin/internal/validation"
)

// ContentCategories are offered by the content dialog. Any other value
// typed by hand is accepted.
var ContentCategories = []string{
	"Announcements", "Conferences", "Publications", "Reports", "Updates", "Webinars",
}

// ContentHandler handles the content management screen.
type ContentHandler struct {
	renderer *render.Renderer
	content  store.Repository[model.Content]
	writer   *service.Writer[model.Content]
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(renderer *render.Renderer, content store.Repository[model.Content], writer *service.Writer[model.Content]) *ContentHandler {
	return &ContentHandler{renderer: renderer, content: content, writer: writer}
}

// ContentListData holds data for the content list template.
type ContentListData struct {
	Query      string
	Status     string
	Statuses   []model.ContentStatus
	Categories []string
	Items      []model.Content
	Total      int
	Modal      ModalView[model.Content]
}

func newContentModal() *modal.Controller[model.Content] {
	return modal.New(validation.Validator[model.Content](model.KindContent))
}

// contentDefaults is the buffer a new content dialog starts from.
func contentDefaults(r *http.Request) model.Content {
	return model.Content{
		Status:    model.ContentDraft,
		CreatedBy: middleware.GetIdentity(r).Name,
		CreatedAt: today(),
	}
}

// List handles GET /admin/content.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, http.StatusOK, nil, "")
}

// NewForm handles GET /admin/content/new.
func (h *ContentHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	c := newContentModal()
	if !openCreate(w, c, contentDefaults(r)) {
		return
	}
	h.renderList(w, r, http.StatusOK, c, "")
}

// EditForm handles GET /admin/content/{id}.
func (h *ContentHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, ok := requireRecord(w, r, h.renderer, redirectAdminContent, "Content", id, h.content.Get)
	if !ok {
		return
	}

	c := newContentModal()
	if !openEdit(w, c, id, item) {
		return
	}
	h.renderList(w, r, http.StatusOK, c, "")
}

// Create handles POST /admin/content.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminContent) {
		return
	}

	c := newContentModal()
	if !openCreate(w, c, contentDefaults(r)) {
		return
	}
	out, ok := h.confirm(w, r, c)
	if !ok {
		return
	}

	details := "Created draft: " + out.Record.Title
	if out.Record.IsPublished() {
		details = "Created: " + out.Record.Title
	}
	if _, err := h.writer.Create(r.Context(), out.Record, change(r, model.ActionContentCreated, details)); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminContent, "Content", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminContent, "Content created successfully!")
}

// Update handles POST /admin/content/{id}.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminContent) {
		return
	}
	item, ok := requireRecord(w, r, h.renderer, redirectAdminContent, "Content", id, h.content.Get)
	if !ok {
		return
	}

	c := newContentModal()
	if !openEdit(w, c, id, item) {
		return
	}
	out, ok := h.confirm(w, r, c)
	if !ok {
		return
	}

	if _, err := h.writer.Update(r.Context(), out.Record, change(r, model.ActionContentUpdated, "Updated: "+out.Record.Title)); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminContent, "Content", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminContent, "Content updated successfully!")
}

// confirm applies the submitted fields to the open dialog. On a
// validation failure the list is rendered with the dialog open.
func (h *ContentHandler) confirm(w http.ResponseWriter, r *http.Request, c *modal.Controller[model.Content]) (modal.Outcome[model.Content], bool) {
	rec := c.Buffer()
	rec.Title = r.FormValue("title")
	rec.Category = r.FormValue("category")
	if s := model.ContentStatus(r.FormValue("status")); s != "" {
		rec.Status = s
	}
	rec.Thumbnail = formFile(r, "thumbnail", rec.Thumbnail)

	out, err := submit(c, rec)
	if err != nil {
		errs, ok := asValidation(err)
		if !ok {
			logAndInternalError(w, "content dialog error", "error", err)
			return out, false
		}
		h.renderList(w, r, http.StatusUnprocessableEntity, c, errorSummary(errs))
		return out, false
	}
	return out, true
}

// Publish handles POST /admin/content/{id}/publish.
func (h *ContentHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	publishedAt := today()

	err := h.writer.Patch(r.Context(), id, "publish", func(c model.Content) model.Content {
		c.Status = model.ContentPublished
		c.PublishedAt = publishedAt
		return c
	}, change(r, model.ActionContentPublished, "Published: "+h.titleOf(r, id)))
	if err != nil {
		changeFailed(w, r, h.renderer, redirectAdminContent, "Content", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminContent, "Content published successfully")
}

// Unpublish handles POST /admin/content/{id}/unpublish.
func (h *ContentHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.writer.Patch(r.Context(), id, "unpublish", func(c model.Content) model.Content {
		c.Status = model.ContentUnpublished
		return c
	}, change(r, model.ActionContentUnpublished, "Unpublished: "+h.titleOf(r, id)))
	if err != nil {
		changeFailed(w, r, h.renderer, redirectAdminContent, "Content", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminContent, "Content unpublished successfully")
}

// Delete handles POST /admin/content/{id}/delete.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.writer.Delete(r.Context(), id, change(r, model.ActionContentDeleted, "Deleted: "+h.titleOf(r, id))); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminContent, "Content", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminContent, "Content deleted successfully")
}

// titleOf returns the title for log details, or the id when the item is
// unknown.
func (h *ContentHandler) titleOf(r *http.Request, id string) string {
	item, err := h.content.Get(r.Context(), id)
	if err != nil {
		return id
	}
	return item.Title
}

func (h *ContentHandler) renderList(w http.ResponseWriter, r *http.Request, status int, c *modal.Controller[model.Content], errorFlash string) {
	items, err := h.content.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list content", "error", err)
		return
	}

	query := r.URL.Query().Get("q")
	statusFilter := strings.TrimSpace(r.URL.Query().Get("status"))
	if statusFilter == "" {
		statusFilter = filter.All
	}

	action := redirectAdminContent
	if c != nil && c.ID() != "" {
		action += "/" + c.ID()
	}

	data := pageData(r, "Content Management", ContentListData{
		Query:      query,
		Status:     statusFilter,
		Statuses:   model.ContentStatuses,
		Categories: ContentCategories,
		Items:      filter.Content(items, query, statusFilter),
		Total:      len(items),
		Modal:      viewOf(c, action),
	})
	if errorFlash != "" {
		data.Flash, data.FlashType = errorFlash, session.FlashError
	}
	h.renderer.RenderPageStatus(w, r, status, "admin/content", data)
}
