// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/ocms-admin/internal/filter"
	"github.com/olegiv/ocms-admin/internal/modal"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/service"
	"github.com/olegiv/ocms-admin/internal/store"
	"github.com/olegiv/ocms-admin/internal/validation"
)

// FormsHandler handles the forms and surveys screen.
type FormsHandler struct {
	renderer *render.Renderer
	forms    store.Repository[model.Form]
	writer   *service.Writer[model.Form]
}

// NewFormsHandler creates a new FormsHandler.
func NewFormsHandler(renderer *render.Renderer, forms store.Repository[model.Form], writer *service.Writer[model.Form]) *FormsHandler {
	return &FormsHandler{renderer: renderer, forms: forms, writer: writer}
}

// FormsListData holds data for the forms list template.
type FormsListData struct {
	Query string
	Items []model.Form
	Total int
	Modal ModalView[model.Form]
}

func newFormModal() *modal.Controller[model.Form] {
	return modal.New(validation.Validator[model.Form](model.KindForm))
}

func formDefaults() model.Form {
	return model.Form{Status: model.StatusActive, CreatedAt: today()}
}

// List handles GET /admin/forms.
func (h *FormsHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, nil)
}

// NewForm handles GET /admin/forms/new.
func (h *FormsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	c := newFormModal()
	if !openCreate(w, c, formDefaults()) {
		return
	}
	h.renderList(w, r, c)
}

// EditForm handles GET /admin/forms/{id}.
func (h *FormsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form, ok := requireRecord(w, r, h.renderer, redirectAdminForms, "Form", id, h.forms.Get)
	if !ok {
		return
	}

	c := newFormModal()
	if !openEdit(w, c, id, form) {
		return
	}
	h.renderList(w, r, c)
}

// Create handles POST /admin/forms.
func (h *FormsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminForms) {
		return
	}

	c := newFormModal()
	if !openCreate(w, c, formDefaults()) {
		return
	}
	out, err := submit(c, formFromRequest(r, c.Buffer()))
	if err != nil {
		logAndInternalError(w, "form dialog error", "error", err)
		return
	}

	if _, err := h.writer.Create(r.Context(), out.Record, change(r, model.ActionFormCreated, "Created form: "+out.Record.Title)); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminForms, "Form", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminForms, "Form created successfully!")
}

// Update handles POST /admin/forms/{id}.
func (h *FormsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminForms) {
		return
	}
	form, ok := requireRecord(w, r, h.renderer, redirectAdminForms, "Form", id, h.forms.Get)
	if !ok {
		return
	}

	c := newFormModal()
	if !openEdit(w, c, id, form) {
		return
	}
	out, err := submit(c, formFromRequest(r, c.Buffer()))
	if err != nil {
		logAndInternalError(w, "form dialog error", "error", err)
		return
	}

	if _, err := h.writer.Update(r.Context(), out.Record, change(r, model.ActionFormUpdated, "Updated form: "+out.Record.Title)); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminForms, "Form", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminForms, "Form updated successfully!")
}

func formFromRequest(r *http.Request, f model.Form) model.Form {
	f.Title = r.FormValue("title")
	f.Description = r.FormValue("description")
	return f
}

// Toggle handles POST /admin/forms/{id}/toggle.
func (h *FormsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.writer.Patch(r.Context(), id, "toggle", func(f model.Form) model.Form {
		f.Status = f.Status.Toggle()
		return f
	}, change(r, model.ActionFormUpdated, "Toggled status of form: "+h.titleOf(r, id)))
	if err != nil {
		changeFailed(w, r, h.renderer, redirectAdminForms, "Form", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminForms, "Form status updated")
}

// Export handles POST /admin/forms/{id}/export. Responses are not stored,
// so only the notification is shown.
func (h *FormsHandler) Export(w http.ResponseWriter, r *http.Request) {
	flashSuccess(w, r, h.renderer, redirectAdminForms, "Exporting form responses...")
}

// Delete handles POST /admin/forms/{id}/delete.
func (h *FormsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.writer.Delete(r.Context(), id, change(r, model.ActionFormDeleted, "Deleted form: "+h.titleOf(r, id))); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminForms, "Form", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminForms, "Form deleted successfully")
}

func (h *FormsHandler) titleOf(r *http.Request, id string) string {
	form, err := h.forms.Get(r.Context(), id)
	if err != nil {
		return id
	}
	return form.Title
}

func (h *FormsHandler) renderList(w http.ResponseWriter, r *http.Request, c *modal.Controller[model.Form]) {
	forms, err := h.forms.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list forms", "error", err)
		return
	}

	query := r.URL.Query().Get("q")
	action := redirectAdminForms
	if c != nil && c.ID() != "" {
		action += "/" + c.ID()
	}

	h.renderer.RenderPage(w, r, "admin/forms", pageData(r, "Forms & Surveys", FormsListData{
		Query: query,
		Items: filter.Forms(forms, query),
		Total: len(forms),
		Modal: viewOf(c, action),
	}))
}
