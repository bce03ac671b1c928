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

// UsersHandler handles user management routes.
type UsersHandler struct {
	renderer *render.Renderer
	users    store.Repository[model.User]
	writer   *service.Writer[model.User]
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(renderer *render.Renderer, users store.Repository[model.User], writer *service.Writer[model.User]) *UsersHandler {
	return &UsersHandler{renderer: renderer, users: users, writer: writer}
}

// UsersListData holds data for the users list template.
type UsersListData struct {
	Query string
	Roles []model.Role
	Items []model.User
	Total int
	Modal ModalView[model.User]
}

func newUserModal() *modal.Controller[model.User] {
	return modal.New(validation.Validator[model.User](model.KindUser))
}

func userDefaults() model.User {
	return model.User{Role: model.RoleEditor, Status: model.StatusActive}
}

// List handles GET /admin/users - displays the filtered list of users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, ModalView[model.User]{})
}

// NewForm handles GET /admin/users/new.
func (h *UsersHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	c := newUserModal()
	if !openCreate(w, c, userDefaults()) {
		return
	}
	h.renderList(w, r, viewOf(c, redirectAdminUsers))
}

// EditForm handles GET /admin/users/{id}.
func (h *UsersHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, ok := requireRecord(w, r, h.renderer, redirectAdminUsers, "User", id, h.users.Get)
	if !ok {
		return
	}

	c := newUserModal()
	if !openEdit(w, c, id, user) {
		return
	}
	h.renderList(w, r, viewOf(c, redirectAdminUsers+"/"+id))
}

// View handles GET /admin/users/{id}/view - the read-only details dialog.
func (h *UsersHandler) View(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, ok := requireRecord(w, r, h.renderer, redirectAdminUsers, "User", id, h.users.Get)
	if !ok {
		return
	}

	h.renderList(w, r, ModalView[model.User]{Open: true, ReadOnly: true, ID: id, Record: user})
}

// Create handles POST /admin/users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminUsers) {
		return
	}

	c := newUserModal()
	if !openCreate(w, c, userDefaults()) {
		return
	}
	out, err := submit(c, userFromForm(r, c.Buffer()))
	if err != nil {
		logAndInternalError(w, "user dialog error", "error", err)
		return
	}

	details := "Created new " + string(out.Record.Role) + ": " + out.Record.Name
	if _, err := h.writer.Create(r.Context(), out.Record, change(r, model.ActionUserCreated, details)); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminUsers, "User", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminUsers, "User added successfully")
}

// Update handles POST /admin/users/{id}.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminUsers) {
		return
	}
	user, ok := requireRecord(w, r, h.renderer, redirectAdminUsers, "User", id, h.users.Get)
	if !ok {
		return
	}

	c := newUserModal()
	if !openEdit(w, c, id, user) {
		return
	}
	out, err := submit(c, userFromForm(r, c.Buffer()))
	if err != nil {
		logAndInternalError(w, "user dialog error", "error", err)
		return
	}

	if _, err := h.writer.Update(r.Context(), out.Record, change(r, model.ActionUserUpdated, "Updated user: "+out.Record.Name)); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminUsers, "User", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminUsers, "User updated")
}

// userFromForm overlays name, email and role. An unknown role leaves the
// current one in place.
func userFromForm(r *http.Request, u model.User) model.User {
	u.Name = r.FormValue("name")
	u.Email = r.FormValue("email")
	if role := model.Role(r.FormValue("role")); role.Valid() {
		u.Role = role
	}
	return u
}

// Toggle handles POST /admin/users/{id}/toggle.
func (h *UsersHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.writer.Patch(r.Context(), id, "toggle", func(u model.User) model.User {
		u.Status = u.Status.Toggle()
		return u
	}, change(r, model.ActionUserUpdated, "Changed status of user: "+h.nameOf(r, id)))
	if err != nil {
		changeFailed(w, r, h.renderer, redirectAdminUsers, "User", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminUsers, "User status changed")
}

// Delete handles POST /admin/users/{id}/delete.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.writer.Delete(r.Context(), id, change(r, model.ActionUserDeleted, "Deleted user: "+h.nameOf(r, id))); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminUsers, "User", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminUsers, "User deleted")
}

func (h *UsersHandler) nameOf(r *http.Request, id string) string {
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		return id
	}
	return user.Name
}

func (h *UsersHandler) renderList(w http.ResponseWriter, r *http.Request, mv ModalView[model.User]) {
	users, err := h.users.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list users", "error", err)
		return
	}

	query := r.URL.Query().Get("q")
	h.renderer.RenderPage(w, r, "admin/users", pageData(r, "User Management", UsersListData{
		Query: query,
		Roles: model.ValidRoles,
		Items: filter.Users(users, query),
		Total: len(users),
		Modal: mv,
	}))
}
