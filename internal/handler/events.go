// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/ocms-admin/internal/export"
	"github.com/olegiv/ocms-admin/internal/filter"
	"github.com/olegiv/ocms-admin/internal/modal"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/service"
	"github.com/olegiv/ocms-admin/internal/store"
	"github.com/olegiv/ocms-admin/internal/validation"
)

// EventsHandler handles the event management screen and its registration
// lists.
type EventsHandler struct {
	renderer *render.Renderer
	events   store.Repository[model.Event]
	writer   *service.Writer[model.Event]
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(renderer *render.Renderer, events store.Repository[model.Event], writer *service.Writer[model.Event]) *EventsHandler {
	return &EventsHandler{renderer: renderer, events: events, writer: writer}
}

// EventsListData holds data for the events list template.
type EventsListData struct {
	Query    string
	Statuses []model.EventStatus
	Items    []model.Event
	Total    int
	Modal    ModalView[model.Event]
}

// RegistrationsData holds data for the registrations template.
type RegistrationsData struct {
	Event         model.Event
	Registrations []model.Registration
	CSVURL        string
}

func newEventModal() *modal.Controller[model.Event] {
	return modal.New(validation.Validator[model.Event](model.KindEvent))
}

func eventDefaults() model.Event {
	return model.Event{Status: model.EventUpcoming}
}

// List handles GET /admin/events.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, nil)
}

// NewForm handles GET /admin/events/new.
func (h *EventsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	c := newEventModal()
	if !openCreate(w, c, eventDefaults()) {
		return
	}
	h.renderList(w, r, c)
}

// EditForm handles GET /admin/events/{id}.
func (h *EventsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	event, ok := requireRecord(w, r, h.renderer, redirectAdminEvents, "Event", id, h.events.Get)
	if !ok {
		return
	}

	c := newEventModal()
	if !openEdit(w, c, id, event) {
		return
	}
	h.renderList(w, r, c)
}

// Create handles POST /admin/events.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminEvents) {
		return
	}

	c := newEventModal()
	if !openCreate(w, c, eventDefaults()) {
		return
	}
	out, err := submit(c, eventFromForm(r, c.Buffer()))
	if err != nil {
		logAndInternalError(w, "event dialog error", "error", err)
		return
	}

	if _, err := h.writer.Create(r.Context(), out.Record, change(r, model.ActionEventCreated, "Created event: "+out.Record.Title)); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminEvents, "Event", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminEvents, "Event added successfully!")
}

// Update handles POST /admin/events/{id}.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminEvents) {
		return
	}
	event, ok := requireRecord(w, r, h.renderer, redirectAdminEvents, "Event", id, h.events.Get)
	if !ok {
		return
	}

	c := newEventModal()
	if !openEdit(w, c, id, event) {
		return
	}
	out, err := submit(c, eventFromForm(r, c.Buffer()))
	if err != nil {
		logAndInternalError(w, "event dialog error", "error", err)
		return
	}

	if _, err := h.writer.Update(r.Context(), out.Record, change(r, model.ActionEventUpdated, "Updated event: "+out.Record.Title)); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminEvents, "Event", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminEvents, "Event updated successfully!")
}

// eventFromForm overlays the submitted fields on e. Registrations are never
// edited through the dialog.
func eventFromForm(r *http.Request, e model.Event) model.Event {
	e.Title = r.FormValue("title")
	e.Description = r.FormValue("description")
	e.Location = r.FormValue("location")
	e.Speaker = r.FormValue("speaker")
	e.StartDate = r.FormValue("start_date")
	e.EndDate = r.FormValue("end_date")
	e.StartTime = r.FormValue("start_time")
	e.EndTime = r.FormValue("end_time")
	e.RegistrationLink = r.FormValue("registration_link")
	e.LiveStreamLink = r.FormValue("live_stream_link")
	if s := model.EventStatus(r.FormValue("status")); s != "" {
		e.Status = s
	}
	e.Banner = formFile(r, "banner", e.Banner)
	return e
}

// Delete handles POST /admin/events/{id}/delete.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	details := "Deleted event: " + id
	if event, err := h.events.Get(r.Context(), id); err == nil {
		details = "Deleted event: " + event.Title
	}
	if err := h.writer.Delete(r.Context(), id, change(r, model.ActionEventDeleted, details)); err != nil {
		changeFailed(w, r, h.renderer, redirectAdminEvents, "Event", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectAdminEvents, "Event deleted successfully")
}

// Registrations handles GET /admin/events/{id}/registrations.
func (h *EventsHandler) Registrations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	event, ok := requireRecord(w, r, h.renderer, redirectAdminEvents, "Event", id, h.events.Get)
	if !ok {
		return
	}

	h.renderer.RenderPage(w, r, "admin/event_registrations", pageData(r, "Registrations", RegistrationsData{
		Event:         event,
		Registrations: event.Registrations,
		CSVURL:        redirectAdminEvents + "/" + id + RouteSuffixRegistrationsCSV,
	}))
}

// RegistrationsCSV handles GET /admin/events/{id}/registrations.csv.
func (h *EventsHandler) RegistrationsCSV(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	event, ok := requireRecord(w, r, h.renderer, redirectAdminEvents, "Event", id, h.events.Get)
	if !ok {
		return
	}

	w.Header().Set(HeaderContentType, "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.RegistrationsFilename(event.Title)))
	if err := export.WriteRegistrations(w, event.Registrations); err != nil {
		slog.Error("failed to write registrations", "error", err, "event_id", id)
	}
}

func (h *EventsHandler) renderList(w http.ResponseWriter, r *http.Request, c *modal.Controller[model.Event]) {
	events, err := h.events.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	query := r.URL.Query().Get("q")
	action := redirectAdminEvents
	if c != nil && c.ID() != "" {
		action += "/" + c.ID()
	}

	h.renderer.RenderPage(w, r, "admin/events", pageData(r, "Event Management", EventsListData{
		Query:    query,
		Statuses: model.EventStatuses,
		Items:    filter.Events(events, query),
		Total:    len(events),
		Modal:    viewOf(c, action),
	}))
}
