// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/service"
)

func newTestEventsHandler(env *testEnv) *EventsHandler {
	w := service.NewWriter(env.store.Events, model.KindEvent, true, nil)
	return NewEventsHandler(env.renderer, env.store.Events, w)
}

func TestEventsList(t *testing.T) {
	env := newTestEnv(t)
	h := newTestEventsHandler(env)

	rec := httptest.NewRecorder()
	h.List(rec, env.request(t, http.MethodGet, "/admin/events?q=mumbai", nil, adminIdentity))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "GST Updates Workshop")
	assert.NotContains(t, body, "National Tax Summit 2025")
	assert.Contains(t, body, "<p>Interactive workshop on recent GST amendments</p>")
}

func TestEventsCreate(t *testing.T) {
	env := newTestEnv(t)
	h := newTestEventsHandler(env)
	before := env.store.Events.Len()

	req := env.postMultipart(t, "/admin/events", map[string]string{
		"title":      "Audit Seminar",
		"location":   "Chennai",
		"start_date": "2025-03-01",
		"end_date":   "2025-03-02",
		"start_time": "10:00",
	}, map[string]string{"banner": "banner.jpg"}, adminIdentity)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/events", rec.Header().Get("Location"))
	msg, _ := env.flash(req)
	assert.Equal(t, "Event added successfully!", msg)
	require.Equal(t, before+1, env.store.Events.Len())

	events, err := env.store.Events.List(context.Background())
	require.NoError(t, err)
	created := events[len(events)-1]
	assert.Equal(t, "Audit Seminar", created.Title)
	assert.Equal(t, model.EventUpcoming, created.Status)
	assert.Equal(t, "banner.jpg", created.Banner.Name)
	assert.True(t, created.IsMultiDay())
	assert.Empty(t, created.Registrations)
}

func TestEventsUpdate_KeepsRegistrations(t *testing.T) {
	env := newTestEnv(t)
	h := newTestEventsHandler(env)

	req := withID(env.postMultipart(t, "/admin/events/1", map[string]string{
		"title":      "National Tax Summit",
		"start_date": "2025-02-15",
		"status":     "ongoing",
	}, nil, adminIdentity), "1")
	h.Update(httptest.NewRecorder(), req)

	got, err := env.store.Events.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "National Tax Summit", got.Title)
	assert.Equal(t, model.EventOngoing, got.Status)
	assert.Len(t, got.Registrations, 3)
}

func TestEventsRegistrations(t *testing.T) {
	env := newTestEnv(t)
	h := newTestEventsHandler(env)

	t.Run("with registrations", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Registrations(rec, withID(env.request(t, http.MethodGet, "/admin/events/1/registrations", nil, editorIdentity), "1"))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "anita.desai@example.com")
		assert.Contains(t, body, `href="/admin/events/1/registrations.csv"`)
	})

	t.Run("empty", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Registrations(rec, withID(env.request(t, http.MethodGet, "/admin/events/2/registrations", nil, editorIdentity), "2"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No registrations yet.")
	})
}

func TestEventsRegistrationsCSV(t *testing.T) {
	env := newTestEnv(t)
	h := newTestEventsHandler(env)

	rec := httptest.NewRecorder()
	h.RegistrationsCSV(rec, withID(env.request(t, http.MethodGet, "/admin/events/1/registrations.csv", nil, editorIdentity), "1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="registrations-national-tax-summit-2025.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t,
		"Anita Desai,anita.desai@example.com,+91 98100 11111\n"+
			"\"Kumar, Vikram\",vikram.kumar@example.com,+91 98100 22222\n"+
			"Sunil Mehta,sunil.mehta@example.com,+91 98100 33333\n",
		rec.Body.String())
}

func TestEventsRegistrationsCSV_UnknownEvent(t *testing.T) {
	env := newTestEnv(t)
	h := newTestEventsHandler(env)

	req := withID(env.request(t, http.MethodGet, "/admin/events/42/registrations.csv", nil, editorIdentity), "42")
	rec := httptest.NewRecorder()
	h.RegistrationsCSV(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	msg, _ := env.flash(req)
	assert.Equal(t, "Event not found", msg)
}

func TestEventsDelete(t *testing.T) {
	env := newTestEnv(t)
	h := newTestEventsHandler(env)

	req := withID(env.request(t, http.MethodPost, "/admin/events/3/delete", nil, adminIdentity), "3")
	h.Delete(httptest.NewRecorder(), req)

	assert.Equal(t, 2, env.store.Events.Len())
	msg, _ := env.flash(req)
	assert.Equal(t, "Event deleted successfully", msg)
}
