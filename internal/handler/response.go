// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/olegiv/ocms-admin/internal/middleware"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/service"
	"github.com/olegiv/ocms-admin/internal/session"
	"github.com/olegiv/ocms-admin/internal/store"
)

// today returns the current date in record layout. Tests replace it.
var today = func() string {
	return time.Now().Format(model.DateLayout)
}

// flashAndRedirect sets a flash message and redirects to the given URL.
// Uses http.StatusSeeOther (303) for POST redirects.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message, messageType string) {
	renderer.SetFlash(r, message, messageType)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashError sets an error flash message and redirects to the given URL.
func flashError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, session.FlashError)
}

// flashSuccess sets a success flash message and redirects to the given URL.
func flashSuccess(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, session.FlashSuccess)
}

// flashInfo sets an info flash message and redirects to the given URL.
func flashInfo(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, session.FlashInfo)
}

// parseFormOrRedirect parses the request form, accepting both urlencoded
// and multipart bodies, and redirects with an error message on failure.
// Returns true if parsing succeeded, false if it failed (and redirect was performed).
func parseFormOrRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, redirectURL string) bool {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		slog.Debug("form parse failed", "error", err, "path", r.URL.Path)
		flashError(w, r, renderer, redirectURL, "Invalid form data")
		return false
	}
	return true
}

// formFile reduces an uploaded file to its metadata. Without a new upload
// the previous handle is kept.
func formFile(r *http.Request, field string, prev model.FileRef) model.FileRef {
	if r.MultipartForm == nil {
		return prev
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 || headers[0].Filename == "" {
		return prev
	}
	h := headers[0]
	return model.FileRef{
		Name:        h.Filename,
		Size:        h.Size,
		ContentType: h.Header.Get(HeaderContentType),
	}
}

// logAndHTTPError logs an error and writes an HTTP error response.
func logAndHTTPError(w http.ResponseWriter, message string, statusCode int, logMsg string, args ...any) {
	slog.Error(logMsg, args...)
	http.Error(w, message, statusCode)
}

// logAndInternalError logs an error and writes a 500 Internal Server Error response.
func logAndInternalError(w http.ResponseWriter, logMsg string, args ...any) {
	logAndHTTPError(w, "Internal Server Error", http.StatusInternalServerError, logMsg, args...)
}

// requireRecord fetches a record by id. On error it sets a flash message
// and redirects, returning false.
func requireRecord[T any](
	w http.ResponseWriter,
	r *http.Request,
	renderer *render.Renderer,
	redirectURL string,
	entityName string,
	id string,
	get func(ctx context.Context, id string) (T, error),
) (T, bool) {
	var zero T
	rec, err := get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			flashError(w, r, renderer, redirectURL, entityName+" not found")
		} else {
			slog.Error("failed to get "+entityName, "error", err, "id", id)
			flashError(w, r, renderer, redirectURL, "Error loading "+entityName)
		}
		return zero, false
	}
	return rec, true
}

// changeFailed reports a failed write to the user. Only reachable when
// edits are persisted.
func changeFailed(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, redirectURL, entityName string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		flashError(w, r, renderer, redirectURL, entityName+" not found")
		return
	}
	if errors.Is(err, store.ErrTransport) {
		slog.Error("data source unavailable", "entity", entityName, "error", err)
		flashError(w, r, renderer, redirectURL, "Data source unavailable, try again later")
		return
	}
	slog.Error("failed to save "+entityName, "error", err)
	flashError(w, r, renderer, redirectURL, "Error saving "+entityName)
}

// change builds the activity log entry for a mutation by the current user.
func change(r *http.Request, action, details string) service.Change {
	return service.Change{
		Actor:   middleware.GetIdentity(r).Name,
		Action:  action,
		Details: details,
	}
}

// pageData builds template data for the signed-in user.
func pageData(r *http.Request, title string, data any) render.TemplateData {
	return render.TemplateData{
		Title:    title,
		Identity: middleware.GetIdentity(r),
		Data:     data,
	}
}
