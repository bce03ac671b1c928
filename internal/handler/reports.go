// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/olegiv/ocms-admin/internal/export"
	"github.com/olegiv/ocms-admin/internal/filter"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/session"
	"github.com/olegiv/ocms-admin/internal/store"
)

// ActionFilters are the action filter options. Each value is matched as a
// case-insensitive substring of the log action.
var ActionFilters = []ActionFilter{
	{Value: filter.All, Label: "All Actions"},
	{Value: "login", Label: "Login"},
	{Value: "content", Label: "Content"},
	{Value: "user", Label: "User"},
	{Value: "event", Label: "Event"},
}

// ActionFilter is one option of the action filter.
type ActionFilter struct {
	Value string
	Label string
}

// ReportsHandler handles the activity log screen and its export.
type ReportsHandler struct {
	renderer *render.Renderer
	logs     store.Repository[model.Log]
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(renderer *render.Renderer, logs store.Repository[model.Log]) *ReportsHandler {
	return &ReportsHandler{renderer: renderer, logs: logs}
}

// ReportsListData holds data for the reports template.
type ReportsListData struct {
	Action    string
	PageSize  int
	Actions   []ActionFilter
	PageSizes []int
	Items     []model.Log
	Matched   int
	Total     int
	Exports   []ExportLink
}

// ExportLink is one export button of the reports screen.
type ExportLink struct {
	Label string
	URL   string
}

// displayed returns the log entries the screen shows for the request's
// action filter and page size, plus the match count before truncation.
func (h *ReportsHandler) displayed(r *http.Request) (shown []model.Log, matched, total int, err error) {
	logs, err := h.logs.List(r.Context())
	if err != nil {
		return nil, 0, 0, err
	}
	q := r.URL.Query()
	filtered := filter.Logs(logs, q.Get("action"))
	return filter.Take(filtered, filter.PageSize(q.Get("size"))), len(filtered), len(logs), nil
}

// List handles GET /admin/reports.
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	shown, matched, total, err := h.displayed(r)
	if err != nil {
		logAndInternalError(w, "failed to list logs", "error", err)
		return
	}

	action := r.URL.Query().Get("action")
	if action == "" {
		action = filter.All
	}
	size := filter.PageSize(r.URL.Query().Get("size"))

	h.renderer.RenderPage(w, r, "admin/reports", pageData(r, "Reports & Logs", ReportsListData{
		Action:    action,
		PageSize:  size,
		Actions:   ActionFilters,
		PageSizes: filter.PageSizes,
		Items:     shown,
		Matched:   matched,
		Total:     total,
		Exports:   exportLinks(action, size),
	}))
}

// Export handles GET /admin/reports/export. CSV downloads the logs on
// screen with a header row; other formats are refused with a notification.
func (h *ReportsHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	back := redirectAdminReports + "?" + url.Values{"action": {q.Get("action")}, "size": {q.Get("size")}}.Encode()

	format, err := export.ParseFormat(q.Get("format"))
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			flashError(w, r, h.renderer, back, fmt.Sprintf("Export failed: %v", err))
			return
		}
		logAndInternalError(w, "parsing export format", "error", err)
		return
	}

	shown, _, _, err := h.displayed(r)
	if err != nil {
		logAndInternalError(w, "failed to list logs", "error", err)
		return
	}

	h.renderer.SetFlash(r, "Exporting logs as CSV...", session.FlashSuccess)
	w.Header().Set(HeaderContentType, "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.LogsFilename(today())))
	if err := export.WriteLogs(w, shown); err != nil {
		slog.Error("failed to write log export", "error", err, "format", format)
	}
}

func exportLinks(action string, size int) []ExportLink {
	formats := []struct {
		format export.Format
		label  string
	}{
		{export.FormatCSV, "Export CSV"},
		{export.FormatExcel, "Export Excel"},
		{export.FormatPDF, "Export PDF"},
	}

	links := make([]ExportLink, 0, len(formats))
	for _, f := range formats {
		links = append(links, ExportLink{
			Label: f.label,
			URL: redirectAdminReports + RouteSuffixExport + "?" + url.Values{
				"format": {string(f.format)},
				"action": {action},
				"size":   {strconv.Itoa(size)},
			}.Encode(),
		})
	}
	return links
}
