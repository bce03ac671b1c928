// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that mirrors audit-worthy records
// into the activity log shown on the Reports screen.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olegiv/ocms-admin/internal/model"
)

// Attribute keys recognised on log records.
const (
	AttrAction  = "action"
	AttrUser    = "user"
	AttrDetails = "details"
)

// systemUser is recorded when a record names no user.
const systemUser = "System"

// Sink receives activity log entries.
type Sink interface {
	Create(ctx context.Context, rec model.Log) (model.Log, error)
}

// ActivityLogHandler wraps another handler and also appends records to the
// activity log: every record carrying an action attribute, plus anything at
// WARN and above.
type ActivityLogHandler struct {
	inner slog.Handler
	sink  Sink
	level slog.Level // minimum level recorded without an action
	attrs []groupedAttr
	group string // dotted path of the open group, "" at top level
}

// groupedAttr is an attribute with the group path open when it was added.
type groupedAttr struct {
	group string
	attr  slog.Attr
}

// NewActivityLogHandler wraps inner, writing audit entries to sink.
func NewActivityLogHandler(inner slog.Handler, sink Sink) *ActivityLogHandler {
	return &ActivityLogHandler{
		inner: inner,
		sink:  sink,
		level: slog.LevelWarn,
	}
}

// Enabled implements slog.Handler. INFO is always enabled so that action
// records reach the activity log even when the console level is higher.
func (h *ActivityLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo || h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *ActivityLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.inner.Enabled(ctx, r.Level) {
		if err := h.inner.Handle(ctx, r); err != nil {
			return err
		}
	}

	entry, ok := h.entryFor(r)
	if !ok {
		return nil
	}
	// Detached from the request so a cancelled request still leaves a trace.
	if _, err := h.sink.Create(context.WithoutCancel(ctx), entry); err != nil {
		return fmt.Errorf("appending activity log: %w", err)
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *ActivityLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := append([]groupedAttr{}, h.attrs...)
	for _, a := range attrs {
		all = append(all, groupedAttr{group: h.group, attr: a})
	}
	return &ActivityLogHandler{
		inner: h.inner.WithAttrs(attrs),
		sink:  h.sink,
		level: h.level,
		attrs: all,
		group: h.group,
	}
}

// WithGroup implements slog.Handler. Attributes inside a group never count
// as audit keys.
func (h *ActivityLogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &ActivityLogHandler{
		inner: h.inner.WithGroup(name),
		sink:  h.sink,
		level: h.level,
		attrs: h.attrs,
		group: group,
	}
}

// entryFor converts r into an activity log entry, or reports false when r
// is not audit-worthy.
func (h *ActivityLogHandler) entryFor(r slog.Record) (model.Log, bool) {
	var action, user, details string
	var extra []string

	visit := func(group string, a slog.Attr) {
		if group != "" {
			extra = append(extra, group+"."+a.Key+"="+a.Value.String())
			return
		}
		switch a.Key {
		case AttrAction:
			action = a.Value.String()
		case AttrUser:
			user = a.Value.String()
		case AttrDetails:
			details = a.Value.String()
		default:
			extra = append(extra, a.Key+"="+a.Value.String())
		}
	}
	for _, ga := range h.attrs {
		visit(ga.group, ga.attr)
	}
	r.Attrs(func(a slog.Attr) bool {
		visit(h.group, a)
		return true
	})

	if action == "" {
		if r.Level < h.level {
			return model.Log{}, false
		}
		action = model.ActionSystemWarning
		if r.Level >= slog.LevelError {
			action = model.ActionSystemError
		}
	}
	if user == "" {
		user = systemUser
	}
	if details == "" {
		details = r.Message
		if len(extra) > 0 {
			details += " (" + strings.Join(extra, ", ") + ")"
		}
	}

	return model.Log{
		Action:    action,
		User:      user,
		Timestamp: r.Time.Format(model.TimestampLayout),
		Details:   details,
	}, true
}
