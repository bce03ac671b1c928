// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/olegiv/ocms-admin/internal/modal"
	"github.com/olegiv/ocms-admin/internal/validation"
)

// ModalView is what a list template needs to draw a create/edit dialog.
type ModalView[T any] struct {
	Open     bool
	Creating bool
	ReadOnly bool
	ID       string
	Record   T
	Errors   validation.Errors
	// Action is the URL the dialog form posts to.
	Action string
}

// viewOf snapshots a controller for rendering. A nil controller is closed.
func viewOf[T any](c *modal.Controller[T], action string) ModalView[T] {
	if c == nil || !c.IsOpen() {
		return ModalView[T]{}
	}
	return ModalView[T]{
		Open:     true,
		Creating: c.State() == modal.Creating,
		ID:       c.ID(),
		Record:   c.Buffer(),
		Errors:   c.Errors(),
		Action:   action,
	}
}

// openCreate opens c for a new record. On failure it answers 500 and
// returns false.
func openCreate[T any](w http.ResponseWriter, c *modal.Controller[T], defaults T) bool {
	if err := c.BeginCreate(defaults); err != nil {
		logAndInternalError(w, "opening create dialog", "error", err)
		return false
	}
	return true
}

// openEdit opens c on the record with id. On failure it answers 500 and
// returns false.
func openEdit[T any](w http.ResponseWriter, c *modal.Controller[T], id string, rec T) bool {
	if err := c.BeginEdit(id, rec); err != nil {
		logAndInternalError(w, "opening edit dialog", "error", err, "id", id)
		return false
	}
	return true
}

// submit stages rec in an open controller and confirms it.
func submit[T any](c *modal.Controller[T], rec T) (modal.Outcome[T], error) {
	if err := c.Set(rec); err != nil {
		return modal.Outcome[T]{}, err
	}
	return c.Confirm()
}

// asValidation extracts field errors from a Confirm error.
func asValidation(err error) (validation.Errors, bool) {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}

// errorSummary joins field messages into one notification, in a stable
// order.
func errorSummary(errs validation.Errors) string {
	msgs := make([]string, 0, len(errs))
	for _, m := range errs {
		msgs = append(msgs, m)
	}
	slices.Sort(msgs)
	return strings.Join(msgs, ". ")
}
