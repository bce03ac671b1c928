// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package modal implements the create/edit dialog state machine shared by
// the admin screens. A controller stages a typed buffer while a dialog is
// open and hands it back only once it validates.
package modal

import (
	"errors"

	"github.com/olegiv/ocms-admin/internal/validation"
)

// State is the dialog state.
type State int

// Dialog states.
const (
	Closed State = iota
	Creating
	Editing
)

func (s State) String() string {
	switch s {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "closed"
	}
}

var (
	// ErrAlreadyOpen is returned when a dialog is opened while another one is.
	ErrAlreadyOpen = errors.New("modal already open")
	// ErrNotOpen is returned when confirming or updating a closed dialog.
	ErrNotOpen = errors.New("modal not open")
)

// Outcome is what a successful Confirm hands back to the screen.
type Outcome[T any] struct {
	// Created is true for a confirmed create, false for an edit.
	Created bool
	// ID is the id of the edited record, empty on create.
	ID     string
	Record T
}

// Controller is a single-dialog state machine. It is not safe for
// concurrent use; handlers create one per request.
type Controller[T any] struct {
	state    State
	id       string
	buf      T
	validate func(T) validation.Errors
	errs     validation.Errors
}

// New returns a closed controller using validate on Confirm. A nil
// validate accepts everything.
func New[T any](validate func(T) validation.Errors) *Controller[T] {
	return &Controller[T]{validate: validate}
}

// State returns the current dialog state.
func (c *Controller[T]) State() State { return c.state }

// IsOpen reports whether a dialog is open.
func (c *Controller[T]) IsOpen() bool { return c.state != Closed }

// ID returns the id of the record being edited.
func (c *Controller[T]) ID() string { return c.id }

// Buffer returns the staged record.
func (c *Controller[T]) Buffer() T { return c.buf }

// Errors returns the field errors from the last failed Confirm.
func (c *Controller[T]) Errors() validation.Errors { return c.errs }

// BeginCreate opens a create dialog with the given defaults.
func (c *Controller[T]) BeginCreate(defaults T) error {
	if c.IsOpen() {
		return ErrAlreadyOpen
	}
	c.state = Creating
	c.id = ""
	c.buf = defaults
	c.errs = nil
	return nil
}

// BeginEdit opens an edit dialog seeded with a shallow copy of rec.
func (c *Controller[T]) BeginEdit(id string, rec T) error {
	if c.IsOpen() {
		return ErrAlreadyOpen
	}
	c.state = Editing
	c.id = id
	c.buf = rec
	c.errs = nil
	return nil
}

// Set replaces the staged buffer, typically with submitted form values.
func (c *Controller[T]) Set(rec T) error {
	if !c.IsOpen() {
		return ErrNotOpen
	}
	c.buf = rec
	return nil
}

// Confirm validates the buffer. On failure the dialog stays open and the
// field errors are returned. On success the dialog closes and the outcome
// is returned.
func (c *Controller[T]) Confirm() (Outcome[T], error) {
	if !c.IsOpen() {
		return Outcome[T]{}, ErrNotOpen
	}
	if c.validate != nil {
		if errs := c.validate(c.buf); !errs.Empty() {
			c.errs = errs
			return Outcome[T]{}, errs
		}
	}
	out := Outcome[T]{Created: c.state == Creating, ID: c.id, Record: c.buf}
	c.reset()
	return out, nil
}

// Cancel discards the buffer and closes the dialog.
func (c *Controller[T]) Cancel() {
	c.reset()
}

func (c *Controller[T]) reset() {
	var zero T
	c.state = Closed
	c.id = ""
	c.buf = zero
	c.errs = nil
}
