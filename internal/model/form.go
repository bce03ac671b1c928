// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Form is a survey or registration form. Responses is a static counter:
// no recorded submission ever increments it.
type Form struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      ActivityStatus `json:"status"`
	Responses   int            `json:"responses"`
	CreatedAt   string         `json:"created_at"`
}

// RecordID returns the form id.
func (f Form) RecordID() string { return f.ID }

// WithID returns a copy of the form carrying id.
func (f Form) WithID(id string) Form {
	f.ID = id
	return f
}
