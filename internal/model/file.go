// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// FileRef is an opaque handle to a file picked in a form (thumbnail,
// banner). Only the client-reported metadata is kept; the bytes are
// discarded and never validated.
type FileRef struct {
	Name        string `json:"name,omitempty"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// IsZero reports whether no file was attached.
func (f FileRef) IsZero() bool {
	return f.Name == ""
}
