// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package web

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var Templates embed.FS

//go:embed all:static
var Static embed.FS

// TemplatesFS returns the embedded templates rooted at templates/, the
// layout render.New expects.
func TemplatesFS() (fs.FS, error) {
	return fs.Sub(Templates, "templates")
}
