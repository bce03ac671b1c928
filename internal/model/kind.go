// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Kind names an entity kind. It keys per-entity tables such as validation
// rules.
type Kind string

// Entity kinds.
const (
	KindContent    Kind = "content"
	KindEvent      Kind = "event"
	KindForm       Kind = "form"
	KindUser       Kind = "user"
	KindDiscussion Kind = "discussion"
	KindLog        Kind = "log"
	KindMenuItem   Kind = "menu_item"
)
