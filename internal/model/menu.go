// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// MenuItemType tells whether a site menu entry links to a fixed page or a
// generated listing.
type MenuItemType string

// Menu item types.
const (
	MenuItemStatic  MenuItemType = "static"
	MenuItemDynamic MenuItemType = "dynamic"
)

// MenuItem represents an entry of the public site menu.
type MenuItem struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Type  MenuItemType `json:"type"`
	Order int          `json:"order"`
}

// RecordID returns the menu item id.
func (m MenuItem) RecordID() string { return m.ID }

// WithID returns a copy of the item carrying id.
func (m MenuItem) WithID(id string) MenuItem {
	m.ID = id
	return m
}
