// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"github.com/olegiv/ocms-admin/internal/model"
)

// MaxLogEntries bounds the activity log kept in memory.
const MaxLogEntries = 1000

// Store bundles one registry per entity kind.
type Store struct {
	Content     *Registry[model.Content]
	Events      *Registry[model.Event]
	Forms       *Registry[model.Form]
	Users       *Registry[model.User]
	Discussions *Registry[model.Discussion]
	Logs        *Registry[model.Log]
	Menu        *Registry[model.MenuItem]
}

// New creates a Store seeded with the initial records.
// Each call returns independent registries.
func New() *Store {
	return &Store{
		Content:     NewRegistry(SeedContent()),
		Events:      NewRegistry(SeedEvents()),
		Forms:       NewRegistry(SeedForms()),
		Users:       NewRegistry(SeedUsers()),
		Discussions: NewRegistry(SeedDiscussions()),
		Logs:        NewRegistry(SeedLogs(), WithNewestFirst(), WithLimit(MaxLogEntries)),
		Menu:        NewRegistry(SeedMenuItems()),
	}
}
