// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the admin panel's record types: users, content,
// events, forms, discussions, activity log entries and menu items.
package model

// Role is a user role. It decides which navigation destinations and
// mutation actions a user may invoke.
type Role string

// User roles.
const (
	RoleAdmin     Role = "admin"
	RoleEditor    Role = "editor"
	RoleModerator Role = "moderator"
)

// ValidRoles contains all valid user roles in display order.
var ValidRoles = []Role{RoleAdmin, RoleEditor, RoleModerator}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// ActivityStatus is the active/inactive switch shared by users and forms.
type ActivityStatus string

// Activity statuses.
const (
	StatusActive   ActivityStatus = "active"
	StatusInactive ActivityStatus = "inactive"
)

// Toggle returns the opposite status.
func (s ActivityStatus) Toggle() ActivityStatus {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// User represents an admin panel user account.
type User struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      Role           `json:"role"`
	Status    ActivityStatus `json:"status"`
	LastLogin string         `json:"last_login,omitempty"` // empty means never
}

// RecordID returns the user's id.
func (u User) RecordID() string { return u.ID }

// WithID returns a copy of the user carrying id.
func (u User) WithID(id string) User {
	u.ID = id
	return u
}

// IsAdmin returns true if the user has admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity is the authenticated principal held in the session.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAnonymous reports whether no one is signed in.
func (i Identity) IsAnonymous() bool {
	return i.Email == ""
}
