// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// TimestampLayout is the layout used for activity log timestamps.
const TimestampLayout = "2006-01-02 15:04"

// DateLayout is the layout used for record dates.
const DateLayout = "2006-01-02"

// Activity log action names.
const (
	ActionUserLogin          = "User Login"
	ActionUserLogout         = "User Logout"
	ActionLoginFailed        = "Login Failed"
	ActionAccessDenied       = "Access Denied"
	ActionContentCreated     = "Content Created"
	ActionContentUpdated     = "Content Updated"
	ActionContentPublished   = "Content Published"
	ActionContentUnpublished = "Content Unpublished"
	ActionContentDeleted     = "Content Deleted"
	ActionEventCreated       = "Event Created"
	ActionEventUpdated       = "Event Updated"
	ActionEventDeleted       = "Event Deleted"
	ActionFormCreated        = "Form Created"
	ActionFormUpdated        = "Form Updated"
	ActionFormDeleted        = "Form Deleted"
	ActionUserCreated        = "User Created"
	ActionUserUpdated        = "User Updated"
	ActionUserDeleted        = "User Deleted"
	ActionDiscussionApproved = "Discussion Approved"
	ActionMenuItemDeleted    = "Menu Item Deleted"
	ActionSystemWarning      = "System Warning"
	ActionSystemError        = "System Error"
)

// Log is an activity log (audit trail) entry.
type Log struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}

// RecordID returns the log entry id.
func (l Log) RecordID() string { return l.ID }

// WithID returns a copy of the entry carrying id.
func (l Log) WithID(id string) Log {
	l.ID = id
	return l
}
