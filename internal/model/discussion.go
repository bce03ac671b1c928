// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// DiscussionStatus is the moderation state of a member query.
type DiscussionStatus string

// Discussion statuses.
const (
	DiscussionPending  DiscussionStatus = "pending"
	DiscussionAnswered DiscussionStatus = "answered"
	DiscussionResolved DiscussionStatus = "resolved"
)

// OverdueAfterDays is the pending-days threshold after which a query is
// flagged as overdue.
const OverdueAfterDays = 3

// Discussion is a member query awaiting a panel answer.
// PendingDays is stored as-is and never recomputed from AskedAt.
type Discussion struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Category    string           `json:"category"`
	Status      DiscussionStatus `json:"status"`
	AskedBy     string           `json:"asked_by"`
	AskedAt     string           `json:"asked_at"`
	PendingDays int              `json:"pending_days"`
}

// RecordID returns the discussion id.
func (d Discussion) RecordID() string { return d.ID }

// WithID returns a copy of the discussion carrying id.
func (d Discussion) WithID(id string) Discussion {
	d.ID = id
	return d
}

// IsOverdue reports whether the query has been pending longer than
// OverdueAfterDays.
func (d Discussion) IsOverdue() bool {
	return d.PendingDays > OverdueAfterDays
}
