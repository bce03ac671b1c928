// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package filter

import "github.com/olegiv/ocms-admin/internal/model"

// DiscussionCounts holds the counters shown above the discussions table.
type DiscussionCounts struct {
	Pending  int
	Answered int
	Resolved int
	Overdue  int
}

// CountDiscussions tallies discussions by status. Overdue uses the stored
// pending days, not the asked date.
func CountDiscussions(items []model.Discussion) DiscussionCounts {
	var c DiscussionCounts
	for _, d := range items {
		switch d.Status {
		case model.DiscussionPending:
			c.Pending++
		case model.DiscussionAnswered:
			c.Answered++
		case model.DiscussionResolved:
			c.Resolved++
		}
		if d.IsOverdue() {
			c.Overdue++
		}
	}
	return c
}
