// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// ContentStatus is the publication state of a content item.
type ContentStatus string

// Content statuses.
const (
	ContentDraft       ContentStatus = "draft"
	ContentPublished   ContentStatus = "published"
	ContentUnpublished ContentStatus = "unpublished"
)

// ContentStatuses lists the content statuses offered by the status filter.
var ContentStatuses = []ContentStatus{ContentPublished, ContentDraft, ContentUnpublished}

// Content is a piece of website content (announcement, report, publication).
// PublishedAt is expected to be set only for published items but nothing
// enforces it.
type Content struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Category    string        `json:"category"`
	Status      ContentStatus `json:"status"`
	CreatedBy   string        `json:"created_by"`
	CreatedAt   string        `json:"created_at"`
	PublishedAt string        `json:"published_at,omitempty"`
	Views       int           `json:"views"`
	Thumbnail   FileRef       `json:"thumbnail"`
}

// RecordID returns the content id.
func (c Content) RecordID() string { return c.ID }

// WithID returns a copy of the content carrying id.
func (c Content) WithID(id string) Content {
	c.ID = id
	return c
}

// IsPublished reports whether the item is live.
func (c Content) IsPublished() bool {
	return c.Status == ContentPublished
}
