// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"

	"github.com/olegiv/ocms-admin/internal/filter"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/store"
)

// RecentActivityLimit is how many log entries the dashboard shows.
const RecentActivityLimit = 5

// DashboardStats is everything the dashboard renders.
type DashboardStats struct {
	PublishedContent int
	TotalContent     int
	UpcomingEvents   int
	TotalEvents      int
	ActiveForms      int
	TotalResponses   int
	ActiveUsers      int
	TotalUsers       int
	RecentActivity   []model.Log
	TopViewed        []model.Content
}

// Dashboard computes DashboardStats from the registries.
type Dashboard struct {
	Content store.Repository[model.Content]
	Events  store.Repository[model.Event]
	Forms   store.Repository[model.Form]
	Users   store.Repository[model.User]
	Logs    store.Repository[model.Log]
}

// NewDashboard wires a Dashboard to s.
func NewDashboard(s *store.Store) *Dashboard {
	return &Dashboard{
		Content: s.Content,
		Events:  s.Events,
		Forms:   s.Forms,
		Users:   s.Users,
		Logs:    s.Logs,
	}
}

// Summary computes the dashboard figures. Nothing is cached.
func (d *Dashboard) Summary(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats

	content, err := d.Content.List(ctx)
	if err != nil {
		return stats, fmt.Errorf("listing content: %w", err)
	}
	events, err := d.Events.List(ctx)
	if err != nil {
		return stats, fmt.Errorf("listing events: %w", err)
	}
	forms, err := d.Forms.List(ctx)
	if err != nil {
		return stats, fmt.Errorf("listing forms: %w", err)
	}
	users, err := d.Users.List(ctx)
	if err != nil {
		return stats, fmt.Errorf("listing users: %w", err)
	}
	logs, err := d.Logs.List(ctx)
	if err != nil {
		return stats, fmt.Errorf("listing logs: %w", err)
	}

	stats.TotalContent = len(content)
	stats.PublishedContent = filter.Count(content, model.Content.IsPublished)
	stats.TotalEvents = len(events)
	stats.UpcomingEvents = filter.Count(events, func(e model.Event) bool {
		return e.Status == model.EventUpcoming
	})
	stats.ActiveForms = filter.Count(forms, func(f model.Form) bool {
		return f.Status == model.StatusActive
	})
	for _, f := range forms {
		stats.TotalResponses += f.Responses
	}
	stats.TotalUsers = len(users)
	stats.ActiveUsers = filter.Count(users, func(u model.User) bool {
		return u.Status == model.StatusActive
	})
	stats.RecentActivity = filter.Take(logs, RecentActivityLimit)
	stats.TopViewed = filter.TopViewed(content, filter.TopViewedLimit)

	return stats, nil
}
