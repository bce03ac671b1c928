// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"github.com/olegiv/ocms-admin/internal/model"
)

// SeedUsers returns the initial user accounts.
func SeedUsers() []model.User {
	return []model.User{
		{ID: "1", Name: "Admin User", Email: "admin@icai.org", Role: model.RoleAdmin, LastLogin: "2025-01-10 14:30", Status: model.StatusActive},
		{ID: "2", Name: "Editor One", Email: "editor1@icai.org", Role: model.RoleEditor, LastLogin: "2025-01-10 12:15", Status: model.StatusActive},
		{ID: "3", Name: "Editor Two", Email: "editor2@icai.org", Role: model.RoleEditor, LastLogin: "2025-01-09 16:45", Status: model.StatusActive},
		{ID: "4", Name: "Moderator One", Email: "mod1@icai.org", Role: model.RoleModerator, LastLogin: "2025-01-10 10:20", Status: model.StatusActive},
		{ID: "5", Name: "Moderator Two", Email: "mod2@icai.org", Role: model.RoleModerator, LastLogin: "2025-01-08 09:30", Status: model.StatusInactive},
	}
}

// SeedContent returns the initial content items.
func SeedContent() []model.Content {
	return []model.Content{
		{ID: "1", Title: "Annual Tax Conference 2025", Category: "Conferences", Status: model.ContentPublished, CreatedBy: "Admin User", CreatedAt: "2025-01-05", PublishedAt: "2025-01-06", Views: 1250},
		{ID: "2", Title: "New GST Guidelines", Category: "Announcements", Status: model.ContentPublished, CreatedBy: "Editor One", CreatedAt: "2025-01-08", PublishedAt: "2025-01-08", Views: 890},
		{ID: "3", Title: "ITR Filing Deadline Extended", Category: "Updates", Status: model.ContentPublished, CreatedBy: "Editor Two", CreatedAt: "2025-01-09", PublishedAt: "2025-01-09", Views: 2340},
		{ID: "4", Title: "Webinar on Digital Taxation", Category: "Webinars", Status: model.ContentDraft, CreatedBy: "Editor One", CreatedAt: "2025-01-10", Views: 0},
		{ID: "5", Title: "DTC Annual Report 2024", Category: "Reports", Status: model.ContentPublished, CreatedBy: "Admin User", CreatedAt: "2025-01-03", PublishedAt: "2025-01-04", Views: 560},
		{ID: "6", Title: "Budget 2025 Analysis", Category: "Publications", Status: model.ContentDraft, CreatedBy: "Editor Two", CreatedAt: "2025-01-10", Views: 0},
	}
}

// SeedEvents returns the initial events with their registrations.
func SeedEvents() []model.Event {
	return []model.Event{
		{
			ID:               "1",
			Title:            "National Tax Summit 2025",
			Description:      "Annual conference discussing latest tax reforms and policies",
			Location:         "New Delhi Convention Center",
			StartDate:        "2025-02-15",
			EndDate:          "2025-02-17",
			Speaker:          "CA. Rajesh Kumar",
			RegistrationLink: "https://icai.org/register/summit2025",
			Status:           model.EventUpcoming,
			Registrations: []model.Registration{
				{Name: "Anita Desai", Email: "anita.desai@example.com", Phone: "+91 98100 11111"},
				{Name: "Kumar, Vikram", Email: "vikram.kumar@example.com", Phone: "+91 98100 22222"},
				{Name: "Sunil Mehta", Email: "sunil.mehta@example.com", Phone: "+91 98100 33333"},
			},
		},
		{
			ID:               "2",
			Title:            "GST Updates Workshop",
			Description:      "Interactive workshop on recent GST amendments",
			Location:         "Mumbai",
			StartDate:        "2025-01-20",
			EndDate:          "2025-01-20",
			Speaker:          "CA. Priya Sharma",
			RegistrationLink: "https://icai.org/register/gst-workshop",
			Status:           model.EventUpcoming,
		},
		{
			ID:          "3",
			Title:       "Digital Taxation Webinar",
			Description: "Online webinar on digital economy taxation",
			Location:    "Online",
			StartDate:   "2025-01-12",
			EndDate:     "2025-01-12",
			Speaker:     "CA. Amit Verma",
			Status:      model.EventCompleted,
		},
	}
}

// SeedForms returns the initial forms.
func SeedForms() []model.Form {
	return []model.Form{
		{ID: "1", Title: "Member Feedback Survey 2025", Description: "Annual member satisfaction survey", Status: model.StatusActive, Responses: 145, CreatedAt: "2025-01-01"},
		{ID: "2", Title: "Event Registration Form", Description: "Registration for upcoming events", Status: model.StatusActive, Responses: 234, CreatedAt: "2024-12-15"},
		{ID: "3", Title: "Course Enrollment Form", Description: "Professional development course enrollment", Status: model.StatusActive, Responses: 89, CreatedAt: "2025-01-05"},
		{ID: "4", Title: "Publication Feedback", Description: "Feedback on monthly publications", Status: model.StatusInactive, Responses: 67, CreatedAt: "2024-11-20"},
	}
}

// SeedLogs returns the initial activity log, newest first.
func SeedLogs() []model.Log {
	return []model.Log{
		{ID: "1", Action: "Content Published", User: "Admin User", Timestamp: "2025-01-10 14:25", Details: "Published: ITR Filing Deadline Extended"},
		{ID: "2", Action: "User Login", User: "Editor One", Timestamp: "2025-01-10 12:15", Details: "Successful login from 192.168.1.1"},
		{ID: "3", Action: "Content Created", User: "Editor Two", Timestamp: "2025-01-10 11:30", Details: "Created draft: Budget 2025 Analysis"},
		{ID: "4", Action: "Event Updated", User: "Admin User", Timestamp: "2025-01-10 10:45", Details: "Updated event: National Tax Summit 2025"},
		{ID: "5", Action: "Form Response", User: "Guest User", Timestamp: "2025-01-10 09:20", Details: "Submitted: Member Feedback Survey 2025"},
		{ID: "6", Action: "User Created", User: "Admin User", Timestamp: "2025-01-09 16:30", Details: "Created new moderator: Moderator Two"},
		{ID: "7", Action: "Content Unpublished", User: "Moderator One", Timestamp: "2025-01-09 14:10", Details: "Unpublished: Old Tax Guidelines"},
	}
}

// SeedDiscussions returns the initial member queries.
func SeedDiscussions() []model.Discussion {
	return []model.Discussion{
		{ID: "1", Title: "Query on TDS deduction rates", Category: "TDS", Status: model.DiscussionPending, AskedBy: "Member #1234", AskedAt: "2025-01-07", PendingDays: 3},
		{ID: "2", Title: "GST return filing clarification", Category: "GST", Status: model.DiscussionPending, AskedBy: "Member #5678", AskedAt: "2025-01-06", PendingDays: 4},
		{ID: "3", Title: "Income tax exemption query", Category: "Income Tax", Status: model.DiscussionAnswered, AskedBy: "Member #9012", AskedAt: "2025-01-09", PendingDays: 1},
		{ID: "4", Title: "Capital gains calculation", Category: "Capital Gains", Status: model.DiscussionResolved, AskedBy: "Member #3456", AskedAt: "2025-01-05", PendingDays: 0},
	}
}

// SeedMenuItems returns the initial site menu.
func SeedMenuItems() []model.MenuItem {
	return []model.MenuItem{
		{ID: "1", Title: "Home", Type: model.MenuItemStatic, Order: 1},
		{ID: "2", Title: "About", Type: model.MenuItemStatic, Order: 2},
		{ID: "3", Title: "Announcements", Type: model.MenuItemDynamic, Order: 3},
		{ID: "4", Title: "Events", Type: model.MenuItemDynamic, Order: 4},
		{ID: "5", Title: "Publications", Type: model.MenuItemDynamic, Order: 5},
		{ID: "6", Title: "Members", Type: model.MenuItemStatic, Order: 6},
		{ID: "7", Title: "Contact", Type: model.MenuItemStatic, Order: 7},
	}
}
