// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"
	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"

	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteHealth is the health check route.
	RouteHealth = "/health"
	// RouteMetrics is the Prometheus scrape route.
	RouteMetrics = "/metrics"
	// RouteStatic is the embedded stylesheet route prefix.
	RouteStatic = "/static/*"

	// RouteContent is the content admin route.
	RouteContent = "/content"
	// RouteEvents is the events admin route.
	RouteEvents = "/events"
	// RouteForms is the forms admin route.
	RouteForms = "/forms"
	// RouteUsers is the users admin route.
	RouteUsers = "/users"
	// RouteDiscussions is the discussions admin route.
	RouteDiscussions = "/discussions"
	// RouteReports is the reports admin route.
	RouteReports = "/reports"
	// RouteMenu is the menu manager route.
	RouteMenu = "/menu"

	RouteContentID     = RouteContent + RouteParamID
	RouteEventsID      = RouteEvents + RouteParamID
	RouteFormsID       = RouteForms + RouteParamID
	RouteUsersID       = RouteUsers + RouteParamID
	RouteDiscussionsID = RouteDiscussions + RouteParamID
	RouteMenuID        = RouteMenu + RouteParamID

	// Row action suffixes.
	RouteSuffixPublish          = "/publish"
	RouteSuffixUnpublish        = "/unpublish"
	RouteSuffixDelete           = "/delete"
	RouteSuffixToggle           = "/toggle"
	RouteSuffixExport           = "/export"
	RouteSuffixView             = "/view"
	RouteSuffixAssign           = "/assign"
	RouteSuffixApprove          = "/approve"
	RouteSuffixRegistrations    = "/registrations"
	RouteSuffixRegistrationsCSV = "/registrations.csv"
)

const (
	redirectLogin            = RouteLogin
	redirectAdmin            = "/admin"
	redirectAdminContent     = redirectAdmin + RouteContent
	redirectAdminEvents      = redirectAdmin + RouteEvents
	redirectAdminForms       = redirectAdmin + RouteForms
	redirectAdminUsers       = redirectAdmin + RouteUsers
	redirectAdminDiscussions = redirectAdmin + RouteDiscussions
	redirectAdminReports     = redirectAdmin + RouteReports
	redirectAdminMenu        = redirectAdmin + RouteMenu
)

// HeaderContentType is the Content-Type HTTP header name.
const HeaderContentType = "Content-Type"

// maxFormMemory bounds the multipart form kept in memory. File parts are
// reduced to their metadata and the bytes discarded.
const maxFormMemory = 32 << 20
