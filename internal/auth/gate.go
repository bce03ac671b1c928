// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"slices"

	"github.com/olegiv/ocms-admin/internal/model"
)

// Capability names something a role may do.
type Capability string

// View capabilities, one per navigation destination.
const (
	ViewDashboard   Capability = "dashboard:view"
	ViewContent     Capability = "content:view"
	ViewEvents      Capability = "events:view"
	ViewForms       Capability = "forms:view"
	ViewDiscussions Capability = "discussions:view"
	ViewUsers       Capability = "users:view"
	ViewReports     Capability = "reports:view"
	ViewMenu        Capability = "menu:view"
)

// Manage capabilities guard mutations.
const (
	ManageContent     Capability = "content:manage"
	ManageEvents      Capability = "events:manage"
	ManageForms       Capability = "forms:manage"
	ManageDiscussions Capability = "discussions:manage"
	ManageUsers       Capability = "users:manage"
	ManageReports     Capability = "reports:manage"
	ManageMenu        Capability = "menu:manage"
)

// Destination is one sidebar entry.
type Destination struct {
	Title  string
	Path   string
	Icon   string
	View   Capability
	Manage Capability
	Roles  []model.Role
}

// Allows reports whether role may open the destination.
func (d Destination) Allows(role model.Role) bool {
	return slices.Contains(d.Roles, role)
}

var (
	allRoles       = []model.Role{model.RoleAdmin, model.RoleEditor, model.RoleModerator}
	adminEditor    = []model.Role{model.RoleAdmin, model.RoleEditor}
	adminModerator = []model.Role{model.RoleAdmin, model.RoleModerator}
	adminOnly      = []model.Role{model.RoleAdmin}
)

// Destinations lists the sidebar in display order.
var Destinations = []Destination{
	{Title: "Dashboard", Path: "/admin", Icon: "dashboard", View: ViewDashboard, Roles: allRoles},
	{Title: "Content", Path: "/admin/content", Icon: "file-text", View: ViewContent, Manage: ManageContent, Roles: adminEditor},
	{Title: "Events", Path: "/admin/events", Icon: "calendar", View: ViewEvents, Manage: ManageEvents, Roles: adminEditor},
	{Title: "Forms", Path: "/admin/forms", Icon: "clipboard", View: ViewForms, Manage: ManageForms, Roles: adminEditor},
	{Title: "Discussions", Path: "/admin/discussions", Icon: "message", View: ViewDiscussions, Manage: ManageDiscussions, Roles: adminModerator},
	{Title: "Users", Path: "/admin/users", Icon: "users", View: ViewUsers, Manage: ManageUsers, Roles: adminOnly},
	{Title: "Reports", Path: "/admin/reports", Icon: "chart", View: ViewReports, Manage: ManageReports, Roles: adminModerator},
	{Title: "Menu Manager", Path: "/admin/menu", Icon: "menu", View: ViewMenu, Manage: ManageMenu, Roles: adminOnly},
}

// grants is derived from Destinations so the sidebar and the route gate
// cannot disagree.
var grants = buildGrants()

func buildGrants() map[model.Role]map[Capability]bool {
	g := make(map[model.Role]map[Capability]bool, len(allRoles))
	for _, r := range allRoles {
		g[r] = make(map[Capability]bool)
	}
	for _, d := range Destinations {
		for _, r := range d.Roles {
			g[r][d.View] = true
			if d.Manage != "" {
				g[r][d.Manage] = true
			}
		}
	}
	return g
}

// Can reports whether role holds capability. Unknown roles hold nothing.
func Can(role model.Role, c Capability) bool {
	return grants[role][c]
}

// NavFor returns the destinations visible to role, in sidebar order.
func NavFor(role model.Role) []Destination {
	var out []Destination
	for _, d := range Destinations {
		if d.Allows(role) {
			out = append(out, d)
		}
	}
	return out
}
