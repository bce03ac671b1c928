// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/ocms-admin/internal/auth"
	"github.com/olegiv/ocms-admin/internal/config"
	"github.com/olegiv/ocms-admin/internal/handler"
	"github.com/olegiv/ocms-admin/internal/metrics"
	"github.com/olegiv/ocms-admin/internal/middleware"
	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/service"
	"github.com/olegiv/ocms-admin/internal/session"
	"github.com/olegiv/ocms-admin/internal/store"
	"github.com/olegiv/ocms-admin/internal/version"
	"github.com/olegiv/ocms-admin/web"
)

// deps are the long-lived services the router is built from.
type deps struct {
	cfg       *config.Config
	store     *store.Store
	sessions  *session.Store
	renderer  *render.Renderer
	directory auth.Authenticator
	metrics   *metrics.Metrics
	version   version.Info
}

// crudHandlers defines the standard CRUD handler methods.
type crudHandlers struct {
	List     http.HandlerFunc
	NewForm  http.HandlerFunc
	Create   http.HandlerFunc
	EditForm http.HandlerFunc
	Update   http.HandlerFunc
	Delete   http.HandlerFunc
}

// registerCRUD registers the dialog routes of a list screen. Everything
// but the list is wrapped in manage.
// Routes: GET /, GET /new, POST /, GET /{id}, POST /{id}, POST /{id}/delete
func registerCRUD(r chi.Router, base, baseID string, h crudHandlers, manage func(http.Handler) http.Handler) {
	r.Get(base, h.List)
	r.Group(func(r chi.Router) {
		r.Use(manage)
		r.Get(base+handler.RouteSuffixNew, h.NewForm)
		r.Post(base, h.Create)
		r.Get(baseID, h.EditForm)
		r.Post(baseID, h.Update)
		r.Post(baseID+handler.RouteSuffixDelete, h.Delete)
	})
}

// gate returns the capability middleware for a screen.
func (d deps) gate(c auth.Capability) func(http.Handler) http.Handler {
	return middleware.RequireCapability(c, d.metrics)
}

func newRouter(d deps) (http.Handler, error) {
	persist := d.cfg.PersistEdits

	adminHandler := handler.NewAdminHandler(d.renderer, service.NewDashboard(d.store))
	authHandler := handler.NewAuthHandler(d.renderer, d.sessions, d.directory, d.metrics)
	contentHandler := handler.NewContentHandler(d.renderer, d.store.Content,
		service.NewWriter(d.store.Content, model.KindContent, persist, d.metrics))
	eventsHandler := handler.NewEventsHandler(d.renderer, d.store.Events,
		service.NewWriter(d.store.Events, model.KindEvent, persist, d.metrics))
	formsHandler := handler.NewFormsHandler(d.renderer, d.store.Forms,
		service.NewWriter(d.store.Forms, model.KindForm, persist, d.metrics))
	usersHandler := handler.NewUsersHandler(d.renderer, d.store.Users,
		service.NewWriter(d.store.Users, model.KindUser, persist, d.metrics))
	discussionsHandler := handler.NewDiscussionsHandler(d.renderer, d.store.Discussions,
		service.NewWriter(d.store.Discussions, model.KindDiscussion, persist, d.metrics))
	menuHandler := handler.NewMenuHandler(d.renderer, d.store.Menu,
		service.NewWriter(d.store.Menu, model.KindMenuItem, persist, d.metrics))
	reportsHandler := handler.NewReportsHandler(d.renderer, d.store.Logs)
	healthHandler := handler.NewHealthHandler(d.store, d.version)
	notFoundHandler := handler.NewNotFoundHandler(d.renderer, d.sessions)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("opening static assets: %w", err)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.GetHead)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(d.cfg.IsDevelopment())))
	r.Use(d.metrics.Middleware)
	r.Use(d.sessions.LoadAndSave)
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig(
		[]byte(d.cfg.SessionSecret), d.cfg.IsDevelopment(), d.cfg.ServerAddr())))

	r.Get(handler.RouteHealth, healthHandler.Health)
	r.Handle(handler.RouteMetrics, d.metrics.Handler())
	r.Handle(handler.RouteStatic, http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	r.Get(handler.RouteRoot, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, handler.RouteLogin, http.StatusSeeOther)
	})

	login := http.Handler(http.HandlerFunc(authHandler.Login))
	if d.cfg.LoginThrottleEnabled() {
		throttle := middleware.NewLoginThrottle(d.cfg.LoginRateLimit, d.cfg.LoginRateBurst, d.sessions, d.metrics)
		login = throttle.Middleware(login)
	}
	r.Get(handler.RouteLogin, authHandler.LoginForm)
	r.Method(http.MethodPost, handler.RouteLogin, login)
	r.Post(handler.RouteLogout, authHandler.Logout)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth(d.sessions))

		r.With(d.gate(auth.ViewDashboard)).Get(handler.RouteRoot, adminHandler.Dashboard)

		r.Group(func(r chi.Router) {
			r.Use(d.gate(auth.ViewContent))
			r.Get(handler.RouteContent, contentHandler.List)
			r.Group(func(r chi.Router) {
				r.Use(d.gate(auth.ManageContent))
				r.Get(handler.RouteContent+handler.RouteSuffixNew, contentHandler.NewForm)
				r.Post(handler.RouteContent, contentHandler.Create)
				r.Get(handler.RouteContentID, contentHandler.EditForm)
				r.Post(handler.RouteContentID, contentHandler.Update)
				r.Post(handler.RouteContentID+handler.RouteSuffixPublish, contentHandler.Publish)
				r.Post(handler.RouteContentID+handler.RouteSuffixUnpublish, contentHandler.Unpublish)
				r.Post(handler.RouteContentID+handler.RouteSuffixDelete, contentHandler.Delete)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(d.gate(auth.ViewEvents))
			r.Get(handler.RouteEventsID+handler.RouteSuffixRegistrations, eventsHandler.Registrations)
			r.Get(handler.RouteEventsID+handler.RouteSuffixRegistrationsCSV, eventsHandler.RegistrationsCSV)
			registerCRUD(r, handler.RouteEvents, handler.RouteEventsID, crudHandlers{
				List: eventsHandler.List, NewForm: eventsHandler.NewForm, Create: eventsHandler.Create,
				EditForm: eventsHandler.EditForm, Update: eventsHandler.Update, Delete: eventsHandler.Delete,
			}, d.gate(auth.ManageEvents))
		})

		r.Group(func(r chi.Router) {
			r.Use(d.gate(auth.ViewForms))
			manage := d.gate(auth.ManageForms)
			registerCRUD(r, handler.RouteForms, handler.RouteFormsID, crudHandlers{
				List: formsHandler.List, NewForm: formsHandler.NewForm, Create: formsHandler.Create,
				EditForm: formsHandler.EditForm, Update: formsHandler.Update, Delete: formsHandler.Delete,
			}, manage)
			r.With(manage).Post(handler.RouteFormsID+handler.RouteSuffixToggle, formsHandler.Toggle)
			r.With(manage).Post(handler.RouteFormsID+handler.RouteSuffixExport, formsHandler.Export)
		})

		r.Group(func(r chi.Router) {
			r.Use(d.gate(auth.ViewUsers))
			manage := d.gate(auth.ManageUsers)
			registerCRUD(r, handler.RouteUsers, handler.RouteUsersID, crudHandlers{
				List: usersHandler.List, NewForm: usersHandler.NewForm, Create: usersHandler.Create,
				EditForm: usersHandler.EditForm, Update: usersHandler.Update, Delete: usersHandler.Delete,
			}, manage)
			r.Get(handler.RouteUsersID+handler.RouteSuffixView, usersHandler.View)
			r.With(manage).Post(handler.RouteUsersID+handler.RouteSuffixToggle, usersHandler.Toggle)
		})

		r.Group(func(r chi.Router) {
			r.Use(d.gate(auth.ViewDiscussions))
			r.Get(handler.RouteDiscussions, discussionsHandler.List)
			r.With(d.gate(auth.ManageDiscussions)).Post(handler.RouteDiscussionsID+handler.RouteSuffixAssign, discussionsHandler.Assign)
			r.With(d.gate(auth.ManageDiscussions)).Post(handler.RouteDiscussionsID+handler.RouteSuffixApprove, discussionsHandler.Approve)
		})

		r.Group(func(r chi.Router) {
			r.Use(d.gate(auth.ViewReports))
			r.Get(handler.RouteReports, reportsHandler.List)
			r.Get(handler.RouteReports+handler.RouteSuffixExport, reportsHandler.Export)
		})

		r.Group(func(r chi.Router) {
			r.Use(d.gate(auth.ViewMenu))
			r.Get(handler.RouteMenu, menuHandler.List)
			r.With(d.gate(auth.ManageMenu)).Post(handler.RouteMenuID+handler.RouteSuffixDelete, menuHandler.Delete)
		})
	})

	r.NotFound(notFoundHandler.ServeHTTP)

	return r, nil
}
