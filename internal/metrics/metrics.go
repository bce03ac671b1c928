// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics exposes Prometheus counters for the admin panel.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ocms_admin"

// Metrics holds the collectors and the private registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	logins       *prometheus.CounterVec
	accessDenied *prometheus.CounterVec
	mutations    *prometheus.CounterVec
}

// New creates and registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Total number of sign-in attempts by result.",
		}, []string{"result"}),
		accessDenied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_denied_total",
			Help:      "Total number of requests rejected by the role gate.",
		}, []string{"role"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Total number of confirmed record changes by kind and action.",
		}, []string{"kind", "action", "persisted"}),
	}
	m.registry.MustRegister(
		m.requests, m.logins, m.accessDenied, m.mutations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// The recording methods below are no-ops on a nil *Metrics.

// LoginSucceeded counts a successful sign-in.
func (m *Metrics) LoginSucceeded() { m.login("success") }

// LoginFailed counts a rejected sign-in.
func (m *Metrics) LoginFailed() { m.login("failure") }

// LoginThrottled counts a sign-in refused by the rate limiter.
func (m *Metrics) LoginThrottled() { m.login("throttled") }

func (m *Metrics) login(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

// AccessDenied counts a request rejected for role.
func (m *Metrics) AccessDenied(role string) {
	if m == nil {
		return
	}
	if role == "" {
		role = "anonymous"
	}
	m.accessDenied.WithLabelValues(role).Inc()
}

// Mutation counts a confirmed change to a record.
func (m *Metrics) Mutation(kind, action string, persisted bool) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(kind, action, strconv.FormatBool(persisted)).Inc()
}

// Middleware counts requests by chi route pattern. Unmatched paths are
// grouped under "unmatched" to keep label cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}
