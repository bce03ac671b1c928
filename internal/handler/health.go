// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/store"
	"github.com/olegiv/ocms-admin/internal/version"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	registries map[string]func(ctx context.Context) (int, error)
	version    version.Info
	startTime  time.Time
}

// NewHealthHandler creates a new health handler reporting on every
// registry of s.
func NewHealthHandler(s *store.Store, info version.Info) *HealthHandler {
	return &HealthHandler{
		registries: map[string]func(ctx context.Context) (int, error){
			"content":     counter[model.Content](s.Content),
			"events":      counter[model.Event](s.Events),
			"forms":       counter[model.Form](s.Forms),
			"users":       counter[model.User](s.Users),
			"discussions": counter[model.Discussion](s.Discussions),
			"logs":        counter[model.Log](s.Logs),
			"menu":        counter[model.MenuItem](s.Menu),
		},
		version:   info,
		startTime: time.Now(),
	}
}

func counter[T any](repo store.Repository[T]) func(ctx context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		items, err := repo.List(ctx)
		return len(items), err
	}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
	Message string `json:"message,omitempty"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version.String(),
		Checks:    make(map[string]Check, len(h.registries)),
	}

	for name, count := range h.registries {
		n, err := count(r.Context())
		if err != nil {
			status.Status = "degraded"
			status.Checks[name] = Check{Status: "unhealthy", Message: err.Error()}
			continue
		}
		status.Checks[name] = Check{Status: "healthy", Records: n}
	}

	if r.URL.Query().Get("verbose") == "true" {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		status.System = &SystemInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAlloc:     m.Alloc,
		}
	}

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}
