// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-admin/internal/store"
	"github.com/olegiv/ocms-admin/internal/version"
)

func TestHealth(t *testing.T) {
	h := NewHealthHandler(store.New(), version.Info{Version: "v1.2.0", GitCommit: "abc1234"})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var got HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "v1.2.0 (abc1234)", got.Version)
	assert.Len(t, got.Checks, 7)
	assert.Equal(t, 6, got.Checks["content"].Records)
	assert.Equal(t, 5, got.Checks["users"].Records)
	assert.Nil(t, got.System)
}

func TestHealth_Verbose(t *testing.T) {
	h := NewHealthHandler(store.New(), version.Info{})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health?verbose=true", nil))

	var got HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "dev", got.Version)
	require.NotNil(t, got.System)
	assert.NotEmpty(t, got.System.GoVersion)
	assert.Positive(t, got.System.NumGoroutine)
}

func TestHealth_Degraded(t *testing.T) {
	h := NewHealthHandler(store.New(), version.Info{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(ctx)

	rec := httptest.NewRecorder()
	h.Health(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var got HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "degraded", got.Status)
	assert.Equal(t, "unhealthy", got.Checks["events"].Status)
	assert.NotEmpty(t, got.Checks["events"].Message)
}
