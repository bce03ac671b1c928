// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olegiv/ocms-admin/internal/session"
)

func TestLimiterCache_ReusesLimiter(t *testing.T) {
	lc := newLimiterCache[string](1, 2)
	assert.Same(t, lc.get("a"), lc.get("a"))
	assert.NotSame(t, lc.get("a"), lc.get("b"))
}

func TestLoginThrottle(t *testing.T) {
	sessions := session.New(0, true)
	lt := NewLoginThrottle(0.001, 2, sessions, nil)
	h := sessions.LoadAndSave(lt.Middleware(okHandler))

	post := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, post("10.0.0.1:2222"))
	assert.Equal(t, http.StatusSeeOther, post("10.0.0.1:3333"), "third attempt from the same IP is refused")
	assert.Equal(t, http.StatusOK, post("10.0.0.2:1111"), "other clients are unaffected")
}

func TestLoginThrottle_IgnoresGet(t *testing.T) {
	sessions := session.New(0, true)
	lt := NewLoginThrottle(0.001, 1, sessions, nil)
	h := sessions.LoadAndSave(lt.Middleware(okHandler))

	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:5555"
	assert.Equal(t, "192.168.1.1", ClientIP(req))

	req.RemoteAddr = "192.168.1.1"
	assert.Equal(t, "192.168.1.1", ClientIP(req))
}
