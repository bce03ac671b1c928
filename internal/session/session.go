// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session keeps the signed-in identity and one-shot flash messages
// in a server-side scs session.
package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"

	"github.com/olegiv/ocms-admin/internal/model"
)

// Session keys.
const (
	keyName      = "identity_name"
	keyEmail     = "identity_email"
	keyRole      = "identity_role"
	keyFlash     = "flash"
	keyFlashType = "flash_type"
)

// Flash types.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// DefaultLifetime is used when no lifetime is configured.
const DefaultLifetime = 24 * time.Hour

// Store wraps an scs.SessionManager with identity and flash helpers.
type Store struct {
	Manager *scs.SessionManager
}

// New creates a Store backed by an in-process memstore. Production mode
// marks the cookie Secure and uses the __Host- prefix.
func New(lifetime time.Duration, isDev bool) *Store {
	sm := scs.New()
	sm.Store = memstore.New()

	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	sm.Lifetime = lifetime
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"
	sm.Cookie.Secure = !isDev
	if !isDev {
		sm.Cookie.Name = "__Host-session"
	}

	return &Store{Manager: sm}
}

// LoadAndSave is the middleware that loads and commits session data.
func (s *Store) LoadAndSave(next http.Handler) http.Handler {
	return s.Manager.LoadAndSave(next)
}

// Login stores id in the session under a fresh token.
func (s *Store) Login(ctx context.Context, id model.Identity) error {
	if err := s.Manager.RenewToken(ctx); err != nil {
		return fmt.Errorf("renewing session token: %w", err)
	}
	s.Manager.Put(ctx, keyName, id.Name)
	s.Manager.Put(ctx, keyEmail, id.Email)
	s.Manager.Put(ctx, keyRole, string(id.Role))
	return nil
}

// Identity returns the signed-in identity, or the anonymous identity.
func (s *Store) Identity(ctx context.Context) model.Identity {
	email := s.Manager.GetString(ctx, keyEmail)
	if email == "" {
		return model.Identity{}
	}
	return model.Identity{
		Name:  s.Manager.GetString(ctx, keyName),
		Email: email,
		Role:  model.Role(s.Manager.GetString(ctx, keyRole)),
	}
}

// Logout destroys the session unconditionally.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.Manager.Destroy(ctx); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}
	return nil
}

// Flash stores a message shown on the next rendered page.
func (s *Store) Flash(ctx context.Context, message, kind string) {
	s.Manager.Put(ctx, keyFlash, message)
	s.Manager.Put(ctx, keyFlashType, kind)
}

// PopFlash returns and clears the pending flash message. The kind defaults
// to info.
func (s *Store) PopFlash(ctx context.Context) (message, kind string) {
	message = s.Manager.PopString(ctx, keyFlash)
	if message == "" {
		return "", ""
	}
	kind = s.Manager.PopString(ctx, keyFlashType)
	if kind == "" {
		kind = FlashInfo
	}
	return message, kind
}
