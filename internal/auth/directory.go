// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"fmt"

	"github.com/olegiv/ocms-admin/internal/model"
)

// Authenticator resolves sign-in credentials to an identity.
type Authenticator interface {
	// Authenticate returns the identity for identifier/secret, or false.
	Authenticate(ctx context.Context, identifier, secret string) (model.Identity, bool)
}

// Credential is one built-in account.
type Credential struct {
	Identifier string
	Secret     string
	Name       string
	Role       model.Role
}

// DefaultCredentials are the three built-in accounts, one per role.
var DefaultCredentials = []Credential{
	{Identifier: "admin@icai.org", Secret: "admin", Name: "Admin User", Role: model.RoleAdmin},
	{Identifier: "editor@icai.org", Secret: "editor", Name: "Editor User", Role: model.RoleEditor},
	{Identifier: "moderator@icai.org", Secret: "moderator", Name: "Moderator User", Role: model.RoleModerator},
}

type entry struct {
	identity model.Identity
	hash     string
}

// Directory is a fixed, in-process credential table. Secrets are kept only
// as argon2id hashes. It is read-only after construction.
type Directory struct {
	entries map[string]entry
	// dummy is verified against when the identifier is unknown so both
	// paths cost one argon2 derivation.
	dummy string
}

var _ Authenticator = (*Directory)(nil)

// NewDirectory hashes creds and returns a Directory holding them.
// Identifiers are matched exactly.
func NewDirectory(creds []Credential) (*Directory, error) {
	d := &Directory{entries: make(map[string]entry, len(creds))}
	for _, c := range creds {
		if !c.Role.Valid() {
			return nil, fmt.Errorf("credential %q: unknown role %q", c.Identifier, c.Role)
		}
		hash, err := HashSecret(c.Secret)
		if err != nil {
			return nil, fmt.Errorf("hashing secret for %q: %w", c.Identifier, err)
		}
		d.entries[c.Identifier] = entry{
			identity: model.Identity{Name: c.Name, Email: c.Identifier, Role: c.Role},
			hash:     hash,
		}
	}
	dummy, err := HashSecret("unknown-identifier")
	if err != nil {
		return nil, fmt.Errorf("hashing placeholder: %w", err)
	}
	d.dummy = dummy
	return d, nil
}

// Authenticate implements Authenticator.
func (d *Directory) Authenticate(ctx context.Context, identifier, secret string) (model.Identity, bool) {
	if ctx.Err() != nil {
		return model.Identity{}, false
	}
	e, ok := d.entries[identifier]

	hash := e.hash
	if !ok {
		hash = d.dummy
	}
	match, err := VerifySecret(secret, hash)
	if err != nil || !match || !ok {
		return model.Identity{}, false
	}
	return e.identity, true
}
