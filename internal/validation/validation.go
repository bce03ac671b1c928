// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package validation holds the per-entity field rules applied when a modal
// is confirmed.
package validation

import (
	"fmt"
	"strings"

	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/store"
)

// Errors maps form field names to a human readable message.
type Errors map[string]string

// Empty reports whether no field failed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Error implements error so a failed confirmation can be returned as one.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation passed"
	}
	return fmt.Errorf("%d field(s) invalid: %w", len(e), store.ErrValidation).Error()
}

// Unwrap lets errors.Is match store.ErrValidation.
func (e Errors) Unwrap() error {
	return store.ErrValidation
}

// Field reads a single named value from a record being validated.
type Field func(rec any) string

// Rule checks one field.
type Rule struct {
	Field   string
	Value   Field
	Check   func(string) bool
	Message string
}

// Required builds a rule rejecting empty or whitespace-only values.
func Required(field, message string, value Field) Rule {
	return Rule{
		Field:   field,
		Value:   value,
		Check:   func(s string) bool { return strings.TrimSpace(s) != "" },
		Message: message,
	}
}

// Rules is the rule table keyed by entity kind. Kinds with no entry accept
// any input, including empty strings.
var Rules = map[model.Kind][]Rule{
	model.KindContent: {
		Required("title", "Title is required", func(rec any) string { return asContent(rec).Title }),
		Required("category", "Category is required", func(rec any) string { return asContent(rec).Category }),
	},
}

func asContent(rec any) model.Content {
	switch c := rec.(type) {
	case model.Content:
		return c
	case *model.Content:
		return *c
	}
	return model.Content{}
}

// Validate applies the rules registered for kind to rec. The first failing
// rule per field wins.
func Validate(kind model.Kind, rec any) Errors {
	errs := Errors{}
	for _, r := range Rules[kind] {
		if _, seen := errs[r.Field]; seen {
			continue
		}
		if !r.Check(r.Value(rec)) {
			errs[r.Field] = r.Message
		}
	}
	return errs
}

// Validator returns a validation function bound to kind, suitable for a
// modal controller.
func Validator[T any](kind model.Kind) func(T) Errors {
	return func(rec T) Errors {
		return Validate(kind, rec)
	}
}
