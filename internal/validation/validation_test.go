// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/store"
)

func TestValidate_Content(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category string
		want     []string
	}{
		{"both set", "GST Update", "News", nil},
		{"empty title", "", "News", []string{"title"}},
		{"empty category", "GST Update", "", []string{"category"}},
		{"both empty", "", "", []string{"title", "category"}},
		{"whitespace only", "   ", "\t", []string{"title", "category"}},
		{"single char", "a", "b", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(model.KindContent, model.Content{Title: tt.title, Category: tt.category})
			if tt.want == nil {
				assert.True(t, errs.Empty(), "unexpected errors: %v", errs)
				return
			}
			assert.Len(t, errs, len(tt.want))
			for _, field := range tt.want {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidate_ContentPointer(t *testing.T) {
	errs := Validate(model.KindContent, &model.Content{Title: "x"})
	assert.Equal(t, Errors{"category": "Category is required"}, errs)
}

func TestValidate_KindsWithoutRulesAcceptAnything(t *testing.T) {
	kinds := map[model.Kind]any{
		model.KindEvent:      model.Event{},
		model.KindForm:       model.Form{},
		model.KindUser:       model.User{},
		model.KindDiscussion: model.Discussion{},
		model.KindMenuItem:   model.MenuItem{},
	}
	for kind, rec := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			assert.True(t, Validate(kind, rec).Empty())
		})
	}
}

func TestErrors_IsValidation(t *testing.T) {
	var err error = Errors{"title": "Title is required"}
	assert.True(t, errors.Is(err, store.ErrValidation))
	assert.Contains(t, err.Error(), "1 field(s) invalid")
}

func TestValidator(t *testing.T) {
	v := Validator[model.Content](model.KindContent)
	assert.False(t, v(model.Content{}).Empty())
	assert.True(t, v(model.Content{Title: "t", Category: "c"}).Empty())
}
