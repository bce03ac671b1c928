// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package filter derives the displayed subset of a registry from a free-text
// query and categorical filters. Every function is pure and scans linearly;
// results keep registry order unless stated otherwise.
package filter

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/olegiv/ocms-admin/internal/model"
)

// All is the wildcard filter value. It never matches literally.
const All = "all"

// TopViewedLimit is how many items the dashboard's top viewed panel shows.
const TopViewedLimit = 5

// PageSizes are the activity log page sizes offered by the reports screen.
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is used when no valid page size is requested.
const DefaultPageSize = 25

// fold returns s case-folded for caseless comparison.
// A Caser keeps state, so one is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold reports whether query is a case-insensitive substring of s.
// An empty query matches everything.
func ContainsFold(s, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(fold(s), fold(query))
}

// MatchAny reports whether query is contained in any of fields.
func MatchAny(query string, fields ...string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	q := fold(query)
	for _, f := range fields {
		if strings.Contains(fold(f), q) {
			return true
		}
	}
	return false
}

// IsWildcard reports whether a categorical filter value selects everything.
func IsWildcard(value string) bool {
	return value == "" || value == All
}

// Equal reports whether value passes the categorical filter want.
func Equal[S ~string](want string, value S) bool {
	return IsWildcard(want) || string(value) == want
}

// Apply returns the items for which keep returns true, in order.
func Apply[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Take returns at most n leading items.
func Take[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// Content filters content by title/category query and exact status.
func Content(items []model.Content, query, status string) []model.Content {
	return Apply(items, func(c model.Content) bool {
		return MatchAny(query, c.Title, c.Category) && Equal(status, c.Status)
	})
}

// Events filters events by title/location query.
func Events(items []model.Event, query string) []model.Event {
	return Apply(items, func(e model.Event) bool {
		return MatchAny(query, e.Title, e.Location)
	})
}

// Forms filters forms by title query.
func Forms(items []model.Form, query string) []model.Form {
	return Apply(items, func(f model.Form) bool {
		return MatchAny(query, f.Title)
	})
}

// Users filters users by name/email query.
func Users(items []model.User, query string) []model.User {
	return Apply(items, func(u model.User) bool {
		return MatchAny(query, u.Name, u.Email)
	})
}

// Discussions filters discussions by title/category query.
func Discussions(items []model.Discussion, query string) []model.Discussion {
	return Apply(items, func(d model.Discussion) bool {
		return MatchAny(query, d.Title, d.Category)
	})
}

// Logs filters activity log entries whose action contains the action
// filter, case-insensitively. "all" or empty keeps every entry.
func Logs(items []model.Log, action string) []model.Log {
	if IsWildcard(action) {
		return items
	}
	return Apply(items, func(l model.Log) bool {
		return ContainsFold(l.Action, action)
	})
}

// TopViewed returns up to limit published items by descending views.
// Items with equal views keep registry order.
func TopViewed(items []model.Content, limit int) []model.Content {
	published := Apply(items, model.Content.IsPublished)
	slices.SortStableFunc(published, func(a, b model.Content) int {
		return cmp.Compare(b.Views, a.Views)
	})
	return Take(published, limit)
}

// PageSize parses a requested page size. Values not in PageSizes fall back
// to DefaultPageSize.
func PageSize(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !slices.Contains(PageSizes, n) {
		return DefaultPageSize
	}
	return n
}
