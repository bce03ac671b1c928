// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"github.com/mileusna/useragent"
)

// DescribeClient returns a short "Browser on OS" description of a
// User-Agent header for audit entries.
func DescribeClient(uaString string) string {
	ua := useragent.Parse(uaString)

	browser, os := ua.Name, ua.OS
	if browser == "" {
		browser = "Unknown browser"
	}
	if os == "" {
		os = "unknown OS"
	}
	desc := browser + " on " + os
	if ua.Bot {
		desc += " (bot)"
	}
	return desc
}
