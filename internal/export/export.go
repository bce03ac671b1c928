// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package export writes the CSV downloads offered by the admin screens.
// Fields are quoted only when they contain a delimiter, quote or line
// break, as RFC 4180 requires.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olegiv/ocms-admin/internal/model"
	"github.com/olegiv/ocms-admin/internal/util"
)

// Format is a requested export format.
type Format string

// Export formats offered by the Reports screen. Only CSV is produced.
const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

// ErrUnsupportedFormat is returned for formats that have no writer.
var ErrUnsupportedFormat = errors.New("export format not supported")

// ParseFormat normalises a format name from a request.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatExcel, FormatPDF:
		return f, fmt.Errorf("%s: %w", strings.ToUpper(string(f)), ErrUnsupportedFormat)
	default:
		return f, fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
	}
}

// LogHeader is the first row of an activity log export.
var LogHeader = []string{"Timestamp", "Action", "User", "Details"}

// RegistrationsFilename returns the download name for an event's
// registration list.
func RegistrationsFilename(eventTitle string) string {
	return "registrations-" + util.Slugify(eventTitle) + ".csv"
}

// LogsFilename returns the download name for an activity log export.
func LogsFilename(date string) string {
	return "activity-logs-" + date + ".csv"
}

// WriteRegistrations writes one name,email,phone line per registration
// with no header row.
func WriteRegistrations(w io.Writer, regs []model.Registration) error {
	cw := csv.NewWriter(w)
	for _, reg := range regs {
		if err := cw.Write([]string{reg.Name, reg.Email, reg.Phone}); err != nil {
			return fmt.Errorf("writing registration %q: %w", reg.Email, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing registrations: %w", err)
	}
	return nil
}

// WriteLogs writes a header row followed by one line per log entry.
func WriteLogs(w io.Writer, logs []model.Log) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(LogHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, l := range logs {
		if err := cw.Write([]string{l.Timestamp, l.Action, l.User, l.Details}); err != nil {
			return fmt.Errorf("writing log %q: %w", l.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing logs: %w", err)
	}
	return nil
}
