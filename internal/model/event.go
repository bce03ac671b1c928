// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// EventStatus is the lifecycle stage of an event. It is set by hand and
// has no enforced relation to the event dates.
type EventStatus string

// Event statuses.
const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
)

// EventStatuses lists all event statuses in display order.
var EventStatuses = []EventStatus{EventUpcoming, EventOngoing, EventCompleted}

// Registration is a single registrant attached to an event.
type Registration struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Event is a conference, workshop or webinar.
type Event struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"` // markdown
	Location         string         `json:"location"`
	StartDate        string         `json:"start_date"`
	EndDate          string         `json:"end_date"`
	StartTime        string         `json:"start_time,omitempty"`
	EndTime          string         `json:"end_time,omitempty"`
	Speaker          string         `json:"speaker"`
	RegistrationLink string         `json:"registration_link,omitempty"`
	LiveStreamLink   string         `json:"live_stream_link,omitempty"`
	Banner           FileRef        `json:"banner"`
	Status           EventStatus    `json:"status"`
	Registrations    []Registration `json:"registrations,omitempty"`
}

// RecordID returns the event id.
func (e Event) RecordID() string { return e.ID }

// WithID returns a copy of the event carrying id.
func (e Event) WithID(id string) Event {
	e.ID = id
	return e
}

// IsMultiDay reports whether the event ends on a different date than it starts.
func (e Event) IsMultiDay() bool {
	return e.EndDate != "" && e.EndDate != e.StartDate
}
