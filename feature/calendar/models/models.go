package models

import "caldav-bridge/core/dav"

// TimeRange selects VEVENTs between two UTC instants (YYYYMMDDThhmmssZ).
type TimeRange struct {
	CalendarHref string `json:"calendar_href"`
	StartZ       string `json:"start_z"`
	EndZ         string `json:"end_z"`
}

// CreateEvent describes a new VEVENT to upload.
type CreateEvent struct {
	CalendarHref string `json:"calendar_href"`
	Summary      string `json:"summary"`
	DTStartZ     string `json:"dtstart_z"`
	DTEndZ       string `json:"dtend_z"`
	Description  string `json:"description,omitempty"`
	UID          string `json:"uid,omitempty"`
}

// DeleteEvent names the calendar object to remove by its href.
type DeleteEvent struct {
	Href string `json:"href"`
}

// HealthResponse is the health check reply.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// PrincipalResponse carries the discovered principal href.
type PrincipalResponse struct {
	PrincipalHref string `json:"principalHref"`
}

// HomeResponse carries the discovered calendar home href.
type HomeResponse struct {
	CalendarHome string `json:"calendarHome"`
}

// CalendarsResponse lists the calendars under the home collection.
type CalendarsResponse struct {
	Home  string            `json:"home"`
	Items []dav.CalendarRef `json:"items"`
}

// EventsResponse lists calendar objects matched by a time-range query.
type EventsResponse struct {
	Items []dav.CalendarObject `json:"items"`
}

// CreateResponse reports the uploaded event's identity.
type CreateResponse struct {
	OK   bool   `json:"ok"`
	UID  string `json:"uid"`
	Href string `json:"href"`
}

// DeleteResponse acknowledges a deletion.
type DeleteResponse struct {
	OK bool `json:"ok"`
}
