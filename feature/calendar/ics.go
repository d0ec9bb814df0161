package calendar

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// icsTimestamp is the UTC instant layout ICS uses (YYYYMMDDThhmmssZ).
const icsTimestamp = "20060102T150405Z"

// NewEventUID generates an uppercase hex UID for a new event.
func NewEventUID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// BuildEventICS renders a single-VEVENT calendar object. ICS requires CRLF
// line endings, and literal newlines in the description must be escaped.
func BuildEventICS(uid, summary, dtstartZ, dtendZ, description string, dtstamp time.Time) string {
	desc := strings.ReplaceAll(description, "\n", "\\n")
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//CalDAV Bridge//EN",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"UID:" + uid + "@caldav-bridge",
		"DTSTAMP:" + dtstamp.UTC().Format(icsTimestamp),
		"DTSTART:" + dtstartZ,
		"DTEND:" + dtendZ,
		"SUMMARY:" + summary,
		"DESCRIPTION:" + desc,
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}
	return strings.Join(lines, "\r\n")
}
