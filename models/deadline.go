package models

import (
	"strings"
	"time"
)

// Deadline is the parsed-or-raw variant of a record's deadline string.
// Extraction returns deadlines verbatim, so a record may carry free text that
// is not a date at all. Valid=false keeps the raw string for display and
// excludes the record from reminders and deadline-sort reordering.
type Deadline struct {
	Raw   string
	Time  time.Time
	Valid bool
}

// deadlineLayouts are tried in order. ISO-8601 first, then the close variants
// the extraction model is known to produce.
var deadlineLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDeadline attempts to interpret raw as a date. It never fails; an
// uninterpretable value comes back with Valid=false.
func ParseDeadline(raw string) Deadline {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Deadline{Raw: raw}
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Deadline{Raw: raw, Time: t, Valid: true}
		}
	}
	return Deadline{Raw: raw}
}

// ExpiredAt reports whether the deadline has passed at the given instant.
// An unparseable deadline is never expired.
func (d Deadline) ExpiredAt(now time.Time) bool {
	return d.Valid && d.Time.Before(now)
}

// Until returns the time remaining at the given instant.
// The second return is false when the deadline is unparseable.
func (d Deadline) Until(now time.Time) (time.Duration, bool) {
	if !d.Valid {
		return 0, false
	}
	return d.Time.Sub(now), true
}
