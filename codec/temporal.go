// Package codec converts between the wire representation of temporal values
// and time.Time. Every function is total: it either returns a value or an
// error describing why the input was rejected.
package codec

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
)

// dateTimeLayouts are tried in order. Layouts without a zone parse as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	DateLayout,
}

// ParseDateTime parses s as a timestamp.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty datetime")
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// ParseDate parses s as a calendar date. Full timestamps are accepted and
// truncated to the date they name.
func ParseDate(s string) (time.Time, error) {
	t, err := ParseDateTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", strings.TrimSpace(s))
	}
	return TruncateDate(t), nil
}

// TruncateDate drops the clock, keeping the calendar date as written, and
// returns midnight UTC of that date.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDateTime renders t using RFC3339Nano in UTC (Go trims trailing zeros).
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatDate renders the calendar date of t.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }
