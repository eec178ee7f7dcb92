package codec

import (
	"testing"
	"time"
)

func TestParseDateTime_Layouts(t *testing.T) {
	want := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, in := range []string{
		"2025-01-02T03:04:05Z",
		"2025-01-02T03:04:05",
		"2025-01-02 03:04:05",
		" 2025-01-02T03:04:05+00:00 ",
	} {
		got, err := ParseDateTime(in)
		if err != nil {
			t.Fatalf("%q: unexpected err: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%q: got %v, want %v", in, got, want)
		}
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2025-13-01", "01/02/2025"} {
		if _, err := ParseDateTime(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestParseDate_TruncatesClock(t *testing.T) {
	got, err := ParseDate("2025-03-04T23:30:00-05:00")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !got.Equal(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", got)
	}
	if FormatDate(got) != "2025-03-04" {
		t.Fatalf("unexpected format: %s", FormatDate(got))
	}
}

func TestFormatDateTime_UTC(t *testing.T) {
	loc := time.FixedZone("x", 2*3600)
	in := time.Date(2025, 1, 1, 2, 0, 0, 0, loc)
	if s := FormatDateTime(in); s != "2025-01-01T00:00:00Z" {
		t.Fatalf("unexpected output: %q", s)
	}
}
