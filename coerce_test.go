package datacontract_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	dc "github.com/reoring/datacontract"
)

func TestCoerce(t *testing.T) {
	day := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		typ  dc.SemanticType
		in   any
		want any
	}{
		{dc.TypeString, "x", "x"},
		{dc.TypeString, int32(7), "7"},
		{dc.TypeString, 2.5, "2.5"},
		{dc.TypeString, true, "true"},
		{dc.TypeInteger, " 42 ", int64(42)},
		{dc.TypeInteger, "42.0", int64(42)},
		{dc.TypeInteger, 3.0, int64(3)},
		{dc.TypeInteger, uint16(9), int64(9)},
		{dc.TypeInteger, json.Number("-5"), int64(-5)},
		{dc.TypeFloat, "1e3", 1000.0},
		{dc.TypeFloat, int64(2), 2.0},
		{dc.TypeFloat, float32(0.5), 0.5},
		{dc.TypeBoolean, "Yes", true},
		{dc.TypeBoolean, "f", false},
		{dc.TypeBoolean, int64(1), true},
		{dc.TypeDateTime, "2024-02-29T10:00:00Z", time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)},
		{dc.TypeDate, "2024-02-29", day},
		{dc.TypeDate, "2024-02-29T23:30:00-05:00", day},
		{dc.TypeDate, time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC), day},
	}
	for _, tc := range cases {
		got, err := dc.Coerce(tc.typ, tc.in)
		if err != nil {
			t.Fatalf("Coerce(%s, %#v): %v", tc.typ, tc.in, err)
		}
		if tm, ok := tc.want.(time.Time); ok {
			if g, ok := got.(time.Time); !ok || !g.Equal(tm) {
				t.Fatalf("Coerce(%s, %#v) = %v, want %v", tc.typ, tc.in, got, tm)
			}
			continue
		}
		if got != tc.want {
			t.Fatalf("Coerce(%s, %#v) = %#v, want %#v", tc.typ, tc.in, got, tc.want)
		}
	}
}

func TestCoerce_Rejects(t *testing.T) {
	cases := []struct {
		typ dc.SemanticType
		in  any
	}{
		{dc.TypeString, nil},
		{dc.TypeString, []any{"a"}},
		{dc.TypeInteger, "4.5"},
		{dc.TypeInteger, "abc"},
		{dc.TypeInteger, uint64(math.MaxUint64)},
		{dc.TypeInteger, math.Inf(1)},
		{dc.TypeInteger, true},
		{dc.TypeFloat, "1,5"},
		{dc.TypeFloat, false},
		{dc.TypeBoolean, "maybe"},
		{dc.TypeBoolean, int64(2)},
		{dc.TypeBoolean, 1.0},
		{dc.TypeDateTime, "yesterday"},
		{dc.TypeDateTime, int64(1700000000)},
		{dc.TypeDate, "2024-02-30"},
		{dc.SemanticType("decimal"), "1"},
	}
	for _, tc := range cases {
		if got, err := dc.Coerce(tc.typ, tc.in); err == nil {
			t.Fatalf("Coerce(%s, %#v) = %#v, expected an error", tc.typ, tc.in, got)
		}
	}
}

func TestIsNull(t *testing.T) {
	for _, v := range []any{nil, math.NaN(), float32(math.NaN())} {
		if !dc.IsNull(v) {
			t.Fatalf("expected %#v to be null", v)
		}
	}
	for _, v := range []any{"", 0, false, "NaN"} {
		if dc.IsNull(v) {
			t.Fatalf("expected %#v not to be null", v)
		}
	}
}

func TestParseSemanticType(t *testing.T) {
	for in, want := range map[string]dc.SemanticType{
		" DateTime ": dc.TypeDateTime,
		"INTEGER":    dc.TypeInteger,
		"date":       dc.TypeDate,
	} {
		if st, ok := dc.ParseSemanticType(in); !ok || st != want {
			t.Fatalf("ParseSemanticType(%q) = %q %v", in, st, ok)
		}
	}
	if _, ok := dc.ParseSemanticType("decimal"); ok {
		t.Fatalf("decimal must be unsupported")
	}
}
