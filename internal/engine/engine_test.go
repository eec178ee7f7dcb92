package engine_test

import (
	"errors"
	"strings"
	"testing"

	dc "github.com/reoring/datacontract"
	eng "github.com/reoring/datacontract/internal/engine"
)

func TestDecode_PreservesKeyOrderAndNumbers(t *testing.T) {
	v, err := eng.Decode(eng.NewReader(strings.NewReader(`{"b": 1, "a": 2.5, "c": [true, null, "x"]}`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o, ok := v.(*dc.Object)
	if !ok {
		t.Fatalf("expected *Object, got %T", v)
	}
	if got := strings.Join(o.Keys(), ","); got != "b,a,c" {
		t.Fatalf("key order: %s", got)
	}
	if b, _ := o.Get("b"); b != int64(1) {
		t.Fatalf("b: %#v", b)
	}
	if a, _ := o.Get("a"); a != 2.5 {
		t.Fatalf("a: %#v", a)
	}
	c, _ := o.Get("c")
	arr, ok := c.([]any)
	if !ok || len(arr) != 3 || arr[0] != true || arr[1] != nil || arr[2] != "x" {
		t.Fatalf("c: %#v", c)
	}
}

func TestNumber_LargeIntegerFallsBackToFloat(t *testing.T) {
	v, err := eng.Number("1e3")
	if err != nil || v != float64(1000) {
		t.Fatalf("1e3: %#v %v", v, err)
	}
	v, err = eng.Number("99999999999999999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(float64); !ok {
		t.Fatalf("expected float64, got %T", v)
	}
}

func TestEnforce_DuplicateKeyWarnKeepsLast(t *testing.T) {
	var got []dc.Issue
	src := eng.WrapWithEnforcement(eng.NewReader(strings.NewReader(`[{"a":1},{"a":1,"b":2,"a":3}]`)), eng.EnforceOptions{
		OnDuplicate: dc.Warn,
		IssueSink:   func(is dc.Issue) { got = append(got, is) },
	})
	v, err := eng.Decode(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 issue, got %d: %+v", len(got), got)
	}
	if got[0].Path != "/1/a" || got[0].Code != dc.CodeDuplicateKey || got[0].Severity != dc.Warn {
		t.Fatalf("unexpected issue: %+v", got[0])
	}
	row := v.([]any)[1].(*dc.Object)
	if a, _ := row.Get("a"); a != int64(3) {
		t.Fatalf("last value should win, got %#v", a)
	}
	if strings.Join(row.Keys(), ",") != "a,b" {
		t.Fatalf("duplicate should keep first position: %v", row.Keys())
	}
}

func TestEnforce_DuplicateKeyError(t *testing.T) {
	src := eng.WrapWithEnforcement(eng.NewReader(strings.NewReader(`{"x":{"k":1,"k":2}}`)), eng.EnforceOptions{OnDuplicate: dc.Error})
	_, err := eng.Decode(src)
	var ie eng.IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Path != "/x/k" {
		t.Fatalf("path: %s", ie.Path)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	src := eng.WrapWithEnforcement(eng.NewReader(strings.NewReader(`[[[1]]]`)), eng.EnforceOptions{MaxDepth: 2})
	if _, err := eng.Decode(src); err == nil {
		t.Fatalf("expected depth error")
	}
}
