package document_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	dc "github.com/reoring/datacontract"
	"github.com/reoring/datacontract/document"
)

func TestDecodeYAML_OrderAndScalars(t *testing.T) {
	y := `
schema:
  name: users
  fields:
    zeta: {type: integer, min: 0, max: 0x10}
    alpha: {type: float, min: 1.5}
    flag: {type: boolean, required: true}
    since: {type: date, min: 2024-01-01}
    note: {type: string, description: ~}
`
	v, err := document.DecodeYAML(strings.NewReader(y))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := v.(*dc.Object)
	schema, _ := root.Get("schema")
	fields, _ := schema.(*dc.Object).Get("fields")
	fo := fields.(*dc.Object)
	if got := strings.Join(fo.Keys(), ","); got != "zeta,alpha,flag,since,note" {
		t.Fatalf("field order: %s", got)
	}
	get := func(field, key string) any {
		f, _ := fo.Get(field)
		v, _ := f.(*dc.Object).Get(key)
		return v
	}
	if v := get("zeta", "max"); v != int64(16) {
		t.Fatalf("max: %#v", v)
	}
	if v := get("alpha", "min"); v != 1.5 {
		t.Fatalf("min: %#v", v)
	}
	if v := get("flag", "required"); v != true {
		t.Fatalf("required: %#v", v)
	}
	if v := get("since", "min"); v != "2024-01-01" {
		t.Fatalf("timestamp should stay a string: %#v", v)
	}
	if v := get("note", "description"); v != nil {
		t.Fatalf("null: %#v", v)
	}
}

func TestDecodeYAML_DuplicateKey(t *testing.T) {
	_, err := document.DecodeYAML(strings.NewReader("schema:\n  fields:\n    a: {type: string}\n    a: {type: integer}\n"))
	var de *document.DuplicateKeyError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateKeyError, got %T %v", err, err)
	}
	if de.Key != "a" || de.FirstLine != 3 || de.Line != 4 {
		t.Fatalf("unexpected positions: %+v", de)
	}
}

func TestDecodeJSON_OrderAndDuplicates(t *testing.T) {
	v, err := document.DecodeJSON(strings.NewReader(`{"schema":{"fields":{"b":{"type":"integer","max":10},"a":{"type":"float","min":0.5}}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := dc.Compile(v)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if c.Fields[0].Name != "b" || c.Fields[1].Name != "a" {
		t.Fatalf("field order not preserved: %s, %s", c.Fields[0].Name, c.Fields[1].Name)
	}

	_, err = document.DecodeJSON(strings.NewReader(`{"schema":{"fields":{"a":{"type":"string"},"a":{"type":"string"}}}}`))
	var de *document.DuplicateKeyError
	if !errors.As(err, &de) || de.Key != "a" {
		t.Fatalf("expected DuplicateKeyError for a, got %v", err)
	}
}

func TestLoadFile_Dispatch(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "c.yml")
	if err := os.WriteFile(yml, []byte("schema:\n  fields:\n    id: {type: integer}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := document.LoadFile(yml); err != nil {
		t.Fatalf("yml: %v", err)
	}

	txt := filepath.Join(dir, "c.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := document.LoadFile(txt)
	var fe *dc.ContractFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected ContractFormatError, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"schema": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := document.LoadFile(bad); dc.Category(err) != dc.CategoryFormat {
		t.Fatalf("expected %s, got %v", dc.CategoryFormat, err)
	}
}
