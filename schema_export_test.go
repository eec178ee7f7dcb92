package datacontract_test

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	dc "github.com/reoring/datacontract"
	js "github.com/reoring/datacontract/jsonschema"
)

func TestContract_JSONSchema(t *testing.T) {
	c := mustCompile(t, `
schema:
  name: orders
  fields:
    id: {type: integer, required: true, min: 1}
    ratio: {type: float, max: 0.5}
    code: {type: string, pattern: '[A-Z]{3}', enum: [ABC, XYZ]}
    placed: {type: date, min: '2024-01-01'}
`)
	s, err := c.JSONSchema()
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	if s.Schema != js.Draft || s.Title != "orders" || s.AdditionalProperties != false {
		t.Fatalf("root: %+v", s)
	}
	if len(s.Required) != 1 || s.Required[0] != "id" {
		t.Fatalf("required: %v", s.Required)
	}
	id := s.Properties["id"]
	if id.Type != "integer" || id.Minimum != int64(1) {
		t.Fatalf("id: %+v", id)
	}
	ratio := s.Properties["ratio"]
	if typ, ok := ratio.Type.([]string); !ok || typ[0] != "number" || typ[1] != "null" || ratio.Maximum != 0.5 {
		t.Fatalf("ratio: %+v", ratio)
	}
	code := s.Properties["code"]
	if code.Pattern != "^(?:[A-Z]{3})" || len(code.Enum) != 3 || code.Enum[2] != nil {
		t.Fatalf("code: %+v", code)
	}
	placed := s.Properties["placed"]
	if placed.Format != "date" || placed.FormatMinimum != "2024-01-01" {
		t.Fatalf("placed: %+v", placed)
	}

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"additionalProperties":false`) {
		t.Fatalf("strict contracts must forbid extra properties: %s", b)
	}
}

func TestContract_JSONSchemaEmpty(t *testing.T) {
	var c *dc.Contract
	if _, err := c.JSONSchema(); err == nil {
		t.Fatalf("expected an error for an empty contract")
	}
}
