package datacontract

import (
	"errors"
	"time"

	"github.com/reoring/datacontract/codec"
	js "github.com/reoring/datacontract/jsonschema"
)

// JSONSchema projects the contract into a JSON Schema describing one row.
// Optional fields admit null; strict contracts forbid additional properties.
func (c *Contract) JSONSchema() (*js.Schema, error) {
	if c == nil || len(c.Fields) == 0 {
		return nil, errors.New("empty contract")
	}
	props := make(map[string]*js.Schema, len(c.Fields))
	var req []string
	for _, f := range c.Fields {
		props[f.Name] = fieldSchema(f)
		if f.Required {
			req = append(req, f.Name)
		}
	}
	var additional any = true
	if c.Strict {
		additional = false
	}
	return &js.Schema{
		Schema:               js.Draft,
		Title:                c.Name,
		Type:                 "object",
		Properties:           props,
		Required:             req,
		AdditionalProperties: additional,
	}, nil
}

func fieldSchema(f FieldRule) *js.Schema {
	s := &js.Schema{Description: f.Description}
	var typ string
	switch f.Type {
	case TypeString:
		typ = "string"
	case TypeInteger:
		typ = "integer"
	case TypeFloat:
		typ = "number"
	case TypeBoolean:
		typ = "boolean"
	case TypeDateTime:
		typ, s.Format = "string", "date-time"
	case TypeDate:
		typ, s.Format = "string", "date"
	}
	if f.Required {
		s.Type = typ
	} else {
		s.Type = js.Nullable(typ)
	}
	for _, ch := range f.Checks {
		switch ch := ch.(type) {
		case MinCheck:
			if ch.b.temporal {
				s.FormatMinimum = schemaTime(f.Type, ch.b.tm)
			} else {
				s.Minimum = boundNumber(ch.b)
			}
		case MaxCheck:
			if ch.b.temporal {
				s.FormatMaximum = schemaTime(f.Type, ch.b.tm)
			} else {
				s.Maximum = boundNumber(ch.b)
			}
		case PatternCheck:
			s.Pattern = ch.re.String()
		case EnumCheck:
			for _, m := range ch.members {
				if tm, ok := m.(time.Time); ok {
					m = schemaTime(f.Type, tm)
				}
				s.Enum = append(s.Enum, m)
			}
			if !f.Required {
				s.Enum = append(s.Enum, nil)
			}
		}
	}
	return s
}

func boundNumber(b bound) any {
	if b.exact {
		return b.i
	}
	return b.f
}

func schemaTime(t SemanticType, tm time.Time) string {
	if t == TypeDate {
		return codec.FormatDate(tm)
	}
	return codec.FormatDateTime(tm)
}
