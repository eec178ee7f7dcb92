package datacontract

import (
	"fmt"
	"regexp"
	"time"
)

// Contract is the compiled, immutable form of a contract document. It holds
// no reference to the document it was compiled from and is safe to share
// across goroutines.
type Contract struct {
	Name   string
	Strict bool // report dataset columns the contract does not declare
	Coerce bool // convert values into the field type before checking
	Fields []FieldRule

	index map[string]int
}

// FieldRule is the compiled rule for one declared column.
type FieldRule struct {
	Name        string
	Type        SemanticType
	Required    bool
	Description string
	// Checks are ordered required, min, max, pattern, enum.
	Checks []Check
}

// Field looks up a rule by column name. Contracts built or edited outside
// Compile are resolved by scanning Fields.
func (c *Contract) Field(name string) (FieldRule, bool) {
	if c == nil {
		return FieldRule{}, false
	}
	if i, ok := c.index[name]; ok && i < len(c.Fields) && c.Fields[i].Name == name {
		return c.Fields[i], true
	}
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldRule{}, false
}

var fieldKeys = map[string]bool{
	"type": true, "required": true, "min": true, "max": true,
	"pattern": true, "enum": true, "description": true,
}

// compatible lists which checks each semantic type admits.
var compatible = map[SemanticType]map[CheckKind]bool{
	TypeString:   {CheckRequired: true, CheckPattern: true, CheckEnum: true},
	TypeInteger:  {CheckRequired: true, CheckMin: true, CheckMax: true, CheckEnum: true},
	TypeFloat:    {CheckRequired: true, CheckMin: true, CheckMax: true, CheckEnum: true},
	TypeBoolean:  {CheckRequired: true, CheckEnum: true},
	TypeDateTime: {CheckRequired: true, CheckMin: true, CheckMax: true, CheckEnum: true},
	TypeDate:     {CheckRequired: true, CheckMin: true, CheckMax: true, CheckEnum: true},
}

// Compile turns a decoded contract document into a Contract.
//
// The document must be a mapping (a *Object or map[string]any) with a
// "schema" mapping holding a non-empty "fields" mapping. Field order follows
// the document when it is a *Object and sorted key order for plain maps.
//
// Errors are one of *ContractFormatError, *UnsupportedTypeError or
// *InvalidCheckParameterError.
func Compile(doc any) (*Contract, error) {
	root, ok := asMapping(doc)
	if !ok {
		return nil, &ContractFormatError{Path: Root().Pointer(), Reason: fmt.Sprintf("contract document must be a mapping, got %s", kindOf(doc))}
	}
	schemaPath := Root().Field("schema")
	raw, ok := root.get("schema")
	if !ok || raw == nil {
		return nil, &ContractFormatError{Path: schemaPath.Pointer(), Reason: "missing schema section"}
	}
	schema, ok := asMapping(raw)
	if !ok {
		return nil, &ContractFormatError{Path: schemaPath.Pointer(), Reason: fmt.Sprintf("schema must be a mapping, got %s", kindOf(raw))}
	}

	c := &Contract{Strict: true, Coerce: true}
	if v, ok := schema.get("name"); ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, &ContractFormatError{Path: schemaPath.Field("name").Pointer(), Reason: fmt.Sprintf("name must be a string, got %s", kindOf(v))}
		}
		c.Name = s
	}
	for _, opt := range []struct {
		key string
		dst *bool
	}{{"strict", &c.Strict}, {"coerce", &c.Coerce}} {
		v, ok := schema.get(opt.key)
		if !ok || v == nil {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			return nil, &ContractFormatError{Path: schemaPath.Field(opt.key).Pointer(), Reason: fmt.Sprintf("%s must be a boolean, got %s", opt.key, kindOf(v))}
		}
		*opt.dst = b
	}

	fieldsPath := schemaPath.Field("fields")
	rawFields, _ := schema.get("fields")
	fields, ok := asMapping(rawFields)
	if !ok || len(fields.keys()) == 0 {
		return nil, &ContractFormatError{Path: fieldsPath.Pointer(), Reason: "no field definitions"}
	}

	c.Fields = make([]FieldRule, 0, len(fields.keys()))
	c.index = make(map[string]int, len(fields.keys()))
	for _, name := range fields.keys() {
		def, _ := fields.get(name)
		fr, err := compileField(fieldsPath.Field(name), name, def)
		if err != nil {
			return nil, err
		}
		c.index[name] = len(c.Fields)
		c.Fields = append(c.Fields, fr)
	}
	return c, nil
}

func compileField(path PathRef, name string, def any) (FieldRule, error) {
	m, ok := asMapping(def)
	if !ok {
		return FieldRule{}, &ContractFormatError{Path: path.Pointer(), Reason: fmt.Sprintf("field definition must be a mapping, got %s", kindOf(def))}
	}
	for _, k := range m.keys() {
		if !fieldKeys[k] {
			return FieldRule{}, &ContractFormatError{Path: path.Field(k).Pointer(), Reason: fmt.Sprintf("unknown field key %q", k)}
		}
	}

	rawType, ok := m.get("type")
	if !ok || rawType == nil {
		return FieldRule{}, &ContractFormatError{Path: path.Field("type").Pointer(), Reason: "missing type"}
	}
	typeName, ok := rawType.(string)
	if !ok {
		return FieldRule{}, &ContractFormatError{Path: path.Field("type").Pointer(), Reason: fmt.Sprintf("type must be a string, got %s", kindOf(rawType))}
	}
	st, ok := ParseSemanticType(typeName)
	if !ok {
		return FieldRule{}, &UnsupportedTypeError{Field: name, Type: typeName}
	}

	fr := FieldRule{Name: name, Type: st}
	if v, ok := m.get("description"); ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return FieldRule{}, &ContractFormatError{Path: path.Field("description").Pointer(), Reason: fmt.Sprintf("description must be a string, got %s", kindOf(v))}
		}
		fr.Description = s
	}

	param := func(k CheckKind) (any, bool) {
		v, ok := m.get(string(k))
		return v, ok && v != nil
	}
	invalid := func(k CheckKind, p any, format string, args ...any) error {
		return &InvalidCheckParameterError{Field: name, Check: k, Param: p, Reason: fmt.Sprintf(format, args...)}
	}
	for _, k := range []CheckKind{CheckRequired, CheckMin, CheckMax, CheckPattern, CheckEnum} {
		p, ok := param(k)
		if ok && !compatible[st][k] {
			return FieldRule{}, invalid(k, p, "%s is not applicable to %s fields", k, st)
		}
	}

	if p, ok := param(CheckRequired); ok {
		b, isBool := p.(bool)
		if !isBool {
			return FieldRule{}, invalid(CheckRequired, p, "required must be a boolean")
		}
		if b {
			fr.Required = true
			fr.Checks = append(fr.Checks, RequiredCheck{})
		}
	}

	var lo, hi *bound
	for _, k := range []CheckKind{CheckMin, CheckMax} {
		p, ok := param(k)
		if !ok {
			continue
		}
		var (
			b   bound
			err error
		)
		if st == TypeDateTime || st == TypeDate {
			b, err = temporalBound(st, p)
		} else {
			b, err = numericBound(p)
		}
		if err != nil {
			return FieldRule{}, invalid(k, p, "%v", err)
		}
		if k == CheckMin {
			lo = &b
			fr.Checks = append(fr.Checks, MinCheck{b: b})
		} else {
			hi = &b
			fr.Checks = append(fr.Checks, MaxCheck{b: b})
		}
	}
	if lo != nil && hi != nil && boundGreater(*lo, *hi) {
		return FieldRule{}, invalid(CheckMin, lo.literal, "min %s is greater than max %s", literalString(lo.literal), literalString(hi.literal))
	}

	if p, ok := param(CheckPattern); ok {
		s, isStr := p.(string)
		if !isStr {
			return FieldRule{}, invalid(CheckPattern, p, "pattern must be a string")
		}
		re, err := regexp.Compile(`^(?:` + s + `)`)
		if err != nil {
			return FieldRule{}, invalid(CheckPattern, p, "%v", err)
		}
		fr.Checks = append(fr.Checks, PatternCheck{literal: s, re: re})
	}

	if p, ok := param(CheckEnum); ok {
		list, isList := p.([]any)
		if !isList || len(list) == 0 {
			return FieldRule{}, invalid(CheckEnum, p, "enum must be a non-empty list")
		}
		members := make([]any, len(list))
		for i, lit := range list {
			cv, err := Coerce(st, lit)
			if err != nil {
				return FieldRule{}, invalid(CheckEnum, p, "member %d: %v", i, err)
			}
			members[i] = cv
		}
		fr.Checks = append(fr.Checks, EnumCheck{literal: append([]any(nil), list...), members: members})
	}
	return fr, nil
}

func boundGreater(lo, hi bound) bool {
	if lo.temporal {
		return lo.tm.After(hi.tm)
	}
	if lo.exact && hi.exact {
		return lo.i > hi.i
	}
	return lo.f > hi.f
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *Object, map[string]any:
		return "mapping"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float32, float64:
		return "float"
	case time.Time:
		return "datetime"
	default:
		if isInteger(v) {
			return "integer"
		}
		return fmt.Sprintf("%T", v)
	}
}
