package datacontract

import (
	"fmt"
	"math"

	"github.com/reoring/datacontract/i18n"
)

// Outcome is the result of validating one Dataset against one Contract.
type Outcome struct {
	IsValid       bool           `json:"is_valid"`
	TotalRows     int            `json:"total_rows"`
	FailureDetail *FailureDetail `json:"failure_detail,omitempty"`
	// Warnings are copied from the dataset; they never affect IsValid.
	Warnings []Issue `json:"warnings,omitempty"`
}

// FailureDetail aggregates every failure case of an invalid Outcome.
type FailureDetail struct {
	ErrorType string        `json:"error_type"`
	Message   string        `json:"message"`
	Details   []FailureCase `json:"details"`
}

// FailureCase records one violation. Row is -1 for schema-level cases.
type FailureCase struct {
	Row      int       `json:"row"`
	Field    string    `json:"field"`
	Path     string    `json:"path"`
	Value    any       `json:"value"`
	Check    CheckKind `json:"check"`
	Param    any       `json:"param,omitempty"`
	Code     string    `json:"code"`
	Category string    `json:"category"`
	Message  string    `json:"message"`
}

// Validate evaluates every row of d against c and collects all failure
// cases: schema-level cases first, then row-major with fields in declaration
// order and checks in their compiled order.
//
// Under strict mode a required column absent from d yields one schema-level
// missing_column case in addition to the required case of every row, and
// both count toward the failure cases.
//
// Validate never mutates c or d and may be called concurrently.
func Validate(c *Contract, d *Dataset) *Outcome {
	out := &Outcome{IsValid: true, TotalRows: d.Len()}
	if d != nil && len(d.Warnings) > 0 {
		out.Warnings = append([]Issue(nil), d.Warnings...)
	}
	if c == nil || d == nil {
		return out
	}

	var cases []FailureCase
	schemaLevel := 0
	if c.Strict {
		for _, col := range d.Columns {
			if _, ok := c.Field(col); ok {
				continue
			}
			cases = append(cases, schemaCase(col, CodeUnknownColumn))
		}
		for _, f := range c.Fields {
			if f.Required && !d.HasColumn(f.Name) {
				cases = append(cases, schemaCase(f.Name, CodeMissingColumn))
			}
		}
		schemaLevel = len(cases)
	}

	failedRows := 0
	for i, row := range d.Rows {
		before := len(cases)
		for _, f := range c.Fields {
			cases = evalField(cases, c.Coerce, i, f, row[f.Name])
		}
		if len(cases) > before {
			failedRows++
		}
	}

	if len(cases) == 0 {
		return out
	}
	out.IsValid = false
	errType := CategoryValidation
	if schemaLevel > 0 {
		errType = CategorySchema
	}
	out.FailureDetail = &FailureDetail{
		ErrorType: errType,
		Message: fmt.Sprintf("%d failure case(s): %d schema-level, %d row-level in %d row(s)",
			len(cases), schemaLevel, len(cases)-schemaLevel, failedRows),
		Details: cases,
	}
	return out
}

func schemaCase(column, code string) FailureCase {
	return FailureCase{
		Row:      -1,
		Field:    column,
		Path:     Root().Field(column).Pointer(),
		Check:    CheckStrict,
		Code:     code,
		Category: CategorySchema,
		Message:  i18n.T(code, map[string]string{"column": column}),
	}
}

func evalField(cases []FailureCase, coerce bool, row int, f FieldRule, raw any) []FailureCase {
	fail := func(kind CheckKind, param any, code, category, msg string) {
		cases = append(cases, FailureCase{
			Row:      row,
			Field:    f.Name,
			Path:     Root().Index(row).Field(f.Name).Pointer(),
			Value:    reportable(raw),
			Check:    kind,
			Param:    param,
			Code:     code,
			Category: category,
			Message:  msg,
		})
	}

	if IsNull(raw) {
		for _, ch := range f.Checks {
			if ch.Kind() == CheckRequired {
				code, msg := ch.violation()
				fail(CheckRequired, ch.Param(), code, CategoryValidation, msg)
			}
		}
		return cases
	}

	var (
		v  any
		ok bool
	)
	if coerce {
		cv, err := Coerce(f.Type, raw)
		v, ok = cv, err == nil
	} else {
		v, ok = conform(f.Type, raw)
	}
	if !ok {
		fail(CheckType, string(f.Type), CodeInvalidType, CategoryCoercion,
			i18n.T(CodeInvalidType, map[string]string{"expected": string(f.Type), "got": kindOf(raw)}))
		return cases
	}

	for _, ch := range f.Checks {
		if ch.Kind() == CheckRequired || ch.holds(v) {
			continue
		}
		code, msg := ch.violation()
		fail(ch.Kind(), ch.Param(), code, CategoryValidation, msg)
	}
	return cases
}

// reportable keeps failure values JSON-encodable.
func reportable(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) {
			return nil
		}
		if math.IsInf(t, 0) {
			return fmt.Sprint(t)
		}
	case float32:
		return reportable(float64(t))
	}
	return v
}
