package datacontract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/datacontract/codec"
	"github.com/reoring/datacontract/i18n"
)

// Check is one constraint predicate bound to a field. The set of
// implementations is closed: RequiredCheck, MinCheck, MaxCheck, PatternCheck
// and EnumCheck.
type Check interface {
	Kind() CheckKind
	// Param returns the literal parameter exactly as written in the document.
	Param() any
	// holds evaluates the predicate against a non-null canonical value.
	holds(v any) bool
	// violation describes a failed evaluation (issue code and message).
	violation() (code, msg string)
}

// RequiredCheck rejects null or missing values.
type RequiredCheck struct{}

func (RequiredCheck) Kind() CheckKind  { return CheckRequired }
func (RequiredCheck) Param() any       { return true }
func (RequiredCheck) holds(v any) bool { return !IsNull(v) }
func (RequiredCheck) violation() (string, string) {
	return CodeRequired, i18n.T(CodeRequired, nil)
}

// MinCheck requires value >= bound.
type MinCheck struct{ b bound }

func (c MinCheck) Kind() CheckKind  { return CheckMin }
func (c MinCheck) Param() any       { return c.b.literal }
func (c MinCheck) holds(v any) bool { return c.b.compare(v) >= 0 }
func (c MinCheck) violation() (string, string) {
	return CodeTooSmall, i18n.T(CodeTooSmall, map[string]string{"min": literalString(c.b.literal)})
}

// MaxCheck requires value <= bound.
type MaxCheck struct{ b bound }

func (c MaxCheck) Kind() CheckKind  { return CheckMax }
func (c MaxCheck) Param() any       { return c.b.literal }
func (c MaxCheck) holds(v any) bool { return c.b.compare(v) <= 0 }
func (c MaxCheck) violation() (string, string) {
	return CodeTooBig, i18n.T(CodeTooBig, map[string]string{"max": literalString(c.b.literal)})
}

// PatternCheck requires a string value to match a regular expression
// anchored at the start of the value.
type PatternCheck struct {
	literal string
	re      *regexp.Regexp
}

func (c PatternCheck) Kind() CheckKind { return CheckPattern }
func (c PatternCheck) Param() any      { return c.literal }
func (c PatternCheck) holds(v any) bool {
	s, ok := v.(string)
	return ok && c.re.MatchString(s)
}
func (c PatternCheck) violation() (string, string) {
	return CodePattern, i18n.T(CodePattern, map[string]string{"pattern": c.literal})
}

// EnumCheck requires the value to equal one of the allowed members.
type EnumCheck struct {
	literal []any
	members []any // canonical, same order as literal
}

func (c EnumCheck) Kind() CheckKind { return CheckEnum }
func (c EnumCheck) Param() any      { return append([]any(nil), c.literal...) }
func (c EnumCheck) holds(v any) bool {
	for _, m := range c.members {
		if equalCanonical(v, m) {
			return true
		}
	}
	return false
}
func (c EnumCheck) violation() (string, string) {
	parts := make([]string, len(c.literal))
	for i, l := range c.literal {
		parts[i] = literalString(l)
	}
	return CodeInvalidEnum, i18n.T(CodeInvalidEnum, map[string]string{"allowed": "[" + strings.Join(parts, ", ") + "]"})
}

// bound is a compiled range parameter: a number or an instant.
type bound struct {
	literal  any
	temporal bool
	tm       time.Time
	exact    bool // i is exact (integral literal)
	i        int64
	f        float64
}

// compare returns the sign of (v - b). v is a canonical int64, float64 or time.Time.
func (b bound) compare(v any) int {
	switch t := v.(type) {
	case time.Time:
		return t.Compare(b.tm)
	case int64:
		if b.exact {
			return cmpOrdered(t, b.i)
		}
		return cmpOrdered(float64(t), b.f)
	case float64:
		return cmpOrdered(t, b.f)
	}
	return 0
}

func cmpOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func equalCanonical(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return a == b
}

// numericBound accepts number literals only; strings are not reinterpreted.
func numericBound(lit any) (bound, error) {
	b := bound{literal: lit}
	switch t := lit.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			b.exact, b.i, b.f = true, n, float64(n)
			return b, nil
		}
		f, err := t.Float64()
		if err != nil {
			return bound{}, fmt.Errorf("not a number")
		}
		b.f = f
		return b, nil
	case float32, float64:
		f, _ := toFloat64(t)
		b.f = f.(float64)
		return b, nil
	}
	if isInteger(lit) {
		n, err := toInt64(lit)
		if err != nil {
			return bound{}, err
		}
		b.exact, b.i, b.f = true, n.(int64), float64(n.(int64))
		return b, nil
	}
	return bound{}, fmt.Errorf("expected a number, got %T", lit)
}

func temporalBound(t SemanticType, lit any) (bound, error) {
	var (
		tm  time.Time
		err error
	)
	switch v := lit.(type) {
	case time.Time:
		tm = v
	case string:
		tm, err = codec.ParseDateTime(v)
		if err != nil {
			return bound{}, err
		}
	default:
		return bound{}, fmt.Errorf("expected a %s string, got %T", t, lit)
	}
	if t == TypeDate {
		tm = codec.TruncateDate(tm)
	}
	return bound{literal: lit, temporal: true, tm: tm}, nil
}

func literalString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return codec.FormatDateTime(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
