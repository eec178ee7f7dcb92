package datacontract

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/datacontract/codec"
)

// Coerce converts v into the canonical representation of t:
//
//	string   -> string
//	integer  -> int64
//	float    -> float64
//	boolean  -> bool
//	datetime -> time.Time
//	date     -> time.Time (midnight UTC)
//
// Coerce is total: every (type, value) pair either converts or returns an
// error describing the rejection. nil is never coerced.
func Coerce(t SemanticType, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot coerce null to %s", t)
	}
	switch t {
	case TypeString:
		return toString(v)
	case TypeInteger:
		return toInt64(v)
	case TypeFloat:
		return toFloat64(v)
	case TypeBoolean:
		return toBool(v)
	case TypeDateTime:
		tm, err := toTime(v)
		if err != nil {
			return nil, err
		}
		return tm, nil
	case TypeDate:
		tm, err := toTime(v)
		if err != nil {
			return nil, err
		}
		return codec.TruncateDate(tm), nil
	default:
		return nil, fmt.Errorf("unsupported type %q", t)
	}
}

// conform returns the canonical form of v when v already has type t.
// Integers are accepted for float; any time.Time is accepted for date.
func conform(t SemanticType, v any) (any, bool) {
	switch t {
	case TypeString:
		s, ok := v.(string)
		return s, ok
	case TypeInteger:
		if !isInteger(v) {
			return nil, false
		}
		n, err := toInt64(v)
		return n, err == nil
	case TypeFloat:
		switch v.(type) {
		case float32, float64:
		default:
			if !isInteger(v) {
				return nil, false
			}
		}
		f, err := toFloat64(v)
		return f, err == nil
	case TypeBoolean:
		b, ok := v.(bool)
		return b, ok
	case TypeDateTime:
		tm, ok := v.(time.Time)
		return tm, ok
	case TypeDate:
		tm, ok := v.(time.Time)
		if !ok {
			return nil, false
		}
		return codec.TruncateDate(tm), true
	}
	return nil, false
}

// IsNull reports whether v is a missing value: nil or a floating point NaN.
func IsNull(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(t)
	case float32:
		return math.IsNaN(float64(t))
	default:
		return false
	}
}

func isInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func toString(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32), nil
	case time.Time:
		return codec.FormatDateTime(t), nil
	}
	if isInteger(v) {
		return fmt.Sprint(v), nil
	}
	return nil, fmt.Errorf("cannot coerce %T to string", v)
}

func toInt64(v any) (any, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return uintToInt64(uint64(t))
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return uintToInt64(t)
	case float32:
		return floatToInt64(float64(t))
	case float64:
		return floatToInt64(t)
	case json.Number:
		return parseIntString(t.String())
	case string:
		return parseIntString(t)
	default:
		return nil, fmt.Errorf("cannot coerce %T to integer", v)
	}
}

func uintToInt64(u uint64) (any, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("integer overflow: %d", u)
	}
	return int64(u), nil
}

func floatToInt64(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("cannot coerce %v to integer: fractional part not allowed", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("integer overflow: %v", f)
	}
	return int64(f), nil
}

func parseIntString(s string) (any, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	// "42.0" is an integer written as a float.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot coerce %q to integer", s)
	}
	return floatToInt64(f)
}

func toFloat64(v any) (any, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case json.Number:
		return parseFloatString(t.String())
	case string:
		return parseFloatString(t)
	}
	if isInteger(v) {
		n, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		return float64(n.(int64)), nil
	}
	return nil, fmt.Errorf("cannot coerce %T to float", v)
}

func parseFloatString(s string) (any, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot coerce %q to float", s)
	}
	return f, nil
}

func toBool(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "t", "yes", "1":
			return true, nil
		case "false", "f", "no", "0":
			return false, nil
		}
		return nil, fmt.Errorf("cannot coerce %q to boolean", t)
	}
	if isInteger(v) {
		n, err := toInt64(v)
		if err == nil {
			switch n.(int64) {
			case 0:
				return false, nil
			case 1:
				return true, nil
			}
		}
		return nil, fmt.Errorf("cannot coerce %v to boolean", v)
	}
	return nil, fmt.Errorf("cannot coerce %T to boolean", v)
}

func toTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return codec.ParseDateTime(t)
	default:
		return time.Time{}, fmt.Errorf("cannot coerce %T to datetime", v)
	}
}
