package datacontract

import "strings"

// SemanticType is the declared type of a contract field.
type SemanticType string

const (
	TypeString   SemanticType = "string"
	TypeInteger  SemanticType = "integer"
	TypeFloat    SemanticType = "float"
	TypeBoolean  SemanticType = "boolean"
	TypeDateTime SemanticType = "datetime"
	TypeDate     SemanticType = "date"
)

var semanticTypes = []SemanticType{TypeString, TypeInteger, TypeFloat, TypeBoolean, TypeDateTime, TypeDate}

// ParseSemanticType resolves a type name against the fixed vocabulary.
// Matching ignores case and surrounding space, so "Integer" and " DATE "
// are accepted.
func ParseSemanticType(s string) (SemanticType, bool) {
	t := SemanticType(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range semanticTypes {
		if st == t {
			return t, true
		}
	}
	return "", false
}

func typeNames() []string {
	out := make([]string, len(semanticTypes))
	for i, t := range semanticTypes {
		out[i] = string(t)
	}
	return out
}

// CheckKind names one of the fixed check variants.
type CheckKind string

const (
	CheckRequired CheckKind = "required"
	CheckMin      CheckKind = "min"
	CheckMax      CheckKind = "max"
	CheckPattern  CheckKind = "pattern"
	CheckEnum     CheckKind = "enum"

	// Pseudo checks used only in failure cases.
	CheckType   CheckKind = "type"
	CheckStrict CheckKind = "strict"
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "ignore"
	}
}

// MarshalText renders the severity by name in JSON output.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
