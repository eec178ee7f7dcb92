package datacontract

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType    = "invalid_type"
	CodeRequired       = "required"
	CodeUnknownColumn  = "unknown_column"
	CodeMissingColumn  = "missing_column"
	CodeDuplicateKey   = "duplicate_key"
	CodeRaggedRow      = "ragged_row"
	CodeTooSmall       = "too_small"
	CodeTooBig         = "too_big"
	CodePattern        = "pattern"
	CodeInvalidEnum    = "invalid_enum"
	CodeParseError     = "parse_error"
	CodeContractFormat = "contract_format"
)

// Failure categories. Schema-level and row-level failures are recorded in an
// Outcome; structural failures surface as a *DatasetLoadError.
const (
	CategorySchema       = "SchemaError"
	CategoryCoercion     = "TypeCoercionError"
	CategoryValidation   = "ValidationError"
	CategoryDatasetLoad  = "DatasetLoadError"
	CategoryFormat       = "ContractFormatError"
	CategoryUnsupported  = "UnsupportedTypeError"
	CategoryInvalidParam = "InvalidCheckParameterError"
)

// Issue is a non-fatal notice raised while loading a dataset (for example a
// duplicate JSON key that was resolved last-wins).
type Issue struct {
	Path     string   `json:"path"` // JSON Pointer (for example: /12/email).
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Issues is a collection of notices that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// ContractFormatError reports a malformed or incomplete contract document.
type ContractFormatError struct {
	Path   string // JSON Pointer into the document, e.g. /schema/fields/age/type.
	Reason string
	Err    error // decoder failure, when the document could not be parsed
}

func (e *ContractFormatError) Error() string {
	if e.Path == "" {
		return "contract format: " + e.Reason
	}
	return fmt.Sprintf("contract format at %s: %s", e.Path, e.Reason)
}

func (e *ContractFormatError) Unwrap() error { return e.Err }

// UnsupportedTypeError reports a field whose type is outside the semantic type vocabulary.
type UnsupportedTypeError struct {
	Field string
	Type  string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("field %q: unsupported type %q (want one of %s)", e.Field, e.Type, strings.Join(typeNames(), ", "))
}

// InvalidCheckParameterError reports a check whose parameter is incompatible
// with the field's semantic type.
type InvalidCheckParameterError struct {
	Field  string
	Check  CheckKind
	Param  any
	Reason string
}

func (e *InvalidCheckParameterError) Error() string {
	return fmt.Sprintf("field %q: invalid %s parameter %v: %s", e.Field, e.Check, e.Param, e.Reason)
}

// DatasetLoadError wraps any failure of an upstream dataset loader. The core
// treats the cause as opaque.
type DatasetLoadError struct {
	Source string
	Err    error
}

func (e *DatasetLoadError) Error() string {
	if e.Err == nil {
		return "load dataset " + e.Source
	}
	return fmt.Sprintf("load dataset %s: %v", e.Source, e.Err)
}

func (e *DatasetLoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Category classifies a terminal error into its taxonomy name.
func Category(err error) string {
	var (
		fe *ContractFormatError
		ue *UnsupportedTypeError
		pe *InvalidCheckParameterError
		de *DatasetLoadError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &fe):
		return CategoryFormat
	case errors.As(err, &ue):
		return CategoryUnsupported
	case errors.As(err, &pe):
		return CategoryInvalidParam
	case errors.As(err, &de):
		return CategoryDatasetLoad
	default:
		return "Error"
	}
}
