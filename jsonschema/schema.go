package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Schema      string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        any    `json:"type,omitempty"` // string, or []string when nullable
	Format      string `json:"format,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Scalar constraints
	Minimum       any    `json:"minimum,omitempty"`
	Maximum       any    `json:"maximum,omitempty"`
	FormatMinimum string `json:"formatMinimum,omitempty"`
	FormatMaximum string `json:"formatMaximum,omitempty"`
	Pattern       string `json:"pattern,omitempty"`
	Enum          []any  `json:"enum,omitempty"`
}

// Draft is the dialect URI stamped on exported root schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Nullable returns the type union of t and "null".
func Nullable(t string) []string { return []string{t, "null"} }
