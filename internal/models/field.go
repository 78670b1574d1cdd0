package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FieldKind identifies the input kind of a form field
type FieldKind string

// Field kind constants
const (
	FieldKindText      FieldKind = "text"
	FieldKindNumber    FieldKind = "number"
	FieldKindDate      FieldKind = "date"
	FieldKindMultiline FieldKind = "textarea"
	FieldKindSelect    FieldKind = "select"
	FieldKindBoolean   FieldKind = "boolean"
)

// CustomFieldPrefix prefixes every runtime-created field name
const CustomFieldPrefix = "custom_"

// FieldDescriptor describes one form field's name, label, kind and constraints.
// Standard descriptors are defined in code per policy type; custom descriptors
// are created at runtime and persisted inside form_data.
type FieldDescriptor struct {
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Kind      FieldKind `json:"type"`
	Required  bool      `json:"required,omitempty"`
	Options   []string  `json:"options,omitempty"`
	IsCustom  bool      `json:"is_custom,omitempty"`
	SectionID string    `json:"section_id,omitempty"`
}

// IsCustomFieldName reports whether name follows the runtime-created naming scheme
func IsCustomFieldName(name string) bool {
	return strings.HasPrefix(name, CustomFieldPrefix)
}

// FieldValue is a tagged union holding one field's typed value. Storage keeps
// values as JSON scalars; coercion happens here at the boundary so business
// logic never handles interface{} directly.
type FieldValue struct {
	Kind   FieldKind
	Text   string
	Number float64
	Bool   bool
}

// TextValue builds a text field value
func TextValue(s string) FieldValue {
	return FieldValue{Kind: FieldKindText, Text: s}
}

// NumberValue builds a numeric field value
func NumberValue(n float64) FieldValue {
	return FieldValue{Kind: FieldKindNumber, Number: n}
}

// BoolValue builds a boolean field value
func BoolValue(b bool) FieldValue {
	return FieldValue{Kind: FieldKindBoolean, Bool: b}
}

// IsEmpty reports whether the value would render as blank
func (v FieldValue) IsEmpty() bool {
	switch v.Kind {
	case FieldKindBoolean:
		return false
	case FieldKindNumber:
		return false
	case "":
		return true
	default:
		return strings.TrimSpace(v.Text) == ""
	}
}

// Display renders the value for report output. Booleans render as Yes/No.
func (v FieldValue) Display() string {
	switch v.Kind {
	case FieldKindBoolean:
		if v.Bool {
			return "Yes"
		}
		return "No"
	case FieldKindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return v.Text
	}
}

// MarshalJSON writes the value back as its natural JSON scalar
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case FieldKindBoolean:
		return json.Marshal(v.Bool)
	case FieldKindNumber:
		return json.Marshal(v.Number)
	case "":
		return []byte("null"), nil
	default:
		return json.Marshal(v.Text)
	}
}

// UnmarshalJSON coerces a JSON scalar into a tagged value
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = FieldValue{}
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = FieldValue{Kind: FieldKindBoolean, Bool: b}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = FieldValue{Kind: FieldKindNumber, Number: n}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FieldValue{Kind: FieldKindText, Text: s}
		return nil
	}

	return fmt.Errorf("unsupported field value: %s", trimmed)
}
