package models

import (
	"encoding/json"
	"fmt"
)

// Reserved form_data keys holding metadata side-tables rather than field values
const (
	KeyCustomFieldsMetadata = "custom_fields_metadata"
	KeyHiddenFields         = "hidden_fields"
	KeyFieldLabels          = "field_labels"
	KeySectionsMetadata     = "dynamic_sections_metadata"
	KeySectionImages        = "section_images"
	KeyAssessment           = "assessment"
)

var reservedKeys = map[string]bool{
	KeyCustomFieldsMetadata: true,
	KeyHiddenFields:         true,
	KeyFieldLabels:          true,
	KeySectionsMetadata:     true,
	KeySectionImages:        true,
	KeyAssessment:           true,
}

// SectionImageSlots is the fixed number of optional image slots per section
const SectionImageSlots = 6

// FormData is the open JSON document stored on a claim. Field values live at
// the top level keyed by field name; metadata side-tables live under reserved
// keys alongside them.
type FormData struct {
	Values        map[string]FieldValue
	CustomFields  []FieldDescriptor
	HiddenFields  []string
	FieldLabels   map[string]string
	Sections      []Section
	SectionImages map[string][]string // section id -> 6 image URLs, "" = empty slot
	Assessment    *Assessment
}

// NewFormData returns an empty document with allocated maps
func NewFormData() *FormData {
	return &FormData{
		Values:        make(map[string]FieldValue),
		FieldLabels:   make(map[string]string),
		SectionImages: make(map[string][]string),
	}
}

// ParseFormData decodes a stored form_data blob. An empty or "null" blob
// yields an empty document.
func ParseFormData(raw string) (*FormData, error) {
	fd := NewFormData()
	if raw == "" || raw == "null" {
		return fd, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse form data: %w", err)
	}

	for key, msg := range doc {
		var err error
		switch key {
		case KeyCustomFieldsMetadata:
			err = json.Unmarshal(msg, &fd.CustomFields)
		case KeyHiddenFields:
			err = json.Unmarshal(msg, &fd.HiddenFields)
		case KeyFieldLabels:
			err = json.Unmarshal(msg, &fd.FieldLabels)
		case KeySectionsMetadata:
			err = json.Unmarshal(msg, &fd.Sections)
		case KeySectionImages:
			err = json.Unmarshal(msg, &fd.SectionImages)
		case KeyAssessment:
			err = json.Unmarshal(msg, &fd.Assessment)
		default:
			var v FieldValue
			if err = json.Unmarshal(msg, &v); err == nil {
				fd.Values[key] = v
			}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse form data key %q: %w", key, err)
		}
	}

	if fd.FieldLabels == nil {
		fd.FieldLabels = make(map[string]string)
	}
	if fd.SectionImages == nil {
		fd.SectionImages = make(map[string][]string)
	}
	return fd, nil
}

// Encode serializes the document back into one JSON blob
func (fd *FormData) Encode() (string, error) {
	doc := make(map[string]interface{}, len(fd.Values)+6)
	for name, v := range fd.Values {
		if reservedKeys[name] {
			continue
		}
		doc[name] = v
	}
	if len(fd.CustomFields) > 0 {
		doc[KeyCustomFieldsMetadata] = fd.CustomFields
	}
	if len(fd.HiddenFields) > 0 {
		doc[KeyHiddenFields] = fd.HiddenFields
	}
	if len(fd.FieldLabels) > 0 {
		doc[KeyFieldLabels] = fd.FieldLabels
	}
	if len(fd.Sections) > 0 {
		doc[KeySectionsMetadata] = fd.Sections
	}
	if len(fd.SectionImages) > 0 {
		doc[KeySectionImages] = fd.SectionImages
	}
	if fd.Assessment != nil {
		doc[KeyAssessment] = fd.Assessment
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode form data: %w", err)
	}
	return string(data), nil
}

// IsHidden reports whether the field is in the hidden set
func (fd *FormData) IsHidden(name string) bool {
	for _, h := range fd.HiddenFields {
		if h == name {
			return true
		}
	}
	return false
}

// Hide adds the field name to the hidden set. Hiding twice is a no-op and the
// field's stored value is untouched.
func (fd *FormData) Hide(name string) {
	if fd.IsHidden(name) {
		return
	}
	fd.HiddenFields = append(fd.HiddenFields, name)
}

// Unhide removes the field name from the hidden set
func (fd *FormData) Unhide(name string) {
	for i, h := range fd.HiddenFields {
		if h == name {
			fd.HiddenFields = append(fd.HiddenFields[:i], fd.HiddenFields[i+1:]...)
			return
		}
	}
}

// Label resolves the display label for a field: override first, then the
// descriptor default.
func (fd *FormData) Label(name, fallback string) string {
	if l, ok := fd.FieldLabels[name]; ok && l != "" {
		return l
	}
	return fallback
}

// CustomFieldByName finds a custom descriptor, or nil
func (fd *FormData) CustomFieldByName(name string) *FieldDescriptor {
	for i := range fd.CustomFields {
		if fd.CustomFields[i].Name == name {
			return &fd.CustomFields[i]
		}
	}
	return nil
}

// SectionByID finds a section, or nil
func (fd *FormData) SectionByID(id string) *Section {
	for i := range fd.Sections {
		if fd.Sections[i].ID == id {
			return &fd.Sections[i]
		}
	}
	return nil
}
