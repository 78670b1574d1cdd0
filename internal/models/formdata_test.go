package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormDataEmpty(t *testing.T) {
	for _, raw := range []string{"", "null", "{}"} {
		fd, err := ParseFormData(raw)
		require.NoError(t, err, "raw=%q", raw)
		assert.Empty(t, fd.Values)
		assert.Empty(t, fd.CustomFields)
		assert.NotNil(t, fd.FieldLabels)
		assert.NotNil(t, fd.SectionImages)
	}
}

func TestParseFormDataSeparatesReservedKeys(t *testing.T) {
	raw := `{
		"claimant_name": "R. Sharma",
		"claim_amount": 50000,
		"police_report_filed": true,
		"custom_fields_metadata": [
			{"name": "custom_1700000000000", "label": "Tow Charges", "type": "number", "is_custom": true, "section_id": "section3"}
		],
		"hidden_fields": ["surveyor_remarks"],
		"field_labels": {"claimant_name": "Name of Claimant"}
	}`

	fd, err := ParseFormData(raw)
	require.NoError(t, err)

	assert.Len(t, fd.Values, 3)
	assert.Equal(t, TextValue("R. Sharma"), fd.Values["claimant_name"])
	assert.Equal(t, NumberValue(50000), fd.Values["claim_amount"])
	assert.Equal(t, BoolValue(true), fd.Values["police_report_filed"])

	require.Len(t, fd.CustomFields, 1)
	assert.Equal(t, "Tow Charges", fd.CustomFields[0].Label)
	assert.Equal(t, FieldKindNumber, fd.CustomFields[0].Kind)

	assert.Equal(t, []string{"surveyor_remarks"}, fd.HiddenFields)
	assert.Equal(t, "Name of Claimant", fd.FieldLabels["claimant_name"])
}

func TestFormDataEncodeRoundTrip(t *testing.T) {
	fd := NewFormData()
	fd.Values["claimant_name"] = TextValue("R. Sharma")
	fd.Values["claim_amount"] = NumberValue(50000)
	fd.CustomFields = append(fd.CustomFields, FieldDescriptor{
		Name: "custom_1700000000000", Label: "Tow Charges", Kind: FieldKindNumber,
		IsCustom: true, SectionID: "section3",
	})
	fd.Hide("surveyor_remarks")
	fd.FieldLabels["claimant_name"] = "Name of Claimant"

	encoded, err := fd.Encode()
	require.NoError(t, err)

	parsed, err := ParseFormData(encoded)
	require.NoError(t, err)
	assert.Equal(t, fd.Values, parsed.Values)
	assert.Equal(t, fd.CustomFields, parsed.CustomFields)
	assert.Equal(t, fd.HiddenFields, parsed.HiddenFields)
	assert.Equal(t, fd.FieldLabels, parsed.FieldLabels)
}

func TestEncodeSkipsReservedValueNames(t *testing.T) {
	// a field named after a reserved key must never clobber the side-table
	fd := NewFormData()
	fd.Values[KeyHiddenFields] = TextValue("bogus")
	fd.Hide("real_field")

	encoded, err := fd.Encode()
	require.NoError(t, err)

	parsed, err := ParseFormData(encoded)
	require.NoError(t, err)
	assert.Equal(t, []string{"real_field"}, parsed.HiddenFields)
	assert.NotContains(t, parsed.Values, KeyHiddenFields)
}

func TestHideIsIdempotent(t *testing.T) {
	fd := NewFormData()
	fd.Values["remarks"] = TextValue("keep me")

	fd.Hide("remarks")
	fd.Hide("remarks")
	fd.Hide("remarks")

	assert.Equal(t, []string{"remarks"}, fd.HiddenFields)
	assert.True(t, fd.IsHidden("remarks"))
	// hiding never touches the stored value
	assert.Equal(t, TextValue("keep me"), fd.Values["remarks"])

	fd.Unhide("remarks")
	assert.False(t, fd.IsHidden("remarks"))
	assert.Equal(t, TextValue("keep me"), fd.Values["remarks"])

	// unhiding something never hidden is a no-op
	fd.Unhide("never_hidden")
	assert.Empty(t, fd.HiddenFields)
}

func TestLabelOverride(t *testing.T) {
	fd := NewFormData()
	assert.Equal(t, "Vessel Name", fd.Label("vessel_name", "Vessel Name"))

	fd.FieldLabels["vessel_name"] = "Ship Name"
	assert.Equal(t, "Ship Name", fd.Label("vessel_name", "Vessel Name"))

	// empty override falls back
	fd.FieldLabels["vessel_name"] = ""
	assert.Equal(t, "Vessel Name", fd.Label("vessel_name", "Vessel Name"))
}
