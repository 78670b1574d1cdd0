package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValueUnmarshalCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want FieldValue
	}{
		{
			name: "string scalar",
			raw:  `"MV Ocean Star"`,
			want: TextValue("MV Ocean Star"),
		},
		{
			name: "number scalar",
			raw:  `12500.50`,
			want: NumberValue(12500.50),
		},
		{
			name: "boolean scalar",
			raw:  `true`,
			want: BoolValue(true),
		},
		{
			name: "false boolean",
			raw:  `false`,
			want: BoolValue(false),
		},
		{
			name: "null clears the value",
			raw:  `null`,
			want: FieldValue{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v FieldValue
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestFieldValueMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value FieldValue
		want  string
	}{
		{name: "text", value: TextValue("hello"), want: `"hello"`},
		{name: "number", value: NumberValue(42), want: `42`},
		{name: "bool", value: BoolValue(false), want: `false`},
		{name: "zero value", value: FieldValue{}, want: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestFieldValueDisplay(t *testing.T) {
	assert.Equal(t, "Yes", BoolValue(true).Display())
	assert.Equal(t, "No", BoolValue(false).Display())
	assert.Equal(t, "1250.5", NumberValue(1250.5).Display())
	assert.Equal(t, "1000", NumberValue(1000).Display())
	assert.Equal(t, "some text", TextValue("some text").Display())
}

func TestFieldValueIsEmpty(t *testing.T) {
	assert.True(t, FieldValue{}.IsEmpty())
	assert.True(t, TextValue("").IsEmpty())
	assert.True(t, TextValue("   ").IsEmpty())
	assert.False(t, TextValue("x").IsEmpty())
	// numbers and booleans always render, zero included
	assert.False(t, NumberValue(0).IsEmpty())
	assert.False(t, BoolValue(false).IsEmpty())
}

func TestIsCustomFieldName(t *testing.T) {
	assert.True(t, IsCustomFieldName("custom_1712345678901"))
	assert.False(t, IsCustomFieldName("vessel_name"))
	assert.False(t, IsCustomFieldName(""))
}
