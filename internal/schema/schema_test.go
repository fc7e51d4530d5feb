package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"string", "string"},
		{"VARCHAR(255)", "string"},
		{"char", "string"},
		{"text", "string"},
		{"int", "integer"},
		{"INTEGER", "integer"},
		{"bigint", "integer"},
		{"long", "integer"},
		{"double", "number"},
		{"float", "number"},
		{"decimal(10,2)", "number"},
		{"boolean", "boolean"},
		{"bool", "boolean"},
		{"date", "string"},
		{"timestamp", "string"},
		{"datetime", "string"},
		{"binary", "string"},
		{"array<string>", "string"}, // generic suffix is not a paren suffix
		{"array", "array"},
		{"map", "object"},
		{"struct", "object"},
		{"unknown_type", "string"},
		{"", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapType(tt.input))
		})
	}
}

func TestDescriptorRequired(t *testing.T) {
	d := &Descriptor{Fields: []Field{
		{Name: "id", Type: "integer", Required: true},
		{Name: "note", Type: "string", Required: false},
		{Name: "total", Type: "number", Required: true},
	}}

	assert.Equal(t, []string{"id", "total"}, d.Required())
}

func TestDescriptorMarshalJSON(t *testing.T) {
	d := &Descriptor{Fields: []Field{
		{Name: "id", Type: "integer", Required: true},
		{Name: "note", Type: "string", Required: false},
	}}

	data, err := json.Marshal(d)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"id": {"type": "integer"},
			"note": {"type": "string"}
		},
		"required": ["id"]
	}`, string(data))

	// Property order follows catalog order
	assert.Equal(t,
		`{"type":"object","properties":{"id":{"type":"integer"},"note":{"type":"string"}},"required":["id"]}`,
		string(data))
}

func TestDescriptorMarshalJSONEmptyRequired(t *testing.T) {
	d := &Descriptor{Fields: []Field{
		{Name: "note", Type: "string", Required: false},
	}}

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"required":[]`)
}

func TestFallback(t *testing.T) {
	d := Fallback()

	require.Len(t, d.Fields, 2)
	assert.Equal(t, Field{Name: "id", Type: "string", Required: true}, d.Fields[0])
	assert.Equal(t, Field{Name: "data", Type: "string", Required: false}, d.Fields[1])
	assert.Equal(t, []string{"id"}, d.Required())
}
