package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"level": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("person.schema.json", []byte(personSchema)))

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "axe_01", "level": 3}`},
		{name: "valid data without optional field", data: `{"name": "axe_01"}`},
		{name: "missing required field", data: `{"level": 3}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "axe_01", "level": "three"}`, wantError: true, errorMsg: "/level"},
		{name: "constraint violation", data: `{"name": "axe_01", "level": -1}`, wantError: true, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestSchemaValidator_InvalidSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.Register("broken.schema.json", []byte(`{"type": `))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema JSON")
}

func TestSchemaValidator_RegisterTwice(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("person.schema.json", []byte(personSchema)))
	assert.NoError(t, v.Register("person.schema.json", []byte(personSchema)))
}
