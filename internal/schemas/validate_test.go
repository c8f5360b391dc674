package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "Jane"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Message, "name")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{not a schema`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	validPath := filepath.Join(dir, "valid.json")
	invalidPath := filepath.Join(dir, "invalid.json")

	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o600))
	require.NoError(t, os.WriteFile(validPath, []byte(`{"name": "Jane"}`), 0o600))
	require.NoError(t, os.WriteFile(invalidPath, []byte(`{"name": ""}`), 0o600))

	assert.NoError(t, ValidateJSON(schemaPath, validPath))
	assert.Error(t, ValidateJSON(schemaPath, invalidPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o600))

	assert.Error(t, ValidateJSON(schemaPath, filepath.Join(dir, "missing.json")))
	assert.Error(t, ValidateJSON(filepath.Join(dir, "missing.schema.json"), schemaPath))
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Equal(t, "", ResolveSchemaPath("no/such/schema.json"))
}
