package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-recommender/internal/schemas"
)

var schemaFiles = []string{
	"profile.schema.json",
	"jobs.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema,
				"schema should declare $schema and type")
		})
	}
}

func TestProfileSchema_AcceptsValidProfile(t *testing.T) {
	schema, err := os.ReadFile("profile.schema.json")
	require.NoError(t, err)

	profile := `{
		"name": "Jane Doe",
		"desired_job_titles": ["Backend Engineer"],
		"skills": ["Go", "SQL"],
		"experience": [
			{"title": "Engineer", "description": "Built services", "duration_months": 24}
		],
		"summary": "Backend engineer"
	}`
	assert.NoError(t, schemas.ValidateJSONString(string(schema), profile))
}

func TestProfileSchema_RejectsMissingName(t *testing.T) {
	schema, err := os.ReadFile("profile.schema.json")
	require.NoError(t, err)

	assert.Error(t, schemas.ValidateJSONString(string(schema), `{"skills": ["Go"]}`))
}

func TestJobsSchema_AcceptsValidJobs(t *testing.T) {
	schema, err := os.ReadFile("jobs.schema.json")
	require.NoError(t, err)

	jobs := `[
		{"id": "job-1", "title": "Backend Engineer", "skills": ["Go"], "remote": true},
		{"id": "job-2", "title": "Data Engineer", "location": "Berlin"}
	]`
	assert.NoError(t, schemas.ValidateJSONString(string(schema), jobs))
}

func TestJobsSchema_RejectsMissingID(t *testing.T) {
	schema, err := os.ReadFile("jobs.schema.json")
	require.NoError(t, err)

	assert.Error(t, schemas.ValidateJSONString(string(schema), `[{"title": "Backend Engineer"}]`))
}
