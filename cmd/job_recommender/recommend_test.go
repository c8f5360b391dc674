package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "profile.json", `{
		"name": "Jane Doe",
		"desired_job_titles": ["Backend Engineer"],
		"skills": ["Go", "go", "SQL"]
	}`)

	profile, err := loadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, []string{"Go", "SQL"}, profile.Skills, "duplicate skills should be deduplicated")
}

func TestLoadProfile_MissingName(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "profile.json", `{"skills": ["Go"]}`)

	_, err := loadProfile(path)
	assert.Error(t, err)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := loadProfile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadJobs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jobs.json", `[
		{"id": "job-1", "title": "Backend Engineer", "skills": ["Go", " "]},
		{"id": "job-2", "title": "Data Engineer"}
	]`)

	jobs, err := loadJobs(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Equal(t, []string{"Go"}, jobs[0].Skills, "blank skills should be dropped")
}

func TestLoadJobs_RejectsMissingID(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jobs.json", `[{"title": "Backend Engineer"}]`)

	_, err := loadJobs(path)
	assert.Error(t, err)
}

func TestRecommendCommand_Registered(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "recommend" {
			found = true
		}
	}
	assert.True(t, found, "recommend command should be registered on the root command")
}

func TestRecommendCommand_RequiresInputs(t *testing.T) {
	err := runRecommend(recommendCommand, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--profile and --jobs are required")
}
