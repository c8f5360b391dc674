package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfile_Validate_DedupesSkills(t *testing.T) {
	profile := &CandidateProfile{
		Name:   "Jane Doe",
		Skills: []string{"Python", "python", "  SQL ", "", "Go"},
	}

	require.NoError(t, profile.Validate())
	assert.Equal(t, []string{"Python", "SQL", "Go"}, profile.Skills)
}

func TestCandidateProfile_Validate_RequiresName(t *testing.T) {
	profile := &CandidateProfile{}
	assert.Error(t, profile.Validate())
}

func TestCandidateProfile_Validate_DropsBlankTitles(t *testing.T) {
	profile := &CandidateProfile{
		Name:          "Jane Doe",
		DesiredTitles: []string{"Backend Engineer", "  ", ""},
	}

	require.NoError(t, profile.Validate())
	assert.Equal(t, []string{"Backend Engineer"}, profile.DesiredTitles)
}

func TestJobPosting_Validate(t *testing.T) {
	job := &JobPosting{
		ID:     "job-1",
		Title:  "Backend Engineer",
		Skills: []string{"Go", " ", "SQL"},
	}

	require.NoError(t, job.Validate())
	assert.Equal(t, []string{"Go", "SQL"}, job.Skills)
}

func TestJobPosting_Validate_RejectsEmptyID(t *testing.T) {
	job := &JobPosting{Title: "Backend Engineer"}
	assert.Error(t, job.Validate())

	blank := &JobPosting{ID: "   ", Title: "Backend Engineer"}
	assert.Error(t, blank.Validate())
}

func TestWeights_Sum(t *testing.T) {
	weights := Weights{Title: 0.25, Skills: 0.40, Experience: 0.15, Semantic: 0.20}
	assert.InDelta(t, 1.0, weights.Sum(), 1e-9)
}
