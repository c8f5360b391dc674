package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-recommender/internal/types"
)

func TestBuildExplanation_MissingSkillsSorted(t *testing.T) {
	explanation := buildExplanation(types.ScoreBreakdown{
		Score:             70,
		SemanticAvailable: true,
		MatchedSkills:     []string{"go"},
		MissingSkills:     []string{"terraform", "aws", "kafka"},
	})

	assert.Equal(t, []string{"aws", "kafka", "terraform"}, explanation.MissingSkills)
}

func TestBuildExplanation_QualityLabels(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{95, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{60, "Good"},
		{59, "Fair"},
		{40, "Fair"},
		{39, "Limited"},
		{0, "Limited"},
	}

	for _, tt := range tests {
		explanation := buildExplanation(types.ScoreBreakdown{Score: tt.score, SemanticAvailable: true})
		assert.Equal(t, tt.expected, explanation.Quality, "score %d", tt.score)
	}
}

func TestBuildExplanation_TitleLabels(t *testing.T) {
	exact := buildExplanation(types.ScoreBreakdown{TitleScore: 1.0, TitleMatched: true, SemanticAvailable: true})
	assert.Equal(t, "exact", exact.TitleMatch)

	strong := buildExplanation(types.ScoreBreakdown{TitleScore: 0.8, TitleMatched: true, SemanticAvailable: true})
	assert.Equal(t, "strong", strong.TitleMatch)

	partial := buildExplanation(types.ScoreBreakdown{TitleScore: 0.4, SemanticAvailable: true})
	assert.Equal(t, "partial", partial.TitleMatch)

	none := buildExplanation(types.ScoreBreakdown{TitleScore: 0.1, SemanticAvailable: true})
	assert.Equal(t, "none", none.TitleMatch)
}

func TestBuildExplanation_DegradedNote(t *testing.T) {
	degraded := buildExplanation(types.ScoreBreakdown{Score: 50})
	assert.NotEmpty(t, degraded.DegradedNote)
	assert.Contains(t, degraded.Summary, "Semantic matching unavailable")

	healthy := buildExplanation(types.ScoreBreakdown{Score: 50, SemanticAvailable: true})
	assert.Empty(t, healthy.DegradedNote)
}

func TestBuildExplanation_Summary(t *testing.T) {
	explanation := buildExplanation(types.ScoreBreakdown{
		Score:             72,
		SemanticAvailable: true,
		MatchedSkills:     []string{"go", "sql"},
		MissingSkills:     []string{"kafka"},
	})

	assert.Contains(t, explanation.Summary, "Good match (72%).")
	assert.Contains(t, explanation.Summary, "2 of the required skills")
	assert.Contains(t, explanation.Summary, "Consider developing: kafka.")
}

func TestBuildExplanation_ManyMissingSkills(t *testing.T) {
	explanation := buildExplanation(types.ScoreBreakdown{
		Score:             30,
		SemanticAvailable: true,
		MissingSkills:     []string{"a", "b", "c", "d", "e"},
	})

	assert.Contains(t, explanation.Summary, "5 additional skills")
}

func TestBuildExplanation_ExperienceNotes(t *testing.T) {
	high := buildExplanation(types.ScoreBreakdown{ExperienceScore: 0.7, SemanticAvailable: true})
	assert.Contains(t, high.ExperienceNote, "highly relevant")

	mid := buildExplanation(types.ScoreBreakdown{ExperienceScore: 0.4, SemanticAvailable: true})
	assert.Contains(t, mid.ExperienceNote, "partially overlaps")

	low := buildExplanation(types.ScoreBreakdown{ExperienceScore: 0.1, SemanticAvailable: true})
	assert.Contains(t, low.ExperienceNote, "limited overlap")

	none := buildExplanation(types.ScoreBreakdown{ExperienceScore: 0, SemanticAvailable: true})
	assert.Contains(t, none.ExperienceNote, "No relevant work history")
}
