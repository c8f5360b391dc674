package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-recommender/internal/types"
)

// buildExplanation turns a score breakdown into structured, human-readable
// evidence. It is a pure formatting transform; skill lists are sorted
// alphabetically so output is deterministic.
func buildExplanation(breakdown types.ScoreBreakdown) types.Explanation {
	quality := qualityLabel(breakdown.Score)
	titleMatch := titleMatchLabel(breakdown.TitleScore, breakdown.TitleMatched)
	experienceNote := experienceNote(breakdown.ExperienceScore)

	explanation := types.Explanation{
		Quality:        quality,
		TitleMatch:     titleMatch,
		MatchedSkills:  sortedCopy(breakdown.MatchedSkills),
		MissingSkills:  sortedCopy(breakdown.MissingSkills),
		ExperienceNote: experienceNote,
	}
	if !breakdown.SemanticAvailable {
		explanation.DegradedNote = "Semantic matching unavailable; score uses title, skills and experience only"
	}
	explanation.Summary = buildSummary(breakdown, quality, explanation.MissingSkills)
	return explanation
}

// qualityLabel buckets a combined score into a match-quality label.
func qualityLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Limited"
	}
}

// titleMatchLabel describes how well the job title matched desired roles.
func titleMatchLabel(titleScore float64, matched bool) string {
	switch {
	case titleScore >= 0.95:
		return "exact"
	case matched:
		return "strong"
	case titleScore >= 0.3:
		return "partial"
	default:
		return "none"
	}
}

// experienceNote is a one-line relevance note for the work-history signal.
func experienceNote(score float64) string {
	switch {
	case score >= 0.6:
		return "Work history is highly relevant to this role"
	case score >= 0.3:
		return "Work history partially overlaps with this role"
	case score > 0:
		return "Work history shows limited overlap with this role"
	default:
		return "No relevant work history found"
	}
}

// buildSummary renders the one-line summary shown in listings.
func buildSummary(breakdown types.ScoreBreakdown, quality string, missing []string) string {
	parts := []string{fmt.Sprintf("%s match (%d%%).", quality, breakdown.Score)}

	if n := len(breakdown.MatchedSkills); n > 0 {
		parts = append(parts, fmt.Sprintf("You have %d of the required skills.", n))
	}
	if len(missing) > 0 && len(missing) <= 3 {
		parts = append(parts, fmt.Sprintf("Consider developing: %s.", strings.Join(missing, ", ")))
	} else if len(missing) > 3 {
		parts = append(parts, fmt.Sprintf("You may need to develop %d additional skills.", len(missing)))
	}
	if !breakdown.SemanticAvailable {
		parts = append(parts, "Semantic matching unavailable, using basic matching.")
	}

	return strings.Join(parts, " ")
}
