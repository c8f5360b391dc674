// Package types provides type definitions for structured data used throughout the job-recommender engine.
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// WorkEntry represents a single work-history entry on a candidate profile.
type WorkEntry struct {
	Title          string `json:"title"`
	Company        string `json:"company,omitempty"`
	Description    string `json:"description,omitempty"`
	DurationMonths int    `json:"duration_months,omitempty" validate:"gte=0"`
}

// CandidateProfile represents one job-seeker's structured profile for a
// ranking request. DesiredTitles is priority-ordered (first choice first)
// and Experience is ordered most recent first.
type CandidateProfile struct {
	Name          string      `json:"name" validate:"required,min=1"`
	Email         string      `json:"email,omitempty"`
	DesiredTitles []string    `json:"desired_job_titles,omitempty"`
	Skills        []string    `json:"skills,omitempty"`
	Experience    []WorkEntry `json:"experience,omitempty"`
	Summary       string      `json:"summary,omitempty"`
	Location      string      `json:"location,omitempty"`
}

// Validate checks the profile and normalizes its skill list in place:
// skills are trimmed and deduplicated on their lowercase form, preserving
// first-seen order and original casing.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid candidate profile: %w", err)
	}

	seen := make(map[string]bool, len(p.Skills))
	deduped := make([]string, 0, len(p.Skills))
	for _, skill := range p.Skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, trimmed)
	}
	p.Skills = deduped

	titles := make([]string, 0, len(p.DesiredTitles))
	for _, title := range p.DesiredTitles {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			titles = append(titles, trimmed)
		}
	}
	p.DesiredTitles = titles

	return nil
}
