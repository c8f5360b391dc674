package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobPosting represents one standardized job listing from an upstream source.
// IDs are expected to be unique within a single ranking call; the engine
// itself scores postings independently and does not deduplicate.
type JobPosting struct {
	ID          string   `json:"id" validate:"required,min=1"`
	Title       string   `json:"title" validate:"required,min=1"`
	Company     string   `json:"company,omitempty"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Remote      bool     `json:"remote,omitempty"`
	SalaryMin   float64  `json:"salary_min,omitempty" validate:"gte=0"`
	SalaryMax   float64  `json:"salary_max,omitempty" validate:"gte=0"`
	URL         string   `json:"url,omitempty"`
	Source      string   `json:"source,omitempty"`
	PostedDate  string   `json:"posted_date,omitempty"`
}

// Validate checks the posting and drops blank entries from its required-skill
// list. An empty skill list is valid: it means the upstream extractor found
// no explicit requirements, not that the job requires nothing.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("invalid job posting: %w", err)
	}
	if strings.TrimSpace(j.ID) == "" {
		return fmt.Errorf("invalid job posting: id is blank")
	}

	skills := make([]string, 0, len(j.Skills))
	for _, skill := range j.Skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	j.Skills = skills

	return nil
}
