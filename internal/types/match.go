package types

// Weights holds the coefficients applied to each scoring signal. They must
// sum to exactly 1.0; ranking.NewScorer enforces this at construction.
type Weights struct {
	Title      float64 `json:"title"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Semantic   float64 `json:"semantic"`
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Title + w.Skills + w.Experience + w.Semantic
}

// ScoreBreakdown records how a single job's combined score was computed.
// Component scores are in [0,1]; Score is the weighted combination scaled
// to [0,100]. Created once per job per ranking call and never mutated.
type ScoreBreakdown struct {
	Score             int      `json:"score"`
	TitleScore        float64  `json:"title_score"`
	SkillsScore       float64  `json:"skills_score"`
	ExperienceScore   float64  `json:"experience_score"`
	SemanticScore     float64  `json:"semantic_score"`
	SemanticAvailable bool     `json:"semantic_available"`
	Weights           Weights  `json:"weights"`
	MatchedSkills     []string `json:"matched_skills,omitempty"`
	MissingSkills     []string `json:"missing_skills,omitempty"`
	TitleMatched      bool     `json:"title_matched"`
}

// Explanation is the human-readable evidence attached to a scored job.
// It is a structured object so the presentation layer can render it
// however it likes; Summary is a convenience one-liner.
type Explanation struct {
	Quality        string   `json:"quality"`
	TitleMatch     string   `json:"title_match"`
	MatchedSkills  []string `json:"matched_skills,omitempty"`
	MissingSkills  []string `json:"missing_skills,omitempty"`
	ExperienceNote string   `json:"experience_note"`
	DegradedNote   string   `json:"degraded_note,omitempty"`
	Summary        string   `json:"summary"`
}

// ScoredJob pairs a job posting with its score breakdown and explanation.
type ScoredJob struct {
	Job         JobPosting     `json:"job"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	Explanation Explanation    `json:"explanation"`
}
