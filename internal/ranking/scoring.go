package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/job-recommender/internal/parsing"
	"github.com/jonathan/job-recommender/internal/types"
)

// Default weights for scoring components
const (
	defaultTitleWeight      = 0.25
	defaultSkillsWeight     = 0.40
	defaultExperienceWeight = 0.15
	defaultSemanticWeight   = 0.20
)

// titlePriorityDecay is applied per position in the desired-titles list so
// an equal-quality match on an earlier title always scores strictly higher.
// 0.95 keeps a perfect second-choice match (0.95) above a substring match
// on the first choice (0.8).
const titlePriorityDecay = 0.95

// experienceRecencyDecay is applied per position in the work history
// (ordered most recent first).
const experienceRecencyDecay = 0.9

// weightEpsilon is the tolerance for the weights-sum-to-one check.
const weightEpsilon = 1e-9

// DefaultWeights returns the standard signal weights.
func DefaultWeights() types.Weights {
	return types.Weights{
		Title:      defaultTitleWeight,
		Skills:     defaultSkillsWeight,
		Experience: defaultExperienceWeight,
		Semantic:   defaultSemanticWeight,
	}
}

// Scorer combines per-signal scores into a single 0-100 score with an
// evidence breakdown. Weights are validated once at construction.
type Scorer struct {
	weights types.Weights
}

// NewScorer creates a Scorer, failing with *InvalidWeightsError unless the
// weights sum to 1.0. All weights must be non-negative.
func NewScorer(weights types.Weights) (*Scorer, error) {
	if weights.Title < 0 || weights.Skills < 0 || weights.Experience < 0 || weights.Semantic < 0 {
		return nil, &InvalidWeightsError{Sum: weights.Sum()}
	}
	if math.Abs(weights.Sum()-1.0) > weightEpsilon {
		return nil, &InvalidWeightsError{Sum: weights.Sum()}
	}
	return &Scorer{weights: weights}, nil
}

// Weights returns the scorer's weight configuration.
func (s *Scorer) Weights() types.Weights {
	return s.weights
}

// SignalScores holds the per-signal outputs for one job before combination.
type SignalScores struct {
	Title             float64
	Skills            float64
	Experience        float64
	Semantic          float64
	SemanticAvailable bool
	MatchedSkills     []string
	MissingSkills     []string
	TitleMatched      bool
}

// Combine computes the weighted 0-100 score for one job. When the semantic
// signal is unavailable the remaining three weights are renormalized to sum
// to 1.0, so a provider outage degrades scores instead of failing the batch.
// A semantic-only weight configuration has nothing to renormalize and scores
// 0 in degraded mode.
func (s *Scorer) Combine(sig SignalScores) types.ScoreBreakdown {
	var combined float64
	if sig.SemanticAvailable {
		combined = s.weights.Title*sig.Title +
			s.weights.Skills*sig.Skills +
			s.weights.Experience*sig.Experience +
			s.weights.Semantic*sig.Semantic
	} else {
		sig.Semantic = 0
		lexical := s.weights.Title + s.weights.Skills + s.weights.Experience
		if lexical > 0 {
			combined = (s.weights.Title*sig.Title +
				s.weights.Skills*sig.Skills +
				s.weights.Experience*sig.Experience) / lexical
		}
	}

	score := int(math.Round(combined * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return types.ScoreBreakdown{
		Score:             score,
		TitleScore:        sig.Title,
		SkillsScore:       sig.Skills,
		ExperienceScore:   sig.Experience,
		SemanticScore:     sig.Semantic,
		SemanticAvailable: sig.SemanticAvailable,
		Weights:           s.weights,
		MatchedSkills:     sig.MatchedSkills,
		MissingSkills:     sig.MissingSkills,
		TitleMatched:      sig.TitleMatched,
	}
}

// scoreSkills computes the overlap between a candidate's skills and a job's
// required skills. Matching is exact on normalized forms, no fuzzing.
// An empty required set scores 1.0: an unknown requirement is not a reason
// to penalize the job.
func scoreSkills(candidateSkills, requiredSkills []string) (float64, []string, []string) {
	if len(requiredSkills) == 0 {
		return 1.0, nil, nil
	}

	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		if normalized := parsing.NormalizeSkill(skill); normalized != "" {
			candidateSet[normalized] = true
		}
	}

	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0, len(requiredSkills))
	seen := make(map[string]bool, len(requiredSkills))
	for _, required := range requiredSkills {
		normalized := parsing.NormalizeSkill(required)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		if candidateSet[normalized] {
			matched = append(matched, required)
		} else {
			missing = append(missing, required)
		}
	}

	total := len(matched) + len(missing)
	if total == 0 {
		return 1.0, nil, nil
	}
	return float64(len(matched)) / float64(total), matched, missing
}

// scoreTitle scores the job title against the candidate's desired titles,
// taking the best decayed match. Ties between equal-quality titles resolve
// to the earlier-listed one. An empty desired list is neutral (0.5).
// The boolean reports whether any title matched at substring level or better.
func scoreTitle(desiredTitles []string, jobTitle string) (float64, bool) {
	if len(desiredTitles) == 0 {
		return 0.5, false
	}

	best := 0.0
	matched := false
	for i, desired := range desiredTitles {
		sim := titleSimilarity(desired, jobTitle)
		if sim >= 0.8 {
			matched = true
		}
		effective := sim * math.Pow(titlePriorityDecay, float64(i))
		if effective > best {
			best = effective
		}
	}
	return best, matched
}

// titleSimilarity rates one desired title against the job title: exact
// normalized equality 1.0, substring containment either way 0.8, otherwise
// token overlap scaled into [0, 0.6].
func titleSimilarity(desired, jobTitle string) float64 {
	desiredNorm := parsing.NormalizeText(desired)
	jobNorm := parsing.NormalizeText(jobTitle)
	if desiredNorm == "" || jobNorm == "" {
		return 0
	}
	if desiredNorm == jobNorm {
		return 1.0
	}
	if strings.Contains(jobNorm, desiredNorm) || strings.Contains(desiredNorm, jobNorm) {
		return 0.8
	}

	desiredTokens := parsing.TokenSet(desired)
	jobTokens := parsing.TokenSet(jobTitle)
	if len(desiredTokens) == 0 || len(jobTokens) == 0 {
		return 0
	}
	overlap := 0
	for token := range desiredTokens {
		if jobTokens[token] {
			overlap++
		}
	}
	larger := len(desiredTokens)
	if len(jobTokens) > larger {
		larger = len(jobTokens)
	}
	return 0.6 * float64(overlap) / float64(larger)
}

// scoreExperience rates the relevance of the work history to the job
// description via token overlap, weighting longer and more recent entries
// more heavily. An empty history scores 0.0: no evidence of fit is not the
// same as a neutral signal.
func scoreExperience(history []types.WorkEntry, jobDescription string) float64 {
	if len(history) == 0 {
		return 0.0
	}
	jobTokens := parsing.TokenSet(jobDescription)
	if len(jobTokens) == 0 {
		return 0.0
	}

	var weightedSum, totalWeight float64
	for i, entry := range history {
		entryTokens := parsing.TokenSet(entry.Title + " " + entry.Description)
		overlap := 0
		for token := range entryTokens {
			if jobTokens[token] {
				overlap++
			}
		}

		// Overlap relative to the smaller token set, so a short but
		// on-point entry is not drowned by a long job description.
		smaller := len(entryTokens)
		if len(jobTokens) < smaller {
			smaller = len(jobTokens)
		}
		relevance := 0.0
		if smaller > 0 {
			relevance = float64(overlap) / float64(smaller)
		}

		weight := durationWeight(entry.DurationMonths) * math.Pow(experienceRecencyDecay, float64(i))
		weightedSum += weight * relevance
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0.0
	}
	score := weightedSum / totalWeight
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// durationWeight maps an entry duration in months to a weight in [1, 3].
// Unknown durations weigh 1.
func durationWeight(months int) float64 {
	if months <= 0 {
		return 1.0
	}
	weight := math.Log2(2 + float64(months)/6)
	if weight > 3 {
		weight = 3
	}
	return weight
}

// scoreSemantic rescales a cosine similarity from [-1, 1] to [0, 1].
func scoreSemantic(cosine float64) float64 {
	return (cosine + 1) / 2
}

// sortedCopy returns an alphabetically sorted copy of skills.
func sortedCopy(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	out := make([]string, len(skills))
	copy(out, skills)
	sort.Strings(out)
	return out
}
