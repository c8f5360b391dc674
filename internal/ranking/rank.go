package ranking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-recommender/internal/embedding"
	"github.com/jonathan/job-recommender/internal/types"
)

// DefaultMaxConcurrency bounds how many jobs are scored in parallel.
const DefaultMaxConcurrency = 8

// Options control filtering and truncation of a ranking call.
type Options struct {
	MinScore   int     // Exclude jobs scoring below this threshold
	RemoteOnly bool    // Keep only remote jobs
	Location   string  // Keep only jobs whose location contains this (case-insensitive)
	MinSalary  float64 // Keep only jobs whose salary ceiling reaches this; 0 means unset
	MaxSalary  float64 // Keep only jobs whose salary floor stays under this; 0 means unset
	Keywords   string  // Keep only jobs whose title or description contains this (case-insensitive)
	Limit      int     // Truncate to this many results; 0 means unbounded
}

// RankerConfig holds configuration for a Ranker.
type RankerConfig struct {
	Weights        types.Weights
	MaxConcurrency int
	Logger         *zap.Logger
}

// DefaultRankerConfig returns sensible defaults.
func DefaultRankerConfig() *RankerConfig {
	return &RankerConfig{
		Weights:        DefaultWeights(),
		MaxConcurrency: DefaultMaxConcurrency,
		Logger:         zap.NewNop(),
	}
}

// Ranker scores batches of job postings against one candidate profile.
// It never mutates its inputs; all per-call state is request-scoped.
type Ranker struct {
	scorer      *Scorer
	cache       *embedding.Cache
	concurrency int
	log         *zap.Logger
}

// NewRanker creates a Ranker using the given embedding cache. Fails with
// *InvalidWeightsError if the configured weights do not sum to 1.0.
func NewRanker(cache *embedding.Cache, config *RankerConfig) (*Ranker, error) {
	if config == nil {
		config = DefaultRankerConfig()
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = DefaultMaxConcurrency
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	zero := types.Weights{}
	if config.Weights == zero {
		config.Weights = DefaultWeights()
	}

	scorer, err := NewScorer(config.Weights)
	if err != nil {
		return nil, err
	}

	return &Ranker{
		scorer:      scorer,
		cache:       cache,
		concurrency: config.MaxConcurrency,
		log:         config.Logger,
	}, nil
}

// Rank scores every job against the profile, applies filters, sorts by
// descending score (stable: equal scores keep input order) and truncates to
// opts.Limit. ProviderUnavailable failures degrade individual jobs to
// lexical-only scoring; empty-input and dimension-mismatch errors fail the
// whole call, never returning a partial list.
func (r *Ranker) Rank(ctx context.Context, profile *types.CandidateProfile, jobs []types.JobPosting, opts *Options) ([]types.ScoredJob, error) {
	if opts == nil {
		opts = &Options{}
	}
	if len(jobs) == 0 {
		return []types.ScoredJob{}, nil
	}

	rankID := uuid.New().String()
	log := r.log.With(zap.String("rank_id", rankID))
	log.Debug("ranking batch", zap.Int("jobs", len(jobs)))

	// The candidate embedding is computed once per call, not per job.
	candidateVec, err := r.candidateEmbedding(ctx, profile)
	if err != nil {
		return nil, err
	}
	if candidateVec == nil {
		log.Warn("embedding provider unavailable, ranking in degraded mode")
	}

	scored := make([]types.ScoredJob, len(jobs))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)
	for i := range jobs {
		i := i
		group.Go(func() error {
			result, err := r.scoreJob(gctx, profile, &jobs[i], candidateVec)
			if err != nil {
				return fmt.Errorf("scoring job %s: %w", jobs[i].ID, err)
			}
			scored[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	filtered := applyFilters(scored, opts)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Breakdown.Score > filtered[j].Breakdown.Score
	})
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}

	topScore := 0
	if len(filtered) > 0 {
		topScore = filtered[0].Breakdown.Score
	}
	log.Debug("ranking complete",
		zap.Int("scored", len(scored)),
		zap.Int("returned", len(filtered)),
		zap.Int("top_score", topScore))

	return filtered, nil
}

// candidateEmbedding embeds the candidate's combined profile text. Returns
// a nil vector (degraded mode) when the provider is unavailable.
func (r *Ranker) candidateEmbedding(ctx context.Context, profile *types.CandidateProfile) (embedding.Vector, error) {
	vec, err := r.cache.GetOrCompute(ctx, profileText(profile))
	if err != nil {
		var unavailable *embedding.ProviderUnavailableError
		if errors.As(err, &unavailable) {
			return nil, nil
		}
		return nil, err
	}
	return vec, nil
}

// scoreJob runs the four matchers for one job and combines their outputs.
func (r *Ranker) scoreJob(ctx context.Context, profile *types.CandidateProfile, job *types.JobPosting, candidateVec embedding.Vector) (types.ScoredJob, error) {
	titleScore, titleMatched := scoreTitle(profile.DesiredTitles, job.Title)
	skillsScore, matched, missing := scoreSkills(profile.Skills, job.Skills)
	experienceScore := scoreExperience(profile.Experience, job.Description)

	semantic := 0.0
	semanticAvailable := false
	if candidateVec != nil {
		jobVec, err := r.cache.GetOrCompute(ctx, jobText(job))
		switch {
		case err == nil:
			cosine, err := embedding.CosineSimilarity(candidateVec, jobVec)
			if err != nil {
				return types.ScoredJob{}, err
			}
			semantic = scoreSemantic(cosine)
			semanticAvailable = true
		default:
			var unavailable *embedding.ProviderUnavailableError
			if !errors.As(err, &unavailable) {
				return types.ScoredJob{}, err
			}
			r.log.Debug("job embedding unavailable, degrading",
				zap.String("job_id", job.ID), zap.Error(err))
		}
	}

	breakdown := r.scorer.Combine(SignalScores{
		Title:             titleScore,
		Skills:            skillsScore,
		Experience:        experienceScore,
		Semantic:          semantic,
		SemanticAvailable: semanticAvailable,
		MatchedSkills:     matched,
		MissingSkills:     missing,
		TitleMatched:      titleMatched,
	})

	return types.ScoredJob{
		Job:         *job,
		Breakdown:   breakdown,
		Explanation: buildExplanation(breakdown),
	}, nil
}

// applyFilters drops scored jobs excluded by the options. Salary filters
// drop postings without salary data: an unknown range cannot satisfy a
// stated requirement.
func applyFilters(scored []types.ScoredJob, opts *Options) []types.ScoredJob {
	filtered := make([]types.ScoredJob, 0, len(scored))
	location := strings.ToLower(strings.TrimSpace(opts.Location))
	keywords := strings.ToLower(strings.TrimSpace(opts.Keywords))
	for _, sj := range scored {
		if sj.Breakdown.Score < opts.MinScore {
			continue
		}
		if opts.RemoteOnly && !sj.Job.Remote {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(sj.Job.Location), location) {
			continue
		}
		if opts.MinSalary > 0 && (sj.Job.SalaryMax == 0 || sj.Job.SalaryMax < opts.MinSalary) {
			continue
		}
		if opts.MaxSalary > 0 && (sj.Job.SalaryMin == 0 || sj.Job.SalaryMin > opts.MaxSalary) {
			continue
		}
		if keywords != "" &&
			!strings.Contains(strings.ToLower(sj.Job.Title), keywords) &&
			!strings.Contains(strings.ToLower(sj.Job.Description), keywords) {
			continue
		}
		filtered = append(filtered, sj)
	}
	return filtered
}

// profileText assembles the candidate text used for the profile embedding.
func profileText(profile *types.CandidateProfile) string {
	var parts []string
	if len(profile.DesiredTitles) > 0 {
		parts = append(parts, "Desired roles: "+strings.Join(profile.DesiredTitles, ", "))
	}
	if len(profile.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(profile.Skills, ", "))
	}
	if profile.Summary != "" {
		parts = append(parts, "Summary: "+profile.Summary)
	}
	if len(profile.Experience) > 0 {
		entries := make([]string, 0, len(profile.Experience))
		for _, entry := range profile.Experience {
			entries = append(entries, strings.TrimSpace(entry.Title+" "+entry.Description))
		}
		parts = append(parts, "Experience: "+strings.Join(entries, " "))
	}
	return strings.Join(parts, " ")
}

// jobText assembles the posting text used for the job embedding.
func jobText(job *types.JobPosting) string {
	parts := []string{job.Title, job.Company, job.Description}
	parts = append(parts, job.Skills...)
	return strings.TrimSpace(strings.Join(parts, " "))
}
