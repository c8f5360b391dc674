package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/embedding"
	"github.com/jonathan/job-recommender/internal/logger"
	"github.com/jonathan/job-recommender/internal/observability"
	"github.com/jonathan/job-recommender/internal/ranking"
	"github.com/jonathan/job-recommender/internal/schemas"
	"github.com/jonathan/job-recommender/internal/types"
)

var recommendCommand = &cobra.Command{
	Use:   "recommend",
	Short: "Rank job postings against a candidate profile",
	Long: `Scores every posting in the jobs file against the profile using weighted
title, skill, experience and semantic-embedding signals, then prints the
filtered, ranked results with per-job evidence.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRecommend,
}

var (
	recConfigPath string
	recProfile    string
	recJobs       string
	recAPIKey     string
	recModel      string
	recCacheSize  int
	recMinScore   int
	recLimit      int
	recRemoteOnly bool
	recLocation   string
	recMinSalary  float64
	recMaxSalary  float64
	recKeywords   string
	recVerbose    bool
	recJSON       bool
)

func init() {
	// Config file flag (processed first)
	recommendCommand.Flags().StringVar(&recConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	recommendCommand.Flags().StringVarP(&recProfile, "profile", "p", "", "Path to candidate profile JSON file")
	recommendCommand.Flags().StringVarP(&recJobs, "jobs", "j", "", "Path to job postings JSON file")
	recommendCommand.Flags().IntVar(&recMinScore, "min-score", 0, "Exclude jobs scoring below this threshold (0-100)")
	recommendCommand.Flags().IntVarP(&recLimit, "limit", "l", 0, "Maximum number of results (0 = unbounded)")
	recommendCommand.Flags().BoolVar(&recRemoteOnly, "remote-only", false, "Only include remote jobs")
	recommendCommand.Flags().StringVar(&recLocation, "location", "", "Only include jobs whose location contains this string")
	recommendCommand.Flags().Float64Var(&recMinSalary, "min-salary", 0, "Only include jobs whose salary range reaches this amount")
	recommendCommand.Flags().Float64Var(&recMaxSalary, "max-salary", 0, "Only include jobs whose salary range starts at or below this amount")
	recommendCommand.Flags().StringVar(&recKeywords, "keywords", "", "Only include jobs whose title or description contains this string")
	recommendCommand.Flags().IntVar(&recCacheSize, "cache-size", 0, "Maximum cached embedding vectors (default 512)")
	recommendCommand.Flags().StringVar(&recModel, "embedding-model", "", "Embedding model name")
	recommendCommand.Flags().BoolVarP(&recVerbose, "verbose", "v", false, "Print detailed debug information")
	recommendCommand.Flags().BoolVar(&recJSON, "json", false, "Emit results as JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	recommendCommand.Flags().StringVar(&recAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(recommendCommand)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if recConfigPath != "" {
		loadedCfg, err := config.LoadConfig(recConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("profile") {
		cfg.Profile = recProfile
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = recJobs
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = recAPIKey
	}
	if cmd.Flags().Changed("embedding-model") {
		cfg.EmbeddingModel = recModel
	}
	if cmd.Flags().Changed("cache-size") {
		cfg.CacheSize = recCacheSize
	}
	if cmd.Flags().Changed("min-score") {
		cfg.MinScore = recMinScore
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = recLimit
	}
	if cmd.Flags().Changed("remote-only") {
		cfg.RemoteOnly = recRemoteOnly
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = recLocation
	}
	if cmd.Flags().Changed("min-salary") {
		cfg.MinSalary = recMinSalary
	}
	if cmd.Flags().Changed("max-salary") {
		cfg.MaxSalary = recMaxSalary
	}
	if cmd.Flags().Changed("keywords") {
		cfg.Keywords = recKeywords
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = recVerbose
	}
	if cmd.Flags().Changed("json") {
		cfg.JSON = recJSON
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Profile == "" || cfg.Jobs == "" {
		return fmt.Errorf("--profile and --jobs are required (via flags or config file)")
	}

	log, err := logger.New(cfg.JSON, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Step 3: Load and validate inputs
	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(cfg.Jobs)
	if err != nil {
		return err
	}
	log.Debug("inputs loaded", zap.String("candidate", profile.Name), zap.Int("jobs", len(jobs)))

	// Step 4: Build the embedding provider. Without an API key the engine
	// runs in degraded lexical-only mode rather than failing.
	var provider embedding.Provider
	if cfg.APIKey != "" {
		gemini, err := embedding.NewGeminiProvider(ctx, cfg.APIKey, cfg.EmbeddingModel)
		if err != nil {
			return fmt.Errorf("failed to create embedding provider: %w", err)
		}
		defer func() { _ = gemini.Close() }()
		provider = gemini
	} else {
		log.Warn("no API key configured, semantic matching disabled")
		provider = embedding.Unavailable()
	}

	cache := embedding.NewCache(provider, &embedding.CacheConfig{
		MaxEntries: cfg.CacheSize,
		Logger:     log,
	})

	ranker, err := ranking.NewRanker(cache, &ranking.RankerConfig{
		Weights:        ranking.DefaultWeights(),
		MaxConcurrency: cfg.MaxConcurrency,
		Logger:         log,
	})
	if err != nil {
		return err
	}

	// Step 5: Rank
	results, err := ranker.Rank(ctx, profile, jobs, &ranking.Options{
		MinScore:   cfg.MinScore,
		RemoteOnly: cfg.RemoteOnly,
		Location:   cfg.Location,
		MinSalary:  cfg.MinSalary,
		MaxSalary:  cfg.MaxSalary,
		Keywords:   cfg.Keywords,
		Limit:      cfg.Limit,
	})
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	// Step 6: Output
	if cfg.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoredJobs(results)
	if cfg.Verbose {
		for i := range results {
			printer.PrintBreakdown(&results[i])
		}
	}
	return nil
}

// loadProfile reads, schema-validates and parses the candidate profile file.
func loadProfile(path string) (*types.CandidateProfile, error) {
	if schemaPath := schemas.ResolveSchemaPath("schemas/profile.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("profile validation failed: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// loadJobs reads, schema-validates and parses the job postings file.
func loadJobs(path string) ([]types.JobPosting, error) {
	if schemaPath := schemas.ResolveSchemaPath("schemas/jobs.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("jobs validation failed: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}
	var jobs []types.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse jobs JSON: %w", err)
	}
	for i := range jobs {
		if err := jobs[i].Validate(); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
	}
	return jobs, nil
}
