// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Profile string `json:"profile,omitempty"` // Path to candidate profile JSON file
	Jobs    string `json:"jobs,omitempty"`    // Path to job postings JSON file

	// Embedding provider
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	CacheSize      int    `json:"cache_size,omitempty"`      // Max cached embedding vectors

	// Ranking
	MinScore       int     `json:"min_score,omitempty"`       // Exclude jobs below this score (0-100)
	Limit          int     `json:"limit,omitempty"`           // Truncate result count; 0 = unbounded
	RemoteOnly     bool    `json:"remote_only,omitempty"`     // Only remote jobs
	Location       string  `json:"location,omitempty"`        // Location substring filter
	MinSalary      float64 `json:"min_salary,omitempty"`      // Exclude jobs paying below this; 0 = unset
	MaxSalary      float64 `json:"max_salary,omitempty"`      // Exclude jobs starting above this; 0 = unset
	Keywords       string  `json:"keywords,omitempty"`        // Title/description substring filter
	MaxConcurrency int     `json:"max_concurrency,omitempty"` // Parallel job-scoring workers

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
	JSON    bool `json:"json,omitempty"`    // Emit results as JSON instead of formatted output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: required fields are checked after merging CLI flags, not here.
func (c *Config) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("config error: 'cache_size' must be non-negative")
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("config error: 'max_concurrency' must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 100")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.MinSalary < 0 {
		return fmt.Errorf("config error: 'min_salary' must be non-negative")
	}
	if c.MaxSalary < 0 {
		return fmt.Errorf("config error: 'max_salary' must be non-negative")
	}
	if c.MinSalary > 0 && c.MaxSalary > 0 && c.MinSalary > c.MaxSalary {
		return fmt.Errorf("config error: 'min_salary' must not exceed 'max_salary'")
	}
	return nil
}
