// Package main provides the entry point for the job-recommender CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_recommender",
	Short: "Job recommendation engine",
	Long:  "Ranks job postings against a candidate profile using weighted title, skill, experience and semantic-embedding signals, and explains each score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
