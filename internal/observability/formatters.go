// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the default number of skills to display in lists
	maxSkillsToShow = 5
)

// Printer handles formatted output for ranked results
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoredJob outputs one ranked job with its score and evidence.
func (p *Printer) PrintScoredJob(rank int, sj *types.ScoredJob) {
	if sj == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:   %s\n", sj.Job.Company))
	sb.WriteString(fmt.Sprintf("Location:  %s", sj.Job.Location))
	if sj.Job.Remote {
		sb.WriteString(" (remote)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Quality:   %s\n", sj.Explanation.Quality))
	sb.WriteString(fmt.Sprintf("Title:     %s match\n", sj.Explanation.TitleMatch))

	sb.WriteString(fmt.Sprintf("Matched:   %s\n", skillList(sj.Explanation.MatchedSkills)))
	sb.WriteString(fmt.Sprintf("Missing:   %s\n", skillList(sj.Explanation.MissingSkills)))
	sb.WriteString(sj.Explanation.ExperienceNote)
	if sj.Explanation.DegradedNote != "" {
		sb.WriteString("\n")
		sb.WriteString(sj.Explanation.DegradedNote)
	}

	title := fmt.Sprintf("#%d  %s — %d/100", rank, sj.Job.Title, sj.Breakdown.Score)
	p.printBox(title, sb.String())
}

// PrintScoredJobs outputs the full ranked result list.
func (p *Printer) PrintScoredJobs(results []types.ScoredJob) {
	if len(results) == 0 {
		fmt.Fprintln(p.out, "No matching jobs.")
		return
	}
	for i := range results {
		p.PrintScoredJob(i+1, &results[i])
	}
}

// PrintBreakdown outputs the per-signal scores for one job in verbose mode.
func (p *Printer) PrintBreakdown(sj *types.ScoredJob) {
	if sj == nil {
		return
	}
	b := sj.Breakdown

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:      %.2f (weight %.2f)\n", b.TitleScore, b.Weights.Title))
	sb.WriteString(fmt.Sprintf("Skills:     %.2f (weight %.2f)\n", b.SkillsScore, b.Weights.Skills))
	sb.WriteString(fmt.Sprintf("Experience: %.2f (weight %.2f)\n", b.ExperienceScore, b.Weights.Experience))
	if b.SemanticAvailable {
		sb.WriteString(fmt.Sprintf("Semantic:   %.2f (weight %.2f)", b.SemanticScore, b.Weights.Semantic))
	} else {
		sb.WriteString("Semantic:   unavailable (weights renormalized)")
	}

	p.printBox(fmt.Sprintf("Breakdown: %s", sj.Job.ID), sb.String())
}

// skillList renders a skill list capped at maxSkillsToShow entries.
func skillList(skills []string) string {
	if len(skills) == 0 {
		return "(none)"
	}
	if len(skills) <= maxSkillsToShow {
		return strings.Join(skills, ", ")
	}
	shown := strings.Join(skills[:maxSkillsToShow], ", ")
	return fmt.Sprintf("%s (+%d more)", shown, len(skills)-maxSkillsToShow)
}
