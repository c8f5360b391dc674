// Package parsing provides text normalization and tokenization for lexical matching.
package parsing

import "strings"

// skillVariants maps common skill-name variants to one canonical form so
// that "Golang" on a profile matches "Go" on a posting.
var skillVariants = map[string]string{
	"golang":              "go",
	"go lang":             "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"k8s":                 "kubernetes",
	"react.js":            "react",
	"reactjs":             "react",
	"vue.js":              "vue",
	"vuejs":               "vue",
	"node":                "node.js",
	"nodejs":              "node.js",
	"postgres":            "postgresql",
	"ml":                  "machine learning",
	"tf":                  "tensorflow",
	"gcp":                 "google cloud",
	"amazon web services": "aws",
}

// stopwords are dropped during tokenization; they carry no matching signal.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "in": true,
	"is": true, "it": true, "its": true, "of": true, "on": true, "or": true,
	"that": true, "the": true, "to": true, "was": true, "we": true,
	"were": true, "will": true, "with": true, "you": true, "your": true,
}

// NormalizeSkill returns the canonical, lowercase form of a skill name.
// Returns "" for blank input.
func NormalizeSkill(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if normalized == "" {
		return ""
	}
	if canonical, ok := skillVariants[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeText lowercases text and replaces punctuation with spaces,
// collapsing runs of whitespace to single spaces.
func NormalizeText(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastSpace = false
		case r > 127:
			// Keep non-ASCII letters; postings are not always English.
			sb.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				sb.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

// Tokenize normalizes text and splits it into tokens with stopwords removed.
func Tokenize(text string) []string {
	fields := strings.Fields(NormalizeText(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if !stopwords[field] {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// TokenSet returns the unique tokens of text as a set.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range Tokenize(text) {
		set[token] = true
	}
	return set
}
