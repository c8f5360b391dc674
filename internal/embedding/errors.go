// Package embedding provides embedding-provider access with an LRU cache
// and the vector math used for semantic similarity.
package embedding

import "fmt"

// EmptyInputError indicates that a text was empty after normalization and
// therefore cannot be embedded. This is a data error and is surfaced to the
// caller rather than recovered.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "cannot embed empty text"
}

// DimensionMismatchError indicates that two vectors of unequal length were
// compared. This is a contract violation, not a recoverable condition.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: %d vs %d", e.Want, e.Got)
}

// ProviderUnavailableError indicates the embedding provider failed
// (network, quota, auth). Callers decide fallback policy; the ranking
// scorer degrades to lexical-only weighting.
type ProviderUnavailableError struct {
	Provider string
	Cause    error
}

func (e *ProviderUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding provider %s unavailable: %v", e.Provider, e.Cause)
	}
	return fmt.Sprintf("embedding provider %s unavailable", e.Provider)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Cause
}
