// Package ranking scores job postings against a candidate profile and
// produces an ordered, filtered, explained result set.
package ranking

import "fmt"

// InvalidWeightsError indicates a weight configuration whose components do
// not sum to 1.0. Raised at scorer construction; a running scorer always
// holds valid weights.
type InvalidWeightsError struct {
	Sum float64
}

func (e *InvalidWeightsError) Error() string {
	return fmt.Sprintf("scoring weights must sum to 1.0, got %g", e.Sum)
}
