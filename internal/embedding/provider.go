package embedding

import "context"

// Vector is a fixed-length semantic embedding of a text. All vectors
// produced by one provider instance share one dimensionality.
type Vector []float32

// Provider is an abstraction over external embedding services.
type Provider interface {
	// Embed returns the embedding for the given text. It may block on
	// network I/O and fails with *ProviderUnavailableError on
	// network/quota/auth problems.
	Embed(ctx context.Context, text string) (Vector, error)
	// Dimension returns the dimensionality of returned vectors.
	Dimension() int
	// Model returns the provider's model identifier.
	Model() string
}

// Unavailable returns a Provider whose calls always fail with
// *ProviderUnavailableError. It is used when no embedding backend is
// configured, so ranking runs entirely in degraded lexical mode.
func Unavailable() Provider {
	return unavailableProvider{}
}

type unavailableProvider struct{}

func (unavailableProvider) Embed(_ context.Context, _ string) (Vector, error) {
	return nil, &ProviderUnavailableError{Provider: "none"}
}

func (unavailableProvider) Dimension() int { return 0 }

func (unavailableProvider) Model() string { return "none" }
