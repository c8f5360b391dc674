package embedding

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultEmbeddingModel is the Gemini embedding model used when none is configured.
const DefaultEmbeddingModel = "text-embedding-004"

// defaultModelDimension is the documented output dimensionality of
// text-embedding-004. Other models report 0 until their first response.
const defaultModelDimension = 768

// GeminiProvider implements Provider using Google's Gemini embedding API.
type GeminiProvider struct {
	client *genai.Client
	model  string
	dim    atomic.Int64
}

// NewGeminiProvider creates a Gemini-backed embedding provider.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	p := &GeminiProvider{
		client: client,
		model:  model,
	}
	if model == DefaultEmbeddingModel {
		p.dim.Store(defaultModelDimension)
	}
	return p, nil
}

// Embed returns the embedding of text. Transport and quota failures are
// wrapped as *ProviderUnavailableError so callers can degrade gracefully.
func (p *GeminiProvider) Embed(ctx context.Context, text string) (Vector, error) {
	em := p.client.EmbeddingModel(p.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &ProviderUnavailableError{Provider: p.model, Cause: err}
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, &ProviderUnavailableError{
			Provider: p.model,
			Cause:    fmt.Errorf("empty embedding response"),
		}
	}
	p.dim.Store(int64(len(resp.Embedding.Values)))
	return Vector(resp.Embedding.Values), nil
}

// Dimension returns the dimensionality of vectors produced by this provider,
// as observed on the most recent response. Before any response it is the
// documented size of the default model, or 0 for other models.
func (p *GeminiProvider) Dimension() int {
	return int(p.dim.Load())
}

// Model returns the embedding model name.
func (p *GeminiProvider) Model() string {
	return p.model
}

// Close releases the underlying API client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}
