// ABOUTME: Remote SequenceEmbedder backed by the OpenAI embeddings API
// ABOUTME: Retries with exponential backoff; no local training required
package embed

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/foldlab/foldvec/internal/util"
)

// OpenAIConfig holds configuration for the remote embedder
type OpenAIConfig struct {
	APIKey     string
	Model      string
	Dim        int
	MaxRetries int
	RetryDelay time.Duration
}

// OpenAIEmbedder embeds raw residue sequences through the embeddings API.
// It satisfies SequenceEmbedder, so the pipeline can swap it in for the
// locally trained table; there is no training barrier on this path.
type OpenAIEmbedder struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dim        int
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIEmbedder creates a remote embedder from the given configuration
func NewOpenAIEmbedder(cfg OpenAIConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required for the remote embedder")
	}
	if cfg.Dim <= 0 {
		return nil, fmt.Errorf("remote embedder dimension must be positive, got %d", cfg.Dim)
	}
	return &OpenAIEmbedder{
		client:     openai.NewClient(cfg.APIKey),
		model:      openai.EmbeddingModel(cfg.Model),
		dim:        cfg.Dim,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// Embed implements SequenceEmbedder
func (e *OpenAIEmbedder) Embed(ctx context.Context, sequence string) ([]float64, error) {
	var lastErr error
	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(util.CalculateBackoff(e.retryDelay, attempt)):
			}
		}

		resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input:      []string{sequence},
			Model:      e.model,
			Dimensions: e.dim,
		})
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Data) != 1 {
			lastErr = fmt.Errorf("expected 1 embedding, got %d", len(resp.Data))
			continue
		}

		raw := resp.Data[0].Embedding
		vector := make([]float64, len(raw))
		for i, v := range raw {
			vector[i] = float64(v)
		}
		if len(vector) != e.dim {
			return nil, fmt.Errorf("embedding dimension mismatch: expected %d, got %d", e.dim, len(vector))
		}
		return vector, nil
	}
	return nil, fmt.Errorf("embedding request failed after %d attempts: %w", e.maxRetries+1, lastErr)
}

// Dim implements SequenceEmbedder
func (e *OpenAIEmbedder) Dim() int {
	return e.dim
}
