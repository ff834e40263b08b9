package similarity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultEmbeddingModel is the embedding model used when none is
// configured.
const DefaultEmbeddingModel = "text-embedding-004"

// DefaultEncodeTimeout bounds a single batched embedding call so an
// unreachable backend degrades promptly instead of hanging the
// analysis.
const DefaultEncodeTimeout = 15 * time.Second

// GeminiProvider embeds skill names with the Gemini embedding API.
// The underlying client is created lazily on first use and shared by
// all subsequent calls; the provider is safe for concurrent use.
type GeminiProvider struct {
	apiKey  string
	model   string
	timeout time.Duration

	mu     sync.Mutex
	client *genai.Client
}

// GeminiOption customizes a GeminiProvider.
type GeminiOption func(*GeminiProvider)

// WithModel selects the embedding model.
func WithModel(model string) GeminiOption {
	return func(p *GeminiProvider) {
		if model != "" {
			p.model = model
		}
	}
}

// WithEncodeTimeout bounds each Encode call.
func WithEncodeTimeout(d time.Duration) GeminiOption {
	return func(p *GeminiProvider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewGeminiProvider creates a provider using the given API key. An
// empty key is allowed at construction; Encode will then report
// ErrUnavailable, which callers treat as a degrade signal.
func NewGeminiProvider(apiKey string, opts ...GeminiOption) *GeminiProvider {
	p := &GeminiProvider{
		apiKey:  apiKey,
		model:   DefaultEmbeddingModel,
		timeout: DefaultEncodeTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name identifies the backend in result metadata.
func (p *GeminiProvider) Name() string {
	return "gemini/" + p.model
}

// Encode embeds all names in one batched call, preserving order.
func (p *GeminiProvider) Encode(ctx context.Context, names []string) ([][]float32, error) {
	if len(names) == 0 {
		return nil, nil
	}

	client, err := p.getClient(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	em := client.EmbeddingModel(p.model)
	batch := em.NewBatch()
	for _, name := range names {
		batch.AddContent(genai.Text(name))
	}

	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("batch embed failed: %w: %w", ErrUnavailable, err)
	}
	if len(res.Embeddings) != len(names) {
		return nil, fmt.Errorf("embedding count mismatch: got %d for %d names", len(res.Embeddings), len(names))
	}

	vectors := make([][]float32, len(res.Embeddings))
	for i, emb := range res.Embeddings {
		vectors[i] = emb.Values
	}
	return vectors, nil
}

// getClient lazily creates the shared genai client.
func (p *GeminiProvider) getClient(ctx context.Context) (*genai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if p.apiKey == "" {
		return nil, fmt.Errorf("no API key configured: %w", ErrUnavailable)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("create embedding client: %w: %w", ErrUnavailable, err)
	}
	p.client = client
	return client, nil
}

// Close releases the underlying client, if one was created.
func (p *GeminiProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}
