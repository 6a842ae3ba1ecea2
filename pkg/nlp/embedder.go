package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/config"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/httputil"
)

// EmbeddingProvider supplies text embeddings for the semantic scanners.
// Implementations must be safe for concurrent use.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}

// RemoteEmbedder implements EmbeddingProvider against an
// OpenAI-compatible /embeddings endpoint (Ollama, OpenAI, vLLM).
type RemoteEmbedder struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client

	mu          sync.Mutex
	lastRequest time.Time
	minInterval time.Duration
	dimension   int // learned from the first response
}

// NewRemoteEmbedder creates an embedder for the given endpoint.
func NewRemoteEmbedder(baseURL, model, apiKey string) (*RemoteEmbedder, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("embedding endpoint not configured")
	}
	if model == "" {
		model = "nomic-embed-text"
	}
	e := &RemoteEmbedder{
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		httpClient:  httputil.SlowClient(),
		minInterval: 50 * time.Millisecond,
	}
	log.Printf("[EMBEDDER] Remote embedder initialized: url=%s model=%s", baseURL, model)
	return e, nil
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// Embed generates an embedding for a single text.
func (e *RemoteEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 || embeddings[0] == nil {
		return nil, fmt.Errorf("no embedding returned")
	}
	return embeddings[0], nil
}

// EmbedBatch generates embeddings for multiple texts in one call.
func (e *RemoteEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	// Light rate limiting so corpus seeding does not hammer the service
	e.mu.Lock()
	if elapsed := time.Since(e.lastRequest); elapsed < e.minInterval {
		time.Sleep(e.minInterval - elapsed)
	}
	e.lastRequest = time.Now()
	e.mu.Unlock()

	reqBytes, err := json.Marshal(embeddingRequest{Model: e.model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embeddings", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer httputil.DrainAndClose(resp.Body)

	body, err := httputil.ReadResponseBody(resp.Body, httputil.MaxResponseSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding API error (status %d): %s", resp.StatusCode, string(body))
	}

	var embResp embeddingResponse
	if err := json.Unmarshal(body, &embResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	result := make([][]float32, len(texts))
	for _, data := range embResp.Data {
		if data.Index < 0 || data.Index >= len(texts) {
			continue
		}
		vec := make([]float32, len(data.Embedding))
		for i, v := range data.Embedding {
			vec[i] = float32(v)
		}
		result[data.Index] = vec
	}

	e.mu.Lock()
	if e.dimension == 0 && len(embResp.Data) > 0 {
		e.dimension = len(embResp.Data[0].Embedding)
	}
	e.mu.Unlock()

	return result, nil
}

// Dimension returns the embedding dimension, 0 until the first call.
func (e *RemoteEmbedder) Dimension() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dimension
}

// NoOpEmbedder returns zero vectors. Used when embeddings are disabled;
// scanners treat it as "no semantic evidence".
type NoOpEmbedder struct {
	dimension int
}

// NewNoOpEmbedder creates a no-op embedder.
func NewNoOpEmbedder(dimension int) *NoOpEmbedder {
	if dimension <= 0 {
		dimension = 384
	}
	return &NoOpEmbedder{dimension: dimension}
}

func (e *NoOpEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return make([]float32, e.dimension), nil
}

func (e *NoOpEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = make([]float32, e.dimension)
	}
	return result, nil
}

func (e *NoOpEmbedder) Dimension() int { return e.dimension }

// NewEmbedder creates an EmbeddingProvider from configuration. A
// provider that cannot initialize degrades to NoOp with a warning so
// the lexical scanners keep working.
func NewEmbedder(cfg *config.Config) EmbeddingProvider {
	switch cfg.Embeddings {
	case config.EmbeddingRemote:
		e, err := NewRemoteEmbedder(cfg.EmbedBaseURL, cfg.EmbedModel, cfg.EmbedAPIKey)
		if err != nil {
			log.Printf("[WARN] Remote embedder unavailable, semantic scanning disabled: %v", err)
			return NewNoOpEmbedder(0)
		}
		return e

	case config.EmbeddingLocal:
		e, err := NewLocalEmbedder(cfg.EmbedModelDir)
		if err != nil {
			log.Printf("[WARN] Local embedder unavailable, semantic scanning disabled: %v", err)
			return NewNoOpEmbedder(0)
		}
		return e

	default:
		log.Printf("[EMBEDDER] Embeddings disabled, semantic scanning off")
		return NewNoOpEmbedder(0)
	}
}

// IsNoOp reports whether the provider is the disabled placeholder.
func IsNoOp(p EmbeddingProvider) bool {
	_, ok := p.(*NoOpEmbedder)
	return ok
}
