package nlp

// local_embedder.go - Local ONNX feature extraction via Hugot.
//
// Runs a sentence embedding model fully locally, no external API calls.
// Gracefully degrades to the remote or no-op provider when the model or
// runtime are unavailable.

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/options"
	"github.com/knights-analytics/hugot/pipelines"
)

// LocalEmbedder implements EmbeddingProvider with an ONNX sentence
// embedding model loaded through Hugot.
type LocalEmbedder struct {
	session  *hugot.Session
	pipeline *pipelines.FeatureExtractionPipeline

	mu        sync.RWMutex
	dimension int
	ready     bool
}

// NewLocalEmbedder loads the ONNX model from modelDir. The directory
// must contain model.onnx plus tokenizer files.
func NewLocalEmbedder(modelDir string) (*LocalEmbedder, error) {
	if modelDir == "" {
		return nil, fmt.Errorf("no model directory configured")
	}
	if _, err := os.Stat(filepath.Join(modelDir, "model.onnx")); err != nil {
		return nil, fmt.Errorf("model not found in %s: %w", modelDir, err)
	}

	e := &LocalEmbedder{}
	if err := e.initialize(modelDir); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *LocalEmbedder) initialize(modelDir string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, err := createSession()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, hugot.FeatureExtractionConfig{
		ModelPath: modelDir,
		Name:      "moderation-embedder",
	})
	if err != nil {
		_ = session.Destroy()
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	e.session = session
	e.pipeline = pipeline
	e.ready = true
	log.Printf("[EMBEDDER] Local ONNX embedder initialized (model: %s)", modelDir)
	return nil
}

// createSession prefers the ONNX Runtime backend and falls back to the
// pure Go backend when the shared library is absent.
func createSession() (*hugot.Session, error) {
	if libPath := onnxLibraryDir(); libPath != "" {
		session, err := hugot.NewORTSession(options.WithOnnxLibraryPath(libPath))
		if err == nil {
			log.Printf("[EMBEDDER] Using ONNX Runtime backend")
			return session, nil
		}
		log.Printf("[EMBEDDER] ONNX Runtime unavailable, falling back to Go backend: %v", err)
	}

	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create Go session: %w", err)
	}
	log.Printf("[EMBEDDER] Using pure Go backend (slower)")
	return session, nil
}

func onnxLibraryDir() string {
	paths := []string{
		"/usr/lib/libonnxruntime.so",
		"/usr/local/lib/libonnxruntime.so",
		"/opt/homebrew/lib/libonnxruntime.dylib",
		"/usr/local/lib/libonnxruntime.dylib",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return filepath.Dir(p)
		}
	}
	return ""
}

// Embed generates an embedding for a single text.
func (e *LocalEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	return embeddings[0], nil
}

// EmbedBatch runs the feature extraction pipeline over texts.
func (e *LocalEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	e.mu.RLock()
	ready := e.ready
	e.mu.RUnlock()
	if !ready {
		return nil, fmt.Errorf("local embedder not initialized")
	}
	if len(texts) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, err := e.pipeline.RunPipeline(texts)
	if err != nil {
		return nil, fmt.Errorf("feature extraction failed: %w", err)
	}

	e.mu.Lock()
	if e.dimension == 0 && len(output.Embeddings) > 0 {
		e.dimension = len(output.Embeddings[0])
	}
	e.mu.Unlock()

	return output.Embeddings, nil
}

// Dimension returns the embedding dimension, 0 until the first call.
func (e *LocalEmbedder) Dimension() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dimension
}

// Close releases the ONNX session.
func (e *LocalEmbedder) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ready = false
	if e.session != nil {
		return e.session.Destroy()
	}
	return nil
}
