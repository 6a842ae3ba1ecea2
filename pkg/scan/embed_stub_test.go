package scan

import (
	"context"
	"strings"
)

// stubEmbedder produces deterministic vectors keyed on marker words so
// vector-store behavior can be tested without a real model. Texts that
// share a marker embed identically; texts with different markers are
// near-orthogonal.
type stubEmbedder struct{}

func (stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	lower := strings.ToLower(text)
	vec := make([]float32, 6)
	if strings.Contains(lower, "guarante") || strings.Contains(lower, "assured") {
		vec[0] = 1
	}
	if strings.Contains(lower, "double") || strings.Contains(lower, "twice") {
		vec[1] = 1
	}
	if strings.Contains(lower, "cricket") {
		vec[2] = 1
	}
	if strings.Contains(lower, "expense ratio") {
		vec[3] = 1
	}
	if strings.Contains(lower, "movie") {
		vec[4] = 1
	}
	// Shared floor keeps every vector non-zero.
	vec[5] = 0.1
	return vec, nil
}

func (e stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (stubEmbedder) Dimension() int { return 6 }
