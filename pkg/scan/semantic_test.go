package scan

import (
	"context"
	"math"
	"testing"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/nlp"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
)

func TestSemanticScannerMatchesTemplates(t *testing.T) {
	ctx := context.Background()
	s := NewSemanticScanner(ctx, patterns.Get(), stubEmbedder{}, 0.72)
	if !s.Enabled() {
		t.Fatal("scanner should be enabled with a working provider")
	}

	res := s.Scan(ctx, "guaranteed wealth plan for members")

	if !res.Enabled {
		t.Error("result should carry the enabled state")
	}
	if !res.HasMatch {
		t.Fatal("query near the guaranteed-returns templates should match")
	}
	if res.Score < 0.5 {
		t.Errorf("Score = %v, want at least 0.5 for an over-threshold match", res.Score)
	}
	if res.HighSeverityCount == 0 {
		t.Errorf("matches = %v, want high-severity templates", res.Matches)
	}
}

func TestSemanticScannerNoMatch(t *testing.T) {
	ctx := context.Background()
	s := NewSemanticScanner(ctx, patterns.Get(), stubEmbedder{}, 0.72)

	res := s.Scan(ctx, "cricket season starts next week")

	if res.HasMatch {
		t.Errorf("off-topic query matched: %v", res.Matches)
	}
	if res.Score >= 0.5 {
		t.Errorf("Score = %v, want under 0.5 below threshold", res.Score)
	}
}

func TestSemanticScannerDisabledWithoutProvider(t *testing.T) {
	ctx := context.Background()

	for name, provider := range map[string]nlp.EmbeddingProvider{
		"nil":  nil,
		"noop": nlp.NewNoOpEmbedder(0),
	} {
		s := NewSemanticScanner(ctx, patterns.Get(), provider, 0.72)
		if s.Enabled() {
			t.Errorf("%s provider: scanner should be disabled", name)
		}
		res := s.Scan(ctx, "guaranteed returns")
		if res.Enabled || res.Score != 0 {
			t.Errorf("%s provider: disabled scan returned %+v", name, res)
		}
	}
}

func TestSemanticScannerWhitelistContext(t *testing.T) {
	ctx := context.Background()
	s := NewSemanticScanner(ctx, patterns.Get(), stubEmbedder{}, 0.72)

	res := s.Scan(ctx, "scam alert: they keep promising guaranteed returns")
	if res.HasMatch || res.SkippedContext == "" {
		t.Errorf("warning context should skip matching, got %+v", res)
	}
}

func TestSemanticScoreScaling(t *testing.T) {
	s := &SemanticScanner{threshold: 0.72}

	tests := []struct {
		name string
		sim  float64
		want float64
	}{
		{"zero", 0, 0},
		{"at threshold", 0.72, 0.5},
		{"perfect", 1.0, 1.0},
		{"below threshold quadratic", 0.36, 0.125},
		{"midway above", 0.86, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.scale(tt.sim)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("scale(%v) = %v, want %v", tt.sim, got, tt.want)
			}
		})
	}
}
