package scan

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/philippgille/chromem-go"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/nlp"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
)

const semanticTopK = 5

// SemanticScanner matches text against scam template embeddings held
// in an in-memory vector collection. It degrades to a disabled state
// when no real embedding provider is configured, so the rest of the
// pipeline keeps working without it.
type SemanticScanner struct {
	reg        *patterns.Registry
	collection *chromem.Collection
	threshold  float64
	enabled    bool
}

// NewSemanticScanner seeds a vector collection with the registry's
// scam templates. A nil or no-op provider yields a disabled scanner.
func NewSemanticScanner(ctx context.Context, reg *patterns.Registry, provider nlp.EmbeddingProvider, threshold float64) *SemanticScanner {
	s := &SemanticScanner{reg: reg, threshold: threshold}
	if provider == nil || nlp.IsNoOp(provider) {
		log.Printf("[WARN] semantic matching disabled: no embedding provider")
		return s
	}

	embed := chromem.EmbeddingFunc(func(ctx context.Context, text string) ([]float32, error) {
		return provider.Embed(ctx, text)
	})

	db := chromem.NewDB()
	collection, err := db.CreateCollection("scam-templates", nil, embed)
	if err != nil {
		log.Printf("[WARN] semantic matching disabled: %v", err)
		return s
	}

	docs := make([]chromem.Document, 0, len(reg.Scams))
	for i, tpl := range reg.Scams {
		docs = append(docs, chromem.Document{
			ID:       fmt.Sprintf("tpl-%d", i),
			Content:  tpl.Text,
			Metadata: map[string]string{"severity": tpl.Severity},
		})
	}
	if err := collection.AddDocuments(ctx, docs, 1); err != nil {
		log.Printf("[WARN] semantic matching disabled: embedding templates failed: %v", err)
		return s
	}

	s.collection = collection
	s.enabled = true
	log.Printf("[INFO] semantic matcher ready with %d templates", len(docs))
	return s
}

// Enabled reports whether template matching is active.
func (s *SemanticScanner) Enabled() bool { return s.enabled }

// Scan queries the template collection with the original message text
// and scales the best similarity into a risk score.
func (s *SemanticScanner) Scan(ctx context.Context, text string) SemanticResult {
	result := SemanticResult{Matches: []SemanticMatch{}, Enabled: s.enabled}
	if !s.enabled || strings.TrimSpace(text) == "" {
		return result
	}

	textLower := strings.ToLower(text)
	for _, phrase := range s.reg.Scam.Whitelist {
		if strings.Contains(textLower, phrase) {
			result.SkippedContext = phrase
			return result
		}
	}
	for _, phrase := range s.reg.Scam.StrongContexts {
		if strings.Contains(textLower, phrase) {
			result.SkippedContext = phrase
			return result
		}
	}

	n := semanticTopK
	if count := s.collection.Count(); count < n {
		n = count
	}
	hits, err := s.collection.Query(ctx, text, n, nil, nil)
	if err != nil {
		log.Printf("[WARN] semantic query failed: %v", err)
		return SemanticResult{Matches: []SemanticMatch{}, Enabled: false}
	}

	maxSim := 0.0
	for _, hit := range hits {
		sim := float64(hit.Similarity)
		if sim > maxSim {
			maxSim = sim
		}
		if sim < s.threshold {
			continue
		}
		severity := hit.Metadata["severity"]
		if severity == "" {
			severity = patterns.SeverityMedium
		}
		if severity == patterns.SeverityHigh {
			result.HighSeverityCount++
		}
		result.Matches = append(result.Matches, SemanticMatch{
			Template:   hit.Content,
			Similarity: round3(sim),
			Severity:   severity,
		})
	}

	result.MaxSimilarity = round3(maxSim)
	result.HasMatch = len(result.Matches) > 0
	result.Score = round3(s.scale(maxSim))
	return result
}

// scale maps raw cosine similarity onto [0,1] risk. Values at the
// threshold land at 0.5; below it the quadratic keeps weak matches
// near zero.
func (s *SemanticScanner) scale(similarity float64) float64 {
	if similarity <= 0 {
		return 0
	}
	t := s.threshold
	if similarity >= t {
		return 0.5 + (similarity-t)/(1.0-t)*0.5
	}
	ratio := similarity / t
	return ratio * ratio * 0.5
}
