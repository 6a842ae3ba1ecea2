package moderation

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/config"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/httputil"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/nlp"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/scan"
)

// Moderator runs the full detection pipeline over a message and fuses
// the results into a Verdict. Construct once and share; all scanners
// are immutable after startup.
type Moderator struct {
	cfg        *config.Config
	reg        *patterns.Registry
	linguistic nlp.Analyzer

	rules    *scan.RuleScanner
	domain   *scan.DomainScorer
	toxicity *scan.ToxicityScanner
	fuzzy    *scan.FuzzyScanner
	semantic *scan.SemanticScanner
	analyzer *scan.ContentAnalyzer

	engine *DecisionEngine
	sem    *httputil.Semaphore
}

// New builds a moderator from the configuration. Optional layers
// (embeddings, linguistic parsing) degrade with a warning instead of
// failing startup.
func New(ctx context.Context, cfg *config.Config) (*Moderator, error) {
	reg, err := patterns.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	log.Printf("[STARTUP] pattern registry loaded: %d terms", reg.TotalTerms())

	provider := nlp.NewEmbedder(cfg)

	var ling nlp.Analyzer = nlp.NewAnalyzer()
	if !ling.Available() {
		log.Printf("[WARN] linguistic analysis unavailable, entity checks disabled")
		ling = nlp.NoopAnalyzer{}
	}

	m := &Moderator{
		cfg:        cfg,
		reg:        reg,
		linguistic: ling,
		rules:      scan.NewRuleScanner(reg, cfg.ContextReductions),
		domain:     scan.NewDomainScorer(reg),
		toxicity:   scan.NewToxicityScanner(reg),
		fuzzy:      scan.NewFuzzyScanner(reg, cfg.FuzzyThreshold, cfg.EnableFuzzy),
		engine:     NewDecisionEngine(cfg),
		sem:        httputil.NewSemaphore(cfg.BatchConcurrency),
	}

	if cfg.EnableSemantic {
		m.semantic = scan.NewSemanticScanner(ctx, reg, provider, cfg.SemanticThreshold)
	}
	if cfg.EnableAnalyzer {
		m.analyzer = scan.NewContentAnalyzer(ctx, reg, provider)
	}
	return m, nil
}

// Evaluate moderates a single message. It never returns an error: any
// internal failure degrades to a conservative FLAG verdict so content
// is queued for a human instead of slipping through.
func (m *Moderator) Evaluate(ctx context.Context, text string) (verdict Verdict) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] moderation panic recovered: %v", r)
			verdict = Verdict{
				Action:      ActionFlag,
				Confidence:  0.0,
				RiskScore:   1.0,
				Flags:       []string{"system_error"},
				Explanation: "System encountered an error during processing.",
				Metadata:    Metadata{OriginalLength: len(text)},
			}
			verdict.ElapsedMS = elapsedMS(start)
		}
	}()

	if strings.TrimSpace(text) == "" {
		return Verdict{
			Action:      ActionFlag,
			Confidence:  1.0,
			RiskScore:   0,
			Flags:       []string{"empty_content"},
			Explanation: "Empty content requires manual review",
			ElapsedMS:   elapsedMS(start),
			Metadata:    Metadata{OriginalLength: len(text)},
		}
	}

	normalized := nlp.Normalize(text)
	cleaned := normalized.Text

	// Entities come from the original text: normalization lowercases
	// and strips the capitalization the entity detector relies on.
	ling := m.linguistic.Analyze(text)

	domain := m.domain.Score(cleaned, ling)

	var analysis scan.AnalysisResult
	if m.analyzer != nil {
		analysis = m.analyzer.Analyze(ctx, text)
		if analysis.Ran {
			domain = reconcileDomain(domain, analysis)
		}
	}

	rules := m.rules.Scan(cleaned)
	fuzzy := m.fuzzy.Scan(cleaned)

	var semantic scan.SemanticResult
	if m.semantic != nil {
		// Semantic matching sees the original text: embedding models
		// handle case and punctuation better than leet-decoded text.
		semantic = m.semantic.Scan(ctx, text)
	}

	toxicity := m.toxicity.Scan(cleaned, ling)

	verdict = m.engine.Decide(domain, rules, toxicity, fuzzy, semantic)

	verdict.Metadata = Metadata{
		OriginalLength:      normalized.OriginalLength,
		HadObfuscation:      normalized.HadObfuscation,
		URLsFound:           len(normalized.URLs),
		FinanceTermsMatched: capSlice(domain.MatchedTerms, 5),
		NegativeTermsFound:  domain.NegativeTerms,
		FuzzyMatches:        len(fuzzy.Matches),
		SemanticMatch:       semantic.HasMatch,
	}
	verdict.Rules = &rules
	verdict.Toxicity = &toxicity
	verdict.Fuzzy = &fuzzy
	if m.semantic != nil {
		verdict.Semantic = &semantic
	}
	if analysis.Ran {
		verdict.Analysis = &analysis
	}
	verdict.ElapsedMS = elapsedMS(start)
	return verdict
}

// EvaluateBatch moderates messages concurrently, bounded by the
// configured batch concurrency. Results keep input order.
func (m *Moderator) EvaluateBatch(ctx context.Context, texts []string) []Verdict {
	verdicts := make([]Verdict, len(texts))
	var wg sync.WaitGroup
	for i, text := range texts {
		if err := m.sem.Acquire(ctx); err != nil {
			verdicts[i] = Verdict{
				Action:      ActionFlag,
				RiskScore:   1.0,
				Flags:       []string{"system_error"},
				Explanation: "System encountered an error during processing.",
			}
			continue
		}
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			defer m.sem.Release()
			verdicts[i] = m.Evaluate(ctx, text)
		}(i, text)
	}
	wg.Wait()
	return verdicts
}

// Registry exposes the loaded pattern registry for diagnostics.
func (m *Moderator) Registry() *patterns.Registry { return m.reg }

// SemanticEnabled reports whether template matching is active.
func (m *Moderator) SemanticEnabled() bool {
	return m.semantic != nil && m.semantic.Enabled()
}

// AnalyzerEnabled reports whether content analysis is active.
func (m *Moderator) AnalyzerEnabled() bool {
	return m.analyzer != nil && m.analyzer.Enabled()
}

// reconcileDomain lets the embedding-based analyzer override the
// vocabulary-based domain score. A confident analyzer wins in both
// directions; in the uncertain middle band the two split the
// difference only when the vocabulary also found something.
func reconcileDomain(domain scan.DomainResult, analysis scan.AnalysisResult) scan.DomainResult {
	switch {
	case analysis.UnifiedScore >= 0.50:
		if analysis.UnifiedScore > domain.Score {
			domain.Score = analysis.UnifiedScore
		}
		domain.IsFinance = true
	case analysis.UnifiedScore < 0.35:
		domain.Score = 0
		domain.IsFinance = false
		domain.Reason = "analyzer_rejected"
	default:
		if domain.Score >= 0.20 {
			domain.Score = round3((domain.Score + analysis.UnifiedScore) / 2)
			domain.IsFinance = true
		} else {
			domain.Score = 0
			domain.IsFinance = false
			domain.Reason = "analyzer_uncertain"
		}
	}
	return domain
}

func capSlice(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
