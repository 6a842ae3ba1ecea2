package scan

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/philippgille/chromem-go"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/nlp"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
)

// Dimension weights for the unified quality score.
const (
	weightTopic      = 0.30
	weightSubstance  = 0.40
	weightDiscourse  = 0.20
	weightLinguistic = 0.10
)

// Decision bands on the unified score.
const (
	analysisPassThreshold = 0.50
	analysisFlagThreshold = 0.35
)

// ContentAnalyzer judges whether a post is substantive finance
// discussion across four dimensions: topic relevance against example
// embeddings, substance quality, discourse type and surface-level
// linguistic quality. It needs a real embedding provider for the topic
// dimension and reports Ran=false without one.
type ContentAnalyzer struct {
	reg      *patterns.Registry
	finance  *chromem.Collection
	negative *chromem.Collection
	enabled  bool
}

// NewContentAnalyzer seeds finance and off-topic example collections.
func NewContentAnalyzer(ctx context.Context, reg *patterns.Registry, provider nlp.EmbeddingProvider) *ContentAnalyzer {
	a := &ContentAnalyzer{reg: reg}
	if provider == nil || nlp.IsNoOp(provider) {
		log.Printf("[WARN] content analysis disabled: no embedding provider")
		return a
	}

	embed := chromem.EmbeddingFunc(func(ctx context.Context, text string) ([]float32, error) {
		return provider.Embed(ctx, text)
	})

	db := chromem.NewDB()
	finance, err := db.CreateCollection("finance-examples", nil, embed)
	if err != nil {
		log.Printf("[WARN] content analysis disabled: %v", err)
		return a
	}
	negative, err := db.CreateCollection("offtopic-examples", nil, embed)
	if err != nil {
		log.Printf("[WARN] content analysis disabled: %v", err)
		return a
	}

	if err := seedExamples(ctx, finance, reg.Analyzer.FinanceExamples); err != nil {
		log.Printf("[WARN] content analysis disabled: %v", err)
		return a
	}
	if err := seedExamples(ctx, negative, reg.Analyzer.NegativeExamples); err != nil {
		log.Printf("[WARN] content analysis disabled: %v", err)
		return a
	}

	a.finance = finance
	a.negative = negative
	a.enabled = true
	log.Printf("[INFO] content analyzer ready: %d finance examples, %d off-topic examples",
		len(reg.Analyzer.FinanceExamples), len(reg.Analyzer.NegativeExamples))
	return a
}

func seedExamples(ctx context.Context, collection *chromem.Collection, examples []string) error {
	docs := make([]chromem.Document, 0, len(examples))
	for i, text := range examples {
		docs = append(docs, chromem.Document{
			ID:      fmt.Sprintf("ex-%d", i),
			Content: text,
		})
	}
	return collection.AddDocuments(ctx, docs, 1)
}

// Enabled reports whether the analyzer can run.
func (a *ContentAnalyzer) Enabled() bool { return a.enabled }

// Analyze scores the original, unnormalized message text. Original
// text matters here: capitalization and punctuation feed the
// linguistic dimension.
func (a *ContentAnalyzer) Analyze(ctx context.Context, text string) AnalysisResult {
	if !a.enabled || strings.TrimSpace(text) == "" {
		return AnalysisResult{}
	}

	topic, err := a.topicRelevance(ctx, text)
	if err != nil {
		log.Printf("[WARN] content analysis failed: %v", err)
		return AnalysisResult{}
	}

	textLower := strings.ToLower(text)
	substance := a.substanceQuality(textLower)
	discourseType, discourseMod := a.discourseType(textLower)
	linguistic := linguisticQuality(text)

	unified := clamp01(topic*weightTopic + substance*weightSubstance +
		discourseMod*weightDiscourse + linguistic*weightLinguistic)

	decision := AnalysisBlock
	switch {
	case unified >= analysisPassThreshold:
		decision = AnalysisPass
	case unified >= analysisFlagThreshold:
		decision = AnalysisFlag
	}

	dims := Dimensions{
		TopicRelevance:    round3(topic),
		SubstanceQuality:  round3(substance),
		DiscourseType:     discourseType,
		DiscourseModifier: discourseMod,
		LinguisticQuality: round3(linguistic),
	}
	return AnalysisResult{
		UnifiedScore:  round3(unified),
		Decision:      decision,
		IsSubstantive: unified >= analysisPassThreshold,
		Dimensions:    dims,
		Explanation:   explain(decision, dims),
		Ran:           true,
	}
}

// topicRelevance compares the message against both example banks. An
// off-topic example beating the finance examples discounts the topic
// score instead of zeroing it, so mixed posts still get some credit.
func (a *ContentAnalyzer) topicRelevance(ctx context.Context, text string) (float64, error) {
	n := 5
	if count := a.finance.Count(); count < n {
		n = count
	}
	financeHits, err := a.finance.Query(ctx, text, n, nil, nil)
	if err != nil {
		return 0, err
	}
	negativeHits, err := a.negative.Query(ctx, text, 1, nil, nil)
	if err != nil {
		return 0, err
	}

	maxFinance, sum := 0.0, 0.0
	for _, hit := range financeHits {
		sim := float64(hit.Similarity)
		sum += sim
		if sim > maxFinance {
			maxFinance = sim
		}
	}
	avgFinance := 0.0
	if len(financeHits) > 0 {
		avgFinance = sum / float64(len(financeHits))
	}
	maxNegative := 0.0
	if len(negativeHits) > 0 {
		maxNegative = float64(negativeHits[0].Similarity)
	}

	switch {
	case maxNegative > maxFinance:
		return clamp01(avgFinance * 0.3), nil
	case maxNegative > avgFinance:
		return clamp01(avgFinance * 0.6), nil
	default:
		return clamp01(avgFinance), nil
	}
}

// substanceQuality blends message length with indicator phrases of
// real analysis versus low-effort hype.
func (a *ContentAnalyzer) substanceQuality(textLower string) float64 {
	words := len(strings.Fields(textLower))
	lengthScore := float64(words) / 30.0
	if lengthScore > 1.0 {
		lengthScore = 1.0
	}

	high, low := 0, 0
	for _, indicator := range a.reg.Analyzer.HighSubstance {
		if strings.Contains(textLower, indicator) {
			high++
		}
	}
	for _, indicator := range a.reg.Analyzer.LowSubstance {
		if strings.Contains(textLower, indicator) {
			low++
		}
	}
	if high > 3 {
		high = 3
	}
	if low > 3 {
		low = 3
	}
	patternScore := 0.5 + 0.15*float64(high) - 0.20*float64(low)

	return clamp01(lengthScore*0.4 + patternScore*0.6)
}

// discourseType classifies the dominant mode of the message and maps
// it to a quality modifier. Gossip is the only mode that actively
// drags the score down.
func (a *ContentAnalyzer) discourseType(textLower string) (string, float64) {
	counts := map[string]int{}
	for discourse, indicators := range a.reg.Analyzer.Discourse {
		for _, indicator := range indicators {
			if strings.Contains(textLower, indicator) {
				counts[discourse]++
			}
		}
	}

	dominant := "neutral"
	best := 0
	for discourse, count := range counts {
		if count > best || (count == best && discourse < dominant) {
			dominant = discourse
			best = count
		}
	}
	if best == 0 {
		return "neutral", 0.5
	}

	switch dominant {
	case "analysis":
		return dominant, 0.9
	case "education":
		return dominant, 0.85
	case "news":
		return dominant, 0.8
	case "question":
		return dominant, 0.7
	case "gossip":
		return dominant, 0.1
	default:
		return dominant, 0.5
	}
}

// linguisticQuality is a cheap surface check on the original text:
// rewarded for sentence-like structure, punished for shouting.
func linguisticQuality(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	score := 0.5

	last := trimmed[len(trimmed)-1]
	if last == '.' || last == '!' || last == '?' {
		score += 0.15
	}
	first := []rune(trimmed)[0]
	if unicode.IsUpper(first) {
		score += 0.1
	}
	if len(strings.Fields(trimmed)) >= 5 {
		score += 0.15
	}

	uppers, shouts, total := 0, 0, 0
	for _, r := range trimmed {
		total++
		if unicode.IsUpper(r) {
			uppers++
		}
		if r == '!' || r == '?' {
			shouts++
		}
	}
	if float64(uppers)/float64(total) > 0.5 {
		score -= 0.3
	}
	if float64(shouts)/float64(total) > 0.1 {
		score -= 0.2
	}
	return clamp01(score)
}

func explain(decision string, dims Dimensions) string {
	var parts []string
	if dims.TopicRelevance < 0.3 {
		parts = append(parts, "low topic relevance")
	}
	if dims.SubstanceQuality < 0.4 {
		parts = append(parts, "low substance")
	}
	if dims.DiscourseType == "gossip" {
		parts = append(parts, "gossip content")
	}
	if dims.LinguisticQuality < 0.4 {
		parts = append(parts, "poor quality")
	}
	if len(parts) == 0 {
		parts = append(parts, "substantive finance content")
	}

	verb := map[string]string{
		AnalysisPass:  "passed",
		AnalysisFlag:  "flagged",
		AnalysisBlock: "blocked",
	}[decision]
	return fmt.Sprintf("Content %s: %s", verb, strings.Join(parts, ", "))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
