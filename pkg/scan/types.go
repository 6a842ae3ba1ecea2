// Package scan contains the independent detection scanners: rule-based
// scam matching, domain relevance, toxicity, fuzzy phrase matching,
// semantic template matching and the multi-dimensional content
// analyzer. Each scanner turns raw text into a typed result; fusion
// happens in pkg/moderation.
package scan

// Signal is a single piece of evidence produced by the rule scanner.
type Signal struct {
	Pattern  string  `json:"pattern"`
	Severity string  `json:"severity"`
	Weight   float64 `json:"weight"`
}

// RuleResult is the rule scanner's output.
type RuleResult struct {
	Score               float64  `json:"score"`
	Signals             []Signal `json:"signals"`
	Severity            string   `json:"severity"` // none, low, medium, high
	HasWhitelistContext bool     `json:"has_whitelist_context"`
	ContextReduction    float64  `json:"context_reduction"`
	SkippedReason       string   `json:"skipped_reason,omitempty"`
}

// DomainResult is the domain relevance scorer's output.
type DomainResult struct {
	Score         float64  `json:"score"`
	IsFinance     bool     `json:"is_finance"`
	MatchedTerms  []string `json:"matched_terms"`
	NegativeTerms []string `json:"negative_terms_found"`
	Reason        string   `json:"reason,omitempty"`
}

// ToxicityResult is the toxicity scanner's output.
type ToxicityResult struct {
	Score          float64  `json:"score"`
	IsToxic        bool     `json:"is_toxic"`
	Categories     []string `json:"categories"`
	Matched        []string `json:"matched"`
	SkippedContext string   `json:"skipped_context,omitempty"`
}

// FuzzyMatch is one accepted fuzzy corpus hit.
type FuzzyMatch struct {
	Input      string  `json:"input"`
	Matched    string  `json:"matched"`
	Similarity float64 `json:"similarity"`
	Severity   string  `json:"severity"`
}

// FuzzyResult is the fuzzy matcher's output.
type FuzzyResult struct {
	Score             float64      `json:"score"`
	Matches           []FuzzyMatch `json:"matches"`
	HasMatch          bool         `json:"has_fuzzy_match"`
	HighSeverityCount int          `json:"high_severity_count"`
	SkippedContext    string       `json:"skipped_context,omitempty"`
}

// SemanticMatch is one template hit above the similarity threshold.
type SemanticMatch struct {
	Template   string  `json:"template"`
	Similarity float64 `json:"similarity"`
	Severity   string  `json:"severity"`
}

// SemanticResult is the semantic matcher's output. Enabled is false
// when the embedding service is absent or failed; the result then
// contributes nothing to fusion.
type SemanticResult struct {
	Score             float64         `json:"score"`
	MaxSimilarity     float64         `json:"max_similarity"`
	Matches           []SemanticMatch `json:"matches"`
	HasMatch          bool            `json:"has_semantic_match"`
	HighSeverityCount int             `json:"high_severity_count"`
	Enabled           bool            `json:"enabled"`
	SkippedContext    string          `json:"skipped_context,omitempty"`
}

// Dimensions are the content analyzer's per-axis scores.
type Dimensions struct {
	TopicRelevance    float64 `json:"topic_relevance"`
	SubstanceQuality  float64 `json:"substance_quality"`
	DiscourseType     string  `json:"discourse_type"`
	DiscourseModifier float64 `json:"discourse_modifier"`
	LinguisticQuality float64 `json:"linguistic_quality"`
}

// Analyzer decision bands.
const (
	AnalysisPass  = "PASS"
	AnalysisFlag  = "FLAG"
	AnalysisBlock = "BLOCK"
)

// AnalysisResult is the content analyzer's output. Ran is false when
// the analyzer is disabled or its embedding provider is unavailable.
type AnalysisResult struct {
	UnifiedScore  float64    `json:"unified_score"`
	Decision      string     `json:"decision"`
	IsSubstantive bool       `json:"is_substantive_finance"`
	Dimensions    Dimensions `json:"dimensions"`
	Explanation   string     `json:"explanation"`
	Ran           bool       `json:"-"`
}
