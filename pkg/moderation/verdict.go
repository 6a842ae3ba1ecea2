// Package moderation fuses the independent scanner results into a
// single moderation verdict. The scanners in pkg/scan say what they
// saw; this package decides what to do about it.
package moderation

import "github.com/shilpgohil/Content-moderation-for-Thesis/pkg/scan"

// Moderation actions, in increasing order of severity.
const (
	ActionAllow = "ALLOW"
	ActionFlag  = "FLAG"
	ActionBlock = "BLOCK"
)

// Metadata carries per-message facts useful for review tooling and
// the audit trail.
type Metadata struct {
	OriginalLength      int      `json:"original_length"`
	HadObfuscation      bool     `json:"had_obfuscation"`
	URLsFound           int      `json:"urls_found"`
	FinanceTermsMatched []string `json:"finance_terms_matched"`
	NegativeTermsFound  []string `json:"negative_terms_found"`
	FuzzyMatches        int      `json:"fuzzy_matches"`
	SemanticMatch       bool     `json:"semantic_match"`
}

// Verdict is the engine's final decision for one message.
type Verdict struct {
	Action       string   `json:"verdict"`
	Confidence   float64  `json:"confidence"`
	RiskScore    float64  `json:"risk_score"`
	FinanceScore float64  `json:"finance_relevance"`
	IsFinance    bool     `json:"is_finance"`
	Flags        []string `json:"flags"`
	Explanation  string   `json:"explanation"`
	Metadata     Metadata `json:"metadata"`

	// Per-scanner details, omitted from compact API responses.
	Rules     *scan.RuleResult     `json:"rules,omitempty"`
	Toxicity  *scan.ToxicityResult `json:"toxicity,omitempty"`
	Fuzzy     *scan.FuzzyResult    `json:"fuzzy,omitempty"`
	Semantic  *scan.SemanticResult `json:"semantic,omitempty"`
	Analysis  *scan.AnalysisResult `json:"analysis,omitempty"`
	ElapsedMS float64              `json:"processing_time_ms"`
}

// Blocked reports whether the verdict removes the content.
func (v *Verdict) Blocked() bool { return v.Action == ActionBlock }

// NeedsReview reports whether the verdict queues the content for a
// human moderator.
func (v *Verdict) NeedsReview() bool { return v.Action == ActionFlag }
