package moderation

import (
	"strings"
	"testing"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/config"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/scan"
)

func testEngine() *DecisionEngine {
	return NewDecisionEngine(config.NewDefaultConfig())
}

func financeDomain() scan.DomainResult {
	return scan.DomainResult{Score: 0.6, IsFinance: true}
}

func TestDecideOffTopicBlocks(t *testing.T) {
	e := testEngine()

	v := e.Decide(
		scan.DomainResult{Score: 0.02, IsFinance: false},
		scan.RuleResult{}, scan.ToxicityResult{}, scan.FuzzyResult{}, scan.SemanticResult{},
	)

	if v.Action != ActionBlock {
		t.Errorf("Action = %q, want BLOCK for off-topic content", v.Action)
	}
	if len(v.Flags) != 1 || v.Flags[0] != "off_topic" {
		t.Errorf("Flags = %v", v.Flags)
	}
	if v.RiskScore != 0 {
		t.Errorf("RiskScore = %v, off-topic blocks carry no risk", v.RiskScore)
	}
	if v.Confidence < 0.9 {
		t.Errorf("Confidence = %v, want near 1 for clearly off-topic", v.Confidence)
	}
}

func TestDecideCleanContentAllowed(t *testing.T) {
	e := testEngine()

	v := e.Decide(financeDomain(),
		scan.RuleResult{}, scan.ToxicityResult{}, scan.FuzzyResult{}, scan.SemanticResult{})

	if v.Action != ActionAllow {
		t.Errorf("Action = %q, want ALLOW", v.Action)
	}
	if v.Explanation != "Content appears safe" {
		t.Errorf("Explanation = %q", v.Explanation)
	}
}

func TestDecideHighRuleScoreBlocks(t *testing.T) {
	e := testEngine()

	rules := scan.RuleResult{
		Score:    0.9,
		Severity: patterns.SeverityHigh,
		Signals: []scan.Signal{
			{Pattern: "guaranteed returns", Severity: patterns.SeverityHigh, Weight: 1.0},
		},
	}
	v := e.Decide(financeDomain(), rules, scan.ToxicityResult{}, scan.FuzzyResult{}, scan.SemanticResult{})

	if v.Action != ActionBlock {
		t.Errorf("Action = %q, want BLOCK at risk %v", v.Action, v.RiskScore)
	}
	if v.Confidence > 0.99 {
		t.Errorf("Confidence = %v, capped at 0.99", v.Confidence)
	}
	found := false
	for _, f := range v.Flags {
		if strings.HasPrefix(f, "scam:") {
			found = true
		}
	}
	if !found {
		t.Errorf("Flags = %v, want a scam flag", v.Flags)
	}
}

func TestDecideSingleHighSeveritySignalBlocks(t *testing.T) {
	e := testEngine()

	// Risk alone sits under the block threshold; the severity count
	// rule forces the block.
	rules := scan.RuleResult{
		Score: 0.4,
		Signals: []scan.Signal{
			{Pattern: "insider tip", Severity: patterns.SeverityHigh, Weight: 1.0},
		},
	}
	v := e.Decide(financeDomain(), rules, scan.ToxicityResult{}, scan.FuzzyResult{}, scan.SemanticResult{})

	if v.Action != ActionBlock {
		t.Errorf("Action = %q, want BLOCK via min block signals", v.Action)
	}
}

func TestDecideToxicityStacksWithRules(t *testing.T) {
	e := testEngine()

	toxicity := scan.ToxicityResult{
		Score:      0.4,
		IsToxic:    true,
		Categories: []string{"mild_profanity"},
		Matched:    []string{"idiot"},
	}
	v := e.Decide(financeDomain(), scan.RuleResult{Score: 0.3}, toxicity,
		scan.FuzzyResult{}, scan.SemanticResult{})

	// 0.3*0.7 + 0.4*0.7 = 0.49, under block but well over flag.
	if v.Action != ActionFlag {
		t.Errorf("Action = %q (risk %v), want FLAG", v.Action, v.RiskScore)
	}
	found := false
	for _, f := range v.Flags {
		if f == "toxic:mild_profanity:idiot" {
			found = true
		}
	}
	if !found {
		t.Errorf("Flags = %v", v.Flags)
	}
}

func TestDecideSevereToxicityBlocks(t *testing.T) {
	e := testEngine()

	toxicity := scan.ToxicityResult{
		Score:      0.6,
		IsToxic:    true,
		Categories: []string{"threat"},
		Matched:    []string{"i will find you"},
	}
	v := e.Decide(financeDomain(), scan.RuleResult{}, toxicity,
		scan.FuzzyResult{}, scan.SemanticResult{})

	if v.Action != ActionBlock {
		t.Errorf("Action = %q, want BLOCK for a threat", v.Action)
	}
}

func TestDecideFuzzyAndSemanticCompeteNotStack(t *testing.T) {
	e := testEngine()

	fuzzy := scan.FuzzyResult{Score: 0.9, Matches: []scan.FuzzyMatch{
		{Input: "guranteed returns", Matched: "guaranteed returns", Similarity: 0.9, Severity: patterns.SeverityMedium},
	}}
	semantic := scan.SemanticResult{Score: 0.6, Enabled: true, Matches: []scan.SemanticMatch{
		{Template: "Join my group", Similarity: 0.75, Severity: patterns.SeverityMedium},
	}}
	v := e.Decide(financeDomain(), scan.RuleResult{}, scan.ToxicityResult{}, fuzzy, semantic)

	// max(0.9*0.4, 0.6*0.6) = 0.36, not 0.72.
	if v.RiskScore != 0.36 {
		t.Errorf("RiskScore = %v, want channels maxed at 0.36", v.RiskScore)
	}
	if v.Action != ActionFlag {
		t.Errorf("Action = %q, want FLAG", v.Action)
	}
}

func TestDecideLowRelevanceFlagged(t *testing.T) {
	e := testEngine()

	v := e.Decide(scan.DomainResult{Score: 0.1, IsFinance: true},
		scan.RuleResult{}, scan.ToxicityResult{}, scan.FuzzyResult{}, scan.SemanticResult{})

	found := false
	for _, f := range v.Flags {
		if f == "low_finance_relevance" {
			found = true
		}
	}
	if !found {
		t.Errorf("Flags = %v, want low_finance_relevance recorded", v.Flags)
	}
}

func TestDecideLowRuleScoreSignalsSuppressed(t *testing.T) {
	e := testEngine()

	// Context reduction left a residual score; its signals must not
	// leak into the flags.
	rules := scan.RuleResult{
		Score: 0.1,
		Signals: []scan.Signal{
			{Pattern: "guaranteed returns", Severity: patterns.SeverityHigh, Weight: 1.0},
		},
	}
	v := e.Decide(financeDomain(), rules, scan.ToxicityResult{}, scan.FuzzyResult{}, scan.SemanticResult{})

	for _, f := range v.Flags {
		if strings.HasPrefix(f, "scam:") {
			t.Errorf("suppressed signal leaked into flags: %v", v.Flags)
		}
	}
	if v.Action != ActionAllow {
		t.Errorf("Action = %q, want ALLOW at residual risk", v.Action)
	}
}

func TestDecideExplanationNamesReasons(t *testing.T) {
	e := testEngine()

	rules := scan.RuleResult{
		Score: 0.9,
		Signals: []scan.Signal{
			{Pattern: "guaranteed returns", Severity: patterns.SeverityHigh, Weight: 1.0},
			{Pattern: "double your money", Severity: patterns.SeverityHigh, Weight: 1.0},
		},
	}
	v := e.Decide(financeDomain(), rules, scan.ToxicityResult{}, scan.FuzzyResult{}, scan.SemanticResult{})

	if !strings.Contains(v.Explanation, "scam pattern detected") {
		t.Errorf("Explanation = %q", v.Explanation)
	}
	// Duplicate reasons collapse.
	if strings.Count(v.Explanation, "scam pattern detected") != 1 {
		t.Errorf("Explanation repeats reasons: %q", v.Explanation)
	}
}

func TestDecideRiskFollowsWeightedFormula(t *testing.T) {
	e := testEngine()

	// Signal combinations change flags, never the risk arithmetic:
	// risk is exactly the weighted rule score here, with no multiplier
	// for co-occurring patterns.
	rules := scan.RuleResult{
		Score: 0.25,
		Signals: []scan.Signal{
			{Pattern: "external_redirect", Severity: patterns.SeverityMedium, Weight: 0.7},
			{Pattern: "unrealistic_return", Severity: patterns.SeverityMedium, Weight: 0.7},
			{Pattern: "join fast", Severity: patterns.SeverityLow, Weight: 0.3},
		},
	}
	v := e.Decide(financeDomain(), rules, scan.ToxicityResult{}, scan.FuzzyResult{}, scan.SemanticResult{})

	if want := 0.175; v.RiskScore != want {
		t.Errorf("RiskScore = %v, want %v (0.25 * 0.7)", v.RiskScore, want)
	}
	if v.Action != ActionAllow {
		t.Errorf("Action = %q, risk below the flag threshold must ALLOW", v.Action)
	}
}
