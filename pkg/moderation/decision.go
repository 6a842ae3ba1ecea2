package moderation

import (
	"fmt"
	"math"
	"strings"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/config"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/scan"
)

// Toxicity categories severe enough to force a block on their own.
var highSeverityToxic = map[string]bool{
	"hate_speech":      true,
	"personal_attack":  true,
	"severe_profanity": true,
	"threat":           true,
	"harassment":       true,
	"doxxing":          true,
	"defamation":       true,
}

// DecisionEngine turns scanner results into a verdict. The fusion is
// deliberately asymmetric: scam and toxicity scores stack, while the
// fuzzy and semantic channels only compete for the maximum so a weak
// echo of a known phrase cannot pile onto an already-scored keyword.
type DecisionEngine struct {
	cfg *config.Config
}

func NewDecisionEngine(cfg *config.Config) *DecisionEngine {
	return &DecisionEngine{cfg: cfg}
}

// Decide fuses the scanner outputs for one message.
func (e *DecisionEngine) Decide(
	domain scan.DomainResult,
	rules scan.RuleResult,
	toxicity scan.ToxicityResult,
	fuzzy scan.FuzzyResult,
	semantic scan.SemanticResult,
) Verdict {
	// Off-topic content is blocked before any risk scoring: the
	// community only hosts finance discussion.
	if domain.Score < e.cfg.FinanceFlagThreshold ||
		(domain.Score < 0.15 && !domain.IsFinance) {
		return Verdict{
			Action:       ActionBlock,
			Confidence:   round3(1.0 - domain.Score),
			RiskScore:    0,
			FinanceScore: domain.Score,
			IsFinance:    domain.IsFinance,
			Flags:        []string{"off_topic"},
			Explanation:  "Content is not related to finance",
		}
	}

	var flags []string
	if domain.Score < e.cfg.FinancePassThreshold {
		flags = append(flags, "low_finance_relevance")
	}

	risk := math.Max(
		rules.Score*e.cfg.ScamWeight+toxicity.Score*e.cfg.ToxicityWeight,
		math.Max(fuzzy.Score*e.cfg.FuzzyWeight, semantic.Score*e.cfg.SemanticWeight),
	)
	risk = round3(math.Min(1.0, risk))

	severeCount := 0

	// Rule evidence below 0.2 is noise after context reduction.
	if rules.Score >= 0.2 {
		for _, sig := range rules.Signals {
			flags = append(flags, "scam:"+truncate(sig.Pattern, 30))
			if sig.Severity == patterns.SeverityHigh {
				severeCount++
			}
		}
	}
	for i, m := range fuzzy.Matches {
		if i >= 3 {
			break
		}
		flags = append(flags, "fuzzy:"+truncate(m.Matched, 30))
		if m.Severity == patterns.SeverityHigh {
			severeCount++
		}
	}
	for i, m := range semantic.Matches {
		if i >= 2 {
			break
		}
		flags = append(flags, fmt.Sprintf("semantic:%.0f%%", m.Similarity*100))
		if m.Severity == patterns.SeverityHigh {
			severeCount++
		}
	}
	if toxicity.IsToxic {
		for i, term := range toxicity.Matched {
			category := "toxicity"
			if i < len(toxicity.Categories) {
				category = toxicity.Categories[i]
			} else if len(toxicity.Categories) > 0 {
				category = toxicity.Categories[0]
			}
			flags = append(flags, fmt.Sprintf("toxic:%s:%s", category, term))
			if highSeverityToxic[category] {
				severeCount++
			}
		}
	}

	verdict := Verdict{
		RiskScore:    risk,
		FinanceScore: domain.Score,
		IsFinance:    domain.IsFinance,
		Flags:        flags,
	}

	switch {
	case risk >= e.cfg.BlockThreshold || severeCount >= e.cfg.MinBlockSignals:
		verdict.Action = ActionBlock
		verdict.Confidence = math.Min(0.99, risk)
		verdict.Explanation = explainFlags(ActionBlock, flags)
	case risk >= e.cfg.FlagThreshold || (severeCount >= 1 && risk >= 0.1):
		verdict.Action = ActionFlag
		verdict.Confidence = risk
		verdict.Explanation = explainFlags(ActionFlag, flags)
	default:
		verdict.Action = ActionAllow
		verdict.Confidence = round3(1.0 - risk)
		verdict.Explanation = "Content appears safe"
	}
	if verdict.Flags == nil {
		verdict.Flags = []string{}
	}
	return verdict
}

// explainFlags renders the leading flags as a reviewer-friendly
// sentence.
func explainFlags(action string, flags []string) string {
	verb := "flagged for review"
	if action == ActionBlock {
		verb = "blocked"
	}

	var reasons []string
	seen := map[string]bool{}
	for i, flag := range flags {
		if i >= 3 {
			break
		}
		reason := flagReason(flag)
		if seen[reason] {
			continue
		}
		seen[reason] = true
		reasons = append(reasons, reason)
	}
	if len(reasons) == 0 {
		return fmt.Sprintf("Content %s", verb)
	}
	return fmt.Sprintf("Content %s: %s", verb, strings.Join(reasons, ", "))
}

func flagReason(flag string) string {
	kind, rest, _ := strings.Cut(flag, ":")
	switch kind {
	case "scam":
		return "scam pattern detected"
	case "fuzzy":
		return "misspelled scam phrase detected"
	case "semantic":
		return "similar to known scam"
	case "toxic":
		category, _, _ := strings.Cut(rest, ":")
		return category + " content"
	case "off_topic":
		return "not finance related"
	case "low_finance_relevance":
		return "low finance relevance"
	default:
		return flag
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
