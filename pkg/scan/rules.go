package scan

import (
	"math"
	"regexp"
	"strings"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
)

// Context reduction fallbacks when the configuration omits a tier.
const (
	reductionStrong    = 0.9
	reductionMedium    = 0.7
	reductionOpinion   = 0.4
	reductionQuestion  = 0.3
	reductionPastTense = 0.3
)

// RuleScanner detects scam content through weighted keyword and regex
// matching, suppressed by whitelist context. Immutable after
// construction and safe for concurrent use.
type RuleScanner struct {
	reg        *patterns.Registry
	reductions map[string]float64
}

// NewRuleScanner creates a rule scanner over the given registry.
// reductions may override the per-tier context reduction values; nil
// keeps the tuned defaults.
func NewRuleScanner(reg *patterns.Registry, reductions map[string]float64) *RuleScanner {
	return &RuleScanner{reg: reg, reductions: reductions}
}

func (s *RuleScanner) reduction(tier string, fallback float64) float64 {
	if v, ok := s.reductions[tier]; ok {
		return v
	}
	return fallback
}

// Scan checks text for scam patterns. The input is expected to be
// normalized lowercase text.
func (s *RuleScanner) Scan(text string) RuleResult {
	textLower := strings.ToLower(text)

	result := RuleResult{Severity: "none", Signals: []Signal{}}

	reduction := s.checkContext(textLower)
	result.ContextReduction = reduction
	result.HasWhitelistContext = reduction > 0

	// Strong educational/warning context cancels scam detection outright
	if reduction >= s.reduction("strong", reductionStrong) {
		result.SkippedReason = "strong_whitelist_context"
		return result
	}

	var signals []Signal
	rawScore := 0.0

	collect := func(sig []Signal, score float64) {
		signals = append(signals, sig...)
		rawScore += score
	}
	collect(s.scanKeywords(textLower))
	collect(s.scanMoneyRequests(textLower))
	collect(s.scanRegex(text, s.reg.Scam.UnrealisticReturns, "unrealistic_return", 0.7))
	collect(s.scanRegex(text, s.reg.Scam.ExternalRedirects, "external_redirect", 0.7))
	collect(s.scanRegex(text, s.reg.Scam.Solicitation, "solicitation_detection", 0.6))
	collect(s.scanRegex(text, s.reg.Scam.MLM, "mlm_detection", 0.8))

	// Context acts as a multiplier, and a medium-or-stronger context
	// also clears the evidence list so signal-count logic downstream
	// cannot block on suppressed matches.
	if reduction > 0 && rawScore > 0 {
		rawScore *= 1.0 - reduction
		if reduction >= 0.5 {
			signals = nil
		}
	}

	finalScore := math.Min(1.0, rawScore)
	if reduction > 0 {
		finalScore = math.Max(0.0, finalScore*(1.0-reduction))

		// Context neutralized the risk: keep only low-severity signals
		// so a safe news/education post does not carry alarmist flags.
		if finalScore < 0.2 {
			var kept []Signal
			for _, sig := range signals {
				if sig.Severity == patterns.SeverityLow {
					kept = append(kept, sig)
				}
			}
			signals = kept
		}
	}

	result.Score = round3(finalScore)
	if signals != nil {
		result.Signals = signals
	}

	switch {
	case finalScore >= 0.7:
		result.Severity = patterns.SeverityHigh
	case finalScore >= 0.4:
		result.Severity = patterns.SeverityMedium
	case finalScore > 0:
		result.Severity = patterns.SeverityLow
	}
	return result
}

func (s *RuleScanner) scanKeywords(textLower string) ([]Signal, float64) {
	var signals []Signal
	score := 0.0
	for _, tier := range s.reg.Scam.Tiers {
		for _, keyword := range tier.Keywords {
			if s.reg.MatchTerm(keyword, textLower) {
				signals = append(signals, Signal{
					Pattern:  keyword,
					Severity: tier.Severity,
					Weight:   tier.Weight,
				})
				score += tier.Weight
			}
		}
	}
	return signals, score
}

func (s *RuleScanner) scanMoneyRequests(textLower string) ([]Signal, float64) {
	var signals []Signal
	score := 0.0
	for _, pattern := range s.reg.Scam.MoneyRequests {
		if s.reg.MatchTerm(pattern, textLower) {
			signals = append(signals, Signal{
				Pattern:  pattern,
				Severity: patterns.SeverityHigh,
				Weight:   0.8,
			})
			score += 0.8
		}
	}
	return signals, score
}

func (s *RuleScanner) scanRegex(text string, set []*regexp.Regexp, name string, weight float64) ([]Signal, float64) {
	var signals []Signal
	score := 0.0
	for _, re := range set {
		if re.MatchString(text) {
			signals = append(signals, Signal{
				Pattern:  name,
				Severity: patterns.SeverityHigh,
				Weight:   weight,
			})
			score += weight
		}
	}
	return signals, score
}

// checkContext returns how strongly the surrounding context discounts
// scam evidence. The operator whitelist and the strong phrase list win
// immediately; the weaker tiers keep the maximum reduction seen.
func (s *RuleScanner) checkContext(textLower string) float64 {
	for _, phrase := range s.reg.Scam.Whitelist {
		if strings.Contains(textLower, phrase) {
			return s.reduction("strong", reductionStrong)
		}
	}
	for _, phrase := range s.reg.Scam.StrongContexts {
		if strings.Contains(textLower, phrase) {
			return s.reduction("strong", reductionStrong)
		}
	}

	reduction := 0.0
	for _, phrase := range s.reg.Scam.MediumContexts {
		if strings.Contains(textLower, phrase) {
			reduction = math.Max(reduction, s.reduction("medium", reductionMedium))
			break
		}
	}
	for _, phrase := range s.reg.Scam.OpinionMarkers {
		if strings.Contains(textLower, phrase) {
			reduction = math.Max(reduction, s.reduction("opinion", reductionOpinion))
			break
		}
	}
	for _, phrase := range s.reg.Scam.QuestionIndicators {
		if strings.Contains(textLower, phrase) {
			reduction = math.Max(reduction, s.reduction("question", reductionQuestion))
			break
		}
	}
	for _, phrase := range s.reg.Scam.PastTenseIndicators {
		if strings.Contains(textLower, phrase) {
			reduction = math.Max(reduction, s.reduction("past_tense", reductionPastTense))
			break
		}
	}
	return reduction
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
