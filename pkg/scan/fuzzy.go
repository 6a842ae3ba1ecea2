package scan

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
)

// FuzzyScanner catches misspelled and obfuscated scam phrases by
// sliding word n-grams over the text and comparing each against the
// known-phrase corpus with edit-distance similarity.
type FuzzyScanner struct {
	reg       *patterns.Registry
	threshold float64
	enabled   bool
}

// NewFuzzyScanner builds a fuzzy scanner with the given similarity
// threshold in [0,1]. Disabled scanners return zero results.
func NewFuzzyScanner(reg *patterns.Registry, threshold float64, enabled bool) *FuzzyScanner {
	return &FuzzyScanner{reg: reg, threshold: threshold, enabled: enabled}
}

// Scan checks normalized lowercase text for near-matches of known
// scam phrases.
func (s *FuzzyScanner) Scan(text string) FuzzyResult {
	result := FuzzyResult{Matches: []FuzzyMatch{}}
	if !s.enabled {
		return result
	}
	textLower := strings.ToLower(text)

	// Educational and warning context gets the same pass the rule
	// scanner gives it.
	for _, phrase := range s.reg.Scam.Whitelist {
		if s.reg.MatchTerm(phrase, textLower) {
			result.SkippedContext = phrase
			return result
		}
	}
	for _, phrase := range s.reg.Scam.StrongContexts {
		if s.reg.MatchTerm(phrase, textLower) {
			result.SkippedContext = phrase
			return result
		}
	}

	words := strings.Fields(textLower)
	seen := map[string]bool{}
	best := 0.0
	for n := 2; n <= 4; n++ {
		for i := 0; i+n <= len(words); i++ {
			ngram := strings.Join(words[i:i+n], " ")
			if len(ngram) < 10 {
				continue
			}
			phrase, similarity := s.closestPhrase(ngram)
			if similarity < s.threshold || seen[phrase] {
				continue
			}
			// Length mismatch means the edit distance is measuring
			// padding, not a misspelling.
			lengthRatio := float64(len(ngram)) / float64(len(phrase))
			if lengthRatio < 0.7 || lengthRatio > 1.5 {
				continue
			}
			seen[phrase] = true

			severity := patterns.SeverityMedium
			if _, ok := s.reg.Fuzzy.HighSeverity[phrase]; ok {
				severity = patterns.SeverityHigh
				result.HighSeverityCount++
			}
			result.Matches = append(result.Matches, FuzzyMatch{
				Input:      ngram,
				Matched:    phrase,
				Similarity: round3(similarity),
				Severity:   severity,
			})
			if similarity > best {
				best = similarity
			}
		}
	}
	result.Score = round3(best)
	result.HasMatch = len(result.Matches) > 0
	return result
}

func (s *FuzzyScanner) closestPhrase(ngram string) (string, float64) {
	bestPhrase := ""
	bestScore := 0.0
	for _, phrase := range s.reg.Fuzzy.Phrases {
		score := levenshtein.Similarity(ngram, phrase, nil)
		if score > bestScore {
			bestScore = score
			bestPhrase = phrase
		}
	}
	return bestPhrase, bestScore
}
