package scan

import (
	"fmt"
	"math"
	"strings"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/nlp"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
)

// ToxicityScanner detects personal attacks, profanity, threats and
// targeted defamation. Defamation requires a named target so that
// "this scheme is a fraud" does not read as an attack on a person.
type ToxicityScanner struct {
	reg *patterns.Registry
}

func NewToxicityScanner(reg *patterns.Registry) *ToxicityScanner {
	return &ToxicityScanner{reg: reg}
}

// Scan evaluates normalized lowercase text. ling supplies named
// entities and negation structure for the defamation check.
func (s *ToxicityScanner) Scan(text string, ling nlp.Analysis) ToxicityResult {
	textLower := strings.ToLower(text)
	result := ToxicityResult{Categories: []string{}, Matched: []string{}}

	for _, phrase := range s.reg.Toxic.WhitelistContexts {
		if strings.Contains(textLower, phrase) {
			result.SkippedContext = phrase
			return result
		}
	}

	score := 0.0
	for _, cat := range s.reg.Toxic.Categories {
		for _, term := range cat.Terms {
			if s.matchToxicTerm(term, textLower) {
				result.Categories = append(result.Categories, cat.Name)
				result.Matched = append(result.Matched, term)
				score += cat.Weight
				break
			}
		}
	}

	score += s.scanDefamation(textLower, ling, &result)

	for _, re := range s.reg.Toxic.HateSpeech {
		if re.MatchString(text) {
			result.Categories = append(result.Categories, "hate_speech")
			result.Matched = append(result.Matched, "hate_pattern")
			score += 0.6
			break
		}
	}

	spamCount := 0
	for _, indicator := range s.reg.Toxic.SpamIndicators {
		if strings.Contains(textLower, indicator) {
			spamCount++
		}
	}
	if spamCount >= 2 {
		result.Categories = append(result.Categories, "spam_pattern")
		result.Matched = append(result.Matched, fmt.Sprintf("%d spam indicators", spamCount))
		score += 0.3
	}

	result.Score = round3(math.Min(1.0, score))
	result.IsToxic = result.Score >= 0.3
	return result
}

// matchToxicTerm uses word boundaries for short single words so that
// "ass" does not fire inside "assets", and substring matching for
// phrases and long words.
func (s *ToxicityScanner) matchToxicTerm(term, textLower string) bool {
	if !strings.Contains(term, " ") && len(term) <= 8 {
		return s.reg.MatchTerm(term, textLower)
	}
	return strings.Contains(textLower, term)
}

// scanDefamation looks for accusation phrases aimed at a named person
// or organization, skipping ones the sentence itself negates ("he is
// not a scammer").
func (s *ToxicityScanner) scanDefamation(textLower string, ling nlp.Analysis, result *ToxicityResult) float64 {
	if !ling.Available {
		return 0
	}
	var target string
	for _, ent := range ling.Entities {
		if ent.Label == "PERSON" || ent.Label == "ORG" || ent.Label == "GPE" {
			target = ent.Text
			break
		}
	}
	if target == "" {
		return 0
	}
	for _, phrase := range s.reg.Toxic.Defamation {
		if !strings.Contains(textLower, phrase) {
			continue
		}
		if s.isNegated(textLower, phrase, ling) {
			continue
		}
		result.Categories = append(result.Categories, "defamation")
		result.Matched = append(result.Matched, fmt.Sprintf("%s + '%s'", target, phrase))
		return 0.7
	}
	return 0
}

func (s *ToxicityScanner) isNegated(textLower, phrase string, ling nlp.Analysis) bool {
	// Token-level negation from the linguistic pass: suppressed when
	// any word of the phrase sits under a negator's scope.
	if len(ling.NegatedTokens) > 0 && len(ling.Tokens) > 0 {
		phraseWords := map[string]bool{}
		for _, word := range strings.Fields(phrase) {
			phraseWords[word] = true
		}
		for idx := range ling.NegatedTokens {
			if idx < 0 || idx >= len(ling.Tokens) {
				continue
			}
			if phraseWords[strings.ToLower(ling.Tokens[idx])] {
				return true
			}
		}
	}
	// Literal negation immediately before the phrase.
	for _, neg := range []string{"not ", "no ", "never "} {
		if strings.Contains(textLower, neg+phrase) {
			return true
		}
	}
	// "X is a fraud" negated as "X is not a fraud".
	if strings.HasPrefix(phrase, "is ") {
		rewritten := "is not " + strings.TrimPrefix(phrase, "is ")
		if strings.Contains(textLower, rewritten) {
			return true
		}
	}
	return false
}
