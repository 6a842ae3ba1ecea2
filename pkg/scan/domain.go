package scan

import (
	"math"
	"strings"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/nlp"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
)

// Entity labels that mark a sentence as being about some topic. A
// sentence anchored on one of these with no finance vocabulary nearby
// is evidence the post is off-topic.
var topicEntityLabels = map[string]bool{
	"PERSON":  true,
	"ORG":     true,
	"GPE":     true,
	"NORP":    true,
	"EVENT":   true,
	"FAC":     true,
	"LAW":     true,
	"PRODUCT": true,
}

// Generic community words that look like named entities but carry no
// topical information.
var genericEntityTerms = map[string]bool{
	"dm":    true,
	"pm":    true,
	"admin": true,
}

// DomainScorer measures how strongly text belongs to the finance
// domain using vocabulary coverage, named entities and per-sentence
// topic coherence.
type DomainScorer struct {
	reg *patterns.Registry
}

func NewDomainScorer(reg *patterns.Registry) *DomainScorer {
	return &DomainScorer{reg: reg}
}

// Score evaluates finance relevance of normalized lowercase text.
// ling carries entity and sentence structure extracted from the
// original message; an unavailable analysis degrades to pure
// vocabulary matching.
func (s *DomainScorer) Score(text string, ling nlp.Analysis) DomainResult {
	textLower := strings.ToLower(text)
	words := strings.Fields(textLower)

	matched := s.matchTerms(textLower)
	negatives := s.matchNegatives(textLower)

	contentWords := 0
	for _, w := range words {
		if len(w) > 2 {
			contentWords++
		}
	}
	if contentWords == 0 {
		contentWords = 1
	}

	base := float64(len(matched)) / float64(contentWords)

	highPriority := 0
	strongSignal := false
	for _, term := range matched {
		if _, ok := s.reg.Vocab.HighPriority[term]; ok {
			highPriority++
		}
		if _, ok := s.reg.Vocab.Strong[term]; ok {
			strongSignal = true
		}
	}
	score := math.Min(1.0, base+0.1*float64(highPriority))

	boost, evidence := s.entityBoost(ling, negatives)
	score += boost

	// Ambiguous-only posts ("buy", "sell", "price") with nothing to
	// anchor them are not finance content. Only ORG and MONEY entities
	// count as an anchor; a stray place or person name does not.
	if len(matched) > 0 && !strongSignal && evidence == 0 && s.allAmbiguous(matched) {
		return DomainResult{
			Score:        0.05,
			IsFinance:    false,
			MatchedTerms: matched,
			Reason:       "ambiguous_only",
		}
	}

	score -= 0.15 * float64(len(negatives))
	negatives = s.applyCoherencePenalty(&score, ling, negatives)

	score = math.Max(0.0, math.Min(1.0, score))

	result := DomainResult{
		MatchedTerms:  matched,
		NegativeTerms: negatives,
	}
	if len(negatives) > 0 {
		result.IsFinance = score >= 0.15
	} else {
		switch {
		case score >= 0.05 && strongSignal:
			result.IsFinance = true
			score = math.Max(score, 0.25)
		case score >= 0.1 && evidence > 0:
			result.IsFinance = true
			score = math.Max(score, 0.25)
		default:
			result.IsFinance = score >= 0.05
		}
	}
	result.Score = round3(score)
	return result
}

func (s *DomainScorer) matchTerms(textLower string) []string {
	var matched []string
	seen := map[string]bool{}
	for term := range s.reg.Vocab.Terms {
		if seen[term] {
			continue
		}
		if s.reg.MatchTerm(term, textLower) {
			matched = append(matched, term)
			seen[term] = true
		}
	}
	return matched
}

func (s *DomainScorer) matchNegatives(textLower string) []string {
	var matched []string
	for term := range s.reg.Vocab.Negative {
		if s.reg.MatchTerm(term, textLower) {
			matched = append(matched, term)
		}
	}
	return matched
}

// entityBoost rewards organization and money mentions, which usually
// anchor a post in real market discussion. The total is capped so
// entity-stuffed spam cannot buy relevance. It also reports how many
// entities counted, so callers can tell anchored posts from ones that
// merely name a person or place.
func (s *DomainScorer) entityBoost(ling nlp.Analysis, negatives []string) (float64, int) {
	if !ling.Available {
		return 0, 0
	}
	negSet := map[string]bool{}
	for _, n := range negatives {
		negSet[n] = true
	}
	boost := 0.0
	evidence := 0
	for _, ent := range ling.Entities {
		entLower := strings.ToLower(ent.Text)
		if negSet[entLower] || genericEntityTerms[entLower] {
			continue
		}
		switch ent.Label {
		case "ORG":
			boost += 0.05
			evidence++
		case "MONEY":
			boost += 0.1
			evidence++
		}
	}
	return math.Min(0.2, boost), evidence
}

func (s *DomainScorer) allAmbiguous(matched []string) bool {
	for _, term := range matched {
		if _, ok := s.reg.Vocab.Ambiguous[term]; !ok {
			return false
		}
	}
	return true
}

// applyCoherencePenalty walks sentences looking for ones built around
// a non-finance named entity with no finance vocabulary at all. Each
// such sentence costs 0.15 and records the stray entity label.
func (s *DomainScorer) applyCoherencePenalty(score *float64, ling nlp.Analysis, negatives []string) []string {
	if !ling.Available {
		return negatives
	}
	negSet := map[string]bool{}
	for _, n := range negatives {
		negSet[n] = true
	}
	for _, sent := range ling.Sentences {
		if sent.TokenCount < 6 {
			continue
		}
		sentLower := strings.ToLower(sent.Text)
		hasFinance := false
		for term := range s.reg.Vocab.Terms {
			if s.reg.MatchTerm(term, sentLower) {
				hasFinance = true
				break
			}
		}
		if hasFinance {
			continue
		}
		for _, ent := range sent.Entities {
			entLower := strings.ToLower(ent.Text)
			if !topicEntityLabels[ent.Label] || negSet[entLower] {
				continue
			}
			*score -= 0.15
			negatives = append(negatives, "off_topic_entity:"+ent.Label)
			break
		}
	}
	return negatives
}
