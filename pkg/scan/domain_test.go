package scan

import (
	"testing"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/nlp"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
)

func TestDomainScorerFinanceText(t *testing.T) {
	s := NewDomainScorer(patterns.Get())

	res := s.Score("nifty and sensex rose after sebi relaxed kyc norms", nlp.Analysis{})

	if !res.IsFinance {
		t.Error("dense finance vocabulary should mark content as finance")
	}
	if res.Score < 0.5 {
		t.Errorf("Score = %v, want high for regulator and index mentions", res.Score)
	}
	if len(res.MatchedTerms) < 3 {
		t.Errorf("MatchedTerms = %v", res.MatchedTerms)
	}
}

func TestDomainScorerAmbiguousOnly(t *testing.T) {
	s := NewDomainScorer(patterns.Get())

	res := s.Score("buy low sell high price target", nlp.Analysis{})

	if res.IsFinance {
		t.Error("ambiguous-only vocabulary must not count as finance")
	}
	if res.Score != 0.05 {
		t.Errorf("Score = %v, want 0.05", res.Score)
	}
	if res.Reason != "ambiguous_only" {
		t.Errorf("Reason = %q", res.Reason)
	}
}

func TestDomainScorerAmbiguousWithPlaceEntity(t *testing.T) {
	s := NewDomainScorer(patterns.Get())

	// A place name is not an anchor: "budget" alone stays ambiguous
	// even though the sentence carries a GPE entity.
	ling := nlp.Analysis{
		Available: true,
		Entities:  []nlp.Entity{{Text: "Paris", Label: "GPE"}},
	}
	res := s.Score("budget hotel in paris", ling)

	if res.IsFinance {
		t.Error("travel chatter with a place entity must not count as finance")
	}
	if res.Score != 0.05 || res.Reason != "ambiguous_only" {
		t.Errorf("Score = %v, Reason = %q, want ambiguous-only rejection", res.Score, res.Reason)
	}
}

func TestDomainScorerNoFloorFromNoiseEntities(t *testing.T) {
	s := NewDomainScorer(patterns.Get())

	with := s.Score("thinking about investing a small amount somewhere", nlp.Analysis{
		Available: true,
		Entities:  []nlp.Entity{{Text: "Ramesh", Label: "PERSON"}},
	})
	without := s.Score("thinking about investing a small amount somewhere", nlp.Analysis{})

	if with.Score != without.Score || with.IsFinance != without.IsFinance {
		t.Errorf("person entity changed relevance: %+v vs %+v", with, without)
	}
}

func TestDomainScorerOffTopic(t *testing.T) {
	s := NewDomainScorer(patterns.Get())

	res := s.Score("the cricket match yesterday was absolutely thrilling", nlp.Analysis{})

	if res.IsFinance {
		t.Error("sports chatter is not finance content")
	}
	if res.Score >= 0.15 {
		t.Errorf("Score = %v, want near zero", res.Score)
	}
}

func TestDomainScorerCoherencePenalty(t *testing.T) {
	s := NewDomainScorer(patterns.Get())

	ling := nlp.Analysis{
		Available: true,
		Entities:  []nlp.Entity{{Text: "Virat", Label: "PERSON"}},
		Sentences: []nlp.Sentence{{
			Text:       "Virat played a brilliant innings in the final over",
			TokenCount: 9,
			Entities:   []nlp.Entity{{Text: "Virat", Label: "PERSON"}},
		}},
	}
	res := s.Score("virat played a brilliant innings in the final over", ling)

	if res.IsFinance {
		t.Error("an off-topic entity sentence should not be finance")
	}
	found := false
	for _, n := range res.NegativeTerms {
		if n == "off_topic_entity:PERSON" {
			found = true
		}
	}
	if !found {
		t.Errorf("NegativeTerms = %v, want off_topic_entity:PERSON recorded", res.NegativeTerms)
	}
}

func TestDomainScorerEntityBoost(t *testing.T) {
	s := NewDomainScorer(patterns.Get())

	bare := s.Score("thinking about investing a small amount somewhere", nlp.Analysis{})
	boosted := s.Score("thinking about investing a small amount somewhere", nlp.Analysis{
		Available: true,
		Entities: []nlp.Entity{
			{Text: "Zerodha", Label: "ORG"},
			{Text: "₹50,000", Label: "MONEY"},
		},
	})

	if boosted.Score <= bare.Score {
		t.Errorf("entity boost missing: bare %v, boosted %v", bare.Score, boosted.Score)
	}
	if !boosted.IsFinance {
		t.Error("vocabulary plus entities should mark content as finance")
	}
}

func TestDomainScorerGenericEntitiesIgnored(t *testing.T) {
	s := NewDomainScorer(patterns.Get())

	plain := s.Score("thinking about investing a small amount somewhere", nlp.Analysis{})
	withGeneric := s.Score("thinking about investing a small amount somewhere", nlp.Analysis{
		Available: true,
		Entities:  []nlp.Entity{{Text: "DM", Label: "ORG"}},
	})

	if withGeneric.Score > plain.Score {
		t.Errorf("generic entity boosted score: %v > %v", withGeneric.Score, plain.Score)
	}
}
