package scan

import (
	"strings"
	"testing"

	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/nlp"
	"github.com/shilpgohil/Content-moderation-for-Thesis/pkg/patterns"
)

func TestToxicityScannerProfanity(t *testing.T) {
	s := NewToxicityScanner(patterns.Get())

	res := s.Scan("fuck you, absolute moron", nlp.Analysis{})

	if !res.IsToxic {
		t.Error("direct profanity should be toxic")
	}
	cats := strings.Join(res.Categories, ",")
	if !strings.Contains(cats, "severe_profanity") || !strings.Contains(cats, "mild_profanity") {
		t.Errorf("Categories = %v", res.Categories)
	}
}

func TestToxicityScannerCleanText(t *testing.T) {
	s := NewToxicityScanner(patterns.Get())

	res := s.Scan("great breakdown of the quarterly numbers, thanks for sharing", nlp.Analysis{})

	if res.IsToxic || res.Score != 0 {
		t.Errorf("clean text scored %v with categories %v", res.Score, res.Categories)
	}
}

func TestToxicityScannerWordBoundaries(t *testing.T) {
	s := NewToxicityScanner(patterns.Get())

	// "dumb" inside "dumbbell" must not fire.
	res := s.Scan("bought a dumbbell with my cashback", nlp.Analysis{})
	if res.IsToxic {
		t.Errorf("boundary leak: %v", res.Matched)
	}
}

func TestToxicityScannerDefamationNeedsEntity(t *testing.T) {
	s := NewToxicityScanner(patterns.Get())

	withEntity := nlp.Analysis{
		Available: true,
		Entities:  []nlp.Entity{{Text: "Rahul Sharma", Label: "PERSON"}},
	}

	accused := s.Scan("rahul sharma is a fraud and cheated investors", withEntity)
	if !accused.IsToxic {
		t.Error("accusation against a named person should be toxic")
	}
	found := false
	for _, c := range accused.Categories {
		if c == "defamation" {
			found = true
		}
	}
	if !found {
		t.Errorf("Categories = %v, want defamation", accused.Categories)
	}

	// Same words without a named target are scheme criticism, not
	// defamation.
	anonymous := s.Scan("this scheme is a fraud and cheated investors", nlp.Analysis{Available: true})
	for _, c := range anonymous.Categories {
		if c == "defamation" {
			t.Error("defamation fired without a named entity")
		}
	}
}

func TestToxicityScannerDefamationNegated(t *testing.T) {
	s := NewToxicityScanner(patterns.Get())

	ling := nlp.Analysis{
		Available: true,
		Entities:  []nlp.Entity{{Text: "Rahul", Label: "PERSON"}},
	}
	res := s.Scan("rahul is not a fraud, stop spreading rumors", ling)

	for _, c := range res.Categories {
		if c == "defamation" {
			t.Error("negated accusation should not count as defamation")
		}
	}
}

func TestToxicityScannerDefamationNegatedByTokenScope(t *testing.T) {
	s := NewToxicityScanner(patterns.Get())

	// "never really cheated" puts the accusation words under a
	// negator's scope; no literal "never cheated investors" substring
	// exists, so only the token map can suppress this one.
	text := "rahul never really cheated investors he is honest"
	tokens := []string{"Rahul", "never", "really", "cheated", "investors", "he", "is", "honest"}

	negated := s.Scan(text, nlp.Analysis{
		Available:     true,
		Entities:      []nlp.Entity{{Text: "Rahul", Label: "PERSON"}},
		Tokens:        tokens,
		NegatedTokens: map[int]string{3: "never", 4: "never"},
	})
	for _, c := range negated.Categories {
		if c == "defamation" {
			t.Errorf("defamation fired on scope-negated accusation: %v", negated.Matched)
		}
	}

	// Without the negation map the same sentence reads as an
	// accusation against a named person.
	plain := s.Scan(text, nlp.Analysis{
		Available: true,
		Entities:  []nlp.Entity{{Text: "Rahul", Label: "PERSON"}},
		Tokens:    tokens,
	})
	found := false
	for _, c := range plain.Categories {
		if c == "defamation" {
			found = true
		}
	}
	if !found {
		t.Errorf("Categories = %v, want defamation without negation evidence", plain.Categories)
	}
}

func TestToxicityScannerQuotingContextSkipped(t *testing.T) {
	s := NewToxicityScanner(patterns.Get())

	res := s.Scan("screenshot of the message he sent: fuck you idiot", nlp.Analysis{})

	if res.IsToxic {
		t.Error("quoted abuse in a report should be skipped")
	}
	if res.SkippedContext == "" {
		t.Error("SkippedContext should record the matched phrase")
	}
}

func TestToxicityScannerSpamPattern(t *testing.T) {
	s := NewToxicityScanner(patterns.Get())

	res := s.Scan("click here for this limited offer, buy now before it ends", nlp.Analysis{})

	if !res.IsToxic {
		t.Error("stacked spam indicators should cross the toxicity bar")
	}
	found := false
	for _, c := range res.Categories {
		if c == "spam_pattern" {
			found = true
		}
	}
	if !found {
		t.Errorf("Categories = %v, want spam_pattern", res.Categories)
	}
}

func TestToxicityScannerHateSpeechRegex(t *testing.T) {
	s := NewToxicityScanner(patterns.Get())

	res := s.Scan("go back to your village if you cannot handle the market", nlp.Analysis{})

	if !res.IsToxic {
		t.Error("hate speech pattern should be toxic")
	}
	found := false
	for _, c := range res.Categories {
		if c == "hate_speech" {
			found = true
		}
	}
	if !found {
		t.Errorf("Categories = %v, want hate_speech", res.Categories)
	}
}
