package nlp

import (
	"strings"
	"testing"
)

func TestAnalyzeFindsGazetteerOrgs(t *testing.T) {
	a := NewAnalyzer()
	res := a.Analyze("SEBI issued a warning about unregistered advisors on Zerodha.")

	if !res.Available {
		t.Fatal("analysis should be available")
	}
	labels := map[string]string{}
	for _, ent := range res.Entities {
		labels[strings.ToLower(ent.Text)] = ent.Label
	}
	if labels["sebi"] != "ORG" {
		t.Errorf("entities = %v, want sebi labeled ORG", res.Entities)
	}
	if labels["zerodha"] != "ORG" {
		t.Errorf("entities = %v, want zerodha labeled ORG", res.Entities)
	}
}

func TestAnalyzeFindsMoneyAmounts(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name  string
		input string
	}{
		{"rupee symbol", "He asked me to send ₹5,000 upfront."},
		{"rs prefix", "They want Rs 2000 to join the group."},
		{"word amount", "She lost 3 lakhs in that scheme."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.Analyze(tt.input)
			found := false
			for _, ent := range res.Entities {
				if ent.Label == "MONEY" {
					found = true
				}
			}
			if !found {
				t.Errorf("Analyze(%q) found no MONEY entity: %v", tt.input, res.Entities)
			}
		})
	}
}

func TestDetectNegation(t *testing.T) {
	tokens := []string{"He", "is", "not", "a", "fraud", "at", "all"}
	negated := detectNegation(tokens)

	if negated[4] != "not" {
		t.Errorf("negated = %v, want token 4 (fraud) covered by \"not\"", negated)
	}
	if _, ok := negated[3]; ok {
		t.Error("article \"a\" should be skipped, not marked")
	}
}

func TestDetectNegationStopsAtClauseBreak(t *testing.T) {
	tokens := []string{"not", "a", "scam", ",", "but", "risky", "anyway"}
	negated := detectNegation(tokens)

	if negated[2] != "not" {
		t.Errorf("negated = %v, want scam covered", negated)
	}
	if _, ok := negated[5]; ok {
		t.Error("negation should not cross a comma into the next clause")
	}
}

func TestAnalyzeSentenceEntities(t *testing.T) {
	a := NewAnalyzer()
	res := a.Analyze("The market fell today. SEBI released new margin rules for brokers.")

	if len(res.Sentences) < 2 {
		t.Fatalf("expected 2 sentences, got %d", len(res.Sentences))
	}
	second := res.Sentences[1]
	found := false
	for _, ent := range second.Entities {
		if strings.EqualFold(ent.Text, "sebi") {
			found = true
		}
	}
	if !found {
		t.Errorf("second sentence entities = %v, want sebi attached", second.Entities)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	a := NewAnalyzer()
	if res := a.Analyze("   "); res.Available {
		t.Error("whitespace-only text should yield an unavailable analysis")
	}
}

func TestNoopAnalyzer(t *testing.T) {
	var a Analyzer = NoopAnalyzer{}
	if a.Available() {
		t.Error("noop analyzer must report unavailable")
	}
	if res := a.Analyze("anything"); res.Available || len(res.Entities) != 0 {
		t.Errorf("noop analysis should be empty, got %+v", res)
	}
}
