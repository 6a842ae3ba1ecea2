package patterns

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegistrySingleton(t *testing.T) {
	r1 := Get()
	r2 := Get()
	if r1 != r2 {
		t.Error("Get() should return the same registry instance")
	}
}

func TestRegistryBanksPopulated(t *testing.T) {
	r := Get()

	if total := r.TotalTerms(); total < 200 {
		t.Errorf("expected at least 200 terms across banks, got %d", total)
	}
	if len(r.Scam.Tiers) != 3 {
		t.Errorf("expected 3 keyword tiers, got %d", len(r.Scam.Tiers))
	}
	if len(r.Fuzzy.Phrases) < 40 {
		t.Errorf("expected at least 40 fuzzy corpus phrases, got %d", len(r.Fuzzy.Phrases))
	}
	if len(r.Scams) < 30 {
		t.Errorf("expected at least 30 scam templates, got %d", len(r.Scams))
	}
	for _, tpl := range r.Scams {
		if tpl.Severity != SeverityHigh && tpl.Severity != SeverityMedium && tpl.Severity != SeverityLow {
			t.Errorf("template %q has invalid severity %q", tpl.Text, tpl.Severity)
		}
	}
}

func TestHighSeverityPhrasesAreInCorpus(t *testing.T) {
	r := Get()
	phrases := map[string]bool{}
	for _, p := range r.Fuzzy.Phrases {
		phrases[p] = true
	}
	for p := range r.Fuzzy.HighSeverity {
		if !phrases[p] {
			t.Errorf("high-severity phrase %q missing from fuzzy corpus", p)
		}
	}
}

func TestMatchTerm(t *testing.T) {
	r := Get()

	tests := []struct {
		name string
		term string
		text string
		want bool
	}{
		{"single word boundary hit", "sip", "start a sip today", true},
		{"single word inside larger word", "sip", "gossip about stocks", false},
		{"phrase substring hit", "guaranteed returns", "we offer guaranteed returns here", true},
		{"phrase partial", "guaranteed returns", "returns are never guaranteed", false},
		{"case insensitive input", "nifty", "NIFTY closed higher", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.MatchTerm(tt.term, strings.ToLower(tt.text)); got != tt.want {
				t.Errorf("MatchTerm(%q, %q) = %v, want %v", tt.term, tt.text, got, tt.want)
			}
		})
	}
}

func TestNewWithSeedOverlay(t *testing.T) {
	dir := t.TempDir()
	seed := `
scam:
  whitelist_contexts:
    - "verified community announcement"
  high_severity_keywords:
    - "definitely a unit test scam phrase"
fuzzy_phrases:
  - "unit test fuzzy phrase"
`
	if err := os.WriteFile(filepath.Join(dir, "seeds.yaml"), []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := New(dir)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", dir, err)
	}

	found := false
	for _, p := range reg.Scam.Whitelist {
		if p == "verified community announcement" {
			found = true
		}
	}
	if !found {
		t.Error("seed whitelist phrase not merged")
	}

	if !reg.MatchTerm("definitely a unit test scam phrase", "this is definitely a unit test scam phrase here") {
		t.Error("seeded keyword should match")
	}
}

func TestNewWithoutDataDir(t *testing.T) {
	reg, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") failed: %v", err)
	}
	if reg.TotalTerms() == 0 {
		t.Error("builtin banks should load without a data dir")
	}
}

func TestNewWithMalformedSeeds(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "seeds.yaml"), []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(dir); err == nil {
		t.Error("malformed seeds.yaml should return an error")
	}
}
