package nlp

import (
	"log"
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Entity is a named entity found in text.
type Entity struct {
	Text  string
	Label string // PERSON, ORG, GPE, MONEY
}

// Sentence is a segmented sentence with the entities it contains.
type Sentence struct {
	Text       string
	TokenCount int
	Entities   []Entity
}

// Analysis is the linguistic view of a text. When Available is false
// every field is empty and consumers fall back to lexical heuristics.
type Analysis struct {
	Entities  []Entity
	Sentences []Sentence
	Tokens    []string
	// NegatedTokens maps a token index to the negating word covering it,
	// so "not a fraud" marks "fraud" as negated by "not".
	NegatedTokens map[int]string
	Available     bool
}

// Analyzer produces linguistic analyses. Implementations must be safe
// for concurrent use.
type Analyzer interface {
	Analyze(text string) Analysis
	Available() bool
}

// moneyPattern catches currency amounts the NER model does not label.
var moneyPattern = regexp.MustCompile(`[$₹]\s?\d[\d,]*(\.\d+)?|(?i:\b(rs\.?|inr)\s?\d[\d,]*)|(?i:\b\d[\d,]*\s?(rupees|dollars|lakhs?|crores?)\b)`)

// orgSuffixPattern catches company names by corporate suffix.
var orgSuffixPattern = regexp.MustCompile(`\b(?:[A-Z][A-Za-z]+\s)+(?:Inc|Ltd|Limited|Corp|Corporation|Bank|Securities|Capital|Technologies|Industries|Finance|Fund|Broking)\b`)

// knownOrgs is a small gazetteer of finance organizations the statistical
// model routinely misses.
var knownOrgs = []string{
	"sebi", "rbi", "nse", "bse", "hdfc", "icici", "sbi", "kotak",
	"zerodha", "groww", "upstox", "paytm", "reliance", "infosys", "tcs",
	"vanguard", "blackrock",
}

var knownOrgPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(knownOrgs))
	for _, org := range knownOrgs {
		m[org] = regexp.MustCompile(`\b` + org + `\b`)
	}
	return m
}()

var negationWords = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "n't": {}, "cannot": {},
	"neither": {}, "nor": {}, "without": {},
}

// skipWords are function words negation passes over when propagating to
// the content word it actually scopes ("not a fraud").
var skipWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "really": {}, "that": {}, "even": {},
}

// ProseAnalyzer implements Analyzer with a statistical NLP model,
// augmented with regex money detection and an org gazetteer.
type ProseAnalyzer struct{}

// NewAnalyzer returns the default linguistic analyzer.
func NewAnalyzer() *ProseAnalyzer {
	return &ProseAnalyzer{}
}

// Available reports whether linguistic analysis is operational.
func (a *ProseAnalyzer) Available() bool { return true }

// Analyze runs tokenization, sentence segmentation, NER and negation
// detection. A model failure degrades to an empty, unavailable result
// rather than an error: callers treat it as "no linguistic evidence".
func (a *ProseAnalyzer) Analyze(text string) Analysis {
	if strings.TrimSpace(text) == "" {
		return Analysis{}
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		log.Printf("[WARN] linguistic analysis failed: %v", err)
		return Analysis{}
	}

	res := Analysis{Available: true}

	for _, tok := range doc.Tokens() {
		res.Tokens = append(res.Tokens, tok.Text)
	}
	res.NegatedTokens = detectNegation(res.Tokens)

	for _, ent := range doc.Entities() {
		res.Entities = append(res.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	res.Entities = append(res.Entities, heuristicEntities(text, res.Entities)...)

	for _, sent := range doc.Sentences() {
		s := Sentence{
			Text:       strings.TrimSpace(sent.Text),
			TokenCount: len(strings.Fields(sent.Text)),
		}
		sentLower := strings.ToLower(s.Text)
		for _, ent := range res.Entities {
			if strings.Contains(sentLower, strings.ToLower(ent.Text)) {
				s.Entities = append(s.Entities, ent)
			}
		}
		res.Sentences = append(res.Sentences, s)
	}

	return res
}

// heuristicEntities adds MONEY amounts and gazetteer/suffix ORGs that
// the statistical model does not produce. Already-found entity strings
// are not duplicated.
func heuristicEntities(text string, existing []Entity) []Entity {
	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[strings.ToLower(e.Text)] = struct{}{}
	}

	var out []Entity
	add := func(match, label string) {
		key := strings.ToLower(strings.TrimSpace(match))
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, Entity{Text: strings.TrimSpace(match), Label: label})
	}

	for _, m := range moneyPattern.FindAllString(text, -1) {
		add(m, "MONEY")
	}
	for _, m := range orgSuffixPattern.FindAllString(text, -1) {
		add(m, "ORG")
	}

	textLower := strings.ToLower(text)
	for org, re := range knownOrgPatterns {
		if re.MatchString(textLower) {
			add(org, "ORG")
		}
	}
	return out
}

// detectNegation maps token indices to the negating word scoping them.
// The negator marks the next few content words, which is enough for the
// defamation suppression rule ("he is not a fraud").
func detectNegation(tokens []string) map[int]string {
	negated := map[int]string{}
	for i, tok := range tokens {
		lt := strings.ToLower(tok)
		if _, neg := negationWords[lt]; !neg {
			continue
		}
		marked := 0
		for j := i + 1; j < len(tokens) && marked < 3; j++ {
			next := strings.ToLower(tokens[j])
			if _, skip := skipWords[next]; skip {
				continue
			}
			if next == "." || next == "," || next == "but" {
				break
			}
			negated[j] = tok
			marked++
		}
	}
	return negated
}

// NoopAnalyzer is the degraded-mode analyzer: always unavailable.
type NoopAnalyzer struct{}

func (NoopAnalyzer) Analyze(string) Analysis { return Analysis{} }
func (NoopAnalyzer) Available() bool         { return false }
