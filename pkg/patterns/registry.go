// Package patterns provides a centralized, compile-once registry of the
// term banks, regex patterns and template corpora used by the moderation
// scanners. All regexes are compiled at first use and shared across
// scanners; the registry is immutable after construction.
package patterns

import (
	"regexp"
	"strings"
	"sync"
)

// Severity labels carried by signals and corpus entries.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// KeywordTier groups scam keywords sharing a per-match weight.
type KeywordTier struct {
	Severity string
	Weight   float64
	Keywords []string
}

// ScamBank holds the rule scanner's keyword tiers, compiled regex
// patterns and the context phrase lists that suppress them.
type ScamBank struct {
	Tiers         []KeywordTier // ordered high, medium, low
	MoneyRequests []string      // weight 0.8, high severity

	UnrealisticReturns []*regexp.Regexp // weight 0.7
	ExternalRedirects  []*regexp.Regexp // weight 0.7
	Solicitation       []*regexp.Regexp // weight 0.6
	MLM                []*regexp.Regexp // weight 0.8

	Whitelist           []string // operator-supplied, short-circuits scanning
	StrongContexts      []string // reduction 0.9, short-circuits scanning
	MediumContexts      []string // reduction 0.7
	OpinionMarkers      []string // reduction 0.4
	QuestionIndicators  []string // reduction 0.3
	PastTenseIndicators []string // reduction 0.3
}

// VocabBank holds the domain relevance vocabularies.
type VocabBank struct {
	Terms        map[string]struct{} // every finance term, lowercased
	Strong       map[string]struct{} // terms from strong-signal categories
	HighPriority map[string]struct{}
	Ambiguous    map[string]struct{} // common-English terms, never strong alone
	Negative     map[string]struct{} // off-topic vocabularies
}

// ToxicBank holds the toxicity scanner's categorized term sets.
type ToxicBank struct {
	Categories        []ToxicCategory
	Defamation        []string
	HateSpeech        []*regexp.Regexp
	SpamIndicators    []string
	WhitelistContexts []string // quoting/reporting context, skips the scan
}

// ToxicCategory pairs a named term set with its fixed score contribution.
type ToxicCategory struct {
	Name   string
	Weight float64
	Terms  []string
}

// Template is a labeled example sentence for semantic matching.
type Template struct {
	Text     string `yaml:"text"`
	Severity string `yaml:"severity"`
}

// FuzzyBank holds the fuzzy matcher's phrase corpus.
type FuzzyBank struct {
	Phrases      []string
	HighSeverity map[string]struct{}
}

// AnalyzerBank holds the content analyzer's example and indicator banks.
type AnalyzerBank struct {
	FinanceExamples  []string
	NegativeExamples []string
	HighSubstance    []string
	LowSubstance     []string
	Discourse        map[string][]string // analysis, education, news, question, gossip
}

// Registry is the single source of truth for all moderation data.
type Registry struct {
	Scam     ScamBank
	Vocab    VocabBank
	Toxic    ToxicBank
	Fuzzy    FuzzyBank
	Scams    []Template // semantic scam template corpus
	Analyzer AnalyzerBank

	wordRegex map[string]*regexp.Regexp
}

var (
	globalRegistry *Registry
	initOnce       sync.Once
)

// Get returns the global registry built from the built-in banks.
// Thread-safe and guaranteed to be initialized.
func Get() *Registry {
	initOnce.Do(func() {
		globalRegistry = newRegistry()
	})
	return globalRegistry
}

// newRegistry assembles the built-in banks and precompiles word patterns.
func newRegistry() *Registry {
	r := &Registry{
		Scam:     defaultScamBank(),
		Vocab:    defaultVocabBank(),
		Toxic:    defaultToxicBank(),
		Fuzzy:    defaultFuzzyBank(),
		Scams:    defaultScamTemplates(),
		Analyzer: defaultAnalyzerBank(),
	}
	r.compileWordPatterns()
	return r
}

// compileWordPatterns precompiles a word-boundary regex for every
// single-token term in any bank. Multi-word phrases use substring
// matching and need no regex.
func (r *Registry) compileWordPatterns() {
	r.wordRegex = make(map[string]*regexp.Regexp, 512)

	add := func(term string) {
		term = strings.ToLower(term)
		if strings.Contains(term, " ") {
			return
		}
		if _, ok := r.wordRegex[term]; ok {
			return
		}
		r.wordRegex[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}

	for _, tier := range r.Scam.Tiers {
		for _, k := range tier.Keywords {
			add(k)
		}
	}
	for _, k := range r.Scam.MoneyRequests {
		add(k)
	}
	for t := range r.Vocab.Terms {
		add(t)
	}
	for t := range r.Vocab.Negative {
		add(t)
	}
	for _, cat := range r.Toxic.Categories {
		for _, t := range cat.Terms {
			add(t)
		}
	}
}

// MatchTerm reports whether term occurs in the text. Single tokens are
// matched on word boundaries so "fed" does not hit "FedEx"; multi-word
// phrases use substring matching.
func (r *Registry) MatchTerm(term, textLower string) bool {
	term = strings.ToLower(term)
	if strings.Contains(term, " ") {
		return strings.Contains(textLower, term)
	}
	if re, ok := r.wordRegex[term]; ok {
		return re.MatchString(textLower)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	return re.MatchString(textLower)
}

// TotalTerms returns the count of precompiled single-token patterns,
// mostly useful as a sanity check that the banks loaded.
func (r *Registry) TotalTerms() int {
	return len(r.wordRegex)
}

func mustCompileAll(exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

func toSet(terms []string) map[string]struct{} {
	s := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		s[strings.ToLower(t)] = struct{}{}
	}
	return s
}
