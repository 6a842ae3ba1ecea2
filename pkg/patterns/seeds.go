package patterns

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// seedFile is the YAML schema for operator-supplied pattern extensions.
// All sections are additive on top of the built-in banks.
type seedFile struct {
	Scam struct {
		WhitelistContexts      []string `yaml:"whitelist_contexts"`
		HighSeverityKeywords   []string `yaml:"high_severity_keywords"`
		MediumSeverityKeywords []string `yaml:"medium_severity_keywords"`
		LowSeverityKeywords    []string `yaml:"low_severity_keywords"`
	} `yaml:"scam"`
	FinanceCategories map[string][]string `yaml:"finance_categories"`
	NegativeTopics    []string            `yaml:"negative_topics"`
	FuzzyPhrases      []string            `yaml:"fuzzy_phrases"`
	ScamTemplates     []Template          `yaml:"scam_templates"`
	SpamIndicators    []string            `yaml:"spam_indicators"`
}

// New builds a registry from the built-in banks, overlaid with the
// seeds.yaml file from dataDir when present. An empty dataDir or a
// missing file yields the built-in banks; a malformed file is an error
// so typos do not silently drop operator patterns.
func New(dataDir string) (*Registry, error) {
	r := newRegistry()
	if dataDir == "" {
		return r, nil
	}

	path := filepath.Join(dataDir, "seeds.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[INFO] No seed file at %s, using built-in pattern banks", path)
			return r, nil
		}
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	var seeds seedFile
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	r.applySeeds(&seeds)
	r.compileWordPatterns()
	log.Printf("[INFO] Loaded pattern seeds from %s", path)
	return r, nil
}

func (r *Registry) applySeeds(seeds *seedFile) {
	r.Scam.Whitelist = appendLower(r.Scam.Whitelist, seeds.Scam.WhitelistContexts)

	for i := range r.Scam.Tiers {
		switch r.Scam.Tiers[i].Severity {
		case SeverityHigh:
			r.Scam.Tiers[i].Keywords = appendLower(r.Scam.Tiers[i].Keywords, seeds.Scam.HighSeverityKeywords)
		case SeverityMedium:
			r.Scam.Tiers[i].Keywords = appendLower(r.Scam.Tiers[i].Keywords, seeds.Scam.MediumSeverityKeywords)
		case SeverityLow:
			r.Scam.Tiers[i].Keywords = appendLower(r.Scam.Tiers[i].Keywords, seeds.Scam.LowSeverityKeywords)
		}
	}

	for category, terms := range seeds.FinanceCategories {
		_, strong := strongCategories[category]
		for _, t := range terms {
			lt := strings.ToLower(t)
			r.Vocab.Terms[lt] = struct{}{}
			if strong {
				if _, ambiguous := r.Vocab.Ambiguous[lt]; !ambiguous {
					r.Vocab.Strong[lt] = struct{}{}
				}
			}
		}
	}
	for _, t := range seeds.NegativeTopics {
		r.Vocab.Negative[strings.ToLower(t)] = struct{}{}
	}

	r.Fuzzy.Phrases = appendLower(r.Fuzzy.Phrases, seeds.FuzzyPhrases)
	r.Scams = append(r.Scams, seeds.ScamTemplates...)
	r.Toxic.SpamIndicators = appendLower(r.Toxic.SpamIndicators, seeds.SpamIndicators)
}

func appendLower(dst, src []string) []string {
	for _, s := range src {
		s = strings.TrimSpace(strings.ToLower(s))
		if s != "" {
			dst = append(dst, s)
		}
	}
	return dst
}
