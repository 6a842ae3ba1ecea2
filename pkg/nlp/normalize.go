// Package nlp provides the text collaborators used by the moderation
// scanners: normalization, linguistic analysis and embedding providers.
package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// leetMap decodes common character substitutions used to slip terms
// past keyword filters ("gu4r4nteed", "fr33").
var leetMap = map[rune]rune{
	'0': 'o', '1': 'i', '3': 'e', '4': 'a', '5': 's',
	'7': 't', '8': 'b', '@': 'a', '$': 's', '!': 'i',
}

var (
	urlPattern     = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	// Standalone amounts keep their digits: 100, 100%, $100, ₹1,00,000
	numericToken = regexp.MustCompile(`^[$₹]?[\d,]+[%$]?$`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Normalized is the output of Normalize: cleaned lowercase text plus
// what was stripped along the way.
type Normalized struct {
	Text           string
	OriginalLength int
	URLs           []string
	Mentions       []string
	HadObfuscation bool
}

// Normalize cleans raw user text for the scanners. URLs and @mentions
// are replaced with [URL] and [MENTION] placeholders, unicode is NFKC
// normalized, leet-speak is decoded and whitespace collapsed. The
// returned text is lowercase.
func Normalize(text string) Normalized {
	out := Normalized{OriginalLength: len(text)}

	out.URLs = urlPattern.FindAllString(text, -1)
	text = urlPattern.ReplaceAllString(text, " [URL] ")

	out.Mentions = mentionPattern.FindAllString(text, -1)
	text = mentionPattern.ReplaceAllString(text, " [MENTION] ")

	text = norm.NFKC.String(text)

	lowered := strings.ToLower(text)
	decoded := decodeLeet(lowered)
	if decoded != lowered {
		out.HadObfuscation = true
	}

	out.Text = strings.TrimSpace(whitespace.ReplaceAllString(decoded, " "))
	return out
}

// decodeLeet rewrites leet-speak per word, leaving purely numeric
// tokens intact so amounts like "₹5,000" or "20%" survive.
func decodeLeet(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if numericToken.MatchString(word) {
			continue
		}
		var b strings.Builder
		b.Grow(len(word))
		for _, r := range word {
			if repl, ok := leetMap[r]; ok {
				b.WriteRune(repl)
			} else {
				b.WriteRune(r)
			}
		}
		words[i] = b.String()
	}
	return strings.Join(words, " ")
}
