// Package ner provides candidate extraction of location-like entities from
// free text. Recognizers are deliberately permissive: the advisor's
// gazetteer membership check is the authority on whether a candidate is a
// location the service actually knows about.
package ner

import (
	"strings"
	"unicode"
)

// Recognizer produces candidate location spans from raw query text, in the
// order they should be tested against the gazetteer. Implementations may be
// statistical, rule based, or a plain lexicon scan; correctness of the
// candidates is not required.
type Recognizer interface {
	Recognize(text string) []string
}

// LexiconRecognizer emits every phrase from its lexicon that occurs as a
// token sequence in the input, in document order. At the same start
// position longer phrases are emitted before shorter ones, so multiword
// names like "new delhi" are not shadowed by their prefixes.
type LexiconRecognizer struct {
	lexicon   map[string]struct{}
	maxTokens int
}

var _ Recognizer = (*LexiconRecognizer)(nil)

// NewLexiconRecognizer builds a recognizer over the given phrases. Phrases
// are matched case-insensitively on word boundaries.
func NewLexiconRecognizer(phrases []string) *LexiconRecognizer {
	r := &LexiconRecognizer{
		lexicon:   make(map[string]struct{}, len(phrases)),
		maxTokens: 1,
	}
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		r.lexicon[p] = struct{}{}
		if n := len(tokenize(p)); n > r.maxTokens {
			r.maxTokens = n
		}
	}
	return r
}

// Recognize scans the text left to right and returns every lexicon phrase
// found, without deduplication.
func (r *LexiconRecognizer) Recognize(text string) []string {
	tokens := tokenize(strings.ToLower(text))
	var spans []string
	for i := range tokens {
		for n := r.maxTokens; n >= 1; n-- {
			if i+n > len(tokens) {
				continue
			}
			span := strings.Join(tokens[i:i+n], " ")
			if _, ok := r.lexicon[span]; ok {
				spans = append(spans, span)
			}
		}
	}
	return spans
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
