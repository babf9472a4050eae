// Package tokenize splits raw text into sentences and words.
//
// The analysis engine consumes this through a narrow interface and treats it
// as a black box: both operations are deterministic and total, and empty
// input yields empty output.
package tokenize

import (
	"strings"
	"unicode"
)

// Text is the default tokenizer implementation
type Text struct{}

// New creates a new tokenizer
func New() *Text {
	return &Text{}
}

// Sentences splits text into non-empty, trimmed sentence spans in original order
func (t *Text) Sentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Only split when the terminator ends a word, so decimals like
		// "3.14" stay intact
		if i+1 < len(runes) && runes[i+1] != ' ' && runes[i+1] != '\t' {
			continue
		}

		// Keep list enumerators ("1.", "2.") attached to their sentence
		if r == '.' && isEnumerator(current.String()) {
			continue
		}

		flush()
	}
	flush()

	return sentences
}

// isEnumerator reports whether s ends in a short numeric token like "1."
func isEnumerator(s string) bool {
	s = strings.TrimSuffix(s, ".")
	idx := strings.LastIndexAny(s, " \t")
	token := s[idx+1:]
	if token == "" || len(token) > 2 {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Words splits text into lowercase alphanumeric tokens in original order
func (t *Text) Words(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
			continue
		}
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
