// Package detect contains the four integrity-risk scanners: uncited quotes,
// unsupported factual claims, close paraphrasing, and suspicious stylistic
// patterns. Detectors are stateless beyond their rule tables and never fail
// on malformed input; empty documents simply yield no matches.
package detect

import "github.com/citeguard/citeguard/internal/model"

// Tokenizer is the sentence/word splitting contract consumed by detectors.
// Implementations must be deterministic and total.
type Tokenizer interface {
	Sentences(text string) []string
	Words(text string) []string
}

// Document is the pre-tokenized input shared by all detectors
type Document struct {
	Text       string     // Raw document text
	Sentences  []string   // Tokenized document sentences, in order
	References [][]string // Tokenized sentences per reference source, in order
}

// Detector scans a document for one class of integrity risk
type Detector interface {
	Detect(doc Document) []model.PlagiarismIssue
}
