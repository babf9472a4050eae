// Package analyze runs the originality analysis engine: it tokenizes a
// document, fans its text through the four detectors, merges and ranks the
// findings, and assembles the scored report.
//
// The engine is stateless and purely functional: identical inputs produce
// field-for-field identical reports, and concurrent calls for different
// documents need no locking.
package analyze

import (
	"errors"
	"strings"

	"github.com/citeguard/citeguard/internal/detect"
	"github.com/citeguard/citeguard/internal/model"
	"github.com/citeguard/citeguard/internal/score"
	"github.com/citeguard/citeguard/internal/tokenize"
)

// ErrEmptyDocument is returned when the input contains no content after
// trimming. It is the only error the engine produces; everything past the
// entry check is total over well-formed strings.
var ErrEmptyDocument = errors.New("document contains no content")

// Engine analyzes documents for integrity risks
type Engine struct {
	tok       detect.Tokenizer
	detectors []detect.Detector
	scorer    *score.Scorer
}

// New creates an engine with the given tokenizer and tuning constants
func New(tok detect.Tokenizer, cfg model.AnalysisConfig) *Engine {
	return &Engine{
		tok: tok,
		detectors: []detect.Detector{
			detect.NewQuoteDetector(),
			detect.NewClaimDetector(),
			detect.NewParaphraseDetector(tok, cfg),
			detect.NewPatternDetector(tok),
		},
		scorer: score.NewScorer(),
	}
}

// Default creates an engine with the built-in tokenizer and defaults
func Default() *Engine {
	return New(tokenize.New(), model.DefaultConfig().Analysis)
}

// GenerateReport analyzes text against optional reference sources and
// returns the scored report. A nil or empty references slice switches the
// paraphrase detector to self-comparison mode; a short references list
// simply means fewer comparisons, never an error.
func (e *Engine) GenerateReport(text string, references []string) (*model.PlagiarismReport, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	sentences := e.tok.Sentences(text)

	refSentences := make([][]string, 0, len(references))
	for _, ref := range references {
		refSentences = append(refSentences, e.tok.Sentences(ref))
	}

	doc := detect.Document{
		Text:       text,
		Sentences:  sentences,
		References: refSentences,
	}

	var issues []model.PlagiarismIssue
	for _, d := range e.detectors {
		issues = append(issues, d.Detect(doc)...)
	}

	issues = dedupe(issues)
	sortIssues(issues)

	return &model.PlagiarismReport{
		OriginalityScore: e.scorer.Calculate(issues),
		Issues:           issues,
		Statistics: model.Statistics{
			TotalSentences:      len(sentences),
			SuspiciousSentences: distinctTexts(issues),
			UncitedQuotes:       countByType(issues, model.IssueUncitedQuote),
			MissingCitations:    countByType(issues, model.IssueMissingCitation),
			OverallRisk:         e.scorer.OverallRisk(issues),
		},
	}, nil
}
