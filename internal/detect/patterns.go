package detect

import (
	"fmt"
	"regexp"

	"github.com/citeguard/citeguard/internal/model"
)

// listPatternConfidence is a calibration constant, not a computed value
const listPatternConfidence = 0.5

const (
	// longWordLength is the character count above which a word counts as
	// unusually long
	longWordLength = 12
	// longWordRatioThreshold is the long-word ratio that triggers a flag
	longWordRatioThreshold = 0.3
	// minWordsForRatio avoids flagging very short sentences
	minWordsForRatio = 10
)

const (
	vocabularySuggestion = "Vocabulary here is unusually sophisticated for the surrounding text; verify it is original writing or add a citation."
	listSuggestion       = "Enumerated points often paraphrase a source; cite the source of this series."
)

// Ordinal openers and their continuations mark list-like series that
// commonly summarize an uncited source.
var (
	ordinalOpenerPattern = regexp.MustCompile(`(?i)^(?:(?:first|second|third|finally|lastly)\b|[123]\.)`)
	continuationPattern  = regexp.MustCompile(`(?i)^(?:second|third|next|additionally|furthermore)\b`)
)

// PatternDetector flags stylistic anomalies: bursts of unusually long
// vocabulary and uncited enumerated series.
type PatternDetector struct {
	tok Tokenizer
}

// NewPatternDetector creates a new suspicious pattern detector
func NewPatternDetector(tok Tokenizer) *PatternDetector {
	return &PatternDetector{tok: tok}
}

// Detect scans sentences for vocabulary anomalies and list-like series
func (d *PatternDetector) Detect(doc Document) []model.PlagiarismIssue {
	var issues []model.PlagiarismIssue

	for i, sentence := range doc.Sentences {
		if issue, ok := d.checkVocabulary(sentence); ok {
			issues = append(issues, issue)
		}

		if i+1 >= len(doc.Sentences) {
			continue
		}
		next := doc.Sentences[i+1]
		if ordinalOpenerPattern.MatchString(sentence) &&
			continuationPattern.MatchString(next) &&
			!hasCitation(sentence) {
			issues = append(issues, model.PlagiarismIssue{
				Type:       model.IssueMissingCitation,
				Severity:   model.SeverityMedium,
				Text:       sentence,
				Context:    next,
				Suggestion: listSuggestion,
				Confidence: listPatternConfidence,
			})
		}
	}

	return issues
}

// checkVocabulary flags sentences dominated by very long words
func (d *PatternDetector) checkVocabulary(sentence string) (model.PlagiarismIssue, bool) {
	words := d.tok.Words(sentence)
	if len(words) <= minWordsForRatio {
		return model.PlagiarismIssue{}, false
	}

	longWords := 0
	for _, w := range words {
		if len(w) > longWordLength {
			longWords++
		}
	}

	ratio := float64(longWords) / float64(len(words))
	if ratio <= longWordRatioThreshold {
		return model.PlagiarismIssue{}, false
	}

	return model.PlagiarismIssue{
		Type:       model.IssueSuspiciousSimilarity,
		Severity:   model.SeverityLow,
		Text:       sentence,
		Context:    fmt.Sprintf("%d of %d words longer than %d characters", longWords, len(words), longWordLength),
		Suggestion: vocabularySuggestion,
		Confidence: ratio,
	}, true
}
