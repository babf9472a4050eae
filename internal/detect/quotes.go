package detect

import (
	"regexp"

	"github.com/citeguard/citeguard/internal/model"
)

// quoteConfidence is a calibration constant, not a computed value
const quoteConfidence = 0.85

const (
	// minQuotedContent is the minimum quoted length worth scanning at all
	minQuotedContent = 20
	// minReportableQuote is the quoted length above which a missing
	// citation becomes an issue
	minReportableQuote = 30
	// citationLookahead is how far past the closing quote a citation may sit
	citationLookahead = 50
)

// quotedSpanPattern matches spans delimited by straight or typographic quotes
var quotedSpanPattern = regexp.MustCompile(`["“”’]([^"“”’]{20,})["“”’]`)

const quoteSuggestion = "Add an inline citation immediately after the quote, e.g. (Author, Year) or [1]."

// QuoteDetector flags quotations that are not followed by a citation
type QuoteDetector struct{}

// NewQuoteDetector creates a new uncited quote detector
func NewQuoteDetector() *QuoteDetector {
	return &QuoteDetector{}
}

// Detect scans the raw text for quoted spans lacking a trailing citation
func (d *QuoteDetector) Detect(doc Document) []model.PlagiarismIssue {
	var issues []model.PlagiarismIssue

	for _, m := range quotedSpanPattern.FindAllStringSubmatchIndex(doc.Text, -1) {
		content := doc.Text[m[2]:m[3]]
		if len(content) <= minReportableQuote {
			continue
		}

		// Look just past the closing quote for "(Author, Year)" or "[N]"
		trailerEnd := m[1] + citationLookahead
		if trailerEnd > len(doc.Text) {
			trailerEnd = len(doc.Text)
		}
		if hasCitation(doc.Text[m[1]:trailerEnd]) {
			continue
		}

		issues = append(issues, model.PlagiarismIssue{
			Type:       model.IssueUncitedQuote,
			Severity:   model.SeverityHigh,
			Text:       content,
			Context:    surrounding(doc.Text, m[0], m[1]),
			Suggestion: quoteSuggestion,
			Confidence: quoteConfidence,
		})
	}

	return issues
}

// surrounding returns the text around [start,end) with a fixed margin
func surrounding(text string, start, end int) string {
	const margin = 40
	lo := start - margin
	if lo < 0 {
		lo = 0
	}
	hi := end + margin
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
