package detect

import (
	"regexp"

	"github.com/citeguard/citeguard/internal/model"
)

// claimConfidence is a calibration constant, not a computed value
const claimConfidence = 0.75

// maxClaimSnippet bounds the flagged snippet length in the report
const maxClaimSnippet = 100

const claimSuggestion = "Add a citation to support this factual claim."

// claimPatterns are the phrase rules that mark a sentence as an
// unsupported factual assertion. All matching is case-insensitive.
var claimPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:studies|research)\s+(?:show|indicate|suggest|demonstrate|reveal|found)s?\b`),
	regexp.MustCompile(`(?i)according to research`),
	regexp.MustCompile(`(?i)\bscientists\s+(?:found|discovered|determined|concluded)\b`),
	regexp.MustCompile(`(?i)\bexperts\s+(?:say|claim|argue|suggest)s?\b`),
	regexp.MustCompile(`(?i)\bit (?:has been|is)\s+(?:shown|demonstrated|proven|established)\b`),
	regexp.MustCompile(`\d+(?:\.\d+)?%`),
	regexp.MustCompile(`(?i)\bapproximately \d+`),
}

// ClaimDetector flags sentences that assert facts without a citation
type ClaimDetector struct{}

// NewClaimDetector creates a new missing citation detector
func NewClaimDetector() *ClaimDetector {
	return &ClaimDetector{}
}

// Detect scans sentences for claim indicators, skipping cited sentences
func (d *ClaimDetector) Detect(doc Document) []model.PlagiarismIssue {
	var issues []model.PlagiarismIssue

	for _, sentence := range doc.Sentences {
		if hasCitation(sentence) {
			continue
		}

		for _, pattern := range claimPatterns {
			if !pattern.MatchString(sentence) {
				continue
			}

			text := sentence
			if len(text) > maxClaimSnippet {
				text = text[:maxClaimSnippet] + "..."
			}

			issues = append(issues, model.PlagiarismIssue{
				Type:       model.IssueMissingCitation,
				Severity:   model.SeverityHigh,
				Text:       text,
				Context:    sentence,
				Suggestion: claimSuggestion,
				Confidence: claimConfidence,
			})
			break // One issue per sentence
		}
	}

	return issues
}
