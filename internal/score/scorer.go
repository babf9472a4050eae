// Package score converts a deduplicated issue list into the 0-100
// originality score, the document risk tier, and a reader-facing
// recommendation.
package score

import "github.com/citeguard/citeguard/internal/model"

// Per-issue penalties. These are calibration constants: each weight was
// tuned against the issue class, not derived from a formula.
const (
	uncitedQuotePenalty         = 10
	missingCitationPenalty      = 5
	highParaphrasePenalty       = 8
	mediumParaphrasePenalty     = 4
	suspiciousSimilarityPenalty = 2
)

// Risk thresholds on the count of High-severity issues
const (
	highRiskAbove   = 5
	mediumRiskAbove = 2
)

// Scorer computes the originality score and risk tier
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate returns the originality score in [0,100]. The score is
// non-increasing in every issue count.
func (s *Scorer) Calculate(issues []model.PlagiarismIssue) int {
	penalty := 0
	for _, issue := range issues {
		switch issue.Type {
		case model.IssueUncitedQuote:
			penalty += uncitedQuotePenalty
		case model.IssueMissingCitation:
			penalty += missingCitationPenalty
		case model.IssueCloseParaphrase:
			if issue.Severity == model.SeverityHigh {
				penalty += highParaphrasePenalty
			} else {
				penalty += mediumParaphrasePenalty
			}
		case model.IssueSuspiciousSimilarity:
			penalty += suspiciousSimilarityPenalty
		}
	}

	result := 100 - penalty
	if result < 0 {
		result = 0
	}
	if result > 100 {
		result = 100
	}
	return result
}

// OverallRisk derives the document risk tier from the High-severity issue
// count alone; it is independent of the score formula.
func (s *Scorer) OverallRisk(issues []model.PlagiarismIssue) model.RiskLevel {
	high := 0
	for _, issue := range issues {
		if issue.Severity == model.SeverityHigh {
			high++
		}
	}

	switch {
	case high > highRiskAbove:
		return model.RiskHigh
	case high > mediumRiskAbove:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// Recommendation maps an originality score to a fixed advisory message
func Recommendation(score int) string {
	switch {
	case score >= 90:
		return "Excellent originality. The document demonstrates strong academic integrity."
	case score >= 75:
		return "Good originality. A few minor citation issues are worth addressing."
	case score >= 60:
		return "Fair originality. Several issues need attention."
	case score >= 40:
		return "Poor originality. Significant concerns were found and major revisions are needed."
	default:
		return "Very poor originality. The document requires complete revision."
	}
}
