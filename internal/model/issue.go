package model

import (
	"fmt"
	"strings"
)

// IssueType categorizes the kind of integrity risk detected
type IssueType string

const (
	IssueUncitedQuote         IssueType = "uncited_quote"         // Quoted span without an inline citation
	IssueMissingCitation      IssueType = "missing_citation"      // Factual claim without supporting reference
	IssueCloseParaphrase      IssueType = "close_paraphrase"      // Near-duplicate of another sentence or source
	IssueSuspiciousSimilarity IssueType = "suspicious_similarity" // Stylistic anomaly suggesting borrowed text
)

// Severity is the qualitative risk tier assigned to an issue
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank returns the numeric ordering of a severity (High=3, Medium=2, Low=1)
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// ParseSeverity converts a user-supplied severity name
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return SeverityHigh, nil
	case "medium":
		return SeverityMedium, nil
	case "low":
		return SeverityLow, nil
	default:
		return "", fmt.Errorf("unknown severity %q (want high, medium or low)", s)
	}
}

// FilterBySeverity keeps issues at or above the given severity
func FilterBySeverity(issues []PlagiarismIssue, min Severity) []PlagiarismIssue {
	filtered := make([]PlagiarismIssue, 0, len(issues))
	for _, issue := range issues {
		if issue.Severity.Rank() >= min.Rank() {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// PlagiarismIssue represents a single flagged integrity risk
type PlagiarismIssue struct {
	Type       IssueType `json:"type"`       // Issue classification
	Severity   Severity  `json:"severity"`   // Risk tier
	Text       string    `json:"text"`       // The flagged snippet (source text)
	Context    string    `json:"context"`    // Surrounding text or compared counterpart
	Suggestion string    `json:"suggestion"` // Fixed advisory per detection rule
	Confidence float64   `json:"confidence"` // Certainty in [0,1]
}
