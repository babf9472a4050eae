package model

// RiskLevel is the coarse document-level risk tier
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Statistics summarizes the analysis over the whole document
type Statistics struct {
	TotalSentences      int       `json:"totalSentences"`      // Sentences seen by the tokenizer
	SuspiciousSentences int       `json:"suspiciousSentences"` // Distinct flagged sentence texts
	UncitedQuotes       int       `json:"uncitedQuotes"`       // Count of uncited quote issues
	MissingCitations    int       `json:"missingCitations"`    // Count of missing citation issues
	OverallRisk         RiskLevel `json:"overallRisk"`         // Derived from High-severity issue count
}

// PlagiarismReport is the complete result of one analysis run.
// Reports are created fresh per call and never mutated after return;
// the JSON shape is the contract with consuming layers.
type PlagiarismReport struct {
	OriginalityScore int               `json:"originalityScore"` // 0-100, 100 = no detected issues
	Issues           []PlagiarismIssue `json:"issues"`           // Deduplicated, severity then confidence descending
	Statistics       Statistics        `json:"statistics"`
}
