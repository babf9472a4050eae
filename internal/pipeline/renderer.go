package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/citeguard/citeguard/internal/model"
	"github.com/citeguard/citeguard/internal/score"
)

// Renderer writes reports as JSON, Markdown, and terminal summaries
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.PlagiarismReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable Markdown report
func (r *Renderer) RenderMarkdown(result *Result, path string) error {
	report := result.Report

	var b strings.Builder
	fmt.Fprintf(&b, "# Originality Report: %s\n\n", result.Subject)
	fmt.Fprintf(&b, "**Score:** %d/100 (%s risk)\n\n", report.OriginalityScore, report.Statistics.OverallRisk)
	fmt.Fprintf(&b, "%s\n\n", score.Recommendation(report.OriginalityScore))

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Total sentences | %d |\n", report.Statistics.TotalSentences)
	fmt.Fprintf(&b, "| Suspicious sentences | %d |\n", report.Statistics.SuspiciousSentences)
	fmt.Fprintf(&b, "| Uncited quotes | %d |\n", report.Statistics.UncitedQuotes)
	fmt.Fprintf(&b, "| Missing citations | %d |\n", report.Statistics.MissingCitations)
	fmt.Fprintf(&b, "| Overall risk | %s |\n\n", report.Statistics.OverallRisk)

	if len(report.Issues) > 0 {
		fmt.Fprintf(&b, "## Issues (%d)\n\n", len(report.Issues))
		for i, issue := range report.Issues {
			fmt.Fprintf(&b, "### %d. %s (%s, confidence %.2f)\n\n", i+1, issueTitle(issue.Type), issue.Severity, issue.Confidence)
			fmt.Fprintf(&b, "> %s\n\n", issue.Text)
			if issue.Context != "" && issue.Context != issue.Text {
				fmt.Fprintf(&b, "Context: %s\n\n", issue.Context)
			}
			fmt.Fprintf(&b, "Suggestion: %s\n\n", issue.Suggestion)
		}
	} else {
		b.WriteString("## Issues\n\nNo issues detected.\n\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by citeguard. Scores reflect detected citation and similarity signals, not a judgment of intent.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a short summary to stdout
func (r *Renderer) RenderSummary(result *Result) {
	report := result.Report
	stats := report.Statistics

	fmt.Printf("\n%s\n", result.Subject)
	fmt.Printf("  Originality score:  %d/100\n", report.OriginalityScore)
	fmt.Printf("  Overall risk:       %s\n", stats.OverallRisk)
	fmt.Printf("  Sentences:          %d total, %d suspicious\n", stats.TotalSentences, stats.SuspiciousSentences)
	fmt.Printf("  Uncited quotes:     %d\n", stats.UncitedQuotes)
	fmt.Printf("  Missing citations:  %d\n", stats.MissingCitations)
	fmt.Printf("  Issues:             %d\n", len(report.Issues))
	fmt.Printf("\n  %s\n\n", score.Recommendation(report.OriginalityScore))
}

// issueTitle maps an issue type to its report heading
func issueTitle(t model.IssueType) string {
	switch t {
	case model.IssueUncitedQuote:
		return "Uncited quote"
	case model.IssueMissingCitation:
		return "Missing citation"
	case model.IssueCloseParaphrase:
		return "Close paraphrase"
	case model.IssueSuspiciousSimilarity:
		return "Suspicious similarity"
	default:
		return string(t)
	}
}
