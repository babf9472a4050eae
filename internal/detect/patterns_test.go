package detect

import (
	"testing"

	"github.com/citeguard/citeguard/internal/model"
	"github.com/citeguard/citeguard/internal/tokenize"
)

func newPatternDetector() *PatternDetector {
	return NewPatternDetector(tokenize.New())
}

func TestPatternDetector_SophisticatedVocabulary(t *testing.T) {
	d := newPatternDetector()

	// 6 of 13 words exceed 12 characters
	text := "The incomprehensibility and multidimensionality of phenomenological interconnectedness overwhelms straightforward readers and casual interpretations."
	issues := d.Detect(docFor(text))

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	issue := issues[0]
	if issue.Type != model.IssueSuspiciousSimilarity {
		t.Errorf("expected type %s, got %s", model.IssueSuspiciousSimilarity, issue.Type)
	}
	if issue.Severity != model.SeverityLow {
		t.Errorf("expected Low severity, got %s", issue.Severity)
	}
	if issue.Confidence <= 0.3 || issue.Confidence > 1 {
		t.Errorf("expected confidence in (0.3, 1], got %f", issue.Confidence)
	}
}

func TestPatternDetector_ShortSentenceNotFlagged(t *testing.T) {
	d := newPatternDetector()

	// High long-word ratio but at most 10 words
	text := "Phenomenological interconnectedness overwhelms straightforward interpretations."
	if issues := d.Detect(docFor(text)); len(issues) != 0 {
		t.Errorf("expected no issues for short sentence, got %d", len(issues))
	}
}

func TestPatternDetector_PlainVocabularyNotFlagged(t *testing.T) {
	d := newPatternDetector()

	text := "The cat sat on the mat while the dog slept near the warm fire all day."
	if issues := d.Detect(docFor(text)); len(issues) != 0 {
		t.Errorf("expected no issues for plain vocabulary, got %d", len(issues))
	}
}

func TestPatternDetector_ListSeriesWithoutCitation(t *testing.T) {
	d := newPatternDetector()

	text := "First, the method reduces latency. Second, it lowers memory usage."
	issues := d.Detect(docFor(text))

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	issue := issues[0]
	if issue.Type != model.IssueMissingCitation {
		t.Errorf("expected type %s, got %s", model.IssueMissingCitation, issue.Type)
	}
	if issue.Severity != model.SeverityMedium {
		t.Errorf("expected Medium severity, got %s", issue.Severity)
	}
	if issue.Confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %f", issue.Confidence)
	}
	if issue.Context != "Second, it lowers memory usage." {
		t.Errorf("expected continuation sentence as context, got %q", issue.Context)
	}
}

func TestPatternDetector_ListSeriesWithCitation(t *testing.T) {
	d := newPatternDetector()

	text := "First, the method reduces latency (Lee, 2019). Second, it lowers memory usage."
	if issues := d.Detect(docFor(text)); len(issues) != 0 {
		t.Errorf("expected no issues when the series is cited, got %d", len(issues))
	}
}

func TestPatternDetector_OrdinalWithoutContinuation(t *testing.T) {
	d := newPatternDetector()

	text := "First, the method reduces latency. The weather was also pleasant."
	if issues := d.Detect(docFor(text)); len(issues) != 0 {
		t.Errorf("expected no issues without a continuation sentence, got %d", len(issues))
	}
}

func TestPatternDetector_NumericEnumerators(t *testing.T) {
	d := newPatternDetector()

	text := "1. The approach is fast. Furthermore, it is simple to deploy."
	issues := d.Detect(docFor(text))

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue for numeric enumerator series, got %d", len(issues))
	}
}
