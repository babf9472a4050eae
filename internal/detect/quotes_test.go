package detect

import (
	"testing"

	"github.com/citeguard/citeguard/internal/model"
	"github.com/citeguard/citeguard/internal/tokenize"
)

func docFor(text string) Document {
	tok := tokenize.New()
	return Document{
		Text:      text,
		Sentences: tok.Sentences(text),
	}
}

func TestQuoteDetector_UncitedQuote(t *testing.T) {
	d := NewQuoteDetector()

	text := `He said, "Information wants to be free and open for everyone to access." This is undeniable.`
	issues := d.Detect(docFor(text))

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	issue := issues[0]
	if issue.Type != model.IssueUncitedQuote {
		t.Errorf("expected type %s, got %s", model.IssueUncitedQuote, issue.Type)
	}
	if issue.Severity != model.SeverityHigh {
		t.Errorf("expected High severity, got %s", issue.Severity)
	}
	if issue.Confidence != 0.85 {
		t.Errorf("expected confidence 0.85, got %f", issue.Confidence)
	}
	if issue.Text != "Information wants to be free and open for everyone to access." {
		t.Errorf("unexpected flagged text: %q", issue.Text)
	}
	if issue.Suggestion == "" {
		t.Error("expected a suggestion")
	}
}

func TestQuoteDetector_CitedQuoteSuppressed(t *testing.T) {
	d := NewQuoteDetector()

	tests := []struct {
		name string
		text string
	}{
		{
			"author-year citation",
			`He said, "Information wants to be free and open for everyone to access." (Brand, 1984) Indeed.`,
		},
		{
			"numbered citation",
			`He said, "Information wants to be free and open for everyone to access." [3] Indeed.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if issues := d.Detect(docFor(tt.text)); len(issues) != 0 {
				t.Errorf("expected no issues for cited quote, got %d", len(issues))
			}
		})
	}
}

func TestQuoteDetector_ShortQuoteIgnored(t *testing.T) {
	d := NewQuoteDetector()

	// 20-30 characters of quoted content is scanned but not reported
	text := `They wrote "a fairly short quote here" with no citation following it at all.`
	if issues := d.Detect(docFor(text)); len(issues) != 0 {
		t.Errorf("expected no issues for short quote, got %d", len(issues))
	}

	// Below 20 characters the span is not even a candidate
	text = `They wrote "tiny quote" with no citation.`
	if issues := d.Detect(docFor(text)); len(issues) != 0 {
		t.Errorf("expected no issues for tiny quote, got %d", len(issues))
	}
}

func TestQuoteDetector_TypographicQuotes(t *testing.T) {
	d := NewQuoteDetector()

	text := `She argued, “Every measurement disturbs the system being measured somehow.” No source given.`
	issues := d.Detect(docFor(text))

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue for curly-quoted span, got %d", len(issues))
	}
}

func TestQuoteDetector_CitationBeyondLookahead(t *testing.T) {
	d := NewQuoteDetector()

	// The citation sits more than 50 characters past the closing quote,
	// so it does not count
	text := `He said, "Information wants to be free and open for everyone to access." and much later in the passage someone added (Brand, 1984).`
	issues := d.Detect(docFor(text))

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue when citation is out of range, got %d", len(issues))
	}
}

func TestQuoteDetector_EmptyText(t *testing.T) {
	d := NewQuoteDetector()

	if issues := d.Detect(docFor("")); len(issues) != 0 {
		t.Errorf("expected no issues for empty text, got %d", len(issues))
	}
}
