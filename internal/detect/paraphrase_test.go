package detect

import (
	"fmt"
	"testing"

	"github.com/citeguard/citeguard/internal/model"
	"github.com/citeguard/citeguard/internal/tokenize"
)

func newParaphraseDetector() *ParaphraseDetector {
	return NewParaphraseDetector(tokenize.New(), model.DefaultConfig().Analysis)
}

func refDoc(text string, refs ...string) Document {
	tok := tokenize.New()
	doc := Document{
		Text:      text,
		Sentences: tok.Sentences(text),
	}
	for _, ref := range refs {
		doc.References = append(doc.References, tok.Sentences(ref))
	}
	return doc
}

func TestParaphraseDetector_SelfMode_Duplicates(t *testing.T) {
	d := newParaphraseDetector()

	text := "The quick brown fox jumps over the lazy dog today. " +
		"Meanwhile something completely different happened elsewhere. " +
		"The quick brown fox jumps over the lazy dog today."
	issues := d.Detect(refDoc(text))

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	issue := issues[0]
	if issue.Type != model.IssueCloseParaphrase {
		t.Errorf("expected type %s, got %s", model.IssueCloseParaphrase, issue.Type)
	}
	if issue.Severity != model.SeverityMedium {
		t.Errorf("expected Medium severity in self mode, got %s", issue.Severity)
	}
	if issue.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0 for identical sentences, got %f", issue.Confidence)
	}
	if issue.Context != issue.Text {
		t.Errorf("expected the matching sentence as context")
	}
}

func TestParaphraseDetector_SelfMode_NoNearDuplicates(t *testing.T) {
	d := newParaphraseDetector()

	text := "The quick brown fox jumps over the lazy dog. " +
		"Completely unrelated matters were discussed at length yesterday."
	if issues := d.Detect(refDoc(text)); len(issues) != 0 {
		t.Errorf("expected no issues for dissimilar sentences, got %d", len(issues))
	}
}

func TestParaphraseDetector_SelfMode_CapsAtFiftySentences(t *testing.T) {
	d := newParaphraseDetector()

	// The duplicate pair sits past the 50-sentence cap, so it is never compared
	text := ""
	for i := 0; i < 50; i++ {
		text += fmt.Sprintf("Unique filler sentence number %d with assorted extra words. ", i)
	}
	dup := "The quick brown fox jumps over the lazy dog today."
	text += dup + " " + dup

	if issues := d.Detect(refDoc(text)); len(issues) != 0 {
		t.Errorf("expected cap to exclude duplicates beyond 50 sentences, got %d issues", len(issues))
	}
}

func TestParaphraseDetector_ReferenceMode_ExactMatch(t *testing.T) {
	d := newParaphraseDetector()

	sentence := "The mitochondria is the powerhouse of the cell."
	issues := d.Detect(refDoc(sentence, sentence))

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	issue := issues[0]
	if issue.Severity != model.SeverityHigh {
		t.Errorf("expected High severity for exact reference match, got %s", issue.Severity)
	}
	if issue.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %f", issue.Confidence)
	}
	if issue.Text != sentence {
		t.Errorf("expected document sentence as text, got %q", issue.Text)
	}
}

func TestParaphraseDetector_ReferenceMode_DisablesSelfComparison(t *testing.T) {
	d := newParaphraseDetector()

	// Internal duplicates are ignored once references are supplied
	dup := "The quick brown fox jumps over the lazy dog today."
	text := dup + " " + dup
	issues := d.Detect(refDoc(text, "An entirely unrelated reference text about gardening habits."))

	if len(issues) != 0 {
		t.Errorf("expected no issues in reference mode, got %d", len(issues))
	}
}

func TestParaphraseDetector_ReferenceMode_MediumBand(t *testing.T) {
	d := newParaphraseDetector()

	// 4-grams: doc has 5, ref has 5, sharing 4 → similarity 4/6 ≈ 0.67,
	// above the 0.5 threshold but below the 0.7 High cutover
	doc := "alpha beta gamma delta epsilon zeta eta theta."
	ref := "alpha beta gamma delta epsilon zeta eta omega."
	issues := d.Detect(refDoc(doc, ref))

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Severity != model.SeverityMedium {
		t.Errorf("expected Medium severity, got %s", issues[0].Severity)
	}
}

func TestParaphraseDetector_EmptyDocument(t *testing.T) {
	d := newParaphraseDetector()

	if issues := d.Detect(refDoc("")); len(issues) != 0 {
		t.Errorf("expected no issues for empty document, got %d", len(issues))
	}
	if issues := d.Detect(refDoc("", "Some reference material sits here unused.")); len(issues) != 0 {
		t.Errorf("expected no issues for empty document with references, got %d", len(issues))
	}
}
