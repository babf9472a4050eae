package detect

import (
	"github.com/citeguard/citeguard/internal/model"
	"github.com/citeguard/citeguard/internal/similarity"
)

const (
	selfParaphraseSuggestion = "Rephrase or merge near-duplicate sentences, or cite the shared source once."
	refParaphraseSuggestion  = "This closely matches a reference source; quote it with a citation or rewrite it in your own words."
)

// ParaphraseDetector finds near-duplicate sentences via n-gram Jaccard
// similarity, either within the document or against reference sources.
type ParaphraseDetector struct {
	tok Tokenizer
	cfg model.AnalysisConfig
}

// NewParaphraseDetector creates a new close paraphrase detector
func NewParaphraseDetector(tok Tokenizer, cfg model.AnalysisConfig) *ParaphraseDetector {
	return &ParaphraseDetector{tok: tok, cfg: cfg}
}

// Detect compares against references when any are supplied, otherwise
// compares the document's sentences with each other.
func (d *ParaphraseDetector) Detect(doc Document) []model.PlagiarismIssue {
	if len(doc.References) > 0 {
		return d.compareAgainstReferences(doc)
	}
	return d.compareWithin(doc)
}

// compareWithin checks every unordered pair among the first
// cfg.SelfCompareCap sentences. The cap bounds the otherwise quadratic
// scan on large documents.
func (d *ParaphraseDetector) compareWithin(doc Document) []model.PlagiarismIssue {
	sentences := doc.Sentences
	if len(sentences) > d.cfg.SelfCompareCap {
		sentences = sentences[:d.cfg.SelfCompareCap]
	}

	grams := make([]map[string]struct{}, len(sentences))
	for i, s := range sentences {
		grams[i] = similarity.NGrams(d.tok.Words(s), d.cfg.SelfCompareNGram)
	}

	var issues []model.PlagiarismIssue
	for i := 0; i < len(sentences); i++ {
		for j := i + 1; j < len(sentences); j++ {
			sim := similarity.Jaccard(grams[i], grams[j])
			if sim <= d.cfg.SelfSimThreshold {
				continue
			}
			issues = append(issues, model.PlagiarismIssue{
				Type:       model.IssueCloseParaphrase,
				Severity:   model.SeverityMedium,
				Text:       sentences[i],
				Context:    sentences[j],
				Suggestion: selfParaphraseSuggestion,
				Confidence: sim,
			})
		}
	}

	return issues
}

// compareAgainstReferences checks every document sentence against every
// sentence of every reference source. Bounding the reference corpus is
// the caller's responsibility.
func (d *ParaphraseDetector) compareAgainstReferences(doc Document) []model.PlagiarismIssue {
	refGrams := make([][]map[string]struct{}, len(doc.References))
	for r, ref := range doc.References {
		refGrams[r] = make([]map[string]struct{}, len(ref))
		for i, s := range ref {
			refGrams[r][i] = similarity.NGrams(d.tok.Words(s), d.cfg.RefCompareNGram)
		}
	}

	var issues []model.PlagiarismIssue
	for _, docSentence := range doc.Sentences {
		docGram := similarity.NGrams(d.tok.Words(docSentence), d.cfg.RefCompareNGram)

		for r, ref := range doc.References {
			for i, refSentence := range ref {
				sim := similarity.Jaccard(docGram, refGrams[r][i])
				if sim <= d.cfg.RefSimThreshold {
					continue
				}

				severity := model.SeverityMedium
				if sim > d.cfg.RefHighSimCutover {
					severity = model.SeverityHigh
				}

				issues = append(issues, model.PlagiarismIssue{
					Type:       model.IssueCloseParaphrase,
					Severity:   severity,
					Text:       docSentence,
					Context:    refSentence,
					Suggestion: refParaphraseSuggestion,
					Confidence: sim,
				})
			}
		}
	}

	return issues
}
