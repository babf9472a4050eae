// Package docload materializes document text for the engine: plain text,
// structured JSON documents, HTML pages, and PDFs all reduce to a single
// string before analysis.
package docload

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// structuredDocument is the JSON document shape: either a list of
// sections with content, or a single content field.
type structuredDocument struct {
	Content  string `json:"content"`
	Sections []struct {
		Content string `json:"content"`
	} `json:"sections"`
}

// LoadDocument reads a document file and returns its text. The format is
// chosen by extension; unknown extensions are read as raw text.
func LoadDocument(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return loadPDF(path)
	case ".html", ".htm":
		return loadHTML(path)
	case ".json":
		return loadJSON(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read document: %w", err)
		}
		return string(data), nil
	}
}

// LoadReferences loads reference source files, silently skipping any that
// cannot be read or parsed. A shorter list just means fewer comparisons.
func LoadReferences(paths []string) []string {
	var refs []string
	for _, p := range paths {
		text, err := LoadDocument(p)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		refs = append(refs, text)
	}
	return refs
}

// loadJSON parses a structured document, falling back to the raw bytes
// when the file is not valid JSON or carries no recognized fields.
func loadJSON(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	var doc structuredDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return string(data), nil
	}

	if len(doc.Sections) > 0 {
		var b strings.Builder
		for _, section := range doc.Sections {
			if section.Content == "" {
				continue
			}
			b.WriteString(section.Content)
			b.WriteString("\n\n")
		}
		if b.Len() > 0 {
			return b.String(), nil
		}
	}

	if doc.Content != "" {
		return doc.Content, nil
	}

	return string(data), nil
}

// loadHTML extracts the visible text of an HTML file, skipping script and
// style subtrees.
func loadHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := html.Parse(f)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return b.String(), nil
}

// loadPDF extracts plain text page by page, skipping pages that fail
func loadPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return b.String(), nil
}
