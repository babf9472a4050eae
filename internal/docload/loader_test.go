package docload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadDocument_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "essay.txt", "The cat sat on the mat.")

	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != "The cat sat on the mat." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestLoadDocument_UnknownExtensionReadAsRaw(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.rst", "Raw content in an unfamiliar format.")

	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != "Raw content in an unfamiliar format." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestLoadDocument_Missing(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDocument_JSONSections(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "paper.json", `{
		"sections": [
			{"content": "Introduction paragraph."},
			{"content": ""},
			{"content": "Conclusion paragraph."}
		]
	}`)

	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != "Introduction paragraph.\n\nConclusion paragraph.\n\n" {
		t.Errorf("unexpected section concatenation: %q", text)
	}
}

func TestLoadDocument_JSONContentField(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "paper.json", `{"content": "A single body of text."}`)

	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != "A single body of text." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestLoadDocument_InvalidJSONFallsBackToRaw(t *testing.T) {
	dir := t.TempDir()
	raw := "this is not json at all"
	path := writeFile(t, dir, "broken.json", raw)

	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != raw {
		t.Errorf("expected raw fallback, got %q", text)
	}
}

func TestLoadDocument_JSONWithoutKnownFields(t *testing.T) {
	dir := t.TempDir()
	raw := `{"title": "untitled", "pages": 3}`
	path := writeFile(t, dir, "meta.json", raw)

	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != raw {
		t.Errorf("expected raw fallback when no content fields, got %q", text)
	}
}

func TestLoadDocument_HTML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.html", `<html><head>
		<style>body { color: red; }</style>
		<script>alert("hi");</script>
	</head><body><p>Visible paragraph.</p><p>Another line.</p></body></html>`)

	text, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(text, "Visible paragraph.") || !strings.Contains(text, "Another line.") {
		t.Errorf("expected visible text extracted, got %q", text)
	}
	if strings.Contains(text, "alert") || strings.Contains(text, "color") {
		t.Errorf("expected script and style content skipped, got %q", text)
	}
}

func TestLoadReferences_SkipsUnreadableAndBlank(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "ref1.txt", "A usable reference text.")
	blank := writeFile(t, dir, "ref2.txt", "   \n\t")
	missing := filepath.Join(dir, "absent.txt")

	refs := LoadReferences([]string{good, blank, missing})

	if len(refs) != 1 {
		t.Fatalf("expected 1 usable reference, got %d", len(refs))
	}
	if refs[0] != "A usable reference text." {
		t.Errorf("unexpected reference text: %q", refs[0])
	}
}

func TestLoadReferences_Empty(t *testing.T) {
	if refs := LoadReferences(nil); len(refs) != 0 {
		t.Errorf("expected no references, got %d", len(refs))
	}
}
