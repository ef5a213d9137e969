package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// buildDocx assembles a minimal DOCX archive with the given paragraphs.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r><w:t>`)
		doc.WriteString(p)
		doc.WriteString(`</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(doc.String())); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractor_TxtPassthrough(t *testing.T) {
	text, err := NewExtractor().Text("resume.txt", []byte("Jane Doe\njane@example.com"))
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if text != "Jane Doe\njane@example.com" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractor_Docx(t *testing.T) {
	data := buildDocx(t, "Jane Doe", "Senior Backend Engineer", "Skills: Go, Postgres")

	text, err := NewExtractor().Text("resume.docx", data)
	if err != nil {
		t.Fatalf("text: %v", err)
	}

	for _, want := range []string{"Jane Doe", "Senior Backend Engineer", "Skills: Go, Postgres"} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in extracted text: %q", want, text)
		}
	}
	// Paragraphs become lines.
	if lines := strings.Split(strings.TrimSpace(text), "\n"); len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), text)
	}
}

func TestExtractor_DocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("word/styles.xml"); err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if _, err := NewExtractor().Text("resume.docx", buf.Bytes()); err == nil {
		t.Fatalf("expected error for docx without document.xml")
	}
}

func TestExtractor_UnsupportedExtension(t *testing.T) {
	_, err := NewExtractor().Text("resume.odt", []byte("x"))
	if !errors.Is(err, domain.ErrUnsupportedDocument) {
		t.Fatalf("expected ErrUnsupportedDocument, got %v", err)
	}
}

func TestExtractor_ExtensionIsCaseInsensitive(t *testing.T) {
	text, err := NewExtractor().Text("RESUME.TXT", []byte("hello"))
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if text != "hello" {
		t.Fatalf("unexpected text: %q", text)
	}
}
