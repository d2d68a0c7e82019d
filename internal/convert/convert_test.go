package convert

import (
	"errors"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		expected TypeTag
	}{
		{"paper.pdf", TypePDF},
		{"paper.PDF", TypePDF},
		{"thesis.docx", TypeDOCX},
		{"thesis.DocX", TypeDOCX},
		{"notes.txt", TypeUnknown},
		{"archive.doc", TypeUnknown},
		{"noextension", TypeUnknown},
		{"dir.pdf/actually-a-dir", TypeUnknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.expected {
			t.Errorf("Detect(%q) = %q, expected %q", tt.filename, got, tt.expected)
		}
	}
}

func TestTextUnsupportedTag(t *testing.T) {
	_, err := Text(strings.NewReader("plain text"), TypeUnknown)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}

	_, err = Text(strings.NewReader("plain text"), TypeTag("rtf"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType for unknown tag, got %v", err)
	}
}

func TestTextDegradesOnGarbage(t *testing.T) {
	// Malformed containers must never surface an error, only empty text.
	for _, tag := range []TypeTag{TypePDF, TypeDOCX} {
		text, err := Text(strings.NewReader("this is not a real document"), tag)
		if err != nil {
			t.Errorf("Text(garbage, %q) returned error %v, expected nil", tag, err)
		}
		if text != "" {
			t.Errorf("Text(garbage, %q) = %q, expected empty", tag, text)
		}
	}
}

func TestPDFPlainTextGarbage(t *testing.T) {
	if got := pdfPlainText([]byte("%PDF-1.4 truncated nonsense")); got != "" {
		t.Errorf("pdfPlainText(garbage) = %q, expected empty", got)
	}
}
