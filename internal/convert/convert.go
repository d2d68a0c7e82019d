// Package convert is the text-extraction boundary: it turns PDF and DOCX
// byte streams into plain text for the metadata extractor. Conversion
// failures degrade to an empty string rather than propagating, since the
// caller has no recovery path for a malformed container.
package convert

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv/v2"
	"github.com/ledongthuc/pdf"
)

// TypeTag identifies the declared document type of an input file.
type TypeTag string

const (
	TypePDF     TypeTag = "pdf"
	TypeDOCX    TypeTag = "docx"
	TypeUnknown TypeTag = ""
)

// ErrUnsupportedType is returned by Text for type tags the converter
// cannot handle. It is the only error Text returns.
var ErrUnsupportedType = errors.New("unsupported file type")

// mimeByTag maps supported type tags to the MIME types docconv expects.
var mimeByTag = map[TypeTag]string{
	TypePDF:  "application/pdf",
	TypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Detect returns the type tag implied by the filename extension,
// case-insensitively, or TypeUnknown.
func Detect(filename string) TypeTag {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "pdf":
		return TypePDF
	case "docx":
		return TypeDOCX
	default:
		return TypeUnknown
	}
}

// Text converts the document in r to plain text according to tag.
//
// An unsupported tag yields ErrUnsupportedType. For supported tags Text
// never fails: any conversion error yields ("", nil), so downstream
// extraction simply finds nothing.
func Text(r io.Reader, tag TypeTag) (string, error) {
	mime, ok := mimeByTag[tag]
	if !ok {
		return "", ErrUnsupportedType
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil
	}

	res, err := docconv.Convert(bytes.NewReader(data), mime, true)
	if err == nil && strings.TrimSpace(res.Body) != "" {
		return res.Body, nil
	}

	// docconv's PDF path shells out to pdftotext, which may be missing or
	// choke on the file. Fall back to a pure-Go extraction before giving up.
	if tag == TypePDF {
		if text := pdfPlainText(data); text != "" {
			return text, nil
		}
	}

	return "", nil
}

// pdfPlainText extracts text from a PDF with github.com/ledongthuc/pdf.
// Returns "" on any failure.
func pdfPlainText(data []byte) string {
	defer func() {
		// The pdf package panics on some malformed files.
		_ = recover()
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	body, err := reader.GetPlainText()
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return ""
	}

	return buf.String()
}
