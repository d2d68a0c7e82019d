// Package extractor locates bibliographic metadata (authors, abstract,
// keywords) in the raw text of academic papers using line-oriented
// heuristics. It assumes nothing about the text beyond line breaks and
// tolerates the usual extraction noise from binary document formats.
package extractor

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/papermeta/papermeta/internal/convert"
)

// Extractor assembles one Record per document. Safe for concurrent use:
// extraction is a pure function of the input text and the options.
type Extractor struct {
	opts Options
}

// New creates an Extractor. Zero or negative option values fall back to
// the defaults.
func New(opts Options) *Extractor {
	def := DefaultOptions()
	if opts.FrontMatterLines <= 0 {
		opts.FrontMatterLines = def.FrontMatterLines
	}
	if opts.AuthorCandidates <= 0 {
		opts.AuthorCandidates = def.AuthorCandidates
	}
	if opts.MinPDFTextRunes <= 0 {
		opts.MinPDFTextRunes = def.MinPDFTextRunes
	}
	return &Extractor{opts: opts}
}

// ExtractFromText runs the three field extractors over already-converted
// plain text and assembles the record.
//
// An unsupported type tag bypasses the extractors entirely and yields a
// record with empty fields and an explanatory note. PDF-origin text whose
// non-whitespace content is implausibly small gets a scanned-PDF note.
func (e *Extractor) ExtractFromText(filename, text string, tag convert.TypeTag) *Record {
	rec := &Record{Filename: filename}

	if tag != convert.TypePDF && tag != convert.TypeDOCX {
		rec.Notes = NoteUnsupportedType
		return rec
	}

	rec.Authors = findAuthors(text, e.opts)
	rec.Abstract = FindAbstract(text)
	rec.Keywords = FindKeywords(text)

	if tag == convert.TypePDF && nonWhitespaceRunes(text) < e.opts.MinPDFTextRunes {
		rec.Notes = NoteLowTextYield
	}

	return rec
}

// ExtractFromFile opens path, converts it to plain text, and assembles
// the record. The only error condition is an unreadable file; conversion
// failures degrade to an empty record per the convert package contract.
func (e *Extractor) ExtractFromFile(path string) (*Result, error) {
	start := time.Now()
	tag := convert.Detect(path)

	var text string
	if tag != convert.TypeUnknown {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		text, _ = convert.Text(f, tag)
		f.Close()
	}

	return &Result{
		Record:      *e.ExtractFromText(path, text, tag),
		SourceType:  tag,
		TextChars:   utf8.RuneCountInString(text),
		ProcessTime: time.Since(start),
	}, nil
}

// nonWhitespaceRunes counts the runes left after stripping all whitespace.
func nonWhitespaceRunes(text string) int {
	return utf8.RuneCountInString(whitespacePat.ReplaceAllString(text, ""))
}
