package extractor

import (
	"time"

	"github.com/papermeta/papermeta/internal/convert"
)

// Record is the metadata extracted from one document. Field order matches
// the export column contract: filename, authors, abstract, keywords, notes.
type Record struct {
	Filename string `json:"filename"`
	Authors  string `json:"authors"`
	Abstract string `json:"abstract"`
	Keywords string `json:"keywords"`
	Notes    string `json:"notes"`
}

// Result wraps a Record with per-file processing statistics for human and
// JSON display.
type Result struct {
	Record      Record          `json:"record"`
	SourceType  convert.TypeTag `json:"source_type"`
	TextChars   int             `json:"text_chars"`
	ProcessTime time.Duration   `json:"process_time"`
}

// Options configures the extraction heuristics.
type Options struct {
	// FrontMatterLines bounds the author scan to the top of the document.
	FrontMatterLines int `json:"front_matter_lines"`

	// AuthorCandidates is how many surviving filtered lines are examined
	// for personal-name patterns.
	AuthorCandidates int `json:"author_candidates"`

	// MinPDFTextRunes is the low-yield threshold: PDF text with fewer
	// non-whitespace runes than this gets a scanned-PDF note.
	MinPDFTextRunes int `json:"min_pdf_text_runes"`
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{
		FrontMatterLines: 40,
		AuthorCandidates: 8,
		MinPDFTextRunes:  200,
	}
}

// Diagnostic notes attached to records by the assembler.
const (
	NoteUnsupportedType = "Unsupported file type"
	NoteLowTextYield    = "Possible scanned/non-searchable PDF."
)
