package extractor

import (
	"regexp"
	"strings"
)

// Line recognizers for conventional "Title / Authors / Affiliations /
// Abstract / Keywords" front matter. Compiled once at startup and shared
// by all extraction tasks; none of them hold state.
var (
	// A line that is the word "abstract" and nothing else, optionally
	// followed by a colon or dash variant.
	abstractHeadPat = regexp.MustCompile(`(?i)^\s*abstract\b[:\-–—]?\s*$`)

	// "Abstract: text..." with content on the same line; the remainder is
	// captured as the first content fragment.
	abstractInlinePat = regexp.MustCompile(`(?i)^\s*abstract\b[:\-–—]?\s*(.+)$`)

	// "Keywords:" / "Index Terms:" header, remainder captured (may be empty).
	keywordsPat = regexp.MustCompile(`(?i)^\s*(keywords?|index\s*terms?)\b\s*[:\-–—]?\s*(.*)$`)

	// Start of the section following the abstract/keyword block. Terminates
	// accumulation scans.
	nextSectionPat = regexp.MustCompile(`(?i)^\s*(keywords?|index\s*terms?|introduction|background|1[.\s]|I[.\s])\b`)

	// user@domain.tld anywhere in a line marks it as contact/affiliation noise.
	emailPat = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)

	// "Firstname [M.] Lastname [Lastname...]" shapes. Case-sensitive on
	// purpose: capitalization is the signal.
	namePat = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z]\.)?(?:\s+[A-Z][a-z]+)+)\b`)

	// Institutional affiliation vocabulary used by the author filter.
	affiliationPat = regexp.MustCompile(`(?i)\b(university|department|dept\.?|institute|laborator|school|college|center|centre)\b`)

	// Keywords marker glued onto the end of an abstract paragraph, e.g.
	// "... our method. Keywords: graphs". Matched against the joined buffer.
	trailingKeywordsPat = regexp.MustCompile(`(?i)\b(keywords?|index\s*terms?)\b[:\-–—]?`)

	whitespacePat = regexp.MustCompile(`\s+`)
)

// CleanLine collapses every whitespace run in s into a single space and
// trims the result. Whitespace-only input yields "".
func CleanLine(s string) string {
	return strings.TrimSpace(whitespacePat.ReplaceAllString(s, " "))
}
