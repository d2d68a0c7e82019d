package extractor

import "strings"

// scanState drives the accumulate-until-boundary scans shared by the
// abstract and keyword extractors.
type scanState int

const (
	seekingHeader scanState = iota
	accumulating
	scanDone
)

// boundary reports whether line terminates an accumulation scan: a blank
// line or a recognized next-section heading.
func boundary(line string) bool {
	return strings.TrimSpace(line) == "" || nextSectionPat.MatchString(line)
}

// FindAbstract locates the abstract in raw document text.
//
// The scan stops at the first line matching the inline or bare abstract
// header; later "Abstract" occurrences (a table of contents, say) are
// ignored. Lines are accumulated until a boundary, joined with single
// spaces, and truncated at any keywords marker glued onto the paragraph.
// No header found means an empty result, not an error.
func FindAbstract(text string) string {
	lines := strings.Split(text, "\n")
	var buf []string

	state := seekingHeader
	for i := 0; i < len(lines) && state != scanDone; i++ {
		line := lines[i]

		switch state {
		case seekingHeader:
			if m := abstractInlinePat.FindStringSubmatch(line); m != nil {
				buf = append(buf, CleanLine(m[1]))
				state = accumulating
				continue
			}
			if abstractHeadPat.MatchString(line) {
				state = accumulating
			}
		case accumulating:
			if boundary(line) {
				state = scanDone
				continue
			}
			buf = append(buf, CleanLine(line))
		}
	}

	abstract := strings.TrimSpace(strings.Join(buf, " "))
	if loc := trailingKeywordsPat.FindStringIndex(abstract); loc != nil {
		abstract = strings.TrimSpace(abstract[:loc[0]])
	}

	return abstract
}
