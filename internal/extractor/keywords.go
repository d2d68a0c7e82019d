package extractor

import "strings"

// FindKeywords locates the keyword list in raw document text and returns
// it as a normalized comma-separated string.
//
// The first line matching the keywords/index-terms header seeds the scan
// with its inline remainder; accumulation then follows the same stop rule
// as the abstract scan. The joined buffer is split on semicolons and
// commas, each term is stripped of surrounding whitespace, periods and
// semicolons, and empty terms are dropped.
func FindKeywords(text string) string {
	lines := strings.Split(text, "\n")
	var collected []string

	state := seekingHeader
	for i := 0; i < len(lines) && state != scanDone; i++ {
		line := lines[i]

		switch state {
		case seekingHeader:
			if m := keywordsPat.FindStringSubmatch(line); m != nil {
				collected = append(collected, CleanLine(m[2]))
				state = accumulating
			}
		case accumulating:
			if boundary(line) {
				state = scanDone
				continue
			}
			collected = append(collected, CleanLine(line))
		}
	}

	if collected == nil {
		return ""
	}

	joined := strings.Trim(strings.TrimSpace(strings.Join(collected, " ")), ";")

	var terms []string
	for _, part := range strings.FieldsFunc(joined, func(r rune) bool { return r == ';' || r == ',' }) {
		if term := strings.Trim(part, " .;"); term != "" {
			terms = append(terms, term)
		}
	}

	return strings.Join(terms, ", ")
}
