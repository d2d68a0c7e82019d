package extractor

import (
	"strings"
	"unicode/utf8"
)

// FindAuthors extracts the author list from the front matter of raw
// document text using the default options.
func FindAuthors(text string) string {
	return findAuthors(text, DefaultOptions())
}

// findAuthors scans the front-matter window for an author line.
//
// Noise lines are dropped first: emails, anything mentioning "http" or
// "doi", all-uppercase lines longer than six runes (running headers,
// journal banners), and lines carrying affiliation vocabulary. Of the
// surviving lines, only the first few are examined; a line is accepted as
// the author line when it yields at least two name matches, or one match
// plus a comma or " and ". Matched names are deduplicated preserving
// first-seen order.
func findAuthors(text string, opts Options) string {
	lines := strings.Split(text, "\n")
	if len(lines) > opts.FrontMatterLines {
		lines = lines[:opts.FrontMatterLines]
	}

	var filtered []string
	for _, ln := range lines {
		s := CleanLine(ln)
		if s == "" {
			continue
		}
		lower := strings.ToLower(s)
		if emailPat.MatchString(s) || strings.Contains(lower, "http") || strings.Contains(lower, "doi") {
			continue
		}
		if utf8.RuneCountInString(s) > 6 && strings.ToUpper(s) == s {
			continue
		}
		if affiliationPat.MatchString(s) {
			continue
		}
		filtered = append(filtered, s)
	}

	if len(filtered) > opts.AuthorCandidates {
		filtered = filtered[:opts.AuthorCandidates]
	}

	for _, ln := range filtered {
		names := namePat.FindAllString(ln, -1)
		if len(names) < 2 && !(len(names) == 1 && (strings.Contains(ln, ",") || strings.Contains(strings.ToLower(ln), " and "))) {
			continue
		}

		seen := make(map[string]bool, len(names))
		ordered := make([]string, 0, len(names))
		for _, n := range names {
			n = strings.TrimSpace(n)
			if !seen[n] {
				seen[n] = true
				ordered = append(ordered, n)
			}
		}
		if len(ordered) > 0 {
			return strings.Join(ordered, ", ")
		}
	}

	return ""
}
