// Package sections locates named resume sections by heading heuristics.
// A section starts at the first line matching one of the given heading
// patterns and runs until the next canonical section heading or end of text.
package sections

import (
	"regexp"
	"strings"
	"unicode"
)

// maxHeadingLen rejects prose lines that merely mention a section word.
// Real headings are short.
const maxHeadingLen = 80

// endHeadings are the canonical section names that terminate any section.
// Anchored: a heading starts the line, it is not just mentioned in passing.
var endHeadings = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^experience`),
	regexp.MustCompile(`(?i)^education`),
	regexp.MustCompile(`(?i)^skills`),
	regexp.MustCompile(`(?i)^projects`),
	regexp.MustCompile(`(?i)^certifications`),
	regexp.MustCompile(`(?i)^awards`),
	regexp.MustCompile(`(?i)^references`),
}

// Location identifies a section as a half-open line range [Start, End)
type Location struct {
	Start int
	End   int
}

// Compile turns heading pattern strings into regexps.
// Panics on an invalid pattern; heading lists are package constants.
func Compile(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// Locate finds the first section whose heading matches any of the given
// patterns. The match is searched anywhere in the line but the line must be
// shorter than maxHeadingLen. Returns false if no heading matches.
func Locate(text string, headings []*regexp.Regexp) (Location, bool) {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if len(strings.TrimSpace(line)) >= maxHeadingLen {
			continue
		}
		for _, h := range headings {
			if h.MatchString(line) {
				start = i
				break
			}
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return Location{}, false
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if isSectionHeading(line) {
			end = i
			break
		}
	}

	return Location{Start: start, End: end}, true
}

// Extract returns the text of the first matching section including its
// heading line, or "" when no heading matches.
func Extract(text string, headings []*regexp.Regexp) string {
	loc, ok := Locate(text, headings)
	if !ok {
		return ""
	}
	lines := strings.Split(text, "\n")
	return strings.Join(lines[loc.Start:loc.End], "\n")
}

// isSectionHeading reports whether a non-empty trimmed line looks like a
// canonical section heading: starts with a known section word, at most
// three words, and capitalized.
func isSectionHeading(line string) bool {
	matched := false
	for _, h := range endHeadings {
		if h.MatchString(line) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	if len(strings.Fields(line)) > 3 {
		return false
	}
	r := []rune(line)
	return unicode.IsUpper(r[0])
}
