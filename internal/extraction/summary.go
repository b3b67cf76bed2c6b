package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

var summaryHeadings = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:professional\s+)?summary`),
	regexp.MustCompile(`(?i)profile\s+summary`),
	regexp.MustCompile(`(?i)objective`),
	regexp.MustCompile(`(?i)profile`),
	regexp.MustCompile(`(?i)about\s+me`),
	regexp.MustCompile(`(?i)career\s+summary`),
}

var summaryStopKeywords = []string{
	"experience", "education", "skills", "technical skills",
	"work history", "employment", "certifications", "projects",
}

// summaryWindow bounds how far past the heading the summary may run
const summaryWindow = 15

// ExtractSummary pulls the summary or objective paragraph from resume text.
// Content is gathered line by line after the heading until another section
// heading appears or the window runs out, then joined with spaces.
// Returns "" when no summary heading is found.
func ExtractSummary(text string) string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if len(strings.TrimSpace(line)) >= 80 {
			continue
		}
		for _, h := range summaryHeadings {
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
		return ""
	}

	var collected []string
	for i := start + 1; i < min(start+summaryWindow, len(lines)); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if containsStopKeyword(line) && len(line) < 50 && looksLikeHeading(line) {
			break
		}
		collected = append(collected, line)
	}

	return strings.Join(collected, " ")
}

func containsStopKeyword(line string) bool {
	low := strings.ToLower(line)
	for _, kw := range summaryStopKeywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}

// looksLikeHeading reports whether a line reads as a section header
// rather than prose: all upper case or title case.
func looksLikeHeading(line string) bool {
	return isUpperString(line) || isTitleString(line)
}

func isUpperString(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isTitleString reports whether every word starts with an upper-case letter
// followed only by lower-case letters.
func isTitleString(s string) bool {
	hasCased := false
	expectUpper := true
	for _, r := range s {
		if !unicode.IsLetter(r) {
			expectUpper = true
			continue
		}
		hasCased = true
		if expectUpper {
			if !unicode.IsUpper(r) {
				return false
			}
		} else if unicode.IsUpper(r) {
			return false
		}
		expectUpper = false
	}
	return hasCased
}
