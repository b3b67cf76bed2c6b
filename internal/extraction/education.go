package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-formatter/internal/sections"
	"github.com/jonathan/resume-formatter/internal/types"
)

var educationHeadings = sections.Compile([]string{
	`(?i)education`,
	`(?i)academic\s+background`,
	`(?i)qualifications`,
})

var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(bachelor|master|phd|doctorate|associate|diploma|certificate).*?(?:of|in|degree)?\s+([^\n,]+)`),
	regexp.MustCompile(`(?i)(b\.?[as]\.?|m\.?[as]\.?|ph\.?d\.?|m\.?b\.?a\.?)\s+([^\n,]+)`),
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// ExtractEducation parses the education section. All lines of the section
// merge into a single aggregate entry: degree from the last matching degree
// line, institution from the first run of capitalized words, graduation
// date from the last year on the first line carrying one. Multi-degree
// resumes therefore collapse into one entry.
func ExtractEducation(text string) []types.EducationEntry {
	section := sections.Extract(text, educationHeadings)
	if section == "" {
		return nil
	}

	var current types.EducationEntry
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Every matching line overwrites; the last degree seen wins
		for _, pattern := range degreePatterns {
			if m := pattern.FindString(line); m != "" {
				current.Degree = strings.TrimSpace(m)
				break
			}
		}

		if current.Institution == "" {
			if inst := capitalizedRun(line); inst != "" {
				current.Institution = inst
			}
		}

		if current.GraduationDate == "" {
			years := yearPattern.FindAllString(line, -1)
			if len(years) > 0 {
				current.GraduationDate = years[len(years)-1]
			}
		}
	}

	if current.Degree == "" && current.Institution == "" {
		return nil
	}
	return []types.EducationEntry{current}
}

// capitalizedRun joins the capitalized words of a line when at least two of
// them look institution-like (capitalized, longer than two characters).
func capitalizedRun(line string) string {
	words := strings.Fields(line)
	if len(words) < 2 {
		return ""
	}
	var capitalized []string
	for _, w := range words {
		r := []rune(w)
		if len(w) > 2 && unicode.IsUpper(r[0]) {
			capitalized = append(capitalized, w)
		}
	}
	if len(capitalized) < 2 {
		return ""
	}
	return strings.Join(capitalized, " ")
}
