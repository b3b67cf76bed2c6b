package extraction

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-formatter/internal/sections"
	"github.com/jonathan/resume-formatter/internal/types"
)

var skillsHeadings = sections.Compile([]string{
	`(?i)(?:technical\s+)?skills`,
	`(?i)core\s+competencies`,
	`(?i)technologies`,
	`(?i)expertise`,
	`(?i)tools\s+and\s+technologies`,
})

var summaryScanHeadings = sections.Compile([]string{
	`(?i)profile\s+summary`,
	`(?i)professional\s+summary`,
	`(?i)summary`,
})

var skillDelimiters = []string{";", "|", "•", "·", "\n"}

var skillStopWords = map[string]bool{
	"skills": true, "technologies": true, "expertise": true,
}

// ExtractSkills collects skills from the dedicated section plus a
// vocabulary scan over the whole document and the summary section.
// Duplicates are dropped case-insensitively, first occurrence wins, and the
// result is capped to 20.
func ExtractSkills(text string) []string {
	var skills []string
	seen := make(map[string]bool)

	appendSkill := func(skill string) {
		key := strings.ToLower(skill)
		if !seen[key] {
			seen[key] = true
			skills = append(skills, skill)
		}
	}

	if section := sections.Extract(text, skillsHeadings); section != "" {
		for _, skill := range parseSkillsSection(section) {
			appendSkill(skill)
		}
	}

	textLower := strings.ToLower(text)
	for _, skill := range commonSkills {
		if strings.Contains(textLower, skill) {
			appendSkill(titleCase(skill))
		}
	}

	if summary := sections.Extract(text, summaryScanHeadings); summary != "" {
		summaryLower := strings.ToLower(summary)
		for _, skill := range commonSkills {
			if strings.Contains(summaryLower, skill) {
				appendSkill(titleCase(skill))
			}
		}
	}

	if len(skills) > types.MaxSkills {
		skills = skills[:types.MaxSkills]
	}
	return skills
}

// parseSkillsSection splits a skills section on the common delimiter set
// and keeps tokens of plausible length.
func parseSkillsSection(sectionText string) []string {
	text := sectionText
	for _, d := range skillDelimiters {
		text = strings.ReplaceAll(text, d, ",")
	}

	var skills []string
	for _, candidate := range strings.Split(text, ",") {
		candidate = strings.TrimSpace(candidate)
		if len(candidate) > 1 && len(candidate) < 50 && !skillStopWords[strings.ToLower(candidate)] {
			skills = append(skills, candidate)
		}
	}
	return skills
}

// titleCase upper-cases the first letter of every alphabetic run and
// lower-cases the rest, so "rest apis" becomes "Rest Apis" and "ci/cd"
// becomes "Ci/Cd".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
