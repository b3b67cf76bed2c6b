package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-formatter/internal/types"
)

// basicConfidence is the fixed score for the basic strategy. Basic results
// are never rated on completeness.
const basicConfidence = 0.5

const basicSkillCap = 10

var (
	basicPhonePattern = regexp.MustCompile(`(\+?1?[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)

	basicSkillsKeywords = []string{"skills", "technical skills", "core competencies", "technologies"}
	basicSkillsStop     = []string{"experience", "education", "work"}
	basicSkillSplit     = regexp.MustCompile(`[,;|•·]`)
)

// BasicExtract is the last-resort extraction path: a handful of cheap line
// heuristics that never fail. It is deterministic and idempotent, and always
// reports the fixed 0.5 confidence.
func BasicExtract(text string) *types.ExtractedData {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	var contact types.ContactInfo

	if email := emailPattern.FindString(text); email != "" {
		contact.Email = email
	}

	if m := basicPhonePattern.FindStringSubmatch(text); m != nil {
		contact.Phone = strings.Join(m[1:], "")
	}

	// First non-empty line is assumed to be the name unless it clearly is not
	if len(lines) > 0 {
		candidate := lines[0]
		if !strings.Contains(candidate, "@") && !containsDigit(candidate) {
			contact.Name = candidate
		}
	}

	contact.Title = basicTitle(lines)

	return &types.ExtractedData{
		ContactInfo:     contact,
		Skills:          basicSkills(lines),
		RawText:         text,
		ConfidenceScore: basicConfidence,
	}
}

// basicTitle scans the few lines below the name for a short role phrase
func basicTitle(lines []string) string {
	limit := min(len(lines), 6)
	for i := 1; i < limit; i++ {
		line := lines[i]
		if line == "" || len(line) > 70 {
			continue
		}
		low := strings.ToLower(line)
		matched := false
		for _, t := range commonTitles {
			if strings.Contains(low, t) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		cleaned := strings.Trim(line, " ()•-\t")
		if strings.Contains(cleaned, "@") || containsDigit(cleaned) {
			continue
		}
		return cleaned
	}
	return ""
}

// basicSkills takes the lines following the first skills-like keyword and
// splits them on common delimiters, capped to 10.
func basicSkills(lines []string) []string {
	var skills []string
	for i, line := range lines {
		low := strings.ToLower(line)
		matched := false
		for _, kw := range basicSkillsKeywords {
			if strings.Contains(low, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		for j := i + 1; j < min(i+10, len(lines)); j++ {
			if hasAnyKeyword(lines[j], basicSkillsStop) {
				continue
			}
			for _, s := range basicSkillSplit.Split(lines[j], -1) {
				if s = strings.TrimSpace(s); s != "" {
					skills = append(skills, s)
				}
			}
		}
		break
	}

	if len(skills) > basicSkillCap {
		skills = skills[:basicSkillCap]
	}
	return skills
}

func hasAnyKeyword(line string, keywords []string) bool {
	low := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}
