package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-formatter/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Several phone layouts; the first pattern that yields 10+ digits wins
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\d{10}`),
		regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	nonPhoneChars = regexp.MustCompile(`[^\d+]`)

	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	websitePattern  = regexp.MustCompile(`(?:https?://)?(?:www\.)?[\w.-]+\.[a-zA-Z]{2,}(?:/[\w.-]*)*`)

	// Lines that clearly are not a candidate name
	nameSkipPatterns = []*regexp.Regexp{
		regexp.MustCompile(`@`), regexp.MustCompile(`(?i)http`), regexp.MustCompile(`(?i)www`),
		regexp.MustCompile(`(?i)\.com`), regexp.MustCompile(`(?i)phone`), regexp.MustCompile(`(?i)email`),
		regexp.MustCompile(`(?i)address`), regexp.MustCompile(`(?i)resume`), regexp.MustCompile(`(?i)cv`),
		regexp.MustCompile(`(?i)curriculum`), regexp.MustCompile(`(?i)vitae`),
		regexp.MustCompile(`(?i)profile`), regexp.MustCompile(`(?i)summary`),
	}

	nonNameWords = map[string]bool{
		"senior": true, "junior": true, "developer": true, "engineer": true, "manager": true,
		"analyst": true, "consultant": true, "specialist": true, "director": true, "lead": true,
	}
)

// ExtractContactInfo pulls contact details out of resume text. Fields are
// filled independently; anything not found stays empty.
func ExtractContactInfo(text string) types.ContactInfo {
	var info types.ContactInfo
	lines := strings.Split(text, "\n")

	if email := emailPattern.FindString(text); email != "" {
		info.Email = email
	}

	for _, pattern := range phonePatterns {
		raw := pattern.FindString(text)
		if raw == "" {
			continue
		}
		phone := nonPhoneChars.ReplaceAllString(raw, "")
		if len(phone) >= 10 {
			info.Phone = phone
			break
		}
	}

	if linkedin := linkedinPattern.FindString(text); linkedin != "" {
		info.LinkedIn = linkedin
	}

	for _, website := range websitePattern.FindAllString(text, -1) {
		if !strings.Contains(website, "@") && !strings.Contains(strings.ToLower(website), "linkedin.com") {
			info.Website = website
			break
		}
	}

	info.Name = extractName(lines)
	info.Title = extractTitle(lines)

	return info
}

// extractName scans the first five lines for a 2-4 word capitalized name,
// then falls back to a more lenient pass over the first three lines.
func extractName(lines []string) string {
	limit := min(len(lines), 5)
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if matchesAny(line, nameSkipPatterns) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allNameLike(words) && !containsNonNameWord(words) {
			return line
		}
	}

	// Lenient fallback: any short multi-word line without obvious markers
	limit = min(len(lines), 3)
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || len(line) >= 60 {
			continue
		}
		if strings.Contains(line, "@") || strings.Contains(line, ".com") || strings.Contains(line, "http") {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 2 && allLongerThanOne(words) {
			return line
		}
	}

	return ""
}

// extractTitle looks just below the name for a short role phrase
func extractTitle(lines []string) string {
	limit := min(len(lines), 6)
	for i := 1; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || len(line) > 70 {
			continue
		}
		low := strings.ToLower(line)
		found := false
		for _, t := range commonTitles {
			if strings.Contains(low, t) {
				found = true
				break
			}
		}
		if !found {
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

func matchesAny(line string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

func allNameLike(words []string) bool {
	for _, word := range words {
		if len(word) <= 1 {
			continue
		}
		r := []rune(word)
		if !unicode.IsUpper(r[0]) {
			return false
		}
		stripped := strings.NewReplacer("'", "", "-", "").Replace(word)
		for _, c := range stripped {
			if !unicode.IsLetter(c) {
				return false
			}
		}
	}
	return true
}

func containsNonNameWord(words []string) bool {
	for _, word := range words {
		if nonNameWords[strings.ToLower(word)] {
			return true
		}
	}
	return false
}

func allLongerThanOne(words []string) bool {
	for _, word := range words {
		if len(word) <= 1 {
			return false
		}
	}
	return true
}

func containsDigit(s string) bool {
	for _, c := range s {
		if unicode.IsDigit(c) {
			return true
		}
	}
	return false
}
