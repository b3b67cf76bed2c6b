package rendering

import (
	"regexp"
	"strings"
)

// maxSummaryBullets caps how many bullet points a summary becomes
const maxSummaryBullets = 10

var sentenceEnd = regexp.MustCompile(`[.!?]\s+`)

// BulletizeSummary splits a prose summary into bullet points: first on
// newlines, then on sentence boundaries within each line. Bullets are
// deduplicated case-insensitively.
func BulletizeSummary(summary string) []string {
	if strings.TrimSpace(summary) == "" {
		return nil
	}

	var bullets []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(summary, "\n") {
		for _, sentence := range splitSentences(line) {
			sentence = strings.Trim(sentence, " •-\t")
			if len(sentence) < 2 {
				continue
			}
			key := strings.ToLower(sentence)
			if seen[key] {
				continue
			}
			seen[key] = true
			bullets = append(bullets, sentence)
			if len(bullets) == maxSummaryBullets {
				return bullets
			}
		}
	}
	return bullets
}

// splitSentences splits after terminal punctuation, keeping the punctuation
// attached to the preceding sentence.
func splitSentences(text string) []string {
	var parts []string
	last := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		// Keep the punctuation, drop the trailing whitespace
		parts = append(parts, text[last:loc[0]+1])
		last = loc[1]
	}
	if last < len(text) {
		parts = append(parts, text[last:])
	}
	return parts
}
