package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-formatter/internal/sections"
	"github.com/jonathan/resume-formatter/internal/types"
)

var experienceHeadings = sections.Compile([]string{
	`(?i)(?:work\s+)?experience`,
	`(?i)professional\s+experience`,
	`(?i)employment\s+history`,
	`(?i)career\s+history`,
	`(?i)work\s+history`,
	`(?i)relevant\s+work\s+experience`,
	`(?i)project\s+experience`,
	`(?i)professional\s+background`,
})

var (
	blankLineSplit = regexp.MustCompile(`\n\s*\n`)

	// Markers that begin a new entry mid-section. RE2 has no lookahead, so
	// these are applied as split-before-match boundaries.
	entryStartMarkers = []*regexp.Regexp{
		regexp.MustCompile(`\d{4}\s*[-–]`),
		regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+\d{4}`),
		regexp.MustCompile(`(?i)project\s*[#:]?\s*\d+`),
		regexp.MustCompile(`(?i)company\s*:`),
		regexp.MustCompile(`(?i)position\s*:`),
	}

	projectBlockMarkers = []*regexp.Regexp{
		regexp.MustCompile(`(?i)project\s*[#:]?\s*\d+`),
		regexp.MustCompile(`(?i)(?:client|customer)\s*:`),
	}

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:company|employer|organization)\s*:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)project\s*[#:]?\s*\d+.*?(?:company|client|organization)\s*:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)^([A-Z][A-Za-z\s&.,\-()]+?)(?:\s*[-–]|\s*\||\s*,|\s*\n)`),
		regexp.MustCompile(`([A-Z][A-Za-z\s&.,\-()]{2,50})(?:\s*[-–]|\s*,)`),
		regexp.MustCompile(`(?i)(?:at|with|for)\s+([A-Z][A-Za-z\s&.,\-()]+?)(?:\s*[-–]|\s*,|\s*\n)`),
	}

	companyTrailingDash = regexp.MustCompile(`\s*[-–].*$`)
	companyTrailingPipe = regexp.MustCompile(`\s*\|.*$`)
	leadingDigits       = regexp.MustCompile(`^\d+`)

	positionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:position|title|role)\s*:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)(?:as|working as)\s+([^\n,]+)`),
		regexp.MustCompile(`(?i)^.*?[-–]\s*([A-Z][A-Za-z\s]+?)(?:\s*[-–]|\s*\n|$)`),
		regexp.MustCompile(`(?i)(senior|junior|lead|principal|associate)?\s*(developer|engineer|analyst|consultant|manager|specialist|administrator)([^\n,]*)`),
		regexp.MustCompile(`(?i)project\s*[#:]?\s*\d+.*?role\s*:?\s*([^\n]+)`),
	}

	durationLabelPattern = regexp.MustCompile(`(?i)duration\s*:?\s*([^\n]+)`)
	durationRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`)

	dateRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2}/\d{4})\s*[-–]\s*(\d{1,2}/\d{4}|present|current)`),
		regexp.MustCompile(`(?i)(\w+\s+\d{4})\s*[-–]\s*(\w+\s+\d{4}|present|current)`),
		regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`),
	}

	descriptionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)(?:project\s+)?description\s*:?\s*(.+?)(?:\n\s*(?:technology|role|responsibilities)|\z)`),
		regexp.MustCompile(`(?is)(?:summary|overview)\s*:?\s*(.+?)(?:\n\s*(?:technology|role|responsibilities)|\z)`),
	}

	responsibilityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)(?:role\s*&?\s*)?responsibilities\s*:?\s*(.+?)(?:\n\s*(?:technology|skills)|\z)`),
		regexp.MustCompile(`(?is)duties\s*:?\s*(.+?)(?:\n\s*(?:technology|skills)|\z)`),
	}

	bulletPrefix = regexp.MustCompile(`(?m)^[•o\-*]\s*`)

	technologyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)technology\s*:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)technologies\s*used\s*:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)tech\s*stack\s*:?\s*([^\n]+)`),
	}

	presentOrCurrent = regexp.MustCompile(`(?i)present|current`)

	techListSplit = regexp.MustCompile(`[,;|]`)
)

// ExtractExperience finds work experience entries. Two techniques run and
// their results concatenate: section-based splitting and a whole-document
// scan for project/client blocks. The first 5 entries in first-found order
// are returned as the detailed set; entries beyond the cap come back in
// overflow so callers can relocate them instead of losing them.
func ExtractExperience(text string) (experiences, overflow []types.ExperienceEntry) {
	if section := sections.Extract(text, experienceHeadings); section != "" {
		experiences = append(experiences, parseExperienceSection(section)...)
	}

	experiences = append(experiences, extractProjectBlocks(text)...)

	if len(experiences) > types.MaxExperienceEntries {
		overflow = experiences[types.MaxExperienceEntries:]
		experiences = experiences[:types.MaxExperienceEntries]
	}
	return experiences, overflow
}

// parseExperienceSection subdivides a section into candidate entries. Each
// split heuristic further subdivides chunks produced by earlier ones.
func parseExperienceSection(sectionText string) []types.ExperienceEntry {
	entries := blankLineSplit.Split(sectionText, -1)
	for _, marker := range entryStartMarkers {
		var next []string
		for _, entry := range entries {
			next = append(next, splitBefore(entry, marker)...)
		}
		entries = next
	}

	var experiences []types.ExperienceEntry
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if len(entry) < 20 {
			continue
		}
		if exp := parseSingleExperience(entry); exp != nil {
			experiences = append(experiences, *exp)
		}
	}
	return experiences
}

// splitBefore cuts s at the start of every marker match, keeping the marker
// with the chunk it begins.
func splitBefore(s string, marker *regexp.Regexp) []string {
	idxs := marker.FindAllStringIndex(s, -1)
	if len(idxs) == 0 {
		return []string{s}
	}

	var parts []string
	prev := 0
	for _, idx := range idxs {
		if idx[0] > prev {
			parts = append(parts, s[prev:idx[0]])
			prev = idx[0]
		}
	}
	parts = append(parts, s[prev:])
	return parts
}

// extractProjectBlocks scans the whole document for "Project #N" and
// "Client:" style blocks, independent of section boundaries.
func extractProjectBlocks(text string) []types.ExperienceEntry {
	var experiences []types.ExperienceEntry
	for _, marker := range projectBlockMarkers {
		for _, block := range blocksFrom(text, marker) {
			block = strings.TrimSpace(block)
			if len(block) <= 50 {
				continue
			}
			if exp := parseSingleExperience(block); exp != nil {
				experiences = append(experiences, *exp)
			}
		}
	}
	return experiences
}

// blocksFrom returns text runs starting at each marker match and ending at
// the next match or end of document.
func blocksFrom(text string, marker *regexp.Regexp) []string {
	idxs := marker.FindAllStringIndex(text, -1)
	blocks := make([]string, 0, len(idxs))
	for i, idx := range idxs {
		end := len(text)
		if i+1 < len(idxs) {
			end = idxs[i+1][0]
		}
		blocks = append(blocks, text[idx[0]:end])
	}
	return blocks
}

// parseSingleExperience parses one candidate block. Every field family tries
// its patterns in order and the first match wins. A block yielding no signal
// at all is discarded rather than emitted as an all-defaults entry.
func parseSingleExperience(text string) *types.ExperienceEntry {
	company := extractCompany(text)
	position := extractPosition(text)
	startDate, endDate := extractDates(text)
	description, descFound := extractDescription(text)

	if company == "" && position == "" && startDate == "" && endDate == "" && !descFound {
		return nil
	}

	entry := &types.ExperienceEntry{
		Company:     company,
		Title:       position,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: description,
		IsCurrent:   endDate != "" && presentOrCurrent.MatchString(endDate),
	}

	if entry.Company == "" {
		entry.Company = "Company"
	}
	if entry.Title == "" {
		entry.Title = "Position"
	}
	if entry.StartDate == "" {
		entry.StartDate = "Start Date"
	}
	if entry.EndDate == "" {
		entry.EndDate = "End Date"
	}
	if entry.Description == "" {
		entry.Description = "Job description"
	}
	return entry
}

func extractCompany(text string) string {
	for _, pattern := range companyPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		company := strings.TrimSpace(m[1])
		company = companyTrailingDash.ReplaceAllString(company, "")
		company = companyTrailingPipe.ReplaceAllString(company, "")
		if len(company) > 3 && !leadingDigits.MatchString(company) {
			return company
		}
	}
	return ""
}

func extractPosition(text string) string {
	for _, pattern := range positionPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		var position string
		if len(m) > 2 {
			// Multi-group patterns combine their pieces
			var parts []string
			for _, g := range m[1:] {
				if g = strings.TrimSpace(g); g != "" {
					parts = append(parts, g)
				}
			}
			position = strings.Join(parts, " ")
		} else {
			position = strings.TrimSpace(m[1])
		}
		if len(position) > 3 {
			return position
		}
	}
	return ""
}

func extractDates(text string) (start, end string) {
	// A labeled duration line takes precedence
	if m := durationLabelPattern.FindStringSubmatch(text); m != nil {
		if r := durationRangePattern.FindStringSubmatch(m[1]); r != nil {
			return r[1], r[2]
		}
	}
	for _, pattern := range dateRangePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1], m[2]
		}
	}
	return "", ""
}

func extractDescription(text string) (string, bool) {
	var parts []string
	found := false

	for _, pattern := range descriptionPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			parts = append(parts, strings.TrimSpace(m[1]))
			found = true
			break
		}
	}

	for _, pattern := range responsibilityPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			resp := strings.TrimSpace(m[1])
			resp = bulletPrefix.ReplaceAllString(resp, "")
			parts = append(parts, resp)
			found = true
			break
		}
	}

	return strings.Join(parts, " "), found
}

// ExtractEntryTechnologies pulls a labeled technology list out of one
// experience block.
func ExtractEntryTechnologies(text string) []string {
	for _, pattern := range technologyPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		var techs []string
		for _, t := range techListSplit.Split(m[1], -1) {
			if t = strings.TrimSpace(t); t != "" {
				techs = append(techs, t)
			}
		}
		return techs
	}
	return nil
}
