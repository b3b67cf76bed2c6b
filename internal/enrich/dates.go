package enrich

import (
	"regexp"
	"strconv"
	"strings"
)

// monthNames maps numeric and textual month spellings to the short form
var monthNames = map[string]string{
	"1": "Jan", "01": "Jan", "jan": "Jan", "january": "Jan",
	"2": "Feb", "02": "Feb", "feb": "Feb", "february": "Feb",
	"3": "Mar", "03": "Mar", "mar": "Mar", "march": "Mar",
	"4": "Apr", "04": "Apr", "apr": "Apr", "april": "Apr",
	"5": "May", "05": "May", "may": "May",
	"6": "Jun", "06": "Jun", "jun": "Jun", "june": "Jun",
	"7": "Jul", "07": "Jul", "jul": "Jul", "july": "Jul",
	"8": "Aug", "08": "Aug", "aug": "Aug", "august": "Aug",
	"9": "Sep", "09": "Sep", "sep": "Sep", "september": "Sep",
	"10": "Oct", "oct": "Oct", "october": "Oct",
	"11": "Nov", "nov": "Nov", "november": "Nov",
	"12": "Dec", "dec": "Dec", "december": "Dec",
}

// datePatterns captures month and year in either order. Numeric tokens are
// disambiguated afterwards: anything above 12 is a year.
var datePatterns = []struct {
	re         *regexp.Regexp
	monthGroup int
	yearGroup  int
}{
	{regexp.MustCompile(`^(\d{1,2})[/-](\d{4})$`), 1, 2},
	{regexp.MustCompile(`^(\d{4})[/-](\d{1,2})$`), 2, 1},
	{regexp.MustCompile(`^([a-zA-Z]+)\s+(\d{4})$`), 1, 2},
	{regexp.MustCompile(`^(\d{4})\s+([a-zA-Z]+)$`), 2, 1},
}

// NormalizeDateToken converts a single date spelling to "Mon YYYY".
// "present" and "current" become "Present"; unrecognized spellings pass
// through unchanged.
func NormalizeDateToken(token string) string {
	t := strings.TrimSpace(token)
	if t == "" {
		return t
	}
	if strings.EqualFold(t, "present") || strings.EqualFold(t, "current") {
		return "Present"
	}

	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		month, year := m[p.monthGroup], m[p.yearGroup]
		if n, err := strconv.Atoi(month); err == nil && n > 12 {
			month, year = year, month
		}
		if name, ok := monthNames[strings.ToLower(month)]; ok {
			return name + " " + year
		}
		return month + " " + year
	}

	return t
}

// NormalizeDuration normalizes both sides of a "start - end" range.
// Inputs without a range separator are treated as a single token.
func NormalizeDuration(duration string) string {
	duration = strings.TrimSpace(duration)
	if duration == "" {
		return duration
	}

	parts := strings.SplitN(duration, " - ", 2)
	if len(parts) == 1 {
		return NormalizeDateToken(duration)
	}
	return NormalizeDateToken(parts[0]) + " - " + NormalizeDateToken(parts[1])
}
