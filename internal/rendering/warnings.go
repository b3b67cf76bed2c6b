package rendering

import "strings"

// collectWarnings flags context gaps a reviewer should fill before the
// rendered resume goes out
func collectWarnings(ctx *Context) []string {
	var warnings []string

	if ctx.Name == "" || ctx.Name == missingValue {
		warnings = append(warnings, "Missing candidate name")
	}
	if ctx.Email == "" || ctx.Email == missingValue {
		warnings = append(warnings, "Missing email")
	}
	if ctx.Summary == "" || strings.Contains(ctx.Summary, "not available") {
		warnings = append(warnings, "Missing professional summary")
	}
	if len(ctx.SummaryBullets) == 0 {
		warnings = append(warnings, "Summary not bulletized or missing")
	}
	if len(ctx.SkillsRows) == 0 {
		warnings = append(warnings, "Skills section is empty")
	}

	return warnings
}
