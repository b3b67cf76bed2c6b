// Package rendering builds template contexts from extracted resume data and
// renders them through text/template.
package rendering

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-formatter/internal/extraction"
	"github.com/jonathan/resume-formatter/internal/types"
)

const (
	missingValue   = "N/A"
	missingSummary = "Professional summary not available."
	toolsTitle     = "Professional Skills"

	maxProjectSummaryLen     = 300
	maxProjectDescriptionLen = 200
)

// Context is the flattened structure handed to resume templates. Every
// field is directly printable; templates never reach back into the
// extraction types.
type Context struct {
	Name     string
	Title    string
	Email    string
	Phone    string
	Address  string
	LinkedIn string
	Website  string

	Summary        string
	SummaryBullets []string

	ToolsTitle       string
	SkillsLeftLines  string
	SkillsRightLines string
	SkillsRows       []SkillsRow

	Experience     []ExperienceRow
	OtherProjects  []OtherProjectRow
	Education      []EducationTableRow
	Certifications []CertificationTableRow
}

// SkillsRow is one line of the two-column skills table
type SkillsRow struct {
	Left  string
	Right string
}

// ExperienceRow is one rendered position or project
type ExperienceRow struct {
	SNo              int
	ProjectName      string
	Organization     string
	Duration         string
	StartDate        string
	EndDate          string
	Location         string
	Summary          string
	Description      string
	Technologies     string
	Responsibilities []string
	IsCurrent        bool
}

// OtherProjectRow is a condensed row for projects beyond the detailed cap
type OtherProjectRow struct {
	SNo          int
	ProjectName  string
	Duration     string
	Technologies string
	Description  string
}

// EducationTableRow is one education record
type EducationTableRow struct {
	SNo         int
	Degree      string
	Institution string
	Year        string
}

// CertificationTableRow is one certification record
type CertificationTableRow struct {
	SNo       int
	Authority string
}

// BuildContext flattens extracted data into a template context. Enriched
// data takes precedence over the heuristic fields wherever both exist.
// The returned warnings flag gaps a reviewer should fill before sending
// the resume out.
func BuildContext(data *types.ExtractedData) (*Context, []string) {
	ctx := &Context{
		Name:       valueOr(data.ContactInfo.Name, missingValue),
		Title:      contactTitle(data),
		Email:      valueOr(data.ContactInfo.Email, missingValue),
		Phone:      valueOr(data.ContactInfo.Phone, missingValue),
		Address:    data.ContactInfo.Address,
		LinkedIn:   data.ContactInfo.LinkedIn,
		Website:    data.ContactInfo.Website,
		ToolsTitle: toolsTitle,
	}

	buildSummary(ctx, data)
	buildSkills(ctx, data)
	buildExperience(ctx, data)
	buildEducation(ctx, data)
	buildCertifications(ctx, data)

	return ctx, collectWarnings(ctx)
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func contactTitle(data *types.ExtractedData) string {
	if data.Enriched != nil && data.Enriched.Title != "" {
		return data.Enriched.Title
	}
	return data.ContactInfo.Title
}

func buildSummary(ctx *Context, data *types.ExtractedData) {
	if data.Enriched != nil && len(data.Enriched.SummaryBullets) > 0 {
		ctx.SummaryBullets = data.Enriched.SummaryBullets
		ctx.Summary = strings.Join(data.Enriched.SummaryBullets, "; ")
		return
	}

	ctx.SummaryBullets = BulletizeSummary(data.Summary)
	ctx.Summary = valueOr(data.Summary, missingSummary)
}

// buildSkills prefers grouped categories; a flat skill list becomes a
// single "Skills" row.
func buildSkills(ctx *Context, data *types.ExtractedData) {
	if data.Enriched != nil && len(data.Enriched.SkillsCategories) > 0 {
		names := make([]string, 0, len(data.Enriched.SkillsCategories))
		for name := range data.Enriched.SkillsCategories {
			names = append(names, name)
		}
		sort.Strings(names)

		var left, right []string
		for _, name := range names {
			items := strings.Join(data.Enriched.SkillsCategories[name], ", ")
			left = append(left, name)
			right = append(right, items)
			ctx.SkillsRows = append(ctx.SkillsRows, SkillsRow{Left: name, Right: items})
		}
		ctx.SkillsLeftLines = strings.Join(left, "\n")
		ctx.SkillsRightLines = strings.Join(right, "\n")
		return
	}

	if len(data.Skills) > 0 {
		items := strings.Join(data.Skills, ", ")
		ctx.SkillsRows = []SkillsRow{{Left: "Skills", Right: items}}
		ctx.SkillsLeftLines = "Skills"
		ctx.SkillsRightLines = items
	}
}

func buildExperience(ctx *Context, data *types.ExtractedData) {
	if data.Enriched != nil && len(data.Enriched.DetailedExperience) > 0 {
		buildEnrichedExperience(ctx, data.Enriched)
		return
	}
	buildHeuristicExperience(ctx, data)
}

func buildEnrichedExperience(ctx *Context, enriched *types.EnrichedExtraction) {
	detailed := enriched.DetailedExperience
	var overflow []types.DetailedProject
	if len(detailed) > types.MaxExperienceEntries {
		overflow = detailed[types.MaxExperienceEntries:]
		detailed = detailed[:types.MaxExperienceEntries]
	}

	for i, p := range detailed {
		start, end := durationParts(p.Duration)
		desc := p.ProjectDescription
		if desc == "" && len(p.KeyAchievements) > 0 {
			desc = p.KeyAchievements[0]
		}
		ctx.Experience = append(ctx.Experience, ExperienceRow{
			SNo:              i + 1,
			ProjectName:      p.ProjectName,
			Organization:     p.Organization,
			Duration:         start + " - " + end,
			StartDate:        start,
			EndDate:          end,
			Location:         p.Location,
			Summary:          firstSentenceOf(desc),
			Description:      desc,
			Technologies:     strings.Join(p.TechnologiesUsed, ", "),
			Responsibilities: p.KeyAchievements,
			IsCurrent:        strings.EqualFold(end, "Present"),
		})
	}

	for _, p := range enriched.OtherNotableProjects {
		ctx.OtherProjects = append(ctx.OtherProjects, OtherProjectRow{
			SNo:          len(ctx.OtherProjects) + 1,
			ProjectName:  p.ProjectName,
			Duration:     p.Duration,
			Technologies: strings.Join(p.Technologies, ", "),
			Description:  p.Description,
		})
	}
	for _, p := range overflow {
		ctx.OtherProjects = append(ctx.OtherProjects, OtherProjectRow{
			SNo:          len(ctx.OtherProjects) + 1,
			ProjectName:  p.ProjectName,
			Duration:     p.Duration,
			Technologies: strings.Join(p.TechnologiesUsed, ", "),
			Description:  p.ProjectDescription,
		})
	}
}

func buildHeuristicExperience(ctx *Context, data *types.ExtractedData) {
	vocab := skillsVocab(data)

	for i, exp := range data.Experience {
		desc := exp.Description

		techs := extraction.ExtractEntryTechnologies(desc)
		if len(techs) == 0 {
			techs = ExtractTechnologies(desc, vocab)
		}

		ctx.Experience = append(ctx.Experience, ExperienceRow{
			SNo:              i + 1,
			ProjectName:      exp.Title,
			Organization:     exp.Company,
			Duration:         exp.StartDate + " - " + exp.EndDate,
			StartDate:        exp.StartDate,
			EndDate:          exp.EndDate,
			Location:         exp.Location,
			Summary:          projectLevelSummary(desc),
			Description:      projectDescription(desc),
			Technologies:     strings.Join(techs, ", "),
			Responsibilities: bulletizeResponsibilities(desc),
			IsCurrent:        exp.IsCurrent,
		})
	}

	// Entries beyond the detailed cap become condensed rows
	for _, exp := range data.OtherExperience {
		desc := exp.Description
		techs := extraction.ExtractEntryTechnologies(desc)
		if len(techs) == 0 {
			techs = ExtractTechnologies(desc, vocab)
		}
		ctx.OtherProjects = append(ctx.OtherProjects, OtherProjectRow{
			SNo:          len(ctx.OtherProjects) + 1,
			ProjectName:  exp.Title,
			Duration:     exp.StartDate + " - " + exp.EndDate,
			Technologies: strings.Join(techs, ", "),
			Description:  projectDescription(desc),
		})
	}
}

// durationParts splits "start - end", defaulting missing sides so the
// rendered row never shows an empty cell
func durationParts(duration string) (start, end string) {
	parts := strings.SplitN(duration, " - ", 2)
	start = strings.TrimSpace(parts[0])
	if start == "" {
		start = "—"
	}
	if len(parts) == 2 {
		end = strings.TrimSpace(parts[1])
	}
	if end == "" {
		end = "Present"
	}
	return start, end
}

// skillsVocab lowercases everything the candidate lists as a skill, both
// grouped and flat.
func skillsVocab(data *types.ExtractedData) map[string]bool {
	vocab := make(map[string]bool)
	for _, skill := range data.Skills {
		vocab[strings.ToLower(strings.TrimSpace(skill))] = true
	}
	if data.Enriched != nil {
		for _, items := range data.Enriched.SkillsCategories {
			for _, skill := range items {
				vocab[strings.ToLower(strings.TrimSpace(skill))] = true
			}
		}
	}
	delete(vocab, "")
	return vocab
}

// actionVerbs open bullet-style sentences. A sentence starting with one
// describes a task, not the project itself.
var actionVerbs = map[string]bool{
	"led": true, "designed": true, "implemented": true, "configured": true,
	"developed": true, "built": true, "created": true, "maintained": true,
	"managed": true, "troubleshot": true, "integrated": true, "optimized": true,
	"handled": true, "validated": true, "deployed": true, "architected": true,
}

// projectLevelSummary picks the first sentence that reads like a project
// overview rather than a task bullet. Falls back to the first sentence.
func projectLevelSummary(desc string) string {
	sentences := splitSentences(strings.ReplaceAll(desc, "\n", " "))
	var first string
	for _, s := range sentences {
		s = strings.Trim(s, " •-\t")
		if s == "" {
			continue
		}
		if first == "" {
			first = s
		}
		firstWord := strings.ToLower(strings.SplitN(s, " ", 2)[0])
		if !actionVerbs[firstWord] && len(s) > 20 {
			return truncate(s, maxProjectSummaryLen)
		}
	}
	return truncate(first, maxProjectSummaryLen)
}

func projectDescription(desc string) string {
	desc = strings.TrimSpace(strings.ReplaceAll(desc, "\n", " "))
	if desc == "" {
		return "—"
	}
	return truncate(desc, maxProjectDescriptionLen)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

var responsibilitySplit = regexp.MustCompile(`\n|•|-\s+`)

// bulletizeResponsibilities splits a description into task bullets.
// Comma-heavy lines are dropped: those are technology lists, not tasks.
func bulletizeResponsibilities(desc string) []string {
	var bullets []string
	for _, part := range responsibilitySplit.Split(desc, -1) {
		part = strings.Trim(part, " •\t-\r")
		if len(part) < 3 {
			continue
		}
		if strings.Count(part, ",") >= 3 {
			continue
		}
		bullets = append(bullets, part)
	}
	return bullets
}

func buildEducation(ctx *Context, data *types.ExtractedData) {
	if data.Enriched != nil && len(data.Enriched.Education) > 0 {
		for i, row := range data.Enriched.Education {
			ctx.Education = append(ctx.Education, EducationTableRow{
				SNo:         i + 1,
				Degree:      valueOr(row.Degree, "Degree"),
				Institution: valueOr(row.Institution, "Institution"),
				Year:        valueOr(row.Year, "Graduation Date"),
			})
		}
		return
	}

	for i, entry := range data.Education {
		ctx.Education = append(ctx.Education, EducationTableRow{
			SNo:         i + 1,
			Degree:      valueOr(entry.Degree, "Degree"),
			Institution: valueOr(entry.Institution, "Institution"),
			Year:        valueOr(entry.GraduationDate, "Graduation Date"),
		})
	}
}

func buildCertifications(ctx *Context, data *types.ExtractedData) {
	if data.Enriched != nil && len(data.Enriched.Certifications) > 0 {
		for i, cert := range data.Enriched.Certifications {
			authority := cert.Issuer
			if authority == "" {
				authority = cert.Name
			}
			if cert.Issuer != "" && cert.Name != "" {
				authority = fmt.Sprintf("%s (%s)", cert.Name, cert.Issuer)
			}
			ctx.Certifications = append(ctx.Certifications, CertificationTableRow{
				SNo:       i + 1,
				Authority: authority,
			})
		}
		return
	}

	for i, cert := range data.Certifications {
		ctx.Certifications = append(ctx.Certifications, CertificationTableRow{
			SNo:       i + 1,
			Authority: cert,
		})
	}
}

// firstSentenceOf returns the first sentence of text, trimmed
func firstSentenceOf(text string) string {
	for _, s := range splitSentences(strings.ReplaceAll(text, "\n", " ")) {
		if s = strings.Trim(s, " •-\t"); s != "" {
			return truncate(s, maxProjectSummaryLen)
		}
	}
	return ""
}
