// Package enrich implements LLM-backed resume extraction. It prompts a
// Gemini model for a richer structure than the heuristic parsers produce,
// validates the response against an embedded JSON Schema and maps it onto
// the shared extraction types.
package enrich

import (
	"context"
	_ "embed"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-formatter/internal/llm"
	"github.com/jonathan/resume-formatter/internal/prompts"
	"github.com/jonathan/resume-formatter/internal/schemas"
	"github.com/jonathan/resume-formatter/internal/types"
)

//go:embed response_schema.json
var responseSchema string

const (
	promptFile = "extraction.json"
	promptKey  = "extract-resume"

	// Long documents on the advanced tier can take a while
	requestTimeout = 45 * time.Second

	// llmConfidence is reported for any successful enriched extraction.
	// The model either parses the document or fails outright.
	llmConfidence = 0.95
)

// Extractor turns resume text into enriched structured data via an LLM
type Extractor struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewExtractor builds an Extractor on the advanced model tier
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client, tier: llm.TierAdvanced}
}

// Extract runs the extraction prompt and maps the response. Failures are
// typed: *APICallError when the request fails, *ResponseError when the
// payload is malformed or fails schema validation.
func (e *Extractor) Extract(ctx context.Context, text string) (*types.ExtractedData, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	prompt := prompts.Format(prompts.MustGet(promptFile, promptKey), map[string]string{
		"ResumeText": text,
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return nil, &APICallError{Model: e.client.GetModel(e.tier), Cause: err}
	}

	cleaned := llm.CleanJSONBlock(raw)

	var wire wireResponse
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return nil, &ResponseError{Message: "response is not valid JSON", Cause: err}
	}

	if err := schemas.ValidateJSONString(responseSchema, cleaned); err != nil {
		return nil, &ResponseError{Message: "response does not match the expected structure", Cause: err}
	}

	return assemble(text, &wire), nil
}

// wireResponse mirrors the JSON structure the prompt demands
type wireResponse struct {
	ContactInfo          wireContact           `json:"contact_info"`
	Title                string                `json:"title"`
	SummaryBullets       []string              `json:"summary_bullets"`
	SkillsCategories     map[string][]string   `json:"skills_categories"`
	DetailedExperience   []wireProject         `json:"detailed_experience"`
	OtherNotableProjects []wireNotableProject  `json:"other_notable_projects"`
	Education            []wireEducationRow    `json:"education"`
	Certifications       []wireCertification   `json:"certifications"`
}

type wireContact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

type wireProject struct {
	ProjectName        string   `json:"project_name"`
	Organization       string   `json:"organization"`
	Duration           string   `json:"duration"`
	Location           string   `json:"location"`
	ProjectDescription string   `json:"project_description"`
	KeyAchievements    []string `json:"key_achievements"`
	TechnologiesUsed   []string `json:"technologies_used"`
}

type wireNotableProject struct {
	ProjectName  string `json:"project_name"`
	Duration     string `json:"duration"`
	Technologies string `json:"technologies"`
	Description  string `json:"description"`
}

type wireEducationRow struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa"`
}

type wireCertification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Year         string `json:"year"`
	CredentialID string `json:"credential_id"`
}

// assemble maps the wire response onto ExtractedData. Durations are
// normalized, the detailed experience cap is enforced with overflow moved
// to notable projects, and skills are flattened from the categories.
func assemble(rawText string, wire *wireResponse) *types.ExtractedData {
	enriched := &types.EnrichedExtraction{
		Title:            wire.Title,
		SummaryBullets:   wire.SummaryBullets,
		SkillsCategories: wire.SkillsCategories,
	}

	detailed := wire.DetailedExperience
	overflow := []wireProject(nil)
	if len(detailed) > types.MaxExperienceEntries {
		overflow = detailed[types.MaxExperienceEntries:]
		detailed = detailed[:types.MaxExperienceEntries]
	}

	for _, p := range detailed {
		enriched.DetailedExperience = append(enriched.DetailedExperience, types.DetailedProject{
			ProjectName:        p.ProjectName,
			Organization:       p.Organization,
			Duration:           NormalizeDuration(p.Duration),
			Location:           p.Location,
			ProjectDescription: p.ProjectDescription,
			KeyAchievements:    p.KeyAchievements,
			TechnologiesUsed:   p.TechnologiesUsed,
		})
	}

	for _, p := range wire.OtherNotableProjects {
		enriched.OtherNotableProjects = append(enriched.OtherNotableProjects, types.NotableProject{
			ProjectName:  p.ProjectName,
			Duration:     NormalizeDuration(p.Duration),
			Technologies: splitTechnologies(p.Technologies),
			Description:  p.Description,
		})
	}
	for _, p := range overflow {
		enriched.OtherNotableProjects = append(enriched.OtherNotableProjects, types.NotableProject{
			ProjectName:  p.ProjectName,
			Duration:     NormalizeDuration(p.Duration),
			Technologies: p.TechnologiesUsed,
			Description:  p.ProjectDescription,
		})
	}

	for _, row := range wire.Education {
		enriched.Education = append(enriched.Education, types.EducationRow{
			Degree:      row.Degree,
			Institution: row.Institution,
			Year:        row.Year,
			GPA:         row.GPA,
		})
	}
	for _, cert := range wire.Certifications {
		enriched.Certifications = append(enriched.Certifications, types.CertificationRow{
			Name:         cert.Name,
			Issuer:       cert.Issuer,
			Year:         cert.Year,
			CredentialID: cert.CredentialID,
		})
	}

	data := &types.ExtractedData{
		ContactInfo: types.ContactInfo{
			Name:     wire.ContactInfo.Name,
			Title:    wire.Title,
			Email:    wire.ContactInfo.Email,
			Phone:    wire.ContactInfo.Phone,
			Address:  wire.ContactInfo.Address,
			LinkedIn: wire.ContactInfo.LinkedIn,
			Website:  wire.ContactInfo.Website,
		},
		Summary:         strings.Join(wire.SummaryBullets, "; "),
		Skills:          flattenSkills(wire.SkillsCategories),
		RawText:         rawText,
		ConfidenceScore: llmConfidence,
		Enriched:        enriched,
	}

	for _, p := range enriched.DetailedExperience {
		start, end := splitDuration(p.Duration)
		data.Experience = append(data.Experience, types.ExperienceEntry{
			Title:       p.ProjectName,
			Company:     p.Organization,
			Location:    p.Location,
			StartDate:   start,
			EndDate:     end,
			Description: p.ProjectDescription,
			IsCurrent:   strings.EqualFold(end, "Present"),
		})
	}

	for _, row := range enriched.Education {
		data.Education = append(data.Education, types.EducationEntry{
			Degree:         row.Degree,
			Institution:    row.Institution,
			GraduationDate: row.Year,
			GPA:            row.GPA,
		})
	}

	for _, cert := range enriched.Certifications {
		name := cert.Name
		if name == "" {
			name = cert.Issuer
		}
		if name != "" {
			data.Certifications = append(data.Certifications, name)
		}
	}

	return data
}

// flattenSkills merges category lists into a flat, case-insensitively
// deduplicated slice. Categories are visited in sorted order so output is
// deterministic.
func flattenSkills(categories map[string][]string) []string {
	if len(categories) == 0 {
		return nil
	}

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	var skills []string
	seen := make(map[string]bool)
	for _, name := range names {
		for _, skill := range categories[name] {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, skill)
			if len(skills) == types.MaxSkills {
				return skills
			}
		}
	}
	return skills
}

func splitTechnologies(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// splitDuration breaks "Mon YYYY - Mon YYYY" into its sides. Missing sides
// keep the entry renderable downstream.
func splitDuration(duration string) (start, end string) {
	parts := strings.SplitN(duration, " - ", 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}
