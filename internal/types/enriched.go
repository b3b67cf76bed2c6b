package types

// EnrichedExtraction carries the richer structure produced by LLM extraction.
// Heuristic extraction leaves it nil; downstream consumers must treat every
// field as optional.
type EnrichedExtraction struct {
	Title                string              `json:"title,omitempty"`
	SummaryBullets       []string            `json:"summary_bullets,omitempty"`
	SkillsCategories     map[string][]string `json:"skills_categories,omitempty"`
	DetailedExperience   []DetailedProject   `json:"detailed_experience,omitempty"`
	OtherNotableProjects []NotableProject    `json:"other_notable_projects,omitempty"`
	Education            []EducationRow      `json:"education,omitempty"`
	Certifications       []CertificationRow  `json:"certifications,omitempty"`
}

// DetailedProject is a fully described position or project (at most 5 per resume)
type DetailedProject struct {
	ProjectName        string   `json:"project_name,omitempty"`
	Organization       string   `json:"organization,omitempty"`
	Duration           string   `json:"duration,omitempty"` // "Mon YYYY - Mon YYYY" or "Mon YYYY - Present"
	Location           string   `json:"location,omitempty"`
	ProjectDescription string   `json:"project_description,omitempty"`
	KeyAchievements    []string `json:"key_achievements,omitempty"`
	TechnologiesUsed   []string `json:"technologies_used,omitempty"`
}

// NotableProject is a condensed entry for experience beyond the detailed cap
type NotableProject struct {
	ProjectName  string   `json:"project_name,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// EducationRow is one education record destined for a table row
type EducationRow struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// CertificationRow is one certification record
type CertificationRow struct {
	Name         string `json:"name,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	Year         string `json:"year,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}
