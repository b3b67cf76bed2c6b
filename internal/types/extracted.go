// Package types provides type definitions for structured data used throughout the resume-formatter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// MaxExperienceEntries caps how many positions are kept in ExtractedData
const MaxExperienceEntries = 5

// MaxSkills caps how many skills are kept in ExtractedData
const MaxSkills = 20

// ContactInfo represents candidate contact details. All fields are optional;
// extraction fills what it can find.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceEntry represents a single position or project.
// Dates are opaque strings; extraction does not normalize them.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
	IsCurrent   bool   `json:"is_current"`
}

// EducationEntry represents an education record
type EducationEntry struct {
	Degree         string `json:"degree,omitempty"`
	Institution    string `json:"institution,omitempty"`
	Location       string `json:"location,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	Honors         string `json:"honors,omitempty"`
}

// ExtractedData is the root result of resume extraction. Experience holds
// at most 5 detailed entries; anything found beyond the cap is relocated to
// OtherExperience rather than dropped.
type ExtractedData struct {
	ContactInfo     ContactInfo         `json:"contact_info"`
	Summary         string              `json:"summary,omitempty"`
	Experience      []ExperienceEntry   `json:"experience" validate:"max=5"`
	OtherExperience []ExperienceEntry   `json:"other_experience,omitempty"`
	Education       []EducationEntry    `json:"education"`
	Skills          []string            `json:"skills" validate:"max=20"`
	Certifications  []string            `json:"certifications,omitempty"`
	RawText         string              `json:"raw_text,omitempty"`
	ConfidenceScore float64             `json:"confidence_score" validate:"gte=0,lte=1"`
	Enriched        *EnrichedExtraction `json:"enriched,omitempty"`
}

var validate = validator.New()

// Validate checks the structural invariants: confidence in [0,1],
// at most 5 experience entries and at most 20 skills.
func (d *ExtractedData) Validate() error {
	return validate.Struct(d)
}

// Update holds optional replacements for top-level extracted fields.
// Nil fields are left untouched; non-nil fields replace wholesale.
type Update struct {
	ContactInfo *ContactInfo      `json:"contact_info,omitempty"`
	Summary     *string           `json:"summary,omitempty"`
	Experience  []ExperienceEntry `json:"experience,omitempty"`
	Education   []EducationEntry  `json:"education,omitempty"`
	Skills      []string          `json:"skills,omitempty"`
}

// Apply overlays the update onto the extracted data. The overlay is shallow:
// a supplied field replaces the whole field, there is no per-entry merging.
func (d *ExtractedData) Apply(u Update) {
	if u.ContactInfo != nil {
		d.ContactInfo = *u.ContactInfo
	}
	if u.Summary != nil {
		d.Summary = *u.Summary
	}
	if u.Experience != nil {
		d.Experience = u.Experience
	}
	if u.Education != nil {
		d.Education = u.Education
	}
	if u.Skills != nil {
		d.Skills = u.Skills
	}
}
