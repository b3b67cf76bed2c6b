package extraction

import "github.com/jonathan/resume-formatter/internal/types"

// Confidence weights. Contact info contributes up to 0.40, experience up to
// 0.30, education 0.15 and skills up to 0.15.
const (
	weightName          = 0.15
	weightEmail         = 0.15
	weightPhone         = 0.10
	weightAnyExperience = 0.20
	weightMultipleExp   = 0.10
	weightAnyEducation  = 0.15
	weightAnySkills     = 0.10
	weightManySkills    = 0.05
)

// ConfidenceScore rates extraction completeness on [0, 1]. The score is a
// pure function of which fields were found; it says nothing about whether
// the found values are correct.
func ConfidenceScore(contact types.ContactInfo, experience []types.ExperienceEntry, education []types.EducationEntry, skills []string) float64 {
	score := 0.0

	if contact.Name != "" {
		score += weightName
	}
	if contact.Email != "" {
		score += weightEmail
	}
	if contact.Phone != "" {
		score += weightPhone
	}

	if len(experience) > 0 {
		score += weightAnyExperience
		if len(experience) > 1 {
			score += weightMultipleExp
		}
	}

	if len(education) > 0 {
		score += weightAnyEducation
	}

	if len(skills) > 0 {
		score += weightAnySkills
		if len(skills) > 3 {
			score += weightManySkills
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
