package extraction

import (
	"github.com/jonathan/resume-formatter/internal/types"
)

// AdvancedExtract runs the full parser set and scores the result. If any
// sub-parser panics, the whole strategy degrades to BasicExtract; partial
// advanced output is never mixed with basic output.
func AdvancedExtract(text string) (data *types.ExtractedData) {
	defer func() {
		if r := recover(); r != nil {
			data = BasicExtract(text)
		}
	}()

	contact := ExtractContactInfo(text)
	experience, otherExperience := ExtractExperience(text)
	education := ExtractEducation(text)
	skills := ExtractSkills(text)
	summary := ExtractSummary(text)

	return &types.ExtractedData{
		ContactInfo:     contact,
		Summary:         summary,
		Experience:      experience,
		OtherExperience: otherExperience,
		Education:       education,
		Skills:          skills,
		RawText:         text,
		ConfidenceScore: ConfidenceScore(contact, experience, education, skills),
	}
}
