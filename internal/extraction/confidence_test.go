package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-formatter/internal/types"
)

func TestConfidenceScore(t *testing.T) {
	fullContact := types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "4155550132"}
	oneExp := []types.ExperienceEntry{{Company: "Acme"}}
	twoExp := []types.ExperienceEntry{{Company: "Acme"}, {Company: "Globex"}}
	oneEdu := []types.EducationEntry{{Institution: "State"}}
	fourSkills := []string{"Go", "SQL", "AWS", "Docker"}

	tests := []struct {
		name      string
		contact   types.ContactInfo
		exp       []types.ExperienceEntry
		edu       []types.EducationEntry
		skills    []string
		want      float64
	}{
		{
			name: "nothing found scores zero",
			want: 0.0,
		},
		{
			name:    "everything found scores exactly one",
			contact: fullContact,
			exp:     twoExp,
			edu:     oneEdu,
			skills:  fourSkills,
			want:    1.0,
		},
		{
			name:    "contact only",
			contact: fullContact,
			want:    0.40,
		},
		{
			name: "single experience",
			exp:  oneExp,
			want: 0.20,
		},
		{
			name: "multiple experience",
			exp:  twoExp,
			want: 0.30,
		},
		{
			name: "education only",
			edu:  oneEdu,
			want: 0.15,
		},
		{
			name:   "few skills",
			skills: []string{"Go", "SQL", "AWS"},
			want:   0.10,
		},
		{
			name:   "many skills",
			skills: fourSkills,
			want:   0.15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfidenceScore(tt.contact, tt.exp, tt.edu, tt.skills)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}
