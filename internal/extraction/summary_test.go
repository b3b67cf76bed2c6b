package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSummary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "joins lines until next section heading",
			text: "Jane Doe\nProfessional Summary\nTen years building systems.\nLikes reliable software.\nExperience\nAcme Corp",
			want: "Ten years building systems. Likes reliable software.",
		},
		{
			name: "no heading means no summary",
			text: "Jane Doe\nAcme Corp engineer since 2015",
			want: "",
		},
		{
			name: "prose mentioning a section word keeps going",
			text: "Objective\nSeeking roles with broad experience requirements across modern stacks.",
			want: "Seeking roles with broad experience requirements across modern stacks.",
		},
		{
			name: "uppercase stop heading ends the summary",
			text: "Summary\nSolid generalist.\nWORK HISTORY\nAcme",
			want: "Solid generalist.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSummary(tt.text))
		})
	}
}

func TestExtractSummaryWindowBound(t *testing.T) {
	lines := []string{"Summary"}
	for i := 0; i < 30; i++ {
		lines = append(lines, "Line of ongoing prose without any stop words at all.")
	}
	got := ExtractSummary(strings.Join(lines, "\n"))
	// Only the window after the heading is collected
	assert.Equal(t, summaryWindow-1, strings.Count(got, "Line of ongoing prose"))
}

func TestIsTitleString(t *testing.T) {
	assert.True(t, isTitleString("Work History"))
	assert.True(t, isTitleString("Skills"))
	assert.False(t, isTitleString("Seeking roles with experience"))
	assert.False(t, isTitleString("WORKED"))
}
