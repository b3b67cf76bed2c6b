package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var summaryHeadings = Compile([]string{`(?i)(?:professional\s+)?summary`, `(?i)objective`})

func TestLocate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantOK    bool
		wantStart int
		wantEnd   int
	}{
		{
			name:   "no heading",
			text:   "Jane Doe\njane@example.com\nworked on many things",
			wantOK: false,
		},
		{
			name:      "section runs to next canonical heading",
			text:      "Jane Doe\nSummary\nSeasoned engineer.\nShips software.\nExperience\nAcme Corp",
			wantOK:    true,
			wantStart: 1,
			wantEnd:   4,
		},
		{
			name:      "section runs to end of text",
			text:      "Jane Doe\nObjective\nFind a great team.",
			wantOK:    true,
			wantStart: 1,
			wantEnd:   3,
		},
		{
			name:      "prose mentioning section word does not terminate",
			text:      "Summary\nI have experience with many skills and tools across several teams.\nMore detail here.",
			wantOK:    true,
			wantStart: 0,
			wantEnd:   3,
		},
		{
			name:      "lowercase heading word does not terminate",
			text:      "Summary\nFirst line.\nexperience with Go\nLast line.",
			wantOK:    true,
			wantStart: 0,
			wantEnd:   4,
		},
		{
			name:      "long line is not a heading",
			text:      "This is a very long introductory line that happens to contain the word summary somewhere in its prose text\nSummary\nActual content.",
			wantOK:    true,
			wantStart: 1,
			wantEnd:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := Locate(tt.text, summaryHeadings)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantStart, loc.Start)
				assert.Equal(t, tt.wantEnd, loc.End)
			}
		})
	}
}

func TestExtractIncludesHeadingLine(t *testing.T) {
	text := "Summary\nBuilds reliable systems.\nSkills\nGo, SQL"
	got := Extract(text, summaryHeadings)
	assert.Equal(t, "Summary\nBuilds reliable systems.", got)
}

func TestExtractMissingSectionReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Extract("no headings here", summaryHeadings))
}

func TestIsSectionHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Experience", true},
		{"EDUCATION", true},
		{"Technical Skills", false}, // does not start with a canonical word
		{"Skills And Tools", true},
		{"Experience with distributed systems at scale", false}, // too many words
		{"experience", false}, // not capitalized
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isSectionHeading(tt.line))
		})
	}
}
