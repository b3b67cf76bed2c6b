package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletizeSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		want    []string
	}{
		{
			name:    "splits sentences",
			summary: "Ten years building platforms. Led teams across regions!",
			want:    []string{"Ten years building platforms.", "Led teams across regions!"},
		},
		{
			name:    "splits newlines first",
			summary: "Reliable engineer\nShips weekly",
			want:    []string{"Reliable engineer", "Ships weekly"},
		},
		{
			name:    "strips bullet prefixes",
			summary: "• Reliable engineer\n- Ships weekly",
			want:    []string{"Reliable engineer", "Ships weekly"},
		},
		{
			name:    "deduplicates case-insensitively",
			summary: "Reliable. reliable. Fast.",
			want:    []string{"Reliable.", "Fast."},
		},
		{
			name:    "empty input",
			summary: "   ",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BulletizeSummary(tt.summary))
		})
	}
}

func TestBulletizeSummaryCap(t *testing.T) {
	var sentences []string
	for i := 0; i < 15; i++ {
		sentences = append(sentences, "Sentence number "+strings.Repeat("x", i+1)+".")
	}
	got := BulletizeSummary(strings.Join(sentences, " "))
	assert.Len(t, got, maxSummaryBullets)
}
