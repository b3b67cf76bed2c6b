package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_CodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json fence",
			input: "```json\n{\"contact_info\": {\"name\": \"Jane Doe\"}}\n```",
			want:  `{"contact_info": {"name": "Jane Doe"}}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"skills\": [\"ServiceNow\"]}\n```",
			want:  `{"skills": ["ServiceNow"]}`,
		},
		{
			name:  "fence with other language tag",
			input: "```javascript\n{\"title\": \"Developer\"}\n```",
			want:  `{"title": "Developer"}`,
		},
		{
			name:  "no fence at all",
			input: `{"title": "Developer"}`,
			want:  `{"title": "Developer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_SurroundingProse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single line preamble",
			input: "Here is the extracted data:\n{\"contact_info\": {\"email\": \"jane@example.com\"}}",
			want:  `{"contact_info": {"email": "jane@example.com"}}`,
		},
		{
			name:  "chatty multi sentence preamble",
			input: "I parsed the resume you provided. The candidate looks strong. Result: {\"title\": \"Platform Architect\", \"skills\": [\"AWS\"]}",
			want:  `{"title": "Platform Architect", "skills": ["AWS"]}`,
		},
		{
			name:  "preamble before an array",
			input: "The skill list follows:\n[\"ServiceNow\", \"JavaScript\"]",
			want:  `["ServiceNow", "JavaScript"]`,
		},
		{
			name:  "trailing sign-off after the object",
			input: "{\"summary_bullets\": [\"Delivers platforms\"]}\n\nLet me know if you need more detail.",
			want:  `{"summary_bullets": ["Delivers platforms"]}`,
		},
		{
			name:  "nested objects survive intact",
			input: "Output:\n{\"enriched\": {\"education\": {\"degree\": \"BSc\"}}}",
			want:  `{"enriched": {"education": {"degree": "BSc"}}}`,
		},
		{
			name:  "escaped quotes inside values",
			input: "Result: {\"description\": \"Known as \\\"the fixer\\\" on the team\"}",
			want:  `{"description": "Known as \"the fixer\" on the team"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "flat object",
			input: `{"name": "Jane Doe"}`,
			want:  `{"name": "Jane Doe"}`,
		},
		{
			name:  "object holding an array",
			input: `{"skills": ["ServiceNow", "Docker"]}`,
			want:  `{"skills": ["ServiceNow", "Docker"]}`,
		},
		{
			name:  "stops at the balancing brace",
			input: `{"name": "Jane"} trailing commentary`,
			want:  `{"name": "Jane"}`,
		},
		{
			name:  "braces inside string values do not close the object",
			input: `{"template": "Dear {recruiter},"}`,
			want:  `{"template": "Dear {recruiter},"}`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "no leading brace",
			input: "plain prose",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONObject(tt.input))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "flat array",
			input: `["ServiceNow", "JavaScript"]`,
			want:  `["ServiceNow", "JavaScript"]`,
		},
		{
			name:  "nested arrays",
			input: `[["Jan 2020", "Dec 2021"], ["Jan 2022", "Present"]]`,
			want:  `[["Jan 2020", "Dec 2021"], ["Jan 2022", "Present"]]`,
		},
		{
			name:  "array of objects",
			input: `[{"degree": "BSc"}, {"degree": "MSc"}]`,
			want:  `[{"degree": "BSc"}, {"degree": "MSc"}]`,
		},
		{
			name:  "stops at the balancing bracket",
			input: `[1, 2, 3] and more words`,
			want:  `[1, 2, 3]`,
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "no leading bracket",
			input: "plain prose",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONArray(tt.input))
		})
	}
}
