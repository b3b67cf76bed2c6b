package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "normalizes CRLF",
			input: "Jane Doe\r\nEngineer\r",
			want:  "Jane Doe\nEngineer",
		},
		{
			name:  "collapses inner whitespace",
			input: "Jane    Doe\t\tEngineer",
			want:  "Jane Doe Engineer",
		},
		{
			name:  "preserves bullet markers",
			input: "Skills\n• ServiceNow\n- Docker\no Git",
			want:  "Skills\n• ServiceNow\n- Docker\no Git",
		},
		{
			name:  "indented bullet keeps its marker",
			input: "  • Nested bullet",
			want:  "• Nested bullet",
		},
		{
			name:  "caps blank runs at two",
			input: "Summary\n\n\n\n\nExperience",
			want:  "Summary\n\nExperience",
		},
		{
			name:  "trims outer whitespace",
			input: "\n\nJane Doe\n\n",
			want:  "Jane Doe",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestIsBulletLine(t *testing.T) {
	assert.True(t, isBulletLine("• Built integrations"))
	assert.True(t, isBulletLine("  - Built integrations"))
	assert.True(t, isBulletLine("* Built integrations"))
	assert.True(t, isBulletLine("o Built integrations"))
	assert.False(t, isBulletLine("Built integrations"))
	assert.False(t, isBulletLine("o'clock start"))
}

func TestIngestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane   Doe\r\nEngineer\n"), 0644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEngineer", text)
	require.NotNil(t, meta)
	assert.Equal(t, path, meta.Source)
	assert.Equal(t, 2, meta.Lines)
	assert.Equal(t, 3, meta.Words)
	assert.NotEmpty(t, meta.Hash)
}

func TestIngestFromFileMissing(t *testing.T) {
	_, _, err := IngestFromFile("no-such-file.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	meta := NewMetadata("Jane Doe", "resume.txt")
	require.NoError(t, WriteOutput(outDir, "Jane Doe", meta))

	cleaned, err := os.ReadFile(filepath.Join(outDir, "resume.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", string(cleaned))

	metaBytes, err := os.ReadFile(filepath.Join(outDir, "resume.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(metaBytes), `"hash"`)
}
