package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-formatter/internal/types"
)

func writeTempData(t *testing.T, data *types.ExtractedData) string {
	t.Helper()
	content, err := json.Marshal(data)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestRunRender_DefaultTemplate(t *testing.T) {
	dataFile := writeTempData(t, &types.ExtractedData{
		ContactInfo: types.ContactInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
		Summary:         "ServiceNow developer with six years of platform experience.",
		Skills:          []string{"ServiceNow", "JavaScript"},
		ConfidenceScore: 0.8,
	})
	outputFile := filepath.Join(t.TempDir(), "resume.txt")

	renderDataFile = dataFile
	renderTemplateFile = ""
	renderOutputFile = outputFile

	require.NoError(t, runRender(nil, nil))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	output := string(content)
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "ServiceNow")
}

func TestRunRender_CustomTemplate(t *testing.T) {
	dataFile := writeTempData(t, &types.ExtractedData{
		ContactInfo:     types.ContactInfo{Name: "Jane Doe"},
		ConfidenceScore: 0.5,
	})
	templateFile := filepath.Join(t.TempDir(), "custom.tmpl")
	require.NoError(t, os.WriteFile(templateFile, []byte("Candidate: {{.Name}}"), 0644))
	outputFile := filepath.Join(t.TempDir(), "resume.txt")

	renderDataFile = dataFile
	renderTemplateFile = templateFile
	renderOutputFile = outputFile

	require.NoError(t, runRender(nil, nil))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "Candidate: Jane Doe", string(content))
}

func TestRunRender_MissingDataFile(t *testing.T) {
	renderDataFile = filepath.Join(t.TempDir(), "missing.json")
	renderTemplateFile = ""
	renderOutputFile = ""

	err := runRender(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestRunRender_InvalidJSON(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(dataFile, []byte("not json"), 0644))

	renderDataFile = dataFile
	renderTemplateFile = ""
	renderOutputFile = ""

	err := runRender(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse data file")
}
