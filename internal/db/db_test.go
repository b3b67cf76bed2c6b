package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-formatter/internal/types"
)

func TestStepConstants(t *testing.T) {
	steps := []string{StepRawText, StepExtractedData, StepRenderContext, StepRenderedResume}
	seen := make(map[string]bool)
	for _, step := range steps {
		assert.NotEmpty(t, step)
		assert.False(t, seen[step], "duplicate step constant %q", step)
		seen[step] = true
	}
}

func TestDefaultRunTTL(t *testing.T) {
	assert.Equal(t, 30*24*time.Hour, DefaultRunTTL)
}

func TestRunJSONRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	run := Run{
		Source:    "resumes/jane.txt",
		Status:    "completed",
		CreatedAt: now,
		ExpiresAt: now.Add(DefaultRunTTL),
	}

	data, err := json.Marshal(run)
	require.NoError(t, err)

	var decoded Run
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, run.Source, decoded.Source)
	assert.Equal(t, run.Status, decoded.Status)
	assert.True(t, run.ExpiresAt.Equal(decoded.ExpiresAt))
	assert.Nil(t, decoded.CompletedAt)
}

func TestExtractedDataArtifactEncoding(t *testing.T) {
	// The artifact payload must survive the JSONB round trip intact
	original := &types.ExtractedData{
		ContactInfo:     types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Skills:          []string{"ServiceNow", "Docker"},
		ConfidenceScore: 0.85,
	}

	payload, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded types.ExtractedData
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, original.ContactInfo, decoded.ContactInfo)
	assert.Equal(t, original.Skills, decoded.Skills)
	assert.InDelta(t, original.ConfidenceScore, decoded.ConfidenceScore, 1e-9)
}
