package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata("Jane Doe\nServiceNow Developer", "resumes/jane.txt")

	assert.Equal(t, "resumes/jane.txt", meta.Source)
	assert.Equal(t, 2, meta.Lines)
	assert.Equal(t, 4, meta.Words)
	assert.Equal(t, len("Jane Doe\nServiceNow Developer"), meta.Chars)
	assert.Len(t, meta.Hash, 64)

	_, err := time.Parse(time.RFC3339, meta.Timestamp)
	assert.NoError(t, err)
}

func TestNewMetadataEmptyContent(t *testing.T) {
	meta := NewMetadata("", "")
	assert.Equal(t, 0, meta.Lines)
	assert.Equal(t, 0, meta.Words)
	assert.Equal(t, 0, meta.Chars)
}

func TestMetadataHashIsStable(t *testing.T) {
	first := NewMetadata("same content", "a.txt")
	second := NewMetadata("same content", "b.txt")
	assert.Equal(t, first.Hash, second.Hash)

	changed := NewMetadata("different content", "a.txt")
	assert.NotEqual(t, first.Hash, changed.Hash)
}

func TestMetadataToJSON(t *testing.T) {
	meta := NewMetadata("Jane Doe", "resume.txt")

	data, err := meta.ToJSON()
	require.NoError(t, err)

	var decoded Metadata
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, meta.Hash, decoded.Hash)
	assert.Equal(t, meta.Source, decoded.Source)
	assert.Equal(t, meta.Words, decoded.Words)
}
