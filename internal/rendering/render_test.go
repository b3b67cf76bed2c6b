package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDefaultTemplate(t *testing.T) {
	ctx, _ := BuildContext(enrichedFixture(2))

	out, err := Render("resume", DefaultTemplate(), ctx)
	require.NoError(t, err)

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Platform Architect")
	assert.Contains(t, out, "PROFESSIONAL SUMMARY")
	assert.Contains(t, out, "- Delivers platforms")
	assert.Contains(t, out, "Cloud: AWS, GCP")
	assert.Contains(t, out, "Project 1 | Acme Corp")
	assert.Contains(t, out, "Technologies: ServiceNow, REST")
	assert.Contains(t, out, "EDUCATION")
	assert.Contains(t, out, "CSA (ServiceNow)")
}

func TestRenderParseError(t *testing.T) {
	_, err := Render("broken", "{{.Name", &Context{})
	require.Error(t, err)

	var tmplErr *TemplateError
	assert.ErrorAs(t, err, &tmplErr)
}

func TestRenderExecuteError(t *testing.T) {
	_, err := Render("missing-field", "{{.NoSuchField}}", &Context{})
	require.Error(t, err)

	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("Name: {{.Name}}"), 0644))

	out, err := RenderFile(path, &Context{Name: "Jane Doe"})
	require.NoError(t, err)
	assert.Equal(t, "Name: Jane Doe", out)
}

func TestRenderFileNotFound(t *testing.T) {
	_, err := RenderFile("does-not-exist.tmpl", &Context{})
	require.Error(t, err)

	var tmplErr *TemplateError
	assert.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, err.Error(), "not found")
}
