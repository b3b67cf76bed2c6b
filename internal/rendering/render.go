package rendering

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed resume.tmpl
var defaultTemplate string

// DefaultTemplate returns the built-in plain-text resume template
func DefaultTemplate() string {
	return defaultTemplate
}

// Render executes a template over the context
func Render(name, templateText string, ctx *Context) (string, error) {
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(templateText)
	if err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to parse template %s", name),
			Cause:   err,
		}
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, ctx); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to execute template %s", name),
			Cause:   err,
		}
	}

	return result.String(), nil
}

// RenderFile reads a template from disk and executes it over the context
func RenderFile(templatePath string, ctx *Context) (string, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	return Render(templatePath, string(content), ctx)
}
