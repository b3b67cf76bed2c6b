// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-formatter/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}

// PrintExtractedData outputs a human-readable summary of extraction results.
func (p *Printer) PrintExtractedData(data *types.ExtractedData, strategy string) {
	if data == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", orDash(data.ContactInfo.Name)))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", orDash(data.ContactInfo.Title)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", orDash(data.ContactInfo.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", orDash(data.ContactInfo.Phone)))
	sb.WriteString(fmt.Sprintf("Strategy:   %s\n", strategy))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", data.ConfidenceScore))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(data.Experience)))
	count := min(len(data.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := data.Experience[i]
		line := exp.Company
		if exp.Title != "" {
			line = fmt.Sprintf("%s, %s", exp.Title, exp.Company)
		}
		if len(line) > 45 {
			line = line[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", line))
	}
	if len(data.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Experience)-maxItemsToShow))
	}
	sb.WriteString("\n")

	if len(data.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(data.Skills)))
		skills := strings.Join(data.Skills[:min(len(data.Skills), maxItemsToShow)], ", ")
		if len(skills) > 50 {
			skills = skills[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", skills))
		if len(data.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Skills)-maxItemsToShow))
		}
	}

	if data.Enriched != nil {
		sb.WriteString("\nEnriched: yes")
	}

	p.printBox("EXTRACTED RESUME DATA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNotes outputs the fallback notes collected by the strategy ladder.
func (p *Printer) PrintNotes(notes []string) {
	if len(notes) == 0 {
		return
	}

	var sb strings.Builder
	for i, note := range notes {
		if len(note) > 50 {
			note = note[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s", note))
		if i < len(notes)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("STRATEGY FALLBACKS", sb.String())
}

// PrintWarnings outputs render-context warnings, or a confirmation box when
// there are none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))

	for i, w := range warnings {
		if len(w) > 50 {
			w = w[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RENDER WARNINGS", sb.String())
}
