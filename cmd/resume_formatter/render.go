package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-formatter/internal/observability"
	"github.com/jonathan/resume-formatter/internal/rendering"
	"github.com/jonathan/resume-formatter/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render extracted resume data through a template",
	Long:  "Render extracted resume data as a formatted document. Uses the built-in plain-text template unless a template file is given. Context warnings are printed to stderr.",
	RunE:  runRender,
}

var (
	renderDataFile     string
	renderTemplateFile string
	renderOutputFile   string
)

func init() {
	renderCmd.Flags().StringVarP(&renderDataFile, "data", "d", "", "Path to extracted data JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTemplateFile, "template", "t", "", "Path to template file (default: built-in template)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output file (default: stdout)")
	_ = renderCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(renderDataFile)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	var data types.ExtractedData
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("failed to parse data file: %w", err)
	}

	renderCtx, warnings := rendering.BuildContext(&data)
	observability.NewPrinter(os.Stderr).PrintWarnings(warnings)

	var output string
	if renderTemplateFile != "" {
		output, err = rendering.RenderFile(renderTemplateFile, renderCtx)
	} else {
		output, err = rendering.Render("default", rendering.DefaultTemplate(), renderCtx)
	}
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if renderOutputFile == "" {
		_, _ = fmt.Fprint(os.Stdout, output)
		return nil
	}

	if err := os.WriteFile(renderOutputFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", renderOutputFile)
	return nil
}
