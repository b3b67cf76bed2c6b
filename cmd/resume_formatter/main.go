// Package main provides the entry point for the resume formatter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_formatter",
	Short: "Structured data extraction and rendering for resume text",
	Long:  "resume_formatter turns raw resume text into structured data and renders it through templates. Extraction prefers the Gemini-backed strategy when an API key is available and degrades to heuristic parsing otherwise.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
