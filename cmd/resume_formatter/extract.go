package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-formatter/internal/db"
	"github.com/jonathan/resume-formatter/internal/enrich"
	"github.com/jonathan/resume-formatter/internal/extraction"
	"github.com/jonathan/resume-formatter/internal/ingestion"
	"github.com/jonathan/resume-formatter/internal/llm"
	"github.com/jonathan/resume-formatter/internal/observability"
	"github.com/jonathan/resume-formatter/internal/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured data from a resume text file",
	Long:  "Extract structured resume data from a plain text file. The strategy ladder falls back from LLM extraction through heuristic parsing; a strategy is only skipped when it fails outright.",
	RunE:  runExtract,
}

var (
	extractInputFile   string
	extractOutputFile  string
	extractStrategy    string
	extractAPIKey      string
	extractDatabaseURL string
	extractTTL         time.Duration
	extractVerbose     bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume text file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractStrategy, "strategy", "auto", "Extraction strategy: auto, llm, advanced or basic")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractDatabaseURL, "db-url", "", "Database URL for artifact storage (overrides DATABASE_URL env var)")
	extractCmd.Flags().DurationVar(&extractTTL, "ttl", db.DefaultRunTTL, "Retention period for stored artifacts")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print extraction summary boxes")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

// buildLadder assembles the strategy ladder for the requested mode. The
// returned closer releases the LLM client when one was created.
func buildLadder(ctx context.Context, strategy, apiKey string) (*extraction.Ladder, func(), error) {
	noop := func() {}

	switch strategy {
	case "basic":
		return extraction.NewLadder(extraction.BasicStrategy{}), noop, nil
	case "advanced":
		return extraction.NewLadder(extraction.AdvancedStrategy{}, extraction.BasicStrategy{}), noop, nil
	case "llm", "auto":
		if apiKey == "" {
			if strategy == "llm" {
				return nil, noop, fmt.Errorf("API key is required for --strategy llm (set GEMINI_API_KEY or use --api-key)")
			}
			return extraction.DefaultLadder(), noop, nil
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create LLM client: %w", err)
		}
		closer := func() { _ = client.Close() }
		if strategy == "llm" {
			return extraction.NewLadder(enrich.NewStrategy(client)), closer, nil
		}
		return extraction.NewLadder(
			enrich.NewStrategy(client),
			extraction.AdvancedStrategy{},
			extraction.BasicStrategy{},
		), closer, nil
	default:
		return nil, noop, fmt.Errorf("unknown strategy %q (want auto, llm, advanced or basic)", strategy)
	}
}

func runExtract(_ *cobra.Command, _ []string) error {
	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	ctx := context.Background()

	text, meta, err := ingestion.IngestFromFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", extractInputFile, err)
	}

	ladder, closeLLM, err := buildLadder(ctx, extractStrategy, apiKey)
	if err != nil {
		return err
	}
	defer closeLLM()

	result, err := ladder.Extract(ctx, text)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := result.Data.Validate(); err != nil {
		return fmt.Errorf("extracted data failed validation: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(result.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if extractVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintExtractedData(result.Data, result.Strategy)
		printer.PrintNotes(result.Notes)
	}

	if extractOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	} else {
		if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if err := validateOutput(extractOutputFile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Extracted with strategy %q (confidence %.2f)\n", result.Strategy, result.Data.ConfidenceScore)
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)
	}

	databaseURL := extractDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		if err := persistRun(ctx, databaseURL, meta.Source, text, result); err != nil {
			return err
		}
	}

	return nil
}

// validateOutput checks the written JSON against the repo schema when the
// schema file can be found. Only a genuine validation failure is fatal;
// schema loading problems just warn since the output is already on disk.
func validateOutput(outputFile string) error {
	schemaPath := schemas.ResolveSchemaPath("schemas/extracted_data.schema.json")
	if schemaPath == "" {
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, outputFile); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		switch {
		case errors.As(err, &validationErr):
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		case errors.As(err, &schemaLoadErr):
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not load schema for validation: %v\n", err)
		default:
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
		}
	}
	return nil
}

// persistRun stores the cleaned text and extraction result as run
// artifacts with the configured retention
func persistRun(ctx context.Context, databaseURL, source, text string, result *extraction.Result) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	runID, err := database.CreateRun(ctx, source, extractTTL)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	if err := database.SaveTextArtifact(ctx, runID, db.StepRawText, text); err != nil {
		return fmt.Errorf("failed to save raw text: %w", err)
	}
	if err := database.SaveArtifact(ctx, runID, db.StepExtractedData, result.Data); err != nil {
		return fmt.Errorf("failed to save extracted data: %w", err)
	}
	if err := database.CompleteRun(ctx, runID, "completed"); err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Saved to database (run: %s)\n", runID)
	return nil
}
