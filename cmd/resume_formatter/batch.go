package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-formatter/internal/extraction"
	"github.com/jonathan/resume-formatter/internal/ingestion"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract structured data from a directory of resume text files",
	Long:  "Extract structured data from every matching file in a directory, writing one JSON file per input. Files are processed concurrently; the first failure aborts the batch.",
	RunE:  runBatch,
}

var (
	batchInputDir    string
	batchOutputDir   string
	batchPattern     string
	batchConcurrency int
	batchStrategy    string
	batchAPIKey      string
)

func init() {
	batchCmd.Flags().StringVar(&batchInputDir, "in-dir", "", "Directory containing resume text files (required)")
	batchCmd.Flags().StringVar(&batchOutputDir, "out-dir", "", "Directory for output JSON files (required)")
	batchCmd.Flags().StringVar(&batchPattern, "pattern", "*.txt", "Glob pattern for input files")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of files to process in parallel")
	batchCmd.Flags().StringVar(&batchStrategy, "strategy", "auto", "Extraction strategy: auto, llm, advanced or basic")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = batchCmd.MarkFlagRequired("in-dir")
	_ = batchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	apiKey := batchAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	if batchConcurrency < 1 {
		batchConcurrency = 1
	}

	files, err := filepath.Glob(filepath.Join(batchInputDir, batchPattern))
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", batchPattern, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matching %q in %s", batchPattern, batchInputDir)
	}

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx := context.Background()

	ladder, closeLLM, err := buildLadder(ctx, batchStrategy, apiKey)
	if err != nil {
		return err
	}
	defer closeLLM()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, file := range files {
		file := file
		g.Go(func() error {
			outputFile, err := processBatchFile(gctx, ladder, file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s -> %s\n", file, outputFile)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Processed %d files\n", len(files))
	return nil
}

func processBatchFile(ctx context.Context, ladder *extraction.Ladder, file string) (string, error) {
	text, _, err := ingestion.IngestFromFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to ingest: %w", err)
	}

	result, err := ladder.Extract(ctx, text)
	if err != nil {
		return "", fmt.Errorf("extraction failed: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(result.Data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	outputFile := filepath.Join(batchOutputDir, base+".json")
	if err := os.WriteFile(outputFile, jsonBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to write output: %w", err)
	}
	return outputFile, nil
}
