package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-formatter/internal/db"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired extraction runs and their artifacts",
	RunE:  runPurge,
}

var purgeDatabaseURL string

func init() {
	purgeCmd.Flags().StringVar(&purgeDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")

	rootCmd.AddCommand(purgeCmd)
}

func runPurge(_ *cobra.Command, _ []string) error {
	databaseURL := purgeDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	purged, err := database.PurgeExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired runs: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Purged %d expired runs\n", purged)
	return nil
}
