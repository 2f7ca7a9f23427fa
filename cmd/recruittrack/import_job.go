package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
	"github.com/Anandkumae/recruit-track-sub000/internal/ingest"
)

var importDepartment string

var importJobCmd = &cobra.Command{
	Use:   "import-job <url>",
	Short: "Import a job posting from a careers page URL",
	Long:  `Fetch a job posting page, extract its title and description, and create an open job from it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImportJob,
}

func init() {
	importJobCmd.Flags().StringVar(&importDepartment, "department", "", "Department to file the job under")
	rootCmd.AddCommand(importJobCmd)
}

func runImportJob(cmd *cobra.Command, args []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	importer := ingest.NewImporter(database)
	job, err := importer.ImportFromURL(ctx, args[0], importDepartment, nil)
	if err != nil {
		return err
	}

	fmt.Printf("Imported job %s: %s\n", job.ID, job.Title)
	return nil
}
