// Package main provides the entry point for the RecruitTrack HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recruittrack",
	Short: "RecruitTrack recruiting API server",
	Long:  "RecruitTrack tracks job postings and candidate applications through a hiring pipeline, with AI-assisted resume matching, via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
