// Package main provides the entry point for the resume analyzer CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume analysis and ATS scoring",
	Long:  "Resume Analyzer extracts a structured candidate profile from resume documents and scores it against job descriptions, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
