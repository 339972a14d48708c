package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resumelab/resume-analyzer/internal/config"
	"github.com/resumelab/resume-analyzer/internal/ingestion"
	"github.com/resumelab/resume-analyzer/internal/observability"
	"github.com/resumelab/resume-analyzer/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract a candidate profile from a resume file",
	Long: `Reads a resume (.pdf, .docx or plain text), runs the extraction pipeline
and prints the resulting candidate profile as JSON.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted profile summary to stderr")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, analyzeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}

	text, err := readResumeText(cfg.Resume)
	if err != nil {
		return err
	}

	profile := pipeline.Process(context.Background(), text)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintProfile(profile)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(profile); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return nil
}

// loadMergedConfig loads the optional JSON config file and validates it.
func loadMergedConfig(_ *cobra.Command, path string) (config.Config, error) {
	var cfg config.Config
	if path == "" {
		return cfg, nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return cfg, err
	}
	return *loaded, nil
}

// readResumeText reads a resume file and decodes it to plain text.
func readResumeText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	text := ingestion.ExtractText(path, "", data)
	if text == "" {
		return "", fmt.Errorf("no text could be extracted from %s", path)
	}
	return text, nil
}
