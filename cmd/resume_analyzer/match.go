package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resumelab/resume-analyzer/internal/ats"
	"github.com/resumelab/resume-analyzer/internal/fetch"
	"github.com/resumelab/resume-analyzer/internal/observability"
	"github.com/resumelab/resume-analyzer/internal/pipeline"
	"github.com/resumelab/resume-analyzer/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long: `Runs the extraction pipeline over a resume, matches the profile against a
job description (from a file or fetched from a URL) and prints the ATS match
result as JSON.`,
	RunE: runMatch,
}

var (
	matchConfigPath string
	matchResume     string
	matchJob        string
	matchJobURL     string
	matchJobTitle   string
	matchCompany    string
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	matchCmd.Flags().StringVar(&matchJobTitle, "job-title", "", "Job title for the report")
	matchCmd.Flags().StringVar(&matchCompany, "company", "", "Company name for the report")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print formatted profile and match summaries to stderr")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, matchConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = matchResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = matchJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = matchJobURL
	}
	if cmd.Flags().Changed("job-title") {
		cfg.JobTitle = matchJobTitle
	}
	if cmd.Flags().Changed("company") {
		cfg.Company = matchCompany
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	ctx := context.Background()

	text, err := readResumeText(cfg.Resume)
	if err != nil {
		return err
	}

	jobDescription, err := readJobDescription(ctx, cfg.Job, cfg.JobURL)
	if err != nil {
		return err
	}

	profile := pipeline.Process(ctx, text)
	result := ats.Analyze(profile, types.JobRequirement{
		JobDescription: jobDescription,
		JobTitle:       cfg.JobTitle,
		CompanyName:    cfg.Company,
	})

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(profile)
		printer.PrintMatchResult(result)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode match result: %w", err)
	}
	return nil
}

// readJobDescription loads the job description from a file or fetches it.
func readJobDescription(ctx context.Context, jobPath, jobURL string) (string, error) {
	if jobPath != "" {
		data, err := os.ReadFile(jobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", jobPath, err)
		}
		return string(data), nil
	}

	text, err := fetch.NewClient(nil).FetchJobDescription(ctx, jobURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return text, nil
}
