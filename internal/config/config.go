// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"` // Path to resume file (.pdf, .docx or plain text)
	Job    string `json:"job,omitempty"`    // Path to job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job description from

	// Job metadata
	JobTitle string `json:"job_title,omitempty"` // Job title for match reports
	Company  string `json:"company,omitempty"`   // Company name for match reports

	// Server
	Addr           string `json:"addr,omitempty"`             // HTTP listen address
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty"` // Upload size cap

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	JSONOutput  bool   `json:"json_output,omitempty"`  // Emit machine-readable JSON instead of formatted text
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// DefaultMaxUploadBytes caps resume uploads at 10 MiB.
const DefaultMaxUploadBytes = 10 << 20

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.MaxUploadBytes == 0 {
		if defaults.MaxUploadBytes > 0 {
			result.MaxUploadBytes = defaults.MaxUploadBytes
		} else {
			result.MaxUploadBytes = DefaultMaxUploadBytes
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
