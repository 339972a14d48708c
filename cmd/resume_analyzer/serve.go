package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resumelab/resume-analyzer/internal/config"
	"github.com/resumelab/resume-analyzer/internal/server"
)

var (
	serveConfigPath string
	serveAddr       string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for resume upload, analysis and ATS matching.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values; the database URL comes from the
config file or the DATABASE_URL environment variable.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") || cfg.Addr == "" {
		cfg.Addr = serveAddr
	}

	srvCfg, err := buildServerConfig(cfg, os.Getenv("DATABASE_URL"))
	if err != nil {
		return err
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}

// buildServerConfig resolves the server settings from the loaded config and
// the environment. The config file's database_url takes precedence over the
// DATABASE_URL environment variable; one of the two must be set.
func buildServerConfig(cfg config.Config, envDatabaseURL string) (server.Config, error) {
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = envDatabaseURL
	}
	if databaseURL == "" {
		return server.Config{}, fmt.Errorf("database URL is required: set DATABASE_URL or 'database_url' in the config file")
	}

	return server.Config{
		Addr:           cfg.Addr,
		DatabaseURL:    databaseURL,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, nil
}
