// Package main provides a command line front end to the resume review pipeline.
package main

import (
	"fmt"
	"os"

	"elevate-cv/internal/config"
	"elevate-cv/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "reviewctl",
	Short:         "Extract and review resume PDFs from the command line",
	Long:          "reviewctl runs the same extraction and analysis pipeline as the HTTP server against local PDF files.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr (debug, info, warn, error)")
}

// newContainer wires the services from the environment. Logs go to stderr so
// stdout only carries command output.
func newContainer() (*config.Container, error) {
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	appLogger := logger.NewLoggerWithWriter(logLevel, cfg.GetLogFormat(), os.Stderr).With("app", "reviewctl")
	return config.NewContainerWithConfig(cfg, appLogger)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
