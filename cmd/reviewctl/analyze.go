package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	apperrors "elevate-cv/pkg/errors"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.pdf>",
	Short: "Review a resume PDF and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeTimeout time.Duration
	analyzeRaw     bool
)

func init() {
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "Overall deadline for extraction and analysis")
	analyzeCmd.Flags().BoolVar(&analyzeRaw, "raw", false, "Print only the analysis text")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	c, err := newContainer()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), analyzeTimeout)
	defer cancel()

	result, err := c.ResumeService.Review(ctx, filepath.Base(args[0]), f)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return errors.New(appErr.Detail())
		}
		return err
	}

	if analyzeRaw {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Analysis)
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
