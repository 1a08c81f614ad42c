package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"elevate-cv/internal/domain"
	"elevate-cv/internal/service"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Print the text extracted from a resume PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

var (
	extractJSON      bool
	extractExtractor string
)

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print pages and metadata as JSON")
	extractCmd.Flags().StringVar(&extractExtractor, "extractor", "", "Extraction backend (ledongthuc, fitz); overrides PDF_EXTRACTOR")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	c, err := newContainer()
	if err != nil {
		return err
	}

	extractor := c.Extractor
	if extractExtractor != "" {
		extractor, err = service.NewTextExtractor(extractExtractor, c.Logger)
		if err != nil {
			return err
		}
	}

	data, err := readPDF(args[0], c.Config.GetMaxFileSize())
	if err != nil {
		return err
	}

	extracted, err := extractor.Extract(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}
	if strings.TrimSpace(extracted.Content) == "" {
		return fmt.Errorf("%s: %w", args[0], domain.ErrNoExtractableText)
	}

	if extractJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(extracted)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), extracted.Content)
	return err
}

// readPDF applies the same filename and size checks as the upload endpoint.
func readPDF(path string, maxFileSize int64) ([]byte, error) {
	if _, err := service.CleanFilename(path); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("%s: %s", path, service.FileTooLargeMessage(maxFileSize))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}
