package service

import (
	"bytes"
	"context"
	"fmt"

	"elevate-cv/internal/domain"

	"github.com/ledongthuc/pdf"
)

// LedongthucExtractor extracts text with the pure Go ledongthuc/pdf reader
type LedongthucExtractor struct {
	logger domain.Logger
}

// NewLedongthucExtractor creates a new pure Go extractor
func NewLedongthucExtractor(logger domain.Logger) *LedongthucExtractor {
	return &LedongthucExtractor{logger: logger}
}

func (e *LedongthucExtractor) Name() string {
	return ExtractorLedongthuc
}

// Extract returns the sanitized text of every page. The reader panics on some
// malformed files; those are reported as domain.ErrInvalidPDF.
func (e *LedongthucExtractor) Extract(ctx context.Context, data []byte) (extracted *domain.ExtractedText, err error) {
	if err := checkPDFHeader(data); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			extracted = nil
			err = fmt.Errorf("%w: %v", domain.ErrInvalidPDF, r)
		}
	}()

	readable := readableHeader(data)
	reader, err := pdf.NewReader(bytes.NewReader(readable), int64(len(readable)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPDF, err)
	}

	numPages := reader.NumPage()
	meta := domain.DocumentMetadata{
		PageCount: numPages,
		FileSize:  int64(len(data)),
	}
	if info := reader.Trailer().Key("Info"); !info.IsNull() {
		meta.Title = info.Key("Title").Text()
		meta.Author = info.Key("Author").Text()
	}

	pages := make([]string, 0, numPages)
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page", i, "total", numPages, "error", err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, sanitizeText(text))
	}

	e.logger.Debug("PDF extracted", "extractor", e.Name(), "pages", numPages)
	return newExtractedText(pages, meta), nil
}

// readableHeader returns data with its version rewritten to 1.7 when the file
// starts with a header ledongthuc/pdf refuses (it only reads %PDF-1.0 to 1.7).
// The rewrite keeps the length so cross-reference offsets stay valid. The
// caller's slice is never modified.
func readableHeader(data []byte) []byte {
	if len(data) < 8 || !bytes.HasPrefix(data, pdfMagic) {
		return data
	}
	major, dot, minor := data[5], data[6], data[7]
	if dot != '.' || !isDigit(major) || !isDigit(minor) {
		return data
	}
	if major == '1' && minor <= '7' {
		return data
	}
	out := make([]byte, len(data))
	copy(out, data)
	copy(out[5:8], "1.7")
	return out
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
