package service

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"elevate-cv/internal/domain"
)

const (
	ExtractorLedongthuc = "ledongthuc"
	ExtractorFitz       = "fitz"
)

var (
	pdfMagic        = []byte("%PDF-")
	reTrailingSpace = regexp.MustCompile(`[ \t]+\n`)
	reBlankLines    = regexp.MustCompile(`\n{3,}`)
)

// NewTextExtractor returns the extraction backend registered under name
func NewTextExtractor(name string, logger domain.Logger) (domain.TextExtractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ExtractorLedongthuc:
		return NewLedongthucExtractor(logger), nil
	case ExtractorFitz:
		return newFitzBackend(logger)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownExtractor, name)
	}
}

// checkPDFHeader rejects content that does not start with the PDF magic.
// Some writers emit a few junk bytes first, so the first KiB is searched.
func checkPDFHeader(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty file", domain.ErrInvalidPDF)
	}
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	if !bytes.Contains(head, pdfMagic) {
		return fmt.Errorf("%w: missing %%PDF- header", domain.ErrInvalidPDF)
	}
	return nil
}

// sanitizeText removes NUL and other control characters, invalid UTF-8 and
// surrogates, normalizes line endings and collapses runs of blank lines.
func sanitizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result strings.Builder
	result.Grow(len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size

		switch {
		case r == utf8.RuneError && size <= 1:
			// invalid byte
		case r == '\t' || r == '\n':
			result.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			// control character
		case r >= 0xD800 && r <= 0xDFFF:
			// surrogate
		case r == ' ':
			result.WriteByte(' ')
		default:
			result.WriteRune(r)
		}
	}

	out := reTrailingSpace.ReplaceAllString(result.String(), "\n")
	out = reBlankLines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// joinPages concatenates the non-empty pages separated by a blank line.
func joinPages(pages []string) string {
	nonEmpty := make([]string, 0, len(pages))
	for _, p := range pages {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func newExtractedText(pages []string, meta domain.DocumentMetadata) *domain.ExtractedText {
	return &domain.ExtractedText{
		Content:  joinPages(pages),
		Pages:    pages,
		Metadata: meta,
	}
}
