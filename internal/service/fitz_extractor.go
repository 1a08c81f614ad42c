//go:build cgo

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"elevate-cv/internal/domain"

	"github.com/gen2brain/go-fitz"
)

const defaultPageTimeout = 30 * time.Second

// FitzExtractor extracts text with MuPDF through go-fitz
type FitzExtractor struct {
	logger      domain.Logger
	pageTimeout time.Duration
}

// NewFitzExtractor creates a new MuPDF backed extractor
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{
		logger:      logger,
		pageTimeout: defaultPageTimeout,
	}
}

func newFitzBackend(logger domain.Logger) (domain.TextExtractor, error) {
	return NewFitzExtractor(logger), nil
}

func (e *FitzExtractor) Name() string {
	return ExtractorFitz
}

// Extract returns the sanitized text of every page. A page that fails or
// exceeds the page timeout is kept as an empty page.
func (e *FitzExtractor) Extract(ctx context.Context, data []byte) (*domain.ExtractedText, error) {
	if err := checkPDFHeader(data); err != nil {
		return nil, err
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPDF, err)
	}

	// Close frees the MuPDF context without taking the document lock, so it
	// must not run while an abandoned page read is still inside doc.Text.
	var inflight sync.WaitGroup
	abandoned := false
	defer func() {
		if !abandoned {
			doc.Close()
			return
		}
		go func() {
			inflight.Wait()
			doc.Close()
		}()
	}()

	numPages := doc.NumPage()
	meta := domain.DocumentMetadata{
		PageCount: numPages,
		FileSize:  int64(len(data)),
	}
	docMetadata := doc.Metadata()
	if title, ok := docMetadata["title"]; ok {
		meta.Title = title
	}
	if author, ok := docMetadata["author"]; ok {
		meta.Author = author
	}

	type pageResult struct {
		text string
		err  error
	}

	pages := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resultCh := make(chan pageResult, 1)
		inflight.Add(1)
		go func(idx int) {
			defer inflight.Done()
			t, err := doc.Text(idx)
			resultCh <- pageResult{text: t, err: err}
		}(pageNum)

		var res pageResult
		timer := time.NewTimer(e.pageTimeout)
		select {
		case res = <-resultCh:
			timer.Stop()
		case <-timer.C:
			abandoned = true
			res.err = fmt.Errorf("timeout after %v", e.pageTimeout)
		case <-ctx.Done():
			timer.Stop()
			abandoned = true
			return nil, ctx.Err()
		}

		if res.err != nil {
			e.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", res.err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, sanitizeText(res.text))
	}

	e.logger.Debug("PDF extracted", "extractor", e.Name(), "pages", numPages)
	return newExtractedText(pages, meta), nil
}
