//go:build !cgo

package service

import (
	"fmt"

	"elevate-cv/internal/domain"
)

// go-fitz needs cgo and libmupdf, so builds without cgo only offer the pure Go backend.
func newFitzBackend(logger domain.Logger) (domain.TextExtractor, error) {
	return nil, fmt.Errorf("%w: %q requires a cgo build", domain.ErrUnknownExtractor, ExtractorFitz)
}
