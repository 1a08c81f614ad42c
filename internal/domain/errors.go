package domain

import "errors"

// Domain errors
var (
	ErrUnsupportedFileType   = errors.New("only PDF files are supported")
	ErrInvalidPDF            = errors.New("invalid PDF file")
	ErrNoExtractableText     = errors.New("no extractable text")
	ErrAnalyzerNotConfigured = errors.New("analyzer not configured")
	ErrEmptyCompletion       = errors.New("empty completion")
	ErrUnknownExtractor      = errors.New("unknown PDF extractor")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
