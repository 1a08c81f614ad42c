package domain

import (
	"context"
	"io"
	"time"
)

// TextExtractor defines the strategy interface for PDF text extraction
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (*ExtractedText, error)
	Name() string
}

// ResumeAnalyzer sends resume text to a hosted model and returns its critique
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, resumeText string) (*Analysis, error)
	Configured() bool
	Model() string
}

// ResumeService runs the upload -> extract -> analyze pipeline
type ResumeService interface {
	Review(ctx context.Context, filename string, file io.Reader) (*ReviewResult, error)
	AnalyzerConfigured() bool
	MaxFileSize() int64
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetGroqAPIKey() string
	GetGroqBaseURL() string
	GetGroqModel() string
	GetAITemperature() float64
	GetAIMaxTokens() int
	GetAITimeout() time.Duration
	GetAllowedOrigins() []string
	GetPDFExtractor() string
}
