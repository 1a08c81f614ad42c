package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"elevate-cv/internal/domain"
	apperrors "elevate-cv/pkg/errors"

	"github.com/google/uuid"
)

const (
	msgOnlyPDF          = "Only PDF files are supported"
	msgNoText           = "Could not extract text from PDF. Please ensure the PDF contains selectable text."
	msgNotConfigured    = "AI service not configured. Please set GROQ_API_KEY."
	msgReadFailed       = "Failed to read file"
	msgProcessingFailed = "PDF processing failed"
	msgAnalysisFailed   = "AI analysis failed"
)

// ResumeService implements domain.ResumeService
type ResumeService struct {
	extractor   domain.TextExtractor
	analyzer    domain.ResumeAnalyzer
	maxFileSize int64
	logger      domain.Logger
}

// NewResumeService creates a new review pipeline
func NewResumeService(
	extractor domain.TextExtractor,
	analyzer domain.ResumeAnalyzer,
	maxFileSize int64,
	logger domain.Logger,
) *ResumeService {
	return &ResumeService{
		extractor:   extractor,
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

func (s *ResumeService) AnalyzerConfigured() bool {
	return s.analyzer.Configured()
}

func (s *ResumeService) MaxFileSize() int64 {
	return s.maxFileSize
}

// Review validates the upload, extracts its text and asks the analyzer for a critique.
// Every failure is returned as an *apperrors.AppError carrying the HTTP status.
func (s *ResumeService) Review(ctx context.Context, filename string, file io.Reader) (*domain.ReviewResult, error) {
	requestID, ok := domain.RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
		ctx = domain.WithRequestID(ctx, requestID)
	}

	name, err := CleanFilename(filename)
	if err != nil {
		return nil, apperrors.NewValidationError(msgOnlyPDF)
	}

	data, err := s.readBounded(file)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	extracted, err := s.ExtractText(ctx, data)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Resume text extracted",
		"request_id", requestID,
		"filename", name,
		"extractor", s.extractor.Name(),
		"pages", extracted.Metadata.PageCount,
		"chars", len(extracted.Content),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if !s.analyzer.Configured() {
		return nil, apperrors.NewInternalError(msgNotConfigured, nil)
	}

	start = time.Now()
	analysis, err := s.analyzer.Analyze(ctx, extracted.Content)
	if err != nil {
		s.logger.Error("Resume analysis failed", err, "request_id", requestID, "model", s.analyzer.Model())
		return nil, apperrors.NewUpstreamError(msgAnalysisFailed, err)
	}
	s.logger.Info("Resume analyzed",
		"request_id", requestID,
		"model", analysis.Model,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &domain.ReviewResult{
		Filename: name,
		Analysis: analysis.Text,
		Model:    analysis.Model,
	}, nil
}

// ExtractText runs the extractor and maps its failures: unparseable files are
// client errors, anything else is a processing failure. Empty text is rejected.
func (s *ResumeService) ExtractText(ctx context.Context, data []byte) (*domain.ExtractedText, error) {
	extracted, err := s.extractor.Extract(ctx, data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPDF) {
			return nil, apperrors.NewValidationError(err.Error())
		}
		s.logger.Error("PDF processing failed", err, "extractor", s.extractor.Name())
		return nil, apperrors.NewProcessingError(msgProcessingFailed, err)
	}
	if extracted == nil || strings.TrimSpace(extracted.Content) == "" {
		return nil, apperrors.NewValidationError(msgNoText)
	}
	return extracted, nil
}

// readBounded reads at most maxFileSize+1 bytes so oversized uploads are
// detected without buffering them whole.
func (s *ResumeService) readBounded(file io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(file, s.maxFileSize+1))
	if err != nil {
		return nil, apperrors.NewInternalError(msgReadFailed, err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, apperrors.NewValidationError(FileTooLargeMessage(s.maxFileSize))
	}
	return data, nil
}

// FileTooLargeMessage formats the size limit in megabytes
func FileTooLargeMessage(maxFileSize int64) string {
	mb := strconv.FormatFloat(float64(maxFileSize)/(1024*1024), 'f', -1, 64)
	return fmt.Sprintf("File too large. Maximum size: %sMB", mb)
}

// CleanFilename strips path components and checks for a .pdf extension.
func CleanFilename(filename string) (string, error) {
	name := strings.TrimSpace(filepath.Base(strings.ReplaceAll(filename, "\\", "/")))
	if name == "" || name == "." || name == "/" {
		return "", domain.ErrUnsupportedFileType
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return "", domain.ErrUnsupportedFileType
	}
	return name, nil
}
