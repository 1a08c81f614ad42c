package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"elevate-cv/internal/domain"
	apperrors "elevate-cv/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxFileSize = 1024

func newTestResumeService(ext *MockExtractor, an *MockAnalyzer) *ResumeService {
	return NewResumeService(ext, an, testMaxFileSize, NewMockLogger())
}

func okExtractor(text string) *MockExtractor {
	return &MockExtractor{result: &domain.ExtractedText{
		Content:  text,
		Pages:    []string{text},
		Metadata: domain.DocumentMetadata{PageCount: 1},
	}}
}

func okAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{configured: true, model: "llama-3.1-70b-versatile", text: "OVERALL SCORE: 8"}
}

func assertAppError(t *testing.T, err error, status int, detail string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, status, appErr.StatusCode)
	assert.Equal(t, detail, appErr.Detail())
}

func TestResumeService_Review_Success(t *testing.T) {
	ext := okExtractor("Jane Doe\nSoftware Engineer")
	an := okAnalyzer()
	svc := newTestResumeService(ext, an)

	ctx := domain.WithRequestID(context.Background(), "req-1")
	res, err := svc.Review(ctx, "jane_resume.pdf", strings.NewReader("%PDF-1.7 body"))

	require.NoError(t, err)
	assert.Equal(t, &domain.ReviewResult{
		Filename: "jane_resume.pdf",
		Analysis: "OVERALL SCORE: 8",
		Model:    "llama-3.1-70b-versatile",
	}, res)
	assert.Equal(t, "Jane Doe\nSoftware Engineer", an.lastText)
	assert.Equal(t, "req-1", an.lastReqID)
	assert.Equal(t, len("%PDF-1.7 body"), ext.lastLen)
}

func TestResumeService_Review_GeneratesRequestID(t *testing.T) {
	an := okAnalyzer()
	svc := newTestResumeService(okExtractor("text"), an)

	_, err := svc.Review(context.Background(), "cv.pdf", strings.NewReader("%PDF-"))

	require.NoError(t, err)
	assert.Len(t, an.lastReqID, 36)
}

func TestResumeService_Review_RejectsNonPDF(t *testing.T) {
	for _, name := range []string{"resume.docx", "resume.pdf.exe", "resume", ""} {
		t.Run(name, func(t *testing.T) {
			ext := okExtractor("text")
			svc := newTestResumeService(ext, okAnalyzer())

			_, err := svc.Review(context.Background(), name, strings.NewReader("%PDF-"))

			assertAppError(t, err, http.StatusBadRequest, "Only PDF files are supported")
			assert.Zero(t, ext.calls, "extractor must not run for rejected files")
		})
	}
}

func TestResumeService_Review_AcceptsUppercaseExtension(t *testing.T) {
	svc := newTestResumeService(okExtractor("text"), okAnalyzer())

	res, err := svc.Review(context.Background(), `C:\Users\jane\CV.PDF`, strings.NewReader("%PDF-"))

	require.NoError(t, err)
	assert.Equal(t, "CV.PDF", res.Filename)
}

func TestResumeService_Review_RejectsOversized(t *testing.T) {
	ext := okExtractor("text")
	svc := newTestResumeService(ext, okAnalyzer())

	_, err := svc.Review(context.Background(), "big.pdf", bytes.NewReader(make([]byte, testMaxFileSize+1)))

	assertAppError(t, err, http.StatusBadRequest, "File too large. Maximum size: 0.0009765625MB")
	assert.Zero(t, ext.calls)
}

func TestResumeService_Review_AcceptsExactLimit(t *testing.T) {
	ext := okExtractor("text")
	svc := newTestResumeService(ext, okAnalyzer())

	_, err := svc.Review(context.Background(), "edge.pdf", bytes.NewReader(make([]byte, testMaxFileSize)))

	require.NoError(t, err)
	assert.Equal(t, testMaxFileSize, ext.lastLen)
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestResumeService_Review_ReadFailure(t *testing.T) {
	svc := newTestResumeService(okExtractor("text"), okAnalyzer())

	_, err := svc.Review(context.Background(), "cv.pdf", failingReader{})

	assertAppError(t, err, http.StatusInternalServerError, "Failed to read file: unexpected EOF")
}

func TestResumeService_Review_NoExtractableText(t *testing.T) {
	an := okAnalyzer()
	svc := newTestResumeService(okExtractor("  \n\n "), an)

	_, err := svc.Review(context.Background(), "scan.pdf", strings.NewReader("%PDF-"))

	assertAppError(t, err, http.StatusBadRequest,
		"Could not extract text from PDF. Please ensure the PDF contains selectable text.")
	assert.Zero(t, an.calls)
}

func TestResumeService_Review_InvalidPDF(t *testing.T) {
	ext := &MockExtractor{err: fmt.Errorf("%w: missing %%PDF- header", domain.ErrInvalidPDF)}
	svc := newTestResumeService(ext, okAnalyzer())

	_, err := svc.Review(context.Background(), "fake.pdf", strings.NewReader("hello"))

	assertAppError(t, err, http.StatusBadRequest, "invalid PDF file: missing %PDF- header")
}

func TestResumeService_Review_ExtractionFailure(t *testing.T) {
	ext := &MockExtractor{err: errors.New("mupdf crashed")}
	svc := newTestResumeService(ext, okAnalyzer())

	_, err := svc.Review(context.Background(), "cv.pdf", strings.NewReader("%PDF-"))

	assertAppError(t, err, http.StatusInternalServerError, "PDF processing failed: mupdf crashed")
}

func TestResumeService_Review_AnalyzerNotConfigured(t *testing.T) {
	an := &MockAnalyzer{configured: false, model: "m"}
	svc := newTestResumeService(okExtractor("text"), an)

	_, err := svc.Review(context.Background(), "cv.pdf", strings.NewReader("%PDF-"))

	assertAppError(t, err, http.StatusInternalServerError, "AI service not configured. Please set GROQ_API_KEY.")
	assert.Zero(t, an.calls)
	assert.False(t, svc.AnalyzerConfigured())
}

func TestResumeService_Review_AnalysisFailure(t *testing.T) {
	an := okAnalyzer()
	an.err = errors.New("chat completion returned 429: rate limit reached")
	svc := newTestResumeService(okExtractor("text"), an)

	_, err := svc.Review(context.Background(), "cv.pdf", strings.NewReader("%PDF-"))

	assertAppError(t, err, http.StatusInternalServerError,
		"AI analysis failed: chat completion returned 429: rate limit reached")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUpstream))
}

func TestCleanFilename(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "resume.pdf", want: "resume.pdf"},
		{in: "../../etc/resume.pdf", want: "resume.pdf"},
		{in: "  spaced.Pdf ", want: "spaced.Pdf"},
		{in: "notes.txt", wantErr: true},
		{in: ".", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := CleanFilename(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrUnsupportedFileType, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFileTooLargeMessage(t *testing.T) {
	assert.Equal(t, "File too large. Maximum size: 5MB", FileTooLargeMessage(5*1024*1024))
	assert.Equal(t, "File too large. Maximum size: 2.5MB", FileTooLargeMessage(5*512*1024))
}

func TestResumeService_Review_PDF20WithDefaultExtractor(t *testing.T) {
	data := bytes.Replace(buildTestPDF("CV", "Jane", "Jane Doe", "Staff Engineer"), []byte("%PDF-1.4"), []byte("%PDF-2.0"), 1)
	an := okAnalyzer()
	svc := NewResumeService(NewLedongthucExtractor(NewMockLogger()), an, 1<<20, NewMockLogger())

	res, err := svc.Review(context.Background(), "resume.pdf", bytes.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, "OVERALL SCORE: 8", res.Analysis)
	assert.Contains(t, an.lastText, "Staff Engineer")
}
