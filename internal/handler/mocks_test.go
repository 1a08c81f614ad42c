package handler

import (
	"context"
	"io"
	"sync"

	"elevate-cv/internal/domain"
)

// Mock logger used by handler package tests.
type MockHandlerLogger struct {
	mu    sync.Mutex
	infos []string
	errs  []string
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{}
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, msg)
}

func (l *MockHandlerLogger) Debug(msg string, fields ...interface{}) {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})  {}

type MockResumeService struct {
	configured  bool
	maxFileSize int64
	result      *domain.ReviewResult
	err         error

	gotFilename string
	gotBody     []byte
	gotReqID    string
}

func NewMockResumeService() *MockResumeService {
	return &MockResumeService{
		configured:  true,
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (m *MockResumeService) AnalyzerConfigured() bool { return m.configured }
func (m *MockResumeService) MaxFileSize() int64       { return m.maxFileSize }

func (m *MockResumeService) Review(ctx context.Context, filename string, file io.Reader) (*domain.ReviewResult, error) {
	m.gotFilename = filename
	m.gotReqID, _ = domain.RequestIDFromContext(ctx)
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	m.gotBody = body
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
