package service

import (
	"context"
	"sync"

	"elevate-cv/internal/domain"
)

type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) record(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO: " + msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.record("ERROR: " + msg + " - " + err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG: " + msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN: " + msg)
}

type MockExtractor struct {
	result  *domain.ExtractedText
	err     error
	calls   int
	lastLen int
}

func (m *MockExtractor) Name() string { return "mock" }

func (m *MockExtractor) Extract(ctx context.Context, data []byte) (*domain.ExtractedText, error) {
	m.calls++
	m.lastLen = len(data)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type MockAnalyzer struct {
	configured bool
	model      string
	text       string
	err        error
	calls      int
	lastText   string
	lastReqID  string
}

func (m *MockAnalyzer) Configured() bool { return m.configured }
func (m *MockAnalyzer) Model() string    { return m.model }

func (m *MockAnalyzer) Analyze(ctx context.Context, resumeText string) (*domain.Analysis, error) {
	m.calls++
	m.lastText = resumeText
	m.lastReqID, _ = domain.RequestIDFromContext(ctx)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Analysis{Text: m.text, Model: m.model}, nil
}
