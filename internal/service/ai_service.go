package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"elevate-cv/internal/domain"
	"elevate-cv/internal/prompts"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// AIServiceOptions configures the chat-completion client
type AIServiceOptions struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// AIService implements domain.ResumeAnalyzer against an OpenAI-compatible
// chat-completion endpoint (Groq by default).
type AIService struct {
	client *resty.Client
	opts   AIServiceOptions
	logger domain.Logger
}

func NewAIService(opts AIServiceOptions, logger domain.Logger) *AIService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.APIKey != "" {
		client.SetAuthToken(opts.APIKey)
	}

	return &AIService{
		client: client,
		opts:   opts,
		logger: logger,
	}
}

func (s *AIService) Configured() bool {
	return s.opts.APIKey != ""
}

func (s *AIService) Model() string {
	return s.opts.Model
}

// Analyze sends one completion request and returns the model's critique.
func (s *AIService) Analyze(ctx context.Context, resumeText string) (*domain.Analysis, error) {
	if !s.Configured() {
		return nil, domain.ErrAnalyzerNotConfigured
	}

	systemPrompt, err := prompts.System()
	if err != nil {
		return nil, err
	}
	userPrompt, err := prompts.Review(resumeText)
	if err != nil {
		return nil, err
	}

	payload := domain.ChatCompletionRequest{
		Model: s.opts.Model,
		Messages: []domain.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	}

	start := time.Now()
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return nil, fmt.Errorf("chat completion returned %d: %s", resp.StatusCode(), msg)
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() || strings.TrimSpace(content.String()) == "" {
		return nil, domain.ErrEmptyCompletion
	}

	s.logger.Debug("Chat completion finished",
		"model", s.opts.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", gjson.GetBytes(body, "usage.prompt_tokens").Int(),
		"completion_tokens", gjson.GetBytes(body, "usage.completion_tokens").Int(),
	)

	return &domain.Analysis{
		Text:  content.String(),
		Model: s.opts.Model,
	}, nil
}
