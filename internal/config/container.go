package config

import (
	"fmt"

	"elevate-cv/internal/domain"
	"elevate-cv/internal/service"
	"elevate-cv/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config        domain.Config
	Logger        domain.Logger
	Extractor     domain.TextExtractor
	Analyzer      domain.ResumeAnalyzer
	ResumeService domain.ResumeService
}

// NewContainer creates a new dependency injection container from the environment
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewContainerWithConfig(cfg, logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat()))
}

// NewContainerWithConfig wires the services from an already loaded configuration
func NewContainerWithConfig(cfg domain.Config, appLogger domain.Logger) (*Container, error) {
	extractor, err := service.NewTextExtractor(cfg.GetPDFExtractor(), appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create text extractor: %w", err)
	}

	analyzer := service.NewAIService(service.AIServiceOptions{
		APIKey:      cfg.GetGroqAPIKey(),
		BaseURL:     cfg.GetGroqBaseURL(),
		Model:       cfg.GetGroqModel(),
		Temperature: cfg.GetAITemperature(),
		MaxTokens:   cfg.GetAIMaxTokens(),
		Timeout:     cfg.GetAITimeout(),
	}, appLogger)
	if !analyzer.Configured() {
		appLogger.Warn("GROQ_API_KEY is not set, /analyze will fail until it is configured")
	}

	resumeService := service.NewResumeService(extractor, analyzer, cfg.GetMaxFileSize(), appLogger)

	return &Container{
		Config:        cfg,
		Logger:        appLogger,
		Extractor:     extractor,
		Analyzer:      analyzer,
		ResumeService: resumeService,
	}, nil
}
