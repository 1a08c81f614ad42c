package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"elevate-cv/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Origins the hosted frontend is served from, in addition to FRONTEND_URL.
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://elevate-cv-seven.vercel.app",
}

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string `validate:"required,numeric"`
	MaxFileSize    int64  `validate:"gt=0"`
	LogLevel       string `validate:"required"`
	LogFormat      string `validate:"oneof=text json"`
	GroqAPIKey     string
	GroqBaseURL    string        `validate:"required,url"`
	GroqModel      string        `validate:"required"`
	AITemperature  float64       `validate:"gte=0,lte=2"`
	AIMaxTokens    int           `validate:"gt=0"`
	AITimeout      time.Duration `validate:"gt=0"`
	FrontendURL    string
	AllowedOrigins []string `validate:"dive,required"`
	PDFExtractor   string   `validate:"oneof=ledongthuc fitz"`
}

// NewConfig creates a new configuration instance with default values
func NewConfig() *AppConfig {
	frontendURL := getEnvOrDefault("FRONTEND_URL", "http://localhost:5173")

	return &AppConfig{
		// PaaS hosts provide the listening port via PORT; SERVER_PORT stays for local runs.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8000")),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 5*1024*1024),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		GroqAPIKey:     getEnvOrDefault("GROQ_API_KEY", ""),
		GroqBaseURL:    strings.TrimRight(getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"), "/"),
		GroqModel:      getEnvOrDefault("GROQ_MODEL", "llama-3.1-70b-versatile"),
		AITemperature:  getEnvFloatOrDefault("AI_TEMPERATURE", 0.7),
		AIMaxTokens:    int(getEnvInt64OrDefault("AI_MAX_TOKENS", 1024)),
		AITimeout:      time.Duration(getEnvInt64OrDefault("AI_TIMEOUT_SECONDS", 60)) * time.Second,
		FrontendURL:    frontendURL,
		AllowedOrigins: buildAllowedOrigins(frontendURL, os.Getenv("CORS_ALLOWED_ORIGINS")),
		PDFExtractor:   strings.ToLower(getEnvOrDefault("PDF_EXTRACTOR", "ledongthuc")),
	}
}

// Validate checks the loaded values and reports every offending field.
func (c *AppConfig) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, &domain.ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed %q check (value %v)", fe.Tag(), fe.Value()),
		})
	}
	return fmt.Errorf("invalid configuration: %w", errors.Join(msgs...))
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns text or json
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetGroqAPIKey returns the chat-completion API key
func (c *AppConfig) GetGroqAPIKey() string {
	return c.GroqAPIKey
}

// GetGroqBaseURL returns the OpenAI-compatible base URL
func (c *AppConfig) GetGroqBaseURL() string {
	return c.GroqBaseURL
}

// GetGroqModel returns the model used for analysis
func (c *AppConfig) GetGroqModel() string {
	return c.GroqModel
}

func (c *AppConfig) GetAITemperature() float64 {
	return c.AITemperature
}

func (c *AppConfig) GetAIMaxTokens() int {
	return c.AIMaxTokens
}

func (c *AppConfig) GetAITimeout() time.Duration {
	return c.AITimeout
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetPDFExtractor returns the configured extraction backend name
func (c *AppConfig) GetPDFExtractor() string {
	return c.PDFExtractor
}

// buildAllowedOrigins merges FRONTEND_URL, the built-in origins and extra ones, without duplicates.
func buildAllowedOrigins(frontendURL, extra string) []string {
	seen := make(map[string]bool)
	var origins []string
	add := func(o string) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			return
		}
		seen[o] = true
		origins = append(origins, o)
	}

	add(frontendURL)
	for _, o := range defaultAllowedOrigins {
		add(o)
	}
	for _, o := range strings.Split(extra, ",") {
		add(o)
	}
	return origins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
