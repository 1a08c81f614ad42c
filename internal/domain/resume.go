package domain

// DocumentMetadata contains information about the uploaded PDF
type DocumentMetadata struct {
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
	PageCount int    `json:"page_count"`
	FileSize  int64  `json:"file_size"`
}

// ExtractedText is the plain text pulled out of a resume PDF
type ExtractedText struct {
	Content  string           `json:"content"`
	Pages    []string         `json:"pages"`
	Metadata DocumentMetadata `json:"metadata"`
}

// Analysis is the critique returned by the chat-completion API
type Analysis struct {
	Text  string
	Model string
}

// ReviewResult is the response body of a successful review.
type ReviewResult struct {
	Filename string `json:"filename"`
	Analysis string `json:"analysis"`
	Model    string `json:"model"`
}

// ChatMessage is a single message in a chat-completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the OpenAI-compatible request payload.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}
