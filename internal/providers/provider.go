// Package providers contains the text-completion clients used for roster
// extraction. The pipeline depends only on LLMClient; everything behind it
// (HTTP transport, SDK, retries, rate limiting) is a provider concern.
package providers

import (
	"context"
	"encoding/json"
	"time"
)

// LLMClient is the text-completion boundary. There is no contract on
// latency, determinism, or content validity of the returned text; the
// extraction interpreter treats it as untrusted.
type LLMClient interface {
	// Chat sends a chat completion request.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error)

	// Name returns the client identifier (e.g., "openrouter").
	Name() string
}

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ResponseFormat specifies structured output format for providers that
// support it.
type ResponseFormat struct {
	Type       string          `json:"type"` // "json_schema"
	JSONSchema json.RawMessage `json:"json_schema,omitempty"`
}

// ChatRequest is a request to an LLM.
type ChatRequest struct {
	Messages []Message `json:"messages"`

	// Model selection (uses client default if empty)
	Model string `json:"model,omitempty"`

	// Generation parameters
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`

	// Structured output
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`

	// Request tracking
	RequestID string `json:"-"`
}

// ChatResult is the complete response from an LLM call.
type ChatResult struct {
	Content string `json:"content"`

	// Token counts
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	// Timing
	ExecutionTime time.Duration `json:"execution_time"`

	// Provider info
	Provider  string `json:"provider"`
	ModelUsed string `json:"model_used"`

	// Request tracking
	RequestID string `json:"request_id"`
	Attempts  int    `json:"attempts"`

	// Success/error
	Success      bool   `json:"success"`
	ErrorType    string `json:"error_type,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// LLMProviderConfig describes one configured provider instance.
type LLMProviderConfig struct {
	Type      string  `mapstructure:"type" yaml:"type"` // "openrouter", "openai", "mock"
	Model     string  `mapstructure:"model" yaml:"model"`
	APIKey    string  `mapstructure:"api_key" yaml:"api_key"`
	BaseURL   string  `mapstructure:"base_url" yaml:"base_url,omitempty"`
	RateLimit float64 `mapstructure:"rate_limit" yaml:"rate_limit"` // requests per second
	Enabled   bool    `mapstructure:"enabled" yaml:"enabled"`
}
