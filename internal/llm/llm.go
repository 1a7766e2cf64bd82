// Package llm provides text generation through an OpenAI-compatible
// chat completions API.
package llm

import "context"

// Provider generates text from a prompt or a conversation
type Provider interface {
	// Generate creates a completion from a single prompt.
	Generate(ctx context.Context, prompt string, opts ...CallOption) (*Response, error)

	// Chat creates a completion from a conversation history.
	Chat(ctx context.Context, messages []Message, opts ...CallOption) (*Response, error)
}

// Role constants for Message.Role
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single message in a chat conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response contains the generated text and metadata
type Response struct {
	Content string `json:"content"`
	Model   string `json:"model"`
	Usage   Usage  `json:"usage"`
}

// Usage tracks token consumption for a single call
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CallOption configures a single Generate or Chat call
type CallOption func(*CallConfig)

// CallConfig holds the resolved configuration for a single call
type CallConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// WithModel overrides the client's default model
func WithModel(model string) CallOption {
	return func(c *CallConfig) { c.Model = model }
}

// WithTemperature sets the sampling temperature
func WithTemperature(temp float64) CallOption {
	return func(c *CallConfig) { c.Temperature = temp }
}

// WithMaxTokens sets the maximum number of tokens to generate
func WithMaxTokens(max int) CallOption {
	return func(c *CallConfig) { c.MaxTokens = max }
}

// ApplyOptions creates a CallConfig from options, starting from defaults
func ApplyOptions(opts ...CallOption) CallConfig {
	cfg := CallConfig{
		Temperature: 0.7,
		MaxTokens:   1000,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
