package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var _ Provider = (*Client)(nil)

// Config holds the chat completions client configuration
type Config struct {
	// BaseURL is the API root, e.g. https://router.huggingface.co/v1
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	// MaxResponseBytes bounds the response body that will be read
	MaxResponseBytes int64
}

// DefaultConfig returns the HuggingFace router defaults
func DefaultConfig() Config {
	return Config{
		BaseURL:          "https://router.huggingface.co/v1",
		Model:            "HuggingFaceTB/SmolLM3-3B:hf-inference",
		Timeout:          20 * time.Second,
		MaxResponseBytes: 256 << 10,
	}
}

// Client implements Provider against an OpenAI-compatible chat completions endpoint
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a chat completions client
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: api key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("llm: base url is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm: model is required")
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = DefaultConfig().MaxResponseBytes
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Model returns the default model name
func (c *Client) Model() string {
	return c.cfg.Model
}

// Generate creates a completion from a single prompt
func (c *Client) Generate(ctx context.Context, prompt string, opts ...CallOption) (*Response, error) {
	return c.Chat(ctx, []Message{{Role: RoleUser, Content: prompt}}, opts...)
}

// Chat creates a completion from a conversation history
func (c *Client) Chat(ctx context.Context, messages []Message, opts ...CallOption) (*Response, error) {
	if len(messages) == 0 {
		return nil, NewProviderError(ErrCodeInvalidRequest, "messages must not be empty", nil)
	}

	cfg := ApplyOptions(opts...)
	model := cfg.Model
	if model == "" {
		model = c.cfg.Model
	}

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	data, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		return nil, mapError(err)
	}

	var resp chatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, NewProviderError(ErrCodeServerError, "malformed chat response", err)
	}
	if len(resp.Choices) == 0 {
		return nil, NewProviderError(ErrCodeServerError, "chat response has no choices", nil)
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage:   resp.Usage,
	}, nil
}

// post sends an authenticated POST and returns the size-limited body
func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, parseStatusError(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxResponseBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > c.cfg.MaxResponseBytes {
		return nil, NewProviderError(ErrCodeResponseTooLarge,
			fmt.Sprintf("response exceeds %d bytes", c.cfg.MaxResponseBytes), nil)
	}
	return data, nil
}

// parseStatusError reads an error response body
func parseStatusError(resp *http.Response) *statusError {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(raw, &errResp); err != nil {
		return &statusError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	msg := errResp.Error.Message
	if msg == "" {
		msg = resp.Status
	}
	return &statusError{
		StatusCode: resp.StatusCode,
		Type:       errResp.Error.Type,
		Message:    msg,
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}
