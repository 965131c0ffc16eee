// Package groq is a minimal client for the Groq chat-completions API.
// It issues exactly one request per completion: no retries, no backoff,
// no streaming.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/zulandar/messagecraft/internal/config"
	"github.com/zulandar/messagecraft/internal/prompt"
)

const completionsPath = "/openai/v1/chat/completions"

// ErrEmptyCompletion is returned when the API responds with success but
// no usable completion text.
var ErrEmptyCompletion = errors.New("groq: no completion returned")

// StatusError is a non-success response from the API, carrying the HTTP
// status and the provider's error message when one was present.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("groq: api error: status %d: %s", e.Status, e.Message)
}

// Opts holds parameters for creating a Client.
type Opts struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	// HTTPClient overrides http.DefaultClient, for tests.
	HTTPClient *http.Client
}

// Client calls the Groq chat-completions endpoint.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
}

// New creates a Client. A missing API key fails here, before any
// request is attempted.
func New(opts Opts) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("groq: api key is required")
	}
	c := &Client{
		httpClient:  opts.HTTPClient,
		baseURL:     strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:      opts.APIKey,
		model:       opts.Model,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.baseURL == "" {
		c.baseURL = "https://api.groq.com"
	}
	if c.model == "" {
		c.model = "llama-3.3-70b-versatile"
	}
	return c, nil
}

// NewFromConfig creates a Client from cfg, reading the API key from the
// environment variable named in cfg.Groq.APIKeyEnv.
func NewFromConfig(cfg *config.Config) (*Client, error) {
	key := os.Getenv(cfg.Groq.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("groq: %s is not set", cfg.Groq.APIKeyEnv)
	}
	return New(Opts{
		BaseURL:     cfg.Groq.BaseURL,
		APIKey:      key,
		Model:       cfg.Groq.Model,
		MaxTokens:   cfg.Groq.MaxTokens,
		Temperature: cfg.Groq.Temperature,
	})
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one completion request and returns the first choice's
// text, trimmed. See ErrEmptyCompletion and StatusError for the failure
// modes callers can branch on.
func (c *Client) Complete(ctx context.Context, userPrompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("groq: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("groq: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq: request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("groq: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "unknown error"
		var errResp errorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return "", &StatusError{Status: resp.StatusCode, Message: msg}
	}

	var chat chatResponse
	if err := json.Unmarshal(data, &chat); err != nil {
		return "", fmt.Errorf("groq: decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(chat.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
