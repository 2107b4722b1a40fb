package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"autoviz/internal/config"
)

// OpenAIClient is a minimal chat-completions client. Implements
// ports.LLMClient.
type OpenAIClient struct {
	APIKey      string
	BaseURL     string
	Temperature float64
	Timeout     time.Duration
	httpClient  *http.Client
}

// NewOpenAIClient creates a client from the AI configuration
func NewOpenAIClient(cfg config.AIConfig) *OpenAIClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &OpenAIClient{
		APIKey:      cfg.OpenAIKey,
		BaseURL:     "https://api.openai.com/v1",
		Temperature: cfg.Temperature,
		Timeout:     timeout,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type requestBody struct {
	Model               string    `json:"model"`
	Messages            []message `json:"messages"`
	Temperature         float64   `json:"temperature,omitempty"`
	MaxCompletionTokens int       `json:"max_completion_tokens,omitempty"`
}

type responseBody struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends one prompt and returns the assistant text
func (c *OpenAIClient) ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	reqBody := requestBody{
		Model: model,
		Messages: []message{
			{Role: "system", Content: "Concise analytical writing. No emojis."},
			{Role: "user", Content: prompt},
		},
		Temperature:         c.Temperature,
		MaxCompletionTokens: maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	log.Printf("[OpenAIClient] Sending request to %s - promptLength=%d, temp=%.2f", model, len(prompt), c.Temperature)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("request timeout after %v: %w", c.Timeout, err)
		}
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed responseBody
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return parsed.Choices[0].Message.Content, nil
}
