package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const xaiEndpoint = "https://api.x.ai/v1/chat/completions"

// XAIClient talks to the xAI chat-completions API directly over HTTP.
type XAIClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

func NewXAIClient(apiKey string) *XAIClient {
	return &XAIClient{
		apiKey:     apiKey,
		model:      "grok-4",
		endpoint:   xaiEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *XAIClient) Name() string {
	return "xAI"
}

type xaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type xaiRequest struct {
	Model    string       `json:"model"`
	Messages []xaiMessage `json:"messages"`
}

type xaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *XAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body, err := json.Marshal(xaiRequest{
		Model: c.model,
		Messages: []xaiMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("xai encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("xai request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("xai completion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("xai completion: unexpected status %d", resp.StatusCode)
	}

	var raw xaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("xai decode: %w", err)
	}

	if len(raw.Choices) == 0 {
		return "", fmt.Errorf("no response from xai")
	}

	return raw.Choices[0].Message.Content, nil
}
