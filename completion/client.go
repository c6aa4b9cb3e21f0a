package completion

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// fallbackAnswer is returned when the API responds successfully but without
// usable message content, so callers always get some text back.
const fallbackAnswer = "I'm sorry, I couldn't come up with an answer just now. Please call us directly and we'll be happy to help."

// UpstreamError reports a non-success response from the completion API. The
// status and body are logged internally and never shown to callers.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion API returned status %d: %s", e.Status, e.Body)
}

// Client sends single-shot chat completion requests with a fixed model.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a completion client for the given API key and model.
func NewClient(apiKey, model string) *Client {
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// NewClientWithBaseURL creates a client pointed at an alternate API endpoint,
// e.g. a proxy or a test server.
func NewClientWithBaseURL(apiKey, model, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Complete sends one system/user message pair and returns the first choice's
// message content. A well-formed response without content yields the fixed
// fallback sentence rather than an error. No retries, no custom timeout
// beyond the transport default.
func (c *Client) Complete(ctx context.Context, systemPrompt, userContent string, temperature float32) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", asUpstreamError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return fallbackAnswer, nil
	}
	return resp.Choices[0].Message.Content, nil
}

// asUpstreamError converts the SDK's error types into UpstreamError where a
// status code is known.
func asUpstreamError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{Status: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{Status: reqErr.HTTPStatusCode, Body: string(reqErr.Body)}
	}
	return fmt.Errorf("completion request failed: %w", err)
}
