package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rmmentors/alicia/internal/core"
)

// Complete sends the assembled messages to the chat-completions endpoint
// with the configured model and sampling parameters.
func (c *Client) Complete(ctx context.Context, messages []core.Message) (string, error) {
	payload := map[string]any{
		"model":       c.chatModel,
		"messages":    messages,
		"temperature": c.temperature,
		"max_tokens":  c.maxOutputTokens,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/chat/completions", payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		return "", err
	}

	var result struct {
		Choices []struct {
			Message core.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode completion: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty choices: %s", string(data))
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
