// Package openai implements the embedding and chat-completion contracts
// against any OpenAI-compatible endpoint.
package openai

import (
	"github.com/rmmentors/alicia/internal/config"
)

// Client serves both provider roles: core.Embedder and core.ChatProvider.
type Client struct {
	baseProvider
	chatModel       string
	embedModel      string
	temperature     float64
	maxOutputTokens int
}

func NewClient(cfg *config.OpenAIConfig) *Client {
	return &Client{
		baseProvider:    newBaseProvider(cfg.BaseURL, cfg.APIKey),
		chatModel:       cfg.ChatModel,
		embedModel:      cfg.EmbeddingModel,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
	}
}
