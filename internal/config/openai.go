package config

import (
	"context"

	"github.com/caarlos0/env/v11"

	"github.com/rmmentors/alicia/pkg/log"
)

// OpenAIConfig covers both provider calls. Sampling parameters are
// configuration, not per-call choices.
type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY,required,notEmpty"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`

	ChatModel      string `env:"ALICIA_CHAT_MODEL" envDefault:"gpt-4o-mini"`
	EmbeddingModel string `env:"ALICIA_EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`

	Temperature     float64 `env:"ALICIA_TEMPERATURE" envDefault:"0.3"`
	MaxOutputTokens int     `env:"ALICIA_MAX_OUTPUT_TOKENS" envDefault:"512"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}
