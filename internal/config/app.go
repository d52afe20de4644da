package config

import (
	"context"

	"github.com/caarlos0/env/v11"

	"github.com/rmmentors/alicia/pkg/log"
)

type AppConfig struct {
	CorpusPath    string `env:"ALICIA_CORPUS_PATH" envDefault:"data/resources.txt"`
	AgentDescPath string `env:"ALICIA_AGENT_DESC_PATH" envDefault:"data/agent_description.txt"`

	// Retrieval
	TopK int `env:"ALICIA_TOP_K" envDefault:"5"`

	// Context Management
	// ContextWindowSize limits how many trailing history messages enter
	// the prompt. 0 means the full history.
	ContextWindowSize int `env:"ALICIA_CONTEXT_WINDOW" envDefault:"0"`
	// MaxContextTokens is a soft budget; overruns are logged, not enforced.
	MaxContextTokens int `env:"ALICIA_MAX_CONTEXT_TOKENS" envDefault:"3000"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	return c
}
