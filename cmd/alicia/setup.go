package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/rmmentors/alicia/internal/config"
	"github.com/rmmentors/alicia/internal/corpus"
	"github.com/rmmentors/alicia/internal/index"
	"github.com/rmmentors/alicia/internal/providers/openai"
	"github.com/rmmentors/alicia/internal/retrieve"
	"github.com/rmmentors/alicia/internal/service/chat"
	"github.com/rmmentors/alicia/pkg/log"
)

// newAssistant wires the whole pipeline: configs, corpus, vector index,
// providers. The index is built once here and read-only afterwards.
func newAssistant(ctx context.Context) *chat.Assistant {
	logger := log.FromCtx(ctx)

	initEnv(ctx)

	appCfg := config.NewAppConfig(ctx)
	aiCfg := config.NewOpenAIConfig(ctx)

	client := openai.NewClient(aiCfg)

	passages, err := corpus.LoadFile(appCfg.CorpusPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", appCfg.CorpusPath).Msg("failed to load corpus")
	}
	logger.Info().Int("passages", len(passages)).Msg("corpus loaded")

	desc, err := corpus.ReadDescription(appCfg.AgentDescPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", appCfg.AgentDescPath).Msg("failed to load agent description")
	}

	ix, err := index.Build(ctx, passages, client)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build vector index")
	}

	retriever := retrieve.New(client, ix, passages)

	return chat.NewAssistant(chat.Config{
		Description:       desc,
		TopK:              appCfg.TopK,
		ContextWindowSize: appCfg.ContextWindowSize,
		MaxContextTokens:  appCfg.MaxContextTokens,
	}, retriever, client)
}

func initEnv(ctx context.Context) {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("failed to load .env file")
		return
	}
	logger.Debug().Msg("loaded .env file")
}
