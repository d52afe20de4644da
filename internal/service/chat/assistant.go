// Package chat runs conversation turns: retrieve, assemble, complete,
// commit session state.
package chat

import (
	"context"
	"errors"

	"github.com/rmmentors/alicia/internal/core"
	"github.com/rmmentors/alicia/internal/service/profile"
	"github.com/rmmentors/alicia/internal/service/prompt"
	"github.com/rmmentors/alicia/pkg/log"
)

const defaultTopK = 5

type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]core.ScoredPassage, error)
}

// Config tunes one assistant instance.
type Config struct {
	// Description is the agent description, sent verbatim as the first
	// system message.
	Description string
	// TopK is how many passages are retrieved per turn.
	TopK int
	// ContextWindowSize limits trailing history messages in the prompt;
	// 0 means the full history.
	ContextWindowSize int
	// MaxContextTokens is a soft prompt budget. Overruns are logged, not
	// enforced. 0 disables the accounting.
	MaxContextTokens int
}

// Assistant is the turn orchestrator. It is stateless across sessions; all
// conversational state lives in the Session passed to Turn.
type Assistant struct {
	cfg       Config
	retriever Retriever
	provider  core.ChatProvider
}

func NewAssistant(cfg Config, retriever Retriever, provider core.ChatProvider) *Assistant {
	if cfg.TopK <= 0 {
		cfg.TopK = defaultTopK
	}
	return &Assistant{
		cfg:       cfg,
		retriever: retriever,
		provider:  provider,
	}
}

// Turn runs one query against the session. A provider failure aborts the
// turn with the session untouched, so the same query can be retried without
// duplicating history. The profile transition and both history appends
// commit together after the reply arrives.
func (a *Assistant) Turn(ctx context.Context, s *Session, query string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := log.FromCtx(ctx)

	retrieved, err := a.retriever.Retrieve(ctx, query, a.cfg.TopK)
	if err != nil {
		return "", err
	}

	history := s.history
	if n := a.cfg.ContextWindowSize; n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}

	messages := prompt.Assemble(a.cfg.Description, s.profile, history, retrieved, query)

	if a.cfg.MaxContextTokens > 0 {
		tokens := prompt.TokenCount(messages)
		logger.Debug().Int("messages", len(messages)).Int("tokens", tokens).Msg("prompt assembled")
		if tokens > a.cfg.MaxContextTokens {
			logger.Warn().Int("tokens", tokens).Int("budget", a.cfg.MaxContextTokens).Msg("prompt exceeds context budget")
		}
	}

	reply, err := a.provider.Complete(ctx, messages)
	if err != nil {
		var compErr *core.CompletionError
		if errors.As(err, &compErr) {
			return "", err
		}
		return "", &core.CompletionError{Err: err}
	}

	// The extractor only ever sees the user's query, never the reply, and
	// never runs again once the profile is set.
	if s.profile == nil {
		if p, ok := profile.Extract(query); ok {
			s.profile = &p
			logger.Info().Str("program", p.Program).Int("year", p.Year).Msg("student profile set")
		}
	}

	s.history = append(s.history,
		core.Message{Role: core.RoleUser, Content: query},
		core.Message{Role: core.RoleAssistant, Content: reply},
	)

	return reply, nil
}
