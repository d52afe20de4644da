// Package cli is the readline front-end. It owns input capture and
// rendering; the assistant core never blocks on it.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rmmentors/alicia/internal/core"
	"github.com/rmmentors/alicia/internal/service/chat"
	"github.com/rmmentors/alicia/internal/service/ui"
	"github.com/rmmentors/alicia/pkg/log"
	"github.com/rmmentors/alicia/pkg/retry"
)

const intro = "Hi, I'm ALICIA. Here to help! Ask me anything about the " +
	"program, mentorship, resources, and more. How can I help you today?"

type ReadLine struct {
	assistant *chat.Assistant
	session   *chat.Session
	retrier   *retry.Retrier
	rl        *readline.Instance
}

func NewReadLine(assistant *chat.Assistant) (*ReadLine, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		assistant: assistant,
		session:   chat.NewSession(),
		retrier:   retry.NewDefaultRetrier(),
		rl:        rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("chat started, type 'exit' to quit, '/reset' to start over")

	fmt.Println(ui.TitleStyle.Render(core.AgentName + " — Academic Learning and Institutional Coaching Intelligent Assistant"))
	fmt.Println(ui.ReplyStyle.Render(intro))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "exit":
			return nil
		case line == "/reset":
			r.session.Reset()
			fmt.Println(ui.NoticeStyle.Render("session cleared"))
			continue
		}

		// A failed turn leaves the session untouched, so re-running the
		// whole turn here is safe.
		var reply string
		err = r.retrier.Do(ctx, func() error {
			var turnErr error
			reply, turnErr = r.assistant.Turn(ctx, r.session, line)
			return turnErr
		})
		if err != nil {
			logger.Error().Err(err).Msg("turn failed")
			fmt.Println(ui.ErrorStyle.Render("[error] " + err.Error()))
			continue
		}

		fmt.Println(ui.ReplyStyle.Render(reply))
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	return r.rl.Close()
}
