package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rmmentors/alicia/internal/transport/cli"
	"github.com/rmmentors/alicia/pkg/log"
	"github.com/rmmentors/alicia/pkg/srv"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long:  `Loads the corpus, builds the vector index and opens a readline chat loop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting alicia")

		assistant := newAssistant(ctx)

		rl, err := cli.NewReadLine(assistant)
		if err != nil {
			return err
		}

		srv.Run(ctx, []srv.Service{rl})
		logger.Info().Msg("alicia has been shut down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
