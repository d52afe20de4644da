package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmmentors/alicia/internal/config"
	"github.com/rmmentors/alicia/internal/core"
	"github.com/rmmentors/alicia/pkg/log"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:     "alicia",
	Short:   "ALICIA — academic mentoring assistant",
	Version: core.AgentVersion,
	Long: `ALICIA answers student questions from the mentoring knowledge corpus,
grounding every reply in the passages retrieved for the question.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	return log.NewContextWithLogger(ctx, debug || config.IsDebug())
}
