package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pot-portal/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var outputFormat string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pot-portal",
	Short: "Path of Terraria portal client",
	Long: `pot-portal talks to the Path of Terraria portal backend.
It manages your account and characters, browses trades and supporter packs,
exports mob data and imports localization files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		var reported *reportedError
		if errors.As(err, &reported) {
			os.Exit(1)
		}
		// Console + debug config gives readable ISO8601 timestamps on a terminal.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json or yaml")
}
