package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/launchdeck/internal/app"
	"github.com/MrSnakeDoc/launchdeck/internal/config"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
	"github.com/MrSnakeDoc/launchdeck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "launchdeck",
	Short: "SpaceX launch tracker with an offline cache",
	Long: "launchdeck fetches SpaceX launch data, keeps the last good copy in a\n" +
		"store and serves it over a JSON API or straight to the terminal.",
	SilenceUsage: true,
	RunE:         runServe,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(launchesCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(bookmarkCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version.Version
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

// withCore loads the configuration, opens the store and hands the wired
// Core to fn, closing everything afterwards.
func withCore(cmd *cobra.Command, fn func(ctx context.Context, core *app.Core) error) error {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	core, err := app.NewCore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer core.Close()

	return fn(ctx, core)
}
