package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/launchdeck/internal/app"
	"github.com/MrSnakeDoc/launchdeck/internal/config"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the background refresher (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	a, err := app.New(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	return a.Run(cmd.Context())
}
