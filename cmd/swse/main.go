package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/cli"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/config"
)

func main() {
	// .env is optional; flags override whatever it sets
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Log.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
