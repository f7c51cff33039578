package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spacesedan/sentimeter/config"
	"github.com/spacesedan/sentimeter/internal/analyzer"
	"github.com/spacesedan/sentimeter/internal/clients"
	"github.com/spacesedan/sentimeter/internal/logging"
	"github.com/spacesedan/sentimeter/internal/sentiment"
	"github.com/spacesedan/sentimeter/internal/server"
)

func main() {
	// Config errors need a handler before LOG_LEVEL is known; run swaps in the configured level.
	logging.InitLogger(slog.LevelInfo)

	if err := run(); err != nil {
		slog.Error("[Main] exiting", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	env := config.AppEnv()
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.InitLogger(cfg.LogLevel)

	twitterClient, err := clients.NewTwitterClient(cfg.Twitter)
	if err != nil {
		return fmt.Errorf("failed to create Twitter client: %w", err)
	}

	classifier, err := sentiment.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to load sentiment classifier: %w", err)
	}
	defer func() {
		if err := sentiment.Close(classifier); err != nil {
			slog.Warn("[Main] failed to release classifier", slog.String("error", err.Error()))
		}
	}()

	srv, err := server.New(cfg.Server, analyzer.New(twitterClient, classifier))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	slog.Info("[Main] starting server",
		slog.String("env", env),
		slog.String("host", cfg.Server.Host),
		slog.String("port", cfg.Server.Port))
	if err := srv.Run(); err != nil {
		return err
	}

	slog.Info("[Main] server stopped")
	return nil
}
