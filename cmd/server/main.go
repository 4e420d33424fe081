package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/relaychat/relaychat/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// Optional .env file; absence is not an error.
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded configuration from .env")
	}

	config := server.NewConfigFromEnv()

	srv, err := server.NewServer(config, logger)
	if err != nil {
		logger.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server start failed", "error", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
	case <-srv.Done():
		logger.Info("server stopped on its own")
	}

	if err := srv.Shutdown(10 * time.Second); err != nil {
		logger.Error("shutdown incomplete", "error", err)
		os.Exit(1)
	}
}
