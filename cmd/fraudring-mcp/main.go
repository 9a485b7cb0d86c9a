package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ringsight/fraudring-mcp/internal/config"
	"github.com/ringsight/fraudring-mcp/internal/preset"
	"github.com/ringsight/fraudring-mcp/internal/server"
	"github.com/ringsight/fraudring-mcp/presets"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load(version)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr: stdout carries the MCP protocol on the stdio
	// transport.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	preset.EmbeddedFS = presets.ConfigFiles

	srv, err := server.NewFraudRingMCPServer(cfg)
	if err != nil {
		slog.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting fraudring-mcp",
		"version", cfg.Version,
		"transport", cfg.Transport,
		"readOnly", cfg.ReadOnly)

	if err := srv.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
