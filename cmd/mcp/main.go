package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/riskibarqy/fpl-ownership/internal/app"
	"github.com/riskibarqy/fpl-ownership/internal/config"
	"github.com/riskibarqy/fpl-ownership/internal/interfaces/mcpapi"
	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// stdout carries the MCP stream.
	logger := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: logging.FormatJSON,
		Output: os.Stderr,
		Name:   mcpapi.ServerName,
	})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services, err := app.NewServices(cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}
	if err := services.Warm(ctx, logger); err != nil {
		logger.Error("load season data", "error", err)
		os.Exit(1)
	}

	tools := mcpapi.NewTools(services.Seasons, services.Catalog, services.Ownership, services.Managers, logger)
	server := mcpapi.NewServer(tools)

	logger.Info("mcp server starting", "transport", "stdio", "league", cfg.League.Registry.Name)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("mcp server failed", "error", err)
		os.Exit(1)
	}
}
