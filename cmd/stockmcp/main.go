package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"StockPulse/internal/app"
	"StockPulse/internal/config"
	"StockPulse/internal/logger"
	"StockPulse/internal/mcptools"
)

func main() {
	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging to avoid cluttering MCP stdio; zap writes to stderr.
	if err := logger.Init("warn", cfg.Log.Env); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		logger.Fatalf("init engine: %v", err)
	}
	defer a.Close()

	mcpServer := mcptools.NewServer("stockpulse", app.Version, a.Service)

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatalf("MCP server failed: %v", err)
	}
}
