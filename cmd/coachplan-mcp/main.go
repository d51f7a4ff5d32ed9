// coachplan-mcp serves plan generation over MCP stdio, for use as a local
// tool server by agent clients.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/claude/coachplan/internal/anthropic"
	"github.com/claude/coachplan/internal/config"
	coachmcp "github.com/claude/coachplan/internal/mcp"
	"github.com/claude/coachplan/internal/planner"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	// Logs go to stderr; stdout carries the MCP stream.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var client planner.ModelClient
	if cfg.Anthropic.APIKey != "" {
		client = anthropic.New(cfg.Anthropic.APIKey, cfg.Anthropic.Model,
			cfg.Anthropic.Temperature, cfg.Anthropic.MaxTokens, cfg.Anthropic.BaseURL)
	}

	svc := planner.New(client, log)
	mcpSrv := coachmcp.New(svc, Version, log)

	if err := server.ServeStdio(mcpSrv); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
