package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/endurely/internal/config"
	"github.com/claude/endurely/internal/generator"
	endurelymcp "github.com/claude/endurely/internal/mcp"
	"github.com/claude/endurely/internal/storage"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// endurely-mcp serves the MCP tool surface over stdio for AI assistant
// integration. Logs go to stderr; stdout is the protocol channel.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	client, err := generator.NewClient(generator.ClientConfig{
		Provider:   cfg.LLM.Provider,
		Endpoint:   cfg.LLM.Endpoint,
		APIVersion: cfg.LLM.APIVersion,
		BaseURL:    cfg.LLM.BaseURL,
		APIKey:     cfg.LLM.APIKey,
		Model:      cfg.LLM.ModelName(),
	}, log)
	if err != nil {
		log.Error("failed to create llm client", "error", err)
		os.Exit(1)
	}
	gen := generator.New(client, log)

	s := endurelymcp.New(db, gen, Version, log)
	log.Info("MCP server starting", "transport", "stdio")
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
