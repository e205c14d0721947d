// Command condense-mcp serves the summarize tool over MCP stdio.
package main

import (
	"context"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sweetpotato0/condense/config"
	"github.com/sweetpotato0/condense/contrib/generators"
	"github.com/sweetpotato0/condense/contrib/tokenizer/tiktoken"
	"github.com/sweetpotato0/condense/engine"
	"github.com/sweetpotato0/condense/mcpserver"
	"github.com/sweetpotato0/condense/pkg/logging"
	"github.com/sweetpotato0/condense/service"
)

const version = "0.1.0"

func main() {
	log := logging.WithComponent("main")

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	svc := service.New(
		tiktoken.ForModel(cfg.Model),
		generators.NewRegistry(generators.Credentials{
			OpenAIAPIKey:    cfg.OpenAIAPIKey,
			OpenAIBaseURL:   cfg.OpenAIBaseURL,
			AnthropicAPIKey: cfg.AnthropicAPIKey,
			GeminiAPIKey:    cfg.GeminiAPIKey,
		}).Open,
		service.WithDefaults(engine.Config{
			Model:            cfg.Model,
			MaxSummaryTokens: cfg.MaxSummaryTokens,
			MinSummaryTokens: cfg.MinSummaryTokens,
			ChunkOverlap:     cfg.ChunkOverlap,
		}),
	)

	server := mcpserver.NewServer(svc, version)
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Error("stdio server stopped", "error", err)
		os.Exit(1)
	}
}
