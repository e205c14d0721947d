// Package anthropic backs the generator interface with Claude models.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sweetpotato0/condense/generator"
)

// Config holds Claude provider configuration
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// DefaultConfig returns default Claude configuration
func DefaultConfig(apiKey string) *Config {
	return &Config{
		APIKey: apiKey,
		Model:  "claude-3-5-haiku-20241022",
	}
}

// Generator implements generator.Generator using the official SDK.
type Generator struct {
	config *Config
	client anthropicsdk.Client
}

// New creates a new Claude-backed generator.
func New(config *Config) (*Generator, error) {
	if config == nil || config.APIKey == "" {
		return nil, errors.New("anthropic generator: API key is required")
	}
	if config.Model == "" {
		config.Model = "claude-3-5-haiku-20241022"
	}

	opts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &Generator{
		config: config,
		client: anthropicsdk.NewClient(opts...),
	}, nil
}

// GenerateSummary implements generator.Generator.
func (g *Generator) GenerateSummary(ctx context.Context, text string, maxTokens, minTokens int) (string, error) {
	params := anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(g.config.Model),
		MaxTokens: int64(maxTokens),
		System: []anthropicsdk.TextBlockParam{
			{Text: generator.SystemPrompt(maxTokens, minTokens)},
		},
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(text)),
		},
		Temperature: anthropicsdk.Float(0),
	}

	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic generator: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", errors.New("anthropic generator: no text content returned")
	}
	return out, nil
}
