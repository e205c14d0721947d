// Package openai backs the generator interface with OpenAI chat models.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sweetpotato0/condense/generator"
)

// Config holds OpenAI provider configuration
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// WithBaseURL set BaseURL.
func (cfg *Config) WithBaseURL(url string) *Config {
	cfg.BaseURL = url
	return cfg
}

// WithAPIKey set api key.
func (cfg *Config) WithAPIKey(apiKey string) *Config {
	cfg.APIKey = apiKey
	return cfg
}

// WithModel set model.
func (cfg *Config) WithModel(model string) *Config {
	cfg.Model = model
	return cfg
}

// DefaultConfig returns default OpenAI configuration
func DefaultConfig() *Config {
	return &Config{
		Model: generator.DefaultModel,
	}
}

// Generator implements generator.Generator using the official SDK.
type Generator struct {
	config *Config
	client openaisdk.Client
}

// New creates a new OpenAI-backed generator.
func New(config *Config) (*Generator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.APIKey == "" {
		return nil, errors.New("openai generator: API key is required")
	}
	if config.Model == "" {
		config.Model = generator.DefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if strings.TrimSpace(config.BaseURL) != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &Generator{
		config: config,
		client: openaisdk.NewClient(opts...),
	}, nil
}

// GenerateSummary implements generator.Generator. Temperature is pinned to
// zero so repeated calls with fixed weights return the same candidate.
func (g *Generator) GenerateSummary(ctx context.Context, text string, maxTokens, minTokens int) (string, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(g.config.Model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(generator.SystemPrompt(maxTokens, minTokens)),
			openaisdk.UserMessage(text),
		},
		MaxCompletionTokens: openaisdk.Int(int64(maxTokens)),
		Temperature:         openaisdk.Float(0),
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai generator: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai generator: no candidates returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
