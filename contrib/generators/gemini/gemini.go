// Package gemini backs the generator interface with Google Gemini models.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/sweetpotato0/condense/generator"
	"google.golang.org/api/option"
)

// Config holds Gemini provider configuration
type Config struct {
	APIKey string
	Model  string
}

// DefaultConfig returns default Gemini configuration
func DefaultConfig(apiKey string) *Config {
	return &Config{
		APIKey: apiKey,
		Model:  "gemini-1.5-flash",
	}
}

// Generator implements generator.Generator using the official genai client.
type Generator struct {
	config *Config
	client *genai.Client
}

// New creates a new Gemini-backed generator. The client dials lazily but
// construction still takes a context for credential resolution.
func New(ctx context.Context, config *Config) (*Generator, error) {
	if config == nil || config.APIKey == "" {
		return nil, errors.New("gemini generator: API key is required")
	}
	if config.Model == "" {
		config.Model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini generator: init client: %w", err)
	}
	return &Generator{config: config, client: client}, nil
}

// GenerateSummary implements generator.Generator.
func (g *Generator) GenerateSummary(ctx context.Context, text string, maxTokens, minTokens int) (string, error) {
	model := g.client.GenerativeModel(g.config.Model)
	model.SetTemperature(0)
	model.SetMaxOutputTokens(int32(maxTokens))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(generator.SystemPrompt(maxTokens, minTokens))},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return "", fmt.Errorf("gemini generator: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini generator: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", errors.New("gemini generator: no text parts returned")
	}
	return out, nil
}

// Close releases the underlying client.
func (g *Generator) Close() error {
	return g.client.Close()
}
