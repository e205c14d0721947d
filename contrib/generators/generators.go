// Package generators wires the provider-backed generator implementations
// into a registry keyed by model identifier prefix. Providers without
// credentials are simply not registered, so an identifier routed to them
// resolves to generator.ErrUnsupportedModel and the engine's documented
// fallback applies.
package generators

import (
	"context"

	"github.com/sweetpotato0/condense/contrib/generators/anthropic"
	"github.com/sweetpotato0/condense/contrib/generators/gemini"
	"github.com/sweetpotato0/condense/contrib/generators/openai"
	"github.com/sweetpotato0/condense/generator"
)

// Credentials carries the per-provider API settings.
type Credentials struct {
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AnthropicAPIKey string
	GeminiAPIKey    string
}

// NewRegistry builds the default model registry from the given credentials.
func NewRegistry(creds Credentials) *generator.Registry {
	reg := generator.NewRegistry()

	if creds.OpenAIAPIKey != "" {
		reg.Register(
			generator.PrefixMatcher("gpt-", "o1", "o3", "chatgpt-"),
			func(model string) (generator.Generator, error) {
				cfg := openai.DefaultConfig().
					WithAPIKey(creds.OpenAIAPIKey).
					WithBaseURL(creds.OpenAIBaseURL).
					WithModel(model)
				return openai.New(cfg)
			},
		)
	}

	if creds.AnthropicAPIKey != "" {
		reg.Register(
			generator.PrefixMatcher("claude-"),
			func(model string) (generator.Generator, error) {
				cfg := anthropic.DefaultConfig(creds.AnthropicAPIKey)
				cfg.Model = model
				return anthropic.New(cfg)
			},
		)
	}

	if creds.GeminiAPIKey != "" {
		reg.Register(
			generator.PrefixMatcher("gemini-"),
			func(model string) (generator.Generator, error) {
				cfg := gemini.DefaultConfig(creds.GeminiAPIKey)
				cfg.Model = model
				return gemini.New(context.Background(), cfg)
			},
		)
	}

	return reg
}
