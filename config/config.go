// Package config holds the environment-driven application configuration and
// shared validation utilities used by library constructors.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// App is the process configuration for the condense binaries, loaded from
// the environment.
type App struct {
	// Summarization defaults; individual requests may override them.
	Model            string `env:"CONDENSE_MODEL"         envDefault:"gpt-4o-mini"`
	MaxSummaryTokens int    `env:"CONDENSE_MAX_TOKENS"    envDefault:"160"`
	MinSummaryTokens int    `env:"CONDENSE_MIN_TOKENS"    envDefault:"40"`
	ChunkOverlap     int    `env:"CONDENSE_CHUNK_OVERLAP" envDefault:"50"`

	// Provider credentials. A provider without a key is simply not
	// registered.
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string `env:"OPENAI_API_BASE_URL"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`

	// Optional infrastructure; each stays disabled while its setting is
	// empty.
	RedisAddr     string `env:"CONDENSE_REDIS_ADDR"`
	RedisPassword string `env:"CONDENSE_REDIS_PASSWORD"`
	RedisDB       int    `env:"CONDENSE_REDIS_DB"       envDefault:"0"`
	PostgresDSN   string `env:"CONDENSE_POSTGRES_DSN"`
	MongoURI      string `env:"CONDENSE_MONGO_URI"`

	// Server settings.
	ListenAddr string `env:"CONDENSE_LISTEN_ADDR" envDefault:":7860"`

	// Telemetry.
	TelemetryDisabled bool   `env:"CONDENSE_TELEMETRY_DISABLE" envDefault:"true"`
	Environment       string `env:"CONDENSE_ENVIRONMENT"       envDefault:"development"`
}

// Load parses the application configuration from the environment.
func Load() (App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return App{}, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration.
func (c App) Validate() error {
	v := NewValidator()
	v.RequireNonEmpty("model", c.Model)
	v.RequirePositive("maxSummaryTokens", c.MaxSummaryTokens)
	v.RequirePositive("minSummaryTokens", c.MinSummaryTokens)
	v.RequireNonNegative("chunkOverlap", c.ChunkOverlap)
	if c.RedisAddr != "" {
		v.ValidateRange("redisDB", c.RedisDB, 0, 15)
	}
	return v.Error()
}
