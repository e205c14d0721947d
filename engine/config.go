package engine

import (
	"github.com/sweetpotato0/condense/config"
	"github.com/sweetpotato0/condense/generator"
)

// Config is the immutable per-session summarization configuration. The only
// mutation-like event after construction is the documented substitution of
// Model when the requested identifier cannot be opened; the substitution is
// surfaced through Session.Notice.
type Config struct {
	// Model names the generation capability to open.
	Model string
	// MaxSummaryTokens is the upper bound on any single call's output.
	MaxSummaryTokens int
	// MinSummaryTokens is the lower bound, corrected below the maximum by
	// the length policy when misordered.
	MinSummaryTokens int
	// ChunkOverlap is the number of tokens repeated between consecutive
	// windows to preserve cross-boundary context. It is capped relative to
	// the window size at planning time.
	ChunkOverlap int
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Model:            generator.DefaultModel,
		MaxSummaryTokens: 160,
		MinSummaryTokens: 40,
		ChunkOverlap:     50,
	}
}

// Validate checks construction-time constraints.
func (c Config) Validate() error {
	v := config.NewValidator()
	v.RequireNonEmpty("model", c.Model)
	v.RequirePositive("maxSummaryTokens", c.MaxSummaryTokens)
	v.RequirePositive("minSummaryTokens", c.MinSummaryTokens)
	v.RequireNonNegative("chunkOverlap", c.ChunkOverlap)
	return v.Error()
}
