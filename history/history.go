// Package history records completed summarization runs for later review.
// Persistence is best-effort from the service's point of view: a failing
// store is logged, never fatal to the summarization itself.
package history

import (
	"context"
	"time"
)

// Record is one completed summarization run.
type Record struct {
	ID         string        `json:"id"`
	Source     string        `json:"source"` // "text" or the fetched URL
	Model      string        `json:"model"`  // model actually used, after any fallback
	Notice     string        `json:"notice,omitempty"`
	Summary    string        `json:"summary"`
	InputWords int           `json:"input_words"`
	Duration   time.Duration `json:"duration"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Store persists records.
type Store interface {
	Append(ctx context.Context, rec *Record) error
	Recent(ctx context.Context, limit int) ([]*Record, error)
	Close() error
}
