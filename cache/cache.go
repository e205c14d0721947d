// Package cache defines the summary cache consulted before a summarization
// run. Keys bind the input text to the model and length bounds, so a config
// change never serves a stale summary.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Cache stores finished summaries. Implementations must be safe for
// concurrent use. A miss is ("", false, nil); errors are reserved for
// backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, summary string) error
}

// Key derives a cache key from the model, length bounds and input text.
func Key(model, text string, maxTokens, minTokens int) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d\x00%d\x00", model, maxTokens, minTokens)
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
