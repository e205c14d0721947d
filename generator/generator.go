package generator

import (
	"context"
	"errors"
	"fmt"
)

// DefaultModel is the known-good identifier substituted when the requested
// model cannot be opened.
const DefaultModel = "gpt-4o-mini"

// ErrUnsupportedModel indicates that no registered provider can serve the
// requested model identifier. Callers match it with errors.Is; the engine
// uses it to trigger the one documented fallback to DefaultModel.
var ErrUnsupportedModel = errors.New("unsupported model")

// Generator is the abstractive summarization capability. Implementations
// return a single candidate produced with greedy decoding, so output is
// deterministic for fixed weights. maxTokens bounds the output length;
// minTokens is a soft lower bound passed through to the model.
type Generator interface {
	GenerateSummary(ctx context.Context, text string, maxTokens, minTokens int) (string, error)
}

// OpenFunc opens a generator for a model identifier.
type OpenFunc func(model string) (Generator, error)

// Func adapts a plain function into a Generator; mainly useful for tests.
type Func func(ctx context.Context, text string, maxTokens, minTokens int) (string, error)

// GenerateSummary implements Generator.
func (f Func) GenerateSummary(ctx context.Context, text string, maxTokens, minTokens int) (string, error) {
	return f(ctx, text, maxTokens, minTokens)
}

// Registry maps model identifiers to provider constructors. Providers are
// registered by the binary that wires them, keeping this package free of
// vendor SDK imports.
type Registry struct {
	entries []registryEntry
}

type registryEntry struct {
	match func(model string) bool
	open  OpenFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a provider. Entries are tried in registration order.
func (r *Registry) Register(match func(model string) bool, open OpenFunc) {
	if match == nil || open == nil {
		return
	}
	r.entries = append(r.entries, registryEntry{match: match, open: open})
}

// Open returns a generator for the model, or ErrUnsupportedModel when no
// registered provider matches the identifier.
func (r *Registry) Open(model string) (Generator, error) {
	for _, e := range r.entries {
		if e.match(model) {
			return e.open(model)
		}
	}
	return nil, fmt.Errorf("model %q: %w", model, ErrUnsupportedModel)
}

// PrefixMatcher matches model identifiers by name prefix.
func PrefixMatcher(prefixes ...string) func(model string) bool {
	return func(model string) bool {
		for _, p := range prefixes {
			if len(model) >= len(p) && model[:len(p)] == p {
				return true
			}
		}
		return false
	}
}
