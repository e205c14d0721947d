// Package engine implements the chunked summarization engine: a session
// object bundling a tokenizer and a generation capability, a chunk planner
// that windows long token sequences into the model's input budget, a length
// policy computing safe output bounds per call, and a hierarchical
// map-then-reduce pass that keeps the final summary length bounded no matter
// how long the input is.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sweetpotato0/condense/generator"
	"github.com/sweetpotato0/condense/pkg/logging"
	"github.com/sweetpotato0/condense/tokenizer"
)

const (
	// maxInputCeiling caps the usable encoder input regardless of what the
	// tokenizer reports.
	maxInputCeiling = 1024
	// inputMargin reserves room for special or control tokens the model may
	// add around the window.
	inputMargin = 10
)

// Session bundles a tokenizer and an opened generator with an immutable
// configuration snapshot. Sessions with different models or configurations
// can coexist; there is no package-level state.
type Session struct {
	cfg        Config
	tok        tokenizer.Tokenizer
	gen        generator.Generator
	windowSize int
	notice     string
	log        *slog.Logger
}

// NewSession validates the configuration and opens the generation capability
// for cfg.Model. When the model is unsupported, it retries once with
// generator.DefaultModel and records the substitution; the notice is
// reported through Notice, never silently absorbed. Any other open failure
// propagates unchanged.
func NewSession(cfg Config, tok tokenizer.Tokenizer, open generator.OpenFunc) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, errors.New("engine: tokenizer is required")
	}
	if open == nil {
		return nil, errors.New("engine: generator opener is required")
	}

	var notice string
	gen, err := open(cfg.Model)
	if err != nil {
		if !errors.Is(err, generator.ErrUnsupportedModel) || cfg.Model == generator.DefaultModel {
			return nil, fmt.Errorf("engine: open model %q: %w", cfg.Model, err)
		}
		fallback, ferr := open(generator.DefaultModel)
		if ferr != nil {
			return nil, fmt.Errorf("engine: open model %q: %w", cfg.Model, err)
		}
		notice = fmt.Sprintf("model %q is not available; fell back to %q", cfg.Model, generator.DefaultModel)
		cfg.Model = generator.DefaultModel
		gen = fallback
	}

	maxInput := tok.MaxInputTokens()
	if maxInput <= 0 || maxInput > maxInputCeiling {
		maxInput = maxInputCeiling
	}

	return &Session{
		cfg:        cfg,
		tok:        tok,
		gen:        gen,
		windowSize: maxInput - inputMargin,
		notice:     notice,
		log:        logging.WithComponent("engine"),
	}, nil
}

// Model returns the model identifier actually in use, after any fallback.
func (s *Session) Model() string {
	return s.cfg.Model
}

// Notice returns a human-readable note about the model fallback, or "" when
// the requested model was used as-is.
func (s *Session) Notice() string {
	return s.notice
}

// WindowSize returns the token budget of a single generation call's input.
func (s *Session) WindowSize() int {
	return s.windowSize
}

// Summarize produces one summary for text. Inputs that fit a single window
// cost exactly one generation call; longer inputs are windowed, each window
// summarized left to right, and the space-joined partial summaries are
// summarized once more so that output length stays bounded. Empty or
// whitespace-only input returns "" without invoking the generator.
func (s *Session) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	ids := s.tok.Encode(text)
	windows := PlanWindows(len(ids), s.windowSize, s.cfg.ChunkOverlap)
	s.log.Debug("planned windows", "tokens", len(ids), "windows", len(windows))

	partials := make([]string, 0, len(windows))
	for _, w := range windows {
		chunkText := s.tok.Decode(ids[w.Start:w.End])
		maxLen, minLen := LengthBounds(w.Len(), s.cfg.MaxSummaryTokens, s.cfg.MinSummaryTokens)
		out, err := s.gen.GenerateSummary(ctx, chunkText, maxLen, minLen)
		if err != nil {
			return "", fmt.Errorf("engine: summarize window [%d,%d): %w", w.Start, w.End, err)
		}
		partials = append(partials, out)
	}

	if len(partials) == 1 {
		return partials[0], nil
	}

	// Reduce pass: window order is narrative order, so the join is ordered.
	combined := strings.Join(partials, " ")
	combinedIDs := s.tok.Encode(combined)
	maxLen, minLen := LengthBounds(len(combinedIDs), s.cfg.MaxSummaryTokens, s.cfg.MinSummaryTokens)
	final, err := s.gen.GenerateSummary(ctx, combined, maxLen, minLen)
	if err != nil {
		return "", fmt.Errorf("engine: reduce %d partial summaries: %w", len(partials), err)
	}
	return final, nil
}
