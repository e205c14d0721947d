package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sweetpotato0/condense/generator"
	"github.com/sweetpotato0/condense/tokenizer"
)

// countingGenerator records every call and returns canned partial summaries.
type countingGenerator struct {
	calls  []string
	bounds [][2]int
}

func (g *countingGenerator) GenerateSummary(_ context.Context, text string, maxTokens, minTokens int) (string, error) {
	g.calls = append(g.calls, text)
	g.bounds = append(g.bounds, [2]int{maxTokens, minTokens})
	return fmt.Sprintf("S%d", len(g.calls)), nil
}

func openWith(gen generator.Generator) generator.OpenFunc {
	return func(string) (generator.Generator, error) { return gen, nil }
}

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func TestSummarizeEmptyInput(t *testing.T) {
	gen := &countingGenerator{}
	sess, err := NewSession(DefaultConfig(), tokenizer.NewSimpleTokenizer(), openWith(gen))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	for _, input := range []string{"", "   ", "\n\t "} {
		out, err := sess.Summarize(context.Background(), input)
		if err != nil {
			t.Fatalf("summarize %q: %v", input, err)
		}
		if out != "" {
			t.Fatalf("summarize %q = %q, want empty", input, out)
		}
	}
	if len(gen.calls) != 0 {
		t.Fatalf("generator invoked %d times on empty input", len(gen.calls))
	}
}

func TestSummarizeSingleWindow(t *testing.T) {
	gen := &countingGenerator{}
	tok := tokenizer.NewSimpleTokenizer()
	sess, err := NewSession(DefaultConfig(), tok, openWith(gen))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	out, err := sess.Summarize(context.Background(), words(100))
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(gen.calls) != 1 {
		t.Fatalf("expected exactly 1 generation call, got %d", len(gen.calls))
	}
	if out != "S1" {
		t.Fatalf("expected the single partial as final output, got %q", out)
	}
}

func TestSummarizeMultiWindow(t *testing.T) {
	gen := &countingGenerator{}
	// 60-token budget gives a 50-token window with a 10-token overlap cap.
	tok := tokenizer.NewSimpleTokenizer(tokenizer.WithMaxInputTokens(60))
	sess, err := NewSession(DefaultConfig(), tok, openWith(gen))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if sess.WindowSize() != 50 {
		t.Fatalf("window size = %d, want 50", sess.WindowSize())
	}

	// 120 tokens → windows [0,50) [40,90) [80,120): 3 map calls + 1 reduce.
	out, err := sess.Summarize(context.Background(), words(120))
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(gen.calls) != 4 {
		t.Fatalf("expected 3 map calls + 1 reduce call, got %d", len(gen.calls))
	}
	if got, want := gen.calls[3], "S1 S2 S3"; got != want {
		t.Fatalf("reduce input = %q, want %q", got, want)
	}
	if out != "S4" {
		t.Fatalf("final output = %q, want the reduce result", out)
	}

	// Per-window bounds come from the window's own token count.
	if gen.bounds[0] != [2]int{48, 40} {
		t.Fatalf("map bounds = %v, want [48 40]", gen.bounds[0])
	}
}

func TestSummarizeGeneratorErrorPropagates(t *testing.T) {
	boom := errors.New("backend down")
	failing := generator.Func(func(context.Context, string, int, int) (string, error) {
		return "", boom
	})
	sess, err := NewSession(DefaultConfig(), tokenizer.NewSimpleTokenizer(), openWith(failing))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	_, err = sess.Summarize(context.Background(), words(60))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
}

func TestNewSessionFallback(t *testing.T) {
	gen := &countingGenerator{}
	open := func(model string) (generator.Generator, error) {
		if model != generator.DefaultModel {
			return nil, fmt.Errorf("model %q: %w", model, generator.ErrUnsupportedModel)
		}
		return gen, nil
	}

	cfg := DefaultConfig()
	cfg.Model = "bart-large-cnn"
	sess, err := NewSession(cfg, tokenizer.NewSimpleTokenizer(), open)
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if sess.Model() != generator.DefaultModel {
		t.Fatalf("model = %q, want %q", sess.Model(), generator.DefaultModel)
	}
	notice := sess.Notice()
	if !strings.Contains(notice, "bart-large-cnn") || !strings.Contains(notice, generator.DefaultModel) {
		t.Fatalf("notice %q should name both models", notice)
	}

	out, err := sess.Summarize(context.Background(), words(80))
	if err != nil {
		t.Fatalf("summarize after fallback: %v", err)
	}
	if out == "" {
		t.Fatal("expected non-empty summary after fallback")
	}
}

func TestNewSessionOtherErrorsNoFallback(t *testing.T) {
	boom := errors.New("credentials rejected")
	open := func(string) (generator.Generator, error) { return nil, boom }

	_, err := NewSession(DefaultConfig(), tokenizer.NewSimpleTokenizer(), open)
	if !errors.Is(err, boom) {
		t.Fatalf("expected construction error to propagate, got %v", err)
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSummaryTokens = 0
	if _, err := NewSession(cfg, tokenizer.NewSimpleTokenizer(), openWith(&countingGenerator{})); err == nil {
		t.Fatal("expected validation error for zero max tokens")
	}
}
