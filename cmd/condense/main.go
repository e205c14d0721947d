// Command condense summarizes long text from a URL, a file, or stdin.
//
// Usage:
//
//	condense -url https://example.com/article
//	condense -file article.txt
//	cat article.txt | condense
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sweetpotato0/condense/config"
	"github.com/sweetpotato0/condense/contrib/generators"
	"github.com/sweetpotato0/condense/contrib/tokenizer/tiktoken"
	"github.com/sweetpotato0/condense/engine"
	"github.com/sweetpotato0/condense/service"
)

func main() {
	var (
		urlFlag   = flag.String("url", "", "article URL to fetch and summarize")
		fileFlag  = flag.String("file", "", "text file to summarize")
		modelFlag = flag.String("model", "", "model identifier override")
		maxTokens = flag.Int("max-tokens", 0, "upper bound on summary tokens")
		minTokens = flag.Int("min-tokens", 0, "lower bound on summary tokens")
		jsonOut   = flag.Bool("json", false, "emit JSON instead of plain text")
	)
	flag.Parse()

	if err := run(*urlFlag, *fileFlag, *modelFlag, *maxTokens, *minTokens, *jsonOut); err != nil {
		fmt.Fprintln(os.Stderr, "condense:", err)
		os.Exit(1)
	}
}

func run(url, file, model string, maxTokens, minTokens int, jsonOut bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if model == "" {
		model = cfg.Model
	}

	req := service.Request{
		URL:       url,
		Model:     model,
		MaxTokens: maxTokens,
		MinTokens: minTokens,
	}
	if url == "" {
		text, err := readInput(file)
		if err != nil {
			return err
		}
		req.Text = text
	}

	svc := service.New(
		tiktoken.ForModel(model),
		generators.NewRegistry(generators.Credentials{
			OpenAIAPIKey:    cfg.OpenAIAPIKey,
			OpenAIBaseURL:   cfg.OpenAIBaseURL,
			AnthropicAPIKey: cfg.AnthropicAPIKey,
			GeminiAPIKey:    cfg.GeminiAPIKey,
		}).Open,
		service.WithDefaults(engine.Config{
			Model:            cfg.Model,
			MaxSummaryTokens: cfg.MaxSummaryTokens,
			MinSummaryTokens: cfg.MinSummaryTokens,
			ChunkOverlap:     cfg.ChunkOverlap,
		}),
	)

	res, err := svc.Summarize(context.Background(), req)
	if errors.Is(err, engine.ErrTextTooShort) {
		// An input problem, not a failure: report it the way a result is
		// reported and exit cleanly.
		return emit(jsonOut, map[string]string{"error": err.Error()}, err.Error())
	}
	if err != nil {
		return err
	}

	out := res.Summary
	if res.Notice != "" {
		out += "\n\nNotice: " + res.Notice
	}
	return emit(jsonOut, res, out)
}

func emit(jsonOut bool, v any, plain string) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}
	fmt.Println(plain)
	return nil
}

func readInput(file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	}
	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return "", errors.New("provide -url or -file, or pipe text via stdin")
}
