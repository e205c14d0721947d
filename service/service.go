// Package service orchestrates a full summarization run: resolve the input
// (fetch and extract when a URL is given), gate on the usable-text
// threshold, consult the summary cache, run the engine, and record the
// outcome. It is the single place the boundary layers (CLI, HTTP, MCP)
// talk to.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sweetpotato0/condense/cache"
	"github.com/sweetpotato0/condense/engine"
	"github.com/sweetpotato0/condense/extract"
	"github.com/sweetpotato0/condense/fetch"
	"github.com/sweetpotato0/condense/generator"
	"github.com/sweetpotato0/condense/history"
	"github.com/sweetpotato0/condense/pkg/logging"
	"github.com/sweetpotato0/condense/pkg/telemetry"
	"github.com/sweetpotato0/condense/tokenizer"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Request describes one summarization request. Exactly one of Text and URL
// must be set; zero values in the remaining fields fall back to the
// service defaults.
type Request struct {
	Text      string `json:"text,omitempty"`
	URL       string `json:"url,omitempty"`
	Model     string `json:"model,omitempty"`
	MaxTokens int    `json:"max_tokens,omitempty"`
	MinTokens int    `json:"min_tokens,omitempty"`
}

// Result is a completed summarization.
type Result struct {
	Summary    string        `json:"summary"`
	Model      string        `json:"model"`
	Notice     string        `json:"notice,omitempty"`
	Source     string        `json:"source"`
	InputWords int           `json:"input_words"`
	Cached     bool          `json:"cached"`
	Duration   time.Duration `json:"duration"`
}

// Service bundles the collaborators of the summarization pipeline.
type Service struct {
	defaults  engine.Config
	tok       tokenizer.Tokenizer
	open      generator.OpenFunc
	fetcher   *fetch.Client
	extractor *extract.Chain
	cache     cache.Cache
	hist      history.Store
	log       *slog.Logger
	tracer    trace.Tracer
}

// Option customises the service.
type Option func(*Service)

// WithDefaults overrides the default engine configuration applied to
// requests that leave fields unset.
func WithDefaults(cfg engine.Config) Option {
	return func(s *Service) { s.defaults = cfg }
}

// WithFetcher overrides the page fetcher.
func WithFetcher(f *fetch.Client) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithExtractor overrides the extraction chain.
func WithExtractor(c *extract.Chain) Option {
	return func(s *Service) {
		if c != nil {
			s.extractor = c
		}
	}
}

// WithCache attaches a summary cache.
func WithCache(c cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithHistory attaches a history store.
func WithHistory(h history.Store) Option {
	return func(s *Service) { s.hist = h }
}

// WithLogger overrides the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a service over a tokenizer and a generator opener.
func New(tok tokenizer.Tokenizer, open generator.OpenFunc, opts ...Option) *Service {
	s := &Service{
		defaults:  engine.DefaultConfig(),
		tok:       tok,
		open:      open,
		fetcher:   fetch.New(),
		extractor: extract.NewChain(),
		log:       logging.WithComponent("service"),
		tracer:    otel.Tracer("condense/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize runs the pipeline for one request.
func (s *Service) Summarize(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "service.Summarize")
	var retErr error
	defer func() { telemetry.End(span, retErr) }()

	text, source, err := s.resolveText(ctx, req)
	if err != nil {
		retErr = err
		return nil, err
	}

	if err := engine.CheckUsableText(text); err != nil {
		retErr = err
		return nil, err
	}

	cfg := s.defaults
	if req.Model != "" {
		cfg.Model = req.Model
	}
	if req.MaxTokens > 0 {
		cfg.MaxSummaryTokens = req.MaxTokens
	}
	if req.MinTokens > 0 {
		cfg.MinSummaryTokens = req.MinTokens
	}

	sess, err := engine.NewSession(cfg, s.tok, s.open)
	if err != nil {
		retErr = err
		return nil, err
	}
	if n := sess.Notice(); n != "" {
		s.log.Warn("model fallback", "notice", n)
	}
	span.SetAttributes(attribute.String("model", sess.Model()))

	inputWords := len(strings.Fields(text))
	key := cache.Key(sess.Model(), text, cfg.MaxSummaryTokens, cfg.MinSummaryTokens)

	if s.cache != nil {
		if summary, ok, cerr := s.cache.Get(ctx, key); cerr != nil {
			s.log.Warn("cache get failed", "error", cerr)
		} else if ok {
			return &Result{
				Summary:    summary,
				Model:      sess.Model(),
				Notice:     sess.Notice(),
				Source:     source,
				InputWords: inputWords,
				Cached:     true,
				Duration:   time.Since(start),
			}, nil
		}
	}

	summary, err := sess.Summarize(ctx, text)
	if err != nil {
		retErr = err
		return nil, err
	}

	if s.cache != nil {
		if cerr := s.cache.Set(ctx, key, summary); cerr != nil {
			s.log.Warn("cache set failed", "error", cerr)
		}
	}

	res := &Result{
		Summary:    summary,
		Model:      sess.Model(),
		Notice:     sess.Notice(),
		Source:     source,
		InputWords: inputWords,
		Duration:   time.Since(start),
	}
	s.record(ctx, key, res)
	return res, nil
}

// Recent returns the latest persisted runs, or nil when no history store is
// attached.
func (s *Service) Recent(ctx context.Context, limit int) ([]*history.Record, error) {
	if s.hist == nil {
		return nil, nil
	}
	return s.hist.Recent(ctx, limit)
}

// resolveText turns the request into plain text and a source label.
func (s *Service) resolveText(ctx context.Context, req Request) (text, source string, err error) {
	hasText := strings.TrimSpace(req.Text) != ""
	hasURL := strings.TrimSpace(req.URL) != ""
	switch {
	case hasText && hasURL:
		return "", "", fmt.Errorf("%w: provide either text or a URL, not both", ErrBadRequest)
	case hasText:
		return req.Text, "text", nil
	case hasURL:
		ctx, span := s.tracer.Start(ctx, "service.fetchAndExtract")
		defer func() { telemetry.End(span, err) }()
		html, ferr := s.fetcher.Page(ctx, req.URL)
		if ferr != nil {
			return "", "", ferr
		}
		return s.extractor.Extract(html), req.URL, nil
	default:
		return "", "", fmt.Errorf("%w: neither text nor a URL was provided", ErrBadRequest)
	}
}

// record appends to history; failures are logged, never propagated.
func (s *Service) record(ctx context.Context, id string, res *Result) {
	if s.hist == nil {
		return
	}
	rec := &history.Record{
		ID:         id,
		Source:     res.Source,
		Model:      res.Model,
		Notice:     res.Notice,
		Summary:    res.Summary,
		InputWords: res.InputWords,
		Duration:   res.Duration,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.hist.Append(ctx, rec); err != nil {
		s.log.Warn("history append failed", "error", err)
	}
}
