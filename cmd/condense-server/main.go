// Command condense-server runs the HTTP front end of the summarizer, with
// optional Redis caching and Postgres or MongoDB history.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweetpotato0/condense/cache"
	"github.com/sweetpotato0/condense/config"
	rediscache "github.com/sweetpotato0/condense/contrib/cache/redis"
	"github.com/sweetpotato0/condense/contrib/generators"
	mongohistory "github.com/sweetpotato0/condense/contrib/history/mongo"
	pghistory "github.com/sweetpotato0/condense/contrib/history/pg"
	"github.com/sweetpotato0/condense/contrib/tokenizer/tiktoken"
	"github.com/sweetpotato0/condense/engine"
	"github.com/sweetpotato0/condense/history"
	"github.com/sweetpotato0/condense/pkg/logging"
	"github.com/sweetpotato0/condense/pkg/telemetry"
	"github.com/sweetpotato0/condense/server"
	"github.com/sweetpotato0/condense/service"
)

func main() {
	log := logging.WithComponent("main")

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName: "condense-server",
		Environment: cfg.Environment,
		Disable:     cfg.TelemetryDisabled,
	})
	if err != nil {
		log.Error("init telemetry", "error", err)
		os.Exit(1)
	}
	defer shutdownTelemetry(context.Background())

	opts := []service.Option{
		service.WithDefaults(engine.Config{
			Model:            cfg.Model,
			MaxSummaryTokens: cfg.MaxSummaryTokens,
			MinSummaryTokens: cfg.MinSummaryTokens,
			ChunkOverlap:     cfg.ChunkOverlap,
		}),
		service.WithCache(newCache(cfg, log)),
	}
	if hist := newHistory(cfg, log); hist != nil {
		defer hist.Close()
		opts = append(opts, service.WithHistory(hist))
	}

	svc := service.New(
		tiktoken.ForModel(cfg.Model),
		generators.NewRegistry(generators.Credentials{
			OpenAIAPIKey:    cfg.OpenAIAPIKey,
			OpenAIBaseURL:   cfg.OpenAIBaseURL,
			AnthropicAPIKey: cfg.AnthropicAPIKey,
			GeminiAPIKey:    cfg.GeminiAPIKey,
		}).Open,
		opts...,
	)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.New(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("listening", "addr", cfg.ListenAddr, "model", cfg.Model)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newCache prefers Redis when configured and degrades to the in-process
// cache otherwise.
func newCache(cfg config.App, log interface{ Warn(string, ...any) }) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemory(0)
	}
	rc := rediscache.DefaultConfig(cfg.RedisAddr)
	rc.Password = cfg.RedisPassword
	rc.DB = cfg.RedisDB
	c, err := rediscache.New(rc)
	if err != nil {
		log.Warn("redis cache unavailable, using in-memory cache", "error", err)
		return cache.NewMemory(0)
	}
	return c
}

// newHistory picks the configured history backend, Postgres first.
func newHistory(cfg config.App, log interface{ Warn(string, ...any) }) history.Store {
	if cfg.PostgresDSN != "" {
		h, err := pghistory.NewFromDSN(cfg.PostgresDSN)
		if err != nil {
			log.Warn("postgres history unavailable", "error", err)
			return nil
		}
		return h
	}
	if cfg.MongoURI != "" {
		mc := mongohistory.DefaultConfig()
		mc.URI = cfg.MongoURI
		h, err := mongohistory.New(mc)
		if err != nil {
			log.Warn("mongo history unavailable", "error", err)
			return nil
		}
		return h
	}
	return nil
}
