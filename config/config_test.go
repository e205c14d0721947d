package config

import (
	"strings"
	"testing"
)

func TestValidatorAccumulatesErrors(t *testing.T) {
	v := NewValidator()
	v.RequireNonEmpty("model", "")
	v.RequirePositive("maxTokens", 0)
	v.RequireNonNegative("overlap", -1)

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(v.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(v.Errors()))
	}
	msg := v.Error().Error()
	for _, field := range []string{"model", "maxTokens", "overlap"} {
		if !strings.Contains(msg, field) {
			t.Fatalf("combined message should mention %q: %s", field, msg)
		}
	}
}

func TestValidatorPasses(t *testing.T) {
	v := NewValidator()
	v.RequireNonEmpty("model", "gpt-4o-mini")
	v.RequirePositive("maxTokens", 160)
	v.RequireNonNegative("overlap", 0)
	v.ValidateRange("db", 3, 0, 15)
	v.ValidateOneOf("sslMode", "disable", "disable", "require")

	if err := v.Error(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Fatalf("model = %q", cfg.Model)
	}
	if cfg.MaxSummaryTokens != 160 || cfg.MinSummaryTokens != 40 || cfg.ChunkOverlap != 50 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONDENSE_MODEL", "claude-3-5-haiku-20241022")
	t.Setenv("CONDENSE_MAX_TOKENS", "200")
	t.Setenv("CONDENSE_MIN_TOKENS", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "claude-3-5-haiku-20241022" {
		t.Fatalf("model = %q", cfg.Model)
	}
	if cfg.MaxSummaryTokens != 200 || cfg.MinSummaryTokens != 60 {
		t.Fatalf("bounds not read from env: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("CONDENSE_MAX_TOKENS", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for zero max tokens")
	}
}
