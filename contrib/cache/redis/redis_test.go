package redis

import (
	"context"
	"os"
	"testing"
	"time"
)

// Requires a running Redis server; set CONDENSE_TEST_REDIS_ADDR to run.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("CONDENSE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CONDENSE_TEST_REDIS_ADDR not set, skipping Redis cache tests")
	}

	cfg := DefaultConfig(addr)
	cfg.Prefix = "condense:test:"
	cfg.TTL = time.Minute
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if _, ok, err := c.Get(ctx, "absent"); err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, "k1", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := c.Get(ctx, "k1")
	if err != nil || !ok || got != "v1" {
		t.Fatalf("get: %q ok=%v err=%v", got, ok, err)
	}
}

func TestRedisCacheRejectsBadConfig(t *testing.T) {
	if _, err := New(&Config{Addr: "", Prefix: ""}); err == nil {
		t.Fatal("expected validation error")
	}
}
