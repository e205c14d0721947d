package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/sweetpotato0/condense/history"
)

// Requires a running MongoDB server; set CONDENSE_TEST_MONGO_URI to run.
func TestMongoHistory(t *testing.T) {
	uri := os.Getenv("CONDENSE_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("CONDENSE_TEST_MONGO_URI not set, skipping MongoDB history tests")
	}

	cfg := DefaultConfig()
	cfg.URI = uri
	cfg.Database = "condense_test"
	store, err := New(cfg)
	if err != nil {
		t.Skipf("failed to connect to MongoDB: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	rec := &history.Record{
		ID:        "test-" + time.Now().Format("20060102150405.000"),
		Source:    "https://example.com/article",
		Model:     "gemini-1.5-flash",
		Summary:   "a test summary",
		Duration:  2 * time.Second,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	recs, err := store.Recent(ctx, 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected at least one record")
	}
}

func TestMongoRejectsBadConfig(t *testing.T) {
	if _, err := New(&Config{}); err == nil {
		t.Fatal("expected validation error for empty config")
	}
}
