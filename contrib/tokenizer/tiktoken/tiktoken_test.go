package tiktoken

import "testing"

func TestEncodingName(t *testing.T) {
	cases := map[string]string{
		"gpt-4o-mini": "o200k_base",
		"gpt-4":       "cl100k_base",
		"cl100k_base": "cl100k_base",
		"unknown":     "unknown",
	}
	for model, want := range cases {
		if got := encodingName(model); got != want {
			t.Fatalf("encodingName(%q) = %q, want %q", model, got, want)
		}
	}
}

// The round-trip test needs the BPE files, which tiktoken fetches on first
// use; skip when they are unavailable.
func TestRoundTrip(t *testing.T) {
	tok, err := New("gpt-4o-mini")
	if err != nil {
		t.Skipf("encoding unavailable: %v", err)
	}

	ids := tok.Encode("The quick brown fox jumps over the lazy dog.")
	if len(ids) == 0 {
		t.Fatal("expected tokens")
	}
	if got := tok.Decode(ids); got != "The quick brown fox jumps over the lazy dog." {
		t.Fatalf("round trip = %q", got)
	}
	if tok.MaxInputTokens() <= 0 {
		t.Fatalf("max input = %d", tok.MaxInputTokens())
	}
}
