package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckUsableText(t *testing.T) {
	if err := CheckUsableText(words(50)); err != nil {
		t.Fatalf("50 words should pass, got %v", err)
	}

	err := CheckUsableText(words(10))
	if !errors.Is(err, ErrTextTooShort) {
		t.Fatalf("expected ErrTextTooShort, got %v", err)
	}
	if !strings.Contains(err.Error(), "10 words") {
		t.Fatalf("message should report the word count, got %q", err.Error())
	}

	if err := CheckUsableText(""); !errors.Is(err, ErrTextTooShort) {
		t.Fatalf("empty text should be too short, got %v", err)
	}
}
