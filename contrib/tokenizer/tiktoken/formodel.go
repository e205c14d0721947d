package tiktoken

import "github.com/sweetpotato0/condense/tokenizer"

// ForModel returns the best available tokenizer for a model identifier:
// the model's own codec when tiktoken knows it, cl100k_base for foreign
// model families, and the offline word-level tokenizer as a last resort.
func ForModel(model string) tokenizer.Tokenizer {
	if tok, err := New(model); err == nil {
		return tok
	}
	if tok, err := New("cl100k_base"); err == nil {
		return tok
	}
	return tokenizer.NewSimpleTokenizer()
}
