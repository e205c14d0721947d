// Package tiktoken adapts the tiktoken BPE codecs to the tokenizer
// interface consumed by the engine.
package tiktoken

import (
	"github.com/pkoukk/tiktoken-go"
)

// maxInputByEncoding maps codec names to the input lengths of the models
// they ship with. Unknown codecs report the conservative default; the engine
// additionally applies its own hard ceiling.
var maxInputByEncoding = map[string]int{
	"cl100k_base": 8192,
	"o200k_base":  128000,
	"p50k_base":   4096,
	"r50k_base":   2048,
}

const defaultMaxInput = 1024

// Tokenizer wraps a tiktoken encoding.
type Tokenizer struct {
	enc      *tiktoken.Tiktoken
	maxInput int
}

// New resolves the encoding for a model name, falling back to treating the
// name as an encoding name directly.
func New(name string) (*Tokenizer, error) {
	encName := encodingName(name)
	enc, err := tiktoken.GetEncoding(encName)
	if err != nil {
		return nil, err
	}

	maxInput := defaultMaxInput
	if limit, ok := maxInputByEncoding[encName]; ok {
		maxInput = limit
	}
	return &Tokenizer{enc: enc, maxInput: maxInput}, nil
}

// encodingName maps a model identifier to its codec, treating unknown names
// as codec names themselves.
func encodingName(name string) string {
	if enc, ok := tiktoken.MODEL_TO_ENCODING[name]; ok {
		return enc
	}
	for prefix, enc := range tiktoken.MODEL_PREFIX_TO_ENCODING {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			return enc
		}
	}
	return name
}

// Encode maps text to token ids without special tokens, keeping window
// boundaries exact.
func (t *Tokenizer) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

// Decode reassembles text from token ids.
func (t *Tokenizer) Decode(ids []int) string {
	return t.enc.Decode(ids)
}

// MaxInputTokens reports the model input limit for the encoding.
func (t *Tokenizer) MaxInputTokens() int {
	return t.maxInput
}
