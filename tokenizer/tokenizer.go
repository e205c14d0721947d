package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenizer converts text to model token ids and back. Encode must not add
// special tokens so that window boundaries computed on ids are exact;
// Decode strips anything that is not recoverable text. MaxInputTokens
// reports the longest token sequence the backing model accepts in a single
// call.
type Tokenizer interface {
	Encode(text string) []int
	Decode(ids []int) string
	MaxInputTokens() int
}

var _ Tokenizer = (*SimpleTokenizer)(nil)

// SimpleTokenizer is a deterministic word-level tokenizer with a vocabulary
// built on the fly. It has no model behind it and exists for offline use and
// tests, where stable ids and an exact Encode/Decode round trip matter more
// than subword fidelity.
type SimpleTokenizer struct {
	vocab     map[string]int // token → id
	invVocab  map[int]string // id → token
	nextID    int
	maxInput  int
}

// Option customises the simple tokenizer.
type Option func(*SimpleTokenizer)

// WithMaxInputTokens overrides the reported model input limit (default 1024).
func WithMaxInputTokens(n int) Option {
	return func(t *SimpleTokenizer) {
		if n > 0 {
			t.maxInput = n
		}
	}
}

// NewSimpleTokenizer creates a new tokenizer with an empty vocabulary.
func NewSimpleTokenizer(opts ...Option) *SimpleTokenizer {
	t := &SimpleTokenizer{
		vocab:    make(map[string]int),
		invVocab: make(map[int]string),
		nextID:   1, // reserve 0 for padding if needed
		maxInput: 1024,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// addToken registers token to vocab if not exists
func (t *SimpleTokenizer) addToken(tok string) int {
	if id, ok := t.vocab[tok]; ok {
		return id
	}
	id := t.nextID
	t.vocab[tok] = id
	t.invVocab[id] = tok
	t.nextID++
	return id
}

// ------------------------------------------------------------------
// Tokenization rules:
// - Latin letters / digits → continuous word
// - Chinese characters → single rune
// - Punctuation → standalone token
// ------------------------------------------------------------------

func (t *SimpleTokenizer) splitTokens(s string) []string {
	var toks []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			toks = append(toks, buf.String())
			buf.Reset()
		}
	}

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush()

		case unicode.Is(unicode.Han, r):
			flush()
			toks = append(toks, string(r))

		case unicode.IsLetter(r) || unicode.IsDigit(r):
			buf.WriteRune(r)

		default:
			flush()
			toks = append(toks, string(r))
		}
	}

	flush()
	return toks
}

// Encode maps text to token ids, growing the vocabulary as needed.
func (t *SimpleTokenizer) Encode(text string) []int {
	toks := t.splitTokens(text)
	ids := make([]int, 0, len(toks))
	for _, tok := range toks {
		ids = append(ids, t.addToken(tok))
	}
	return ids
}

// Decode reassembles text from token ids. Tokens are joined with single
// spaces; exact whitespace is not recoverable, which is acceptable for
// feeding chunk text back into a summarization model.
func (t *SimpleTokenizer) Decode(ids []int) string {
	var sb strings.Builder
	for _, id := range ids {
		tok, ok := t.invVocab[id]
		if !ok {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok)
	}
	return sb.String()
}

// MaxInputTokens reports the configured input limit.
func (t *SimpleTokenizer) MaxInputTokens() int {
	return t.maxInput
}
