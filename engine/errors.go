package engine

import (
	"errors"
	"fmt"
	"strings"
)

// MinUsableWords is the minimum number of words an input must contain before
// summarization is attempted. Summarizing near-empty text produces
// meaningless output, so shorter inputs are rejected with a descriptive
// error instead.
const MinUsableWords = 50

// ErrTextTooShort indicates that the input carries too little usable text to
// summarize.
var ErrTextTooShort = errors.New("not enough usable text")

// CheckUsableText validates that the input passes the usable-word threshold.
// The returned error wraps ErrTextTooShort with the actionable message shown
// to end users.
func CheckUsableText(text string) error {
	words := len(strings.Fields(text))
	if words >= MinUsableWords {
		return nil
	}
	return fmt.Errorf("%w: got %d words, need at least %d "+
		"(the page may be JS-rendered, logged-in, or paywalled; "+
		"copy the visible article text and submit it directly)",
		ErrTextTooShort, words, MinUsableWords)
}
