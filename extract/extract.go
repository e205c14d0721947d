// Package extract turns raw page HTML into plain article text. Extraction is
// a capability-degradation chain: an ordered list of strategies is tried
// until one yields text above a minimum-length heuristic, so a failing or
// low-yield strategy degrades to the next instead of aborting.
package extract

import (
	"regexp"
	"strings"
)

// minAcceptWords is the heuristic below which an extraction result is
// considered a footer/legal-only snippet and the next strategy is tried.
const minAcceptWords = 60

// Extractor is one main-content extraction strategy. It returns the
// extracted text and whether the strategy considers its own result usable.
type Extractor interface {
	Extract(html string) (string, bool)
}

// Chain tries extractors in order and returns the first result above the
// word threshold. When no strategy clears the bar, the last non-empty result
// is returned so callers still get the best-effort full-page text.
type Chain struct {
	extractors []Extractor
	minWords   int
}

// NewChain builds a chain over the given strategies. With no arguments it
// uses the default Density then Readability order.
func NewChain(extractors ...Extractor) *Chain {
	if len(extractors) == 0 {
		extractors = []Extractor{NewDensity(), NewReadability()}
	}
	return &Chain{extractors: extractors, minWords: minAcceptWords}
}

// Extract runs the chain on raw HTML.
func (c *Chain) Extract(html string) string {
	var fallback string
	for _, e := range c.extractors {
		text, ok := e.Extract(html)
		if !ok || text == "" {
			continue
		}
		if len(strings.Fields(text)) > c.minWords {
			return text
		}
		if fallback == "" {
			fallback = text
		}
	}
	return fallback
}

var (
	spacesRe   = regexp.MustCompile(`[ \t]+`)
	spaceNLRe  = regexp.MustCompile(`\s+\n`)
	anySpaceRe = regexp.MustCompile(`\s+`)
)

// collapseKeepNewlines collapses runs of spaces but keeps line structure.
func collapseKeepNewlines(s string) string {
	return strings.TrimSpace(spaceNLRe.ReplaceAllString(spacesRe.ReplaceAllString(s, " "), "\n"))
}

// collapseAll flattens all whitespace to single spaces.
func collapseAll(s string) string {
	return strings.TrimSpace(anySpaceRe.ReplaceAllString(s, " "))
}
