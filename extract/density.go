package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// densityMinBlockWords filters out navigation crumbs and captions.
	densityMinBlockWords = 5
	// densityMaxLinkRatio rejects blocks whose text is mostly anchors.
	densityMaxLinkRatio = 0.5
)

// Density is a text-density heuristic extractor: it collects paragraph-level
// blocks whose link density is low, which tends to isolate the article body
// from navigation and listings. It reports failure when too little survives,
// handing over to the next strategy in the chain.
type Density struct{}

// NewDensity creates the text-density extractor.
func NewDensity() *Density {
	return &Density{}
}

// Extract implements Extractor.
func (d *Density) Extract(html string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}
	doc.Find(boilerplateSelector).Remove()

	var blocks []string
	doc.Find("p,li,td,blockquote,pre").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(strings.Fields(text)) < densityMinBlockWords {
			return
		}
		linkLen := 0
		s.Find("a").Each(func(_ int, a *goquery.Selection) {
			linkLen += len(strings.TrimSpace(a.Text()))
		})
		if len(text) > 0 && float64(linkLen)/float64(len(text)) > densityMaxLinkRatio {
			return
		}
		blocks = append(blocks, collapseAll(text))
	})

	if len(blocks) == 0 {
		return "", false
	}
	return collapseKeepNewlines(strings.Join(blocks, "\n")), true
}
