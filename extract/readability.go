package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// readableSelectors are tried in priority order to locate an article-like
// region before falling back to whole-page text.
var readableSelectors = []string{
	"article", "main", "[role=main]", "#content", ".content", ".content-body",
	".article", ".article-body", ".article-content", ".knowledge-article",
	".knowledgeArticle", ".slds-rich-text-editor__output", ".slds-rich-text-area",
	".slds-rich-text-editor__textarea", ".post-content", ".entry-content",
	".prose", ".c-article__content", "#article-body", "#main-content",
}

// boilerplateSelector matches elements stripped before any text is read.
const boilerplateSelector = "script,style,noscript,nav,footer,header,aside,form"

// Readability extracts text from known article containers, falling back to
// the full page text when none matches. It always reports its result as
// usable, which makes it a natural terminal strategy in a chain.
type Readability struct{}

// NewReadability creates the selector-based extractor.
func NewReadability() *Readability {
	return &Readability{}
}

// Extract implements Extractor.
func (r *Readability) Extract(html string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}
	doc.Find(boilerplateSelector).Remove()

	for _, sel := range readableSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if text := collapseAll(nodeText(node)); text != "" {
			return text, true
		}
	}

	// fallback: whole page text
	return collapseAll(nodeText(doc.Selection)), true
}

// nodeText joins the node's text with spaces between elements so adjacent
// blocks do not run together.
func nodeText(sel *goquery.Selection) string {
	var parts []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}
