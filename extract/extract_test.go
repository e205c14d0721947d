package extract

import (
	"fmt"
	"strings"
	"testing"
)

func lorem(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("word%d", i)
	}
	return strings.Join(parts, " ")
}

func TestReadabilityPrefersArticle(t *testing.T) {
	html := `<html><body>
		<nav>Home About Contact</nav>
		<article><p>` + lorem(80) + `</p></article>
		<footer>Copyright legal text here</footer>
	</body></html>`

	text, ok := NewReadability().Extract(html)
	if !ok {
		t.Fatal("expected a usable result")
	}
	if strings.Contains(text, "Copyright") || strings.Contains(text, "Home About") {
		t.Fatalf("boilerplate leaked into extraction: %q", text)
	}
	if !strings.Contains(text, "word0") || !strings.Contains(text, "word79") {
		t.Fatalf("article body missing from extraction: %q", text)
	}
}

func TestReadabilityFallsBackToFullPage(t *testing.T) {
	html := `<html><body><div>` + lorem(30) + `</div></body></html>`
	text, ok := NewReadability().Extract(html)
	if !ok || !strings.Contains(text, "word0") {
		t.Fatalf("expected full-page fallback text, got ok=%v text=%q", ok, text)
	}
}

func TestDensityKeepsBodyDropsLinkLists(t *testing.T) {
	html := `<html><body>
		<ul>
			<li><a href="/a">Some navigation link text</a></li>
			<li><a href="/b">Another navigation link here</a></li>
		</ul>
		<p>` + lorem(40) + `</p>
		<p>tiny</p>
	</body></html>`

	text, ok := NewDensity().Extract(html)
	if !ok {
		t.Fatal("expected a usable result")
	}
	if strings.Contains(text, "navigation") {
		t.Fatalf("link-dense block survived: %q", text)
	}
	if strings.Contains(text, "tiny") {
		t.Fatalf("sub-threshold block survived: %q", text)
	}
	if !strings.Contains(text, "word39") {
		t.Fatalf("body paragraph missing: %q", text)
	}
}

func TestDensityReportsFailureOnEmptyPage(t *testing.T) {
	if _, ok := NewDensity().Extract(`<html><body><nav>only chrome</nav></body></html>`); ok {
		t.Fatal("expected density extraction to hand over on empty pages")
	}
}

func TestChainDegradesAcrossStrategies(t *testing.T) {
	// No paragraphs at all: density fails, readability's full-page
	// fallback still yields the text.
	html := `<html><body><div>` + lorem(100) + `</div></body></html>`
	text := NewChain().Extract(html)
	if !strings.Contains(text, "word99") {
		t.Fatalf("chain should fall through to readability, got %q", text)
	}
}

func TestChainReturnsBestEffortBelowThreshold(t *testing.T) {
	html := `<html><body><p>short page body with a few words only</p></body></html>`
	text := NewChain().Extract(html)
	if text == "" {
		t.Fatal("expected best-effort text even below the word threshold")
	}
}

func TestChainEmptyInput(t *testing.T) {
	if text := NewChain().Extract(""); text != "" {
		t.Fatalf("expected empty result for empty HTML, got %q", text)
	}
}
