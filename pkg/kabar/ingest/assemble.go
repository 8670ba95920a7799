package ingest

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/kabar/pkg/kabar/dataset"
)

// Assemble derives the single text field used for classification:
// title and narrative joined by a newline. Either side may be empty.
func Assemble(r dataset.Record) string {
	return r.Title + "\n" + r.Narrative
}

// StripHTML removes markup from scraped narrative text, keeping only
// the text nodes. Plain text passes through unchanged.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
