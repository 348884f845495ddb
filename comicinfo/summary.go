package comicinfo

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags reduces HTML markup to its plain text content. Metadata
// scraped from comic databases routinely carries HTML in summary fields,
// and ComicInfo consumers do not render markup.
//
// Input without any markup passes through with only whitespace trimming.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	collectText(doc, &b)
	return strings.TrimSpace(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		// Script and style bodies are not content.
		if n.Data == "script" || n.Data == "style" {
			return
		}
		if n.Data == "br" {
			b.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
}

// SanitizeSummary replaces the Summary field with its plain text
// rendering. Archive writers call this before serializing so readers do
// not display raw markup.
func (ci *ComicInfo) SanitizeSummary() {
	ci.Summary = StripTags(ci.Summary)
}
