package annotate

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the visible text from markup-bearing input, skipping
// script/style/noscript/iframe content. Plain text passes through unchanged.
// Stored records sometimes carry scraped HTML fragments; annotation runs on
// the visible text while the served original_text keeps the raw form.
func StripHTML(text string) string {
	if !looksLikeHTML(text) {
		return text
	}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return text
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			t := strings.TrimSpace(n.Data)
			if t != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(t)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return buf.String()
}

// looksLikeHTML is a cheap gate so ordinary text with a stray "<" is not
// run through the parser.
func looksLikeHTML(text string) bool {
	open := strings.IndexByte(text, '<')
	if open < 0 {
		return false
	}
	return strings.IndexByte(text[open:], '>') > 0
}
