package extract

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// HTMLExtractor handles HTML files. Headings and paragraph-level elements
// each become one line of page text; HTML has no pages, so everything
// lands on page 1.
type HTMLExtractor struct{}

func (e *HTMLExtractor) Name() string { return "html" }

// blockTags are elements whose text content is emitted as its own line.
var blockTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "li": true, "td": true, "th": true, "caption": true,
	"blockquote": true, "pre": true, "dt": true, "dd": true,
}

func (e *HTMLExtractor) Extract(path string) ([]outline.PageText, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open html: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head":
				return
			}
			if blockTags[n.Data] {
				if t := textContent(n); t != "" {
					lines = append(lines, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(lines) == 0 {
		return nil, nil
	}
	return []outline.PageText{{Text: strings.Join(lines, "\n"), Page: 1}}, nil
}

// textContent collects the text under a node, collapsing internal
// whitespace to single spaces.
func textContent(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

// htmlMetaTitle reads the document's <title> tag. Returns "" when absent.
func htmlMetaTitle(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			title = textContent(n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}
