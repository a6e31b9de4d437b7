package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// MarkdownExtractor handles Markdown files using goldmark. Each top-level
// block becomes one line of page text, so heading text reaches the
// classifier without its marker syntax. Markdown has no pages; everything
// lands on page 1.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Name() string { return "markdown" }

func (e *MarkdownExtractor) Extract(path string) ([]outline.PageText, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown file: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var lines []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		t := blockText(n, src)
		if t == "" {
			continue
		}
		lines = append(lines, strings.Split(t, "\n")...)
	}

	if len(lines) == 0 {
		return nil, nil
	}
	return []outline.PageText{{Text: strings.Join(lines, "\n"), Page: 1}}, nil
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf strings.Builder
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
