package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// DOCXExtractor handles .docx files. Each paragraph becomes one line of
// page text; DOCX carries no page boundaries, so everything lands on
// page 1.
type DOCXExtractor struct{}

func (e *DOCXExtractor) Name() string { return "docx" }

func (e *DOCXExtractor) Extract(path string) ([]outline.PageText, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docx.Parse(f, st.Size())
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var lines []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if t := paragraphText(para); t != "" {
			lines = append(lines, t)
		}
	}

	if len(lines) == 0 {
		return nil, nil
	}
	return []outline.PageText{{Text: strings.Join(lines, "\n"), Page: 1}}, nil
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
