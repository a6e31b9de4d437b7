// Package extract turns document files into ordered page text for outline
// classification. Each format has one or more extraction strategies; a
// Chain tries them in order until one yields usable text.
package extract

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// ErrNoText signals that every strategy in a chain came back empty. It is
// the same sentinel the outline builder returns for an empty page
// sequence, so callers have a single error to match.
var ErrNoText = outline.ErrNoText

// Extractor produces the ordered page text of a document. Implementations
// drop blank pages but keep physical 1-based page numbers.
type Extractor interface {
	Name() string
	Extract(path string) ([]outline.PageText, error)
}

// Chain is an ordered list of extraction strategies. A strategy that errors
// or yields nothing falls through to the next; this is a single
// deterministic substitution per strategy, not a retry loop.
type Chain struct {
	strategies []Extractor
	log        *slog.Logger
}

func NewChain(log *slog.Logger, strategies ...Extractor) *Chain {
	return &Chain{strategies: strategies, log: log}
}

// Extract runs the strategies in order and returns the first non-empty
// page sequence, or ErrNoText if every strategy is exhausted.
func (c *Chain) Extract(path string) ([]outline.PageText, error) {
	for _, s := range c.strategies {
		pages, err := s.Extract(path)
		if err != nil {
			if c.log != nil {
				c.log.Warn("extraction strategy failed", "strategy", s.Name(), "path", path, "error", err)
			}
			continue
		}
		if len(pages) > 0 {
			return pages, nil
		}
		if c.log != nil {
			c.log.Warn("extraction strategy yielded no text", "strategy", s.Name(), "path", path)
		}
	}
	return nil, ErrNoText
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".docx":     true,
	".html":     true,
	".htm":      true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ForFile returns the extraction chain for a filename. For PDFs the chain
// is the Go library first, then pdftotext when enabled.
func ForFile(filename string, fallbackPdftotext bool, log *slog.Logger) (*Chain, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		strategies := []Extractor{&PDFExtractor{}}
		if fallbackPdftotext {
			strategies = append(strategies, &PdftotextExtractor{})
		}
		return NewChain(log, strategies...), nil
	case ".txt":
		return NewChain(log, &TextExtractor{}), nil
	case ".md", ".markdown":
		return NewChain(log, &MarkdownExtractor{}), nil
	case ".docx":
		return NewChain(log, &DOCXExtractor{}), nil
	case ".html", ".htm":
		return NewChain(log, &HTMLExtractor{}), nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// MetaTitle looks up an externally recorded document title: the PDF Info
// dictionary or the HTML <title> tag. Absence is not an error; formats
// without embedded metadata return "".
func MetaTitle(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pdfMetaTitle(path)
	case ".html", ".htm":
		return htmlMetaTitle(path)
	}
	return ""
}
