// Package pipeline runs outline extraction over documents: a Processor
// handles one document end to end, and a batch runner fans a directory of
// documents out over a bounded worker pool.
package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/pdfoutline/internal/config"
	"github.com/dgallion1/pdfoutline/internal/extract"
	"github.com/dgallion1/pdfoutline/internal/outline"
)

// Processor turns one document file into an Outline. The extraction and
// metadata hooks default to the real backends and are replaceable in tests.
type Processor struct {
	log *slog.Logger
	cfg config.Config

	// Extract yields the ordered page text of a document.
	Extract func(path string) ([]outline.PageText, error)
	// MetaTitle yields an externally recorded title, or "".
	MetaTitle func(path string) string
}

func NewProcessor(cfg config.Config, log *slog.Logger) *Processor {
	p := &Processor{log: log, cfg: cfg}
	p.Extract = func(path string) ([]outline.PageText, error) {
		chain, err := extract.ForFile(path, cfg.PDFFallbackPdftotext, log)
		if err != nil {
			return nil, err
		}
		return chain.Extract(path)
	}
	p.MetaTitle = extract.MetaTitle
	return p
}

// ProcessFile extracts the outline of a single document.
func (p *Processor) ProcessFile(path string) (*outline.Outline, error) {
	pages, err := p.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filepath.Base(path), err)
	}
	o, err := outline.Build(pages, p.MetaTitle(path))
	if err != nil {
		return nil, fmt.Errorf("build outline for %s: %w", filepath.Base(path), err)
	}
	return o, nil
}

// WriteFile extracts the outline and writes it as two-space-indented JSON.
func (p *Processor) WriteFile(inPath, outPath string) error {
	o, err := p.ProcessFile(inPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("encode outline: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write outline: %w", err)
	}
	return nil
}

// OutputName maps an input filename to its outline filename, e.g.
// "report.pdf" -> "report.json".
func OutputName(filename string) string {
	base := filepath.Base(filename)
	stem := base[:len(base)-len(filepath.Ext(base))]
	return stem + ".json"
}
