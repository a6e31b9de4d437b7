package extract

import (
	"fmt"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// PDFExtractor is the primary PDF backend, reading page text with the pure
// Go library.
type PDFExtractor struct{}

func (e *PDFExtractor) Name() string { return "pdf" }

func (e *PDFExtractor) Extract(path string) ([]outline.PageText, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []outline.PageText
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, outline.PageText{Text: text, Page: i})
	}
	return pages, nil
}

// PdftotextExtractor shells out to poppler's pdftotext as a fallback for
// documents the Go library cannot read. Pages arrive separated by form
// feeds.
type PdftotextExtractor struct{}

func (e *PdftotextExtractor) Name() string { return "pdftotext" }

func (e *PdftotextExtractor) Extract(path string) ([]outline.PageText, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	return SplitFormFeedPages(string(out)), nil
}

// SplitFormFeedPages converts form-feed separated text into page records,
// dropping blank pages but keeping physical page numbers.
func SplitFormFeedPages(text string) []outline.PageText {
	var pages []outline.PageText
	for i, page := range strings.Split(text, "\f") {
		if strings.TrimSpace(page) == "" {
			continue
		}
		pages = append(pages, outline.PageText{Text: page, Page: i + 1})
	}
	return pages
}

// pdfMetaTitle reads /Title from the PDF Info dictionary. Returns "" when
// the document has no usable metadata.
func pdfMetaTitle(path string) string {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	title := info.Key("Title")
	if title.IsNull() {
		return ""
	}
	return strings.TrimSpace(title.Text())
}
