package extract

import (
	"fmt"
	"os"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// TextExtractor handles plain text files. Form feeds mark page boundaries;
// a file without them is a single page.
type TextExtractor struct{}

func (e *TextExtractor) Name() string { return "text" }

func (e *TextExtractor) Extract(path string) ([]outline.PageText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	return SplitFormFeedPages(string(data)), nil
}
