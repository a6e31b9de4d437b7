package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dgallion1/pdfoutline/internal/extract"
)

// FileResult is the outcome of one document in a batch run.
type FileResult struct {
	Filename string
	Output   string
	Err      error
}

// Summary aggregates a batch run. A batch fails only when every document
// fails; individual failures are recorded and skipped.
type Summary struct {
	Results   []FileResult
	Succeeded int
	Failed    int
}

// ErrAllFailed is returned when a batch produced no successful outline.
var ErrAllFailed = fmt.Errorf("all documents failed")

// RunBatch processes every supported file in inputDir with a bounded worker
// pool and writes one <stem>.json per document into outputDir. Documents
// share no state, so workers need no coordination beyond the result
// collection.
func (p *Processor) RunBatch(ctx context.Context, inputDir, outputDir string) (*Summary, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !extract.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no supported documents in %s", inputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	workers := p.cfg.WorkerCount
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan string)
	results := make(chan FileResult, len(files))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				outName := OutputName(name)
				err := p.WriteFile(filepath.Join(inputDir, name), filepath.Join(outputDir, outName))
				results <- FileResult{Filename: name, Output: outName, Err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, name := range files {
			select {
			case <-ctx.Done():
				return
			case jobs <- name:
			}
		}
	}()

	wg.Wait()
	close(results)

	summary := &Summary{}
	for r := range results {
		summary.Results = append(summary.Results, r)
		if r.Err != nil {
			summary.Failed++
			p.log.Error("document failed", "file", r.Filename, "error", r.Err)
		} else {
			summary.Succeeded++
			p.log.Info("outline written", "file", r.Filename, "output", r.Output)
		}
	}
	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].Filename < summary.Results[j].Filename
	})

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	if summary.Succeeded == 0 {
		return summary, ErrAllFailed
	}
	return summary, nil
}
