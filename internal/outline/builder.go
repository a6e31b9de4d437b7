package outline

import (
	"errors"
	"strings"
)

// ErrNoText signals that a document yielded no usable page text.
var ErrNoText = errors.New("no extractable text")

// Build runs the full classification pipeline over an ordered page
// sequence: resolve the title, then sweep every line on every page through
// the classifier and level assigner. Heading order follows reading order
// (page order, then line order within a page). The resolved title is
// established before the sweep so its duplicate line is suppressed.
//
// Build keeps all state local to the call, so independent runs are safe to
// execute concurrently.
func Build(pages []PageText, metaTitle string) (*Outline, error) {
	if len(pages) == 0 {
		return nil, ErrNoText
	}

	title := ResolveTitle(metaTitle, pages)

	o := &Outline{
		Title:    title,
		Headings: []Heading{}, // serialize as [] rather than null
	}
	for _, pg := range pages {
		for _, raw := range strings.Split(pg.Text, "\n") {
			line := strings.TrimSpace(raw)
			if !IsHeading(line, title) {
				continue
			}
			o.Headings = append(o.Headings, Heading{
				Level: LevelFor(line),
				Text:  line,
				Page:  pg.Page,
			})
		}
	}

	return o, nil
}
