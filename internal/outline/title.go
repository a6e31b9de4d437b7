package outline

import (
	"strings"
	"unicode/utf8"
)

// FallbackTitle is used when neither metadata nor page content yields a
// usable title.
const FallbackTitle = "Untitled Document"

// ResolveTitle picks the document title for a run. A metadata title wins if
// it survives trimming and is longer than 2 runes. Otherwise the first
// non-noise line longer than 3 runes, scanning pages in order, is used.
// Note the fallback applies only the noise filter, not the full heading
// classifier: a line can become the title even if it would never be
// accepted as a heading.
func ResolveTitle(metaTitle string, pages []PageText) string {
	if t := strings.TrimSpace(metaTitle); utf8.RuneCountInString(t) > 2 {
		return t
	}

	for _, pg := range pages {
		for _, raw := range strings.Split(pg.Text, "\n") {
			line := strings.TrimSpace(raw)
			if line != "" && utf8.RuneCountInString(line) > 3 && !IsNoise(line) {
				return line
			}
		}
	}

	return FallbackTitle
}
