// Package outline classifies lines of extracted page text into a document
// title and a flat list of H1/H2/H3 headings. It is a rule-based,
// best-effort classifier over plain text: no layout or font information is
// used, only surface patterns of individual lines.
package outline

// Level is the prominence of a detected heading. H1 is the most prominent.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
)

// PageText is the raw text of one page, produced by an extraction backend.
// Pages with no non-blank text are dropped by the extractor, so Page keeps
// the physical 1-based position and may have gaps.
type PageText struct {
	Text string
	Page int
}

// Heading is one detected heading line.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the result of one extraction run. The title never also appears
// in Headings: the resolved title line is suppressed during classification.
type Outline struct {
	Title    string    `json:"title"`
	Headings []Heading `json:"outline"`
}
