package outline

import (
	"regexp"
	"unicode/utf8"
)

var (
	topSectionPat = regexp.MustCompile(`^\d+\.\s+`)     // "1. ", "12. "
	subSectionPat = regexp.MustCompile(`^\d+\.\d+\s+`)  // "2.1 "
)

// LevelFor assigns a heading depth to a line already accepted by IsHeading.
// First match wins:
//
//	H1: top-level numbered sections, or all-caps lines longer than 15 runes.
//	H2: two-level numbered subsections, short all-caps lines, or title case.
//	H3: everything else, including deeper numbered forms like "1.1.1".
func LevelFor(line string) Level {
	n := utf8.RuneCountInString(line)

	if topSectionPat.MatchString(line) || (n > 15 && matchesAllCaps(line)) {
		return H1
	}
	if subSectionPat.MatchString(line) || (n <= 15 && matchesAllCaps(line)) || matchesTitleCase(line) {
		return H2
	}
	return H3
}
