package outline

import (
	"regexp"
	"unicode/utf8"
)

// Noise patterns, checked in order. A line matching any of them is excluded
// from both title and heading consideration.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}$`), // 12/31/2024, 1-2-99
	regexp.MustCompile(`^\d{4}[-/]\d{1,2}[-/]\d{1,2}$`),   // 2024-12-31
	regexp.MustCompile(`(?i)^page\s+\d+$`),                // page footers
	regexp.MustCompile(`(?i)^copyright`),                  // copyright lines
	regexp.MustCompile(`^\d+$`),                           // bare numbers
	regexp.MustCompile(`^[^\p{L}\p{N}_\s]+$`),             // punctuation only
}

// IsNoise reports whether a trimmed line is structurally irrelevant
// (page footer, date stamp, bare number, punctuation run).
func IsNoise(line string) bool {
	if utf8.RuneCountInString(line) < 3 {
		return true
	}
	for _, pat := range noisePatterns {
		if pat.MatchString(line) {
			return true
		}
	}
	return false
}
