package outline

import "testing"

func TestIsNoise_ShortLines(t *testing.T) {
	for _, line := range []string{"", "a", "ab", "1)"} {
		if !IsNoise(line) {
			t.Errorf("expected %q (< 3 chars) to be noise", line)
		}
	}
}

func TestIsNoise_NumericDates(t *testing.T) {
	dates := []string{
		"12/31/2024",
		"1-2-99",
		"31/12/24",
		"2024-12-31",
		"2024/1/5",
	}
	for _, line := range dates {
		if !IsNoise(line) {
			t.Errorf("expected date %q to be noise", line)
		}
	}
}

func TestIsNoise_PageFooters(t *testing.T) {
	for _, line := range []string{"Page 12", "page 1", "PAGE  42"} {
		if !IsNoise(line) {
			t.Errorf("expected %q to be noise", line)
		}
	}
	// "Page 12 of 30" has trailing content and is not a bare footer.
	if IsNoise("Page 12 of 30") {
		t.Error("expected 'Page 12 of 30' not to be noise")
	}
}

func TestIsNoise_CopyrightLines(t *testing.T) {
	lines := []string{
		"Copyright 2024 Acme Corp",
		"copyright (c) 1999",
		"COPYRIGHT NOTICE",
	}
	for _, line := range lines {
		if !IsNoise(line) {
			t.Errorf("expected %q to be noise", line)
		}
	}
}

func TestIsNoise_BareNumbers(t *testing.T) {
	for _, line := range []string{"123", "40567"} {
		if !IsNoise(line) {
			t.Errorf("expected %q to be noise", line)
		}
	}
}

func TestIsNoise_PunctuationOnly(t *testing.T) {
	for _, line := range []string{"***", "----", "....", "!?!"} {
		if !IsNoise(line) {
			t.Errorf("expected %q to be noise", line)
		}
	}
}

func TestIsNoise_AcceptsStructuralLines(t *testing.T) {
	lines := []string{
		"1. Introduction",
		"BACKGROUND",
		"Experimental Setup",
		"A Study of Heuristic Outline Extraction",
	}
	for _, line := range lines {
		if IsNoise(line) {
			t.Errorf("expected %q not to be noise", line)
		}
	}
}

func TestIsNoise_RuneCounting(t *testing.T) {
	// Two runes but six bytes: still below the 3-character minimum.
	if !IsNoise("日本") {
		t.Error("expected 2-rune line to be noise")
	}
	if IsNoise("日本語概要") {
		t.Error("expected 5-rune line not to be noise")
	}
}
