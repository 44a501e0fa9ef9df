package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns display width in cells, wide runes count two
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxW cells
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxW, "…")
}

// SkipColumns drops the first n display columns of s
// A wide rune straddling the cut is dropped whole
func SkipColumns(s string, n int) string {
	if n <= 0 {
		return s
	}
	col := 0
	for i, ch := range s {
		if col >= n {
			return s[i:]
		}
		col += runewidth.RuneWidth(ch)
	}
	return ""
}

// WrapText wraps text at word boundaries to fit width cells
// Returns slice of lines, each no wider than width, except that a rune wider than width
// gets a line of its own; Region.Text does not draw such a line at all
// With trim, leading whitespace of every produced line is removed
func WrapText(s string, width int, trim bool) []string {
	if width <= 0 {
		return nil
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	var lines []string
	emit := func(line string) {
		if trim {
			line = strings.TrimLeft(line, " \t")
		}
		lines = append(lines, line)
	}

	lineStart := 0
	lineW := 0
	lastSpace := -1

	for i := 0; i < len(runes); i++ {
		rw := runewidth.RuneWidth(runes[i])

		if lineW+rw > width && i > lineStart {
			// Need to wrap
			wrapAt := i
			if runes[i] != ' ' && lastSpace > lineStart {
				wrapAt = lastSpace
			}

			emit(string(runes[lineStart:wrapAt]))

			// Skip space at wrap point
			if wrapAt < len(runes) && runes[wrapAt] == ' ' {
				lineStart = wrapAt + 1
			} else {
				lineStart = wrapAt
			}
			lastSpace = -1
			lineW = 0

			// Current rune was the skipped space
			if lineStart > i {
				continue
			}

			// Re-measure the carried-over word
			for _, ch := range runes[lineStart:i] {
				lineW += runewidth.RuneWidth(ch)
			}
		}

		if runes[i] == ' ' {
			lastSpace = i
		}
		lineW += rw
	}

	if lineStart < len(runes) {
		emit(string(runes[lineStart:]))
	}

	if len(lines) == 0 {
		lines = []string{""}
	}

	return lines
}
