package tui

import "strings"

// Wrap enables word wrapping; Trim removes leading whitespace of wrapped lines
type Wrap struct {
	Trim bool
}

// Scroll is a content offset: Y lines from the top, X columns from the left
type Scroll struct {
	Y, X int
}

// Paragraph is multi-line text laid out into a region
type Paragraph struct {
	Text   string
	Style  Style
	Align  Alignment
	Wrap   *Wrap // nil clips lines at the region edge
	Scroll Scroll
}

// Lines returns the laid-out lines for a given width, before scrolling
func (p Paragraph) Lines(width int) []string {
	if width <= 0 {
		return nil
	}
	raw := strings.Split(p.Text, "\n")
	if p.Wrap == nil {
		return raw
	}
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, WrapText(line, width, p.Wrap.Trim)...)
	}
	return lines
}

// Render draws the paragraph, one laid-out line per row
func (p Paragraph) Render(r Region) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	lines := p.Lines(r.W)
	skipY := max(p.Scroll.Y, 0)
	if skipY >= len(lines) {
		return
	}
	lines = lines[skipY:]

	for y, line := range lines {
		if y >= r.H {
			break
		}
		line = SkipColumns(line, p.Scroll.X)
		x := p.Align.offset(StringWidth(line), r.W)
		if x < 0 {
			// Overflowing unwrapped lines keep their start visible
			x = 0
		}
		r.TextStyled(x, y, line, p.Style)
	}
}
