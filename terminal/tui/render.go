package tui

import (
	"github.com/lixenwraith/termbutton/terminal"
	"github.com/mattn/go-runewidth"
)

// Text renders text at position, truncates at region edge
// Wide runes take two columns, a wide rune that would straddle the edge is dropped
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+col+w > r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, fg, bg, attr)
			if w == 2 {
				// Continuation cell, the backend draws the wide rune over it
				r.Cell(x+col+1, y, 0, fg, bg, attr)
			}
		}
		col += w
	}
	return col
}

// TextStyled renders text using Style struct
func (r Region) TextStyled(x, y int, s string, style Style) int {
	return r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := (r.W - StringWidth(s)) / 2
	r.Text(x, y, s, fg, bg, attr)
}
