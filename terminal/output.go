package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// style converts cell colors and attributes to a tcell style
func (c Cell) style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(c.Fg.tcell()).
		Background(c.Bg.tcell()).
		Bold(c.Attrs&AttrBold != 0).
		Dim(c.Attrs&AttrDim != 0).
		Italic(c.Attrs&AttrItalic != 0).
		Underline(c.Attrs&AttrUnderline != 0).
		Blink(c.Attrs&AttrBlink != 0).
		Reverse(c.Attrs&AttrReverse != 0)
}

// outputBuffer keeps the last flushed frame and writes only changed cells to the screen
type outputBuffer struct {
	screen tcell.Screen
	front  []Cell
	width  int
	height int
	valid  bool
}

func newOutputBuffer(screen tcell.Screen) *outputBuffer {
	return &outputBuffer{screen: screen}
}

// resize updates buffer dimensions and invalidates the front buffer
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height
	o.valid = false
}

// flush writes the back buffer to the screen, diffing against the front buffer
// Cells are row-major: cells[y*width + x]
func (o *outputBuffer) flush(cells []Cell, width, height int) {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}
	if len(cells) < width*height {
		return
	}

	for y := 0; y < height; y++ {
		rowStart := y * width
		for x := 0; x < width; x++ {
			idx := rowStart + x
			c := cells[idx]
			if o.valid && c == o.front[idx] {
				continue
			}
			o.front[idx] = c
			r := c.Rune
			if r == 0 {
				// Right half of a wide rune, the glyph at x-1 already covers it
				if x > 0 && runewidth.RuneWidth(cells[idx-1].Rune) == 2 {
					continue
				}
				r = ' '
			}
			o.screen.SetContent(x, y, r, nil, c.style())
		}
	}

	o.valid = true
	o.screen.Show()
}

// forceFullRedraw makes the next flush rewrite every cell
func (o *outputBuffer) forceFullRedraw() {
	o.valid = false
}

// clear fills the screen with a background color
func (o *outputBuffer) clear(bg RGB) {
	o.screen.Fill(' ', tcell.StyleDefault.Background(bg.tcell()))
	o.screen.Show()
	for i := range o.front {
		o.front[i] = Cell{Rune: ' ', Bg: bg}
	}
}
