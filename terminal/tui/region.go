package tui

import "github.com/lixenwraith/termbutton/terminal"

// Region represents a rectangular area within a cell buffer
// Drawing coordinates are relative to the region's origin, X/Y are absolute
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Inner(Margin{Horizontal: n, Vertical: n})
}

// Inner returns the region shrunk by m, empty when the margin does not fit
func (r Region) Inner(m Margin) Region {
	if r.W < 2*m.Horizontal || r.H < 2*m.Vertical {
		return r.Sub(0, 0, 0, 0)
	}
	return r.Sub(m.Horizontal, m.Vertical, r.W-2*m.Horizontal, r.H-2*m.Vertical)
}

// Rect returns the absolute bounds, used for hit testing pointer events
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Cell sets a single cell with bounds checking
// A zero bg keeps the background already in the buffer
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return
	}
	if bg.IsZero() {
		bg = r.Cells[idx].Bg
	}
	r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, bg, terminal.AttrNone)
		}
	}
}
