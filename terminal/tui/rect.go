package tui

// Point is a cell position, column X and row Y, origin top-left
type Point struct {
	X, Y int
}

// Rect is a cell rectangle in absolute screen coordinates
type Rect struct {
	X, Y int
	W, H int
}

// Margin is the number of cells removed from each side
type Margin struct {
	Horizontal int
	Vertical   int
}

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether cell (x, y) hits r
//
// Both upper bounds are inclusive: the column at X+W and the row at Y+H, one past the
// last drawn cell, still count as inside. Clickable area therefore extends one cell beyond
// the bottom and right border. Empty rects contain nothing.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// IsInside is the hit test used by widgets
func IsInside(p Point, r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Inner returns r shrunk by m on each side
// Collapses to a zero-size rect at r's origin when the margin does not fit
func (r Rect) Inner(m Margin) Rect {
	if r.W < 2*m.Horizontal || r.H < 2*m.Vertical {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{
		X: r.X + m.Horizontal,
		Y: r.Y + m.Vertical,
		W: r.W - 2*m.Horizontal,
		H: r.H - 2*m.Vertical,
	}
}
