package tui

import (
	"github.com/lixenwraith/termbutton/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// lineNames maps config names to line types
var lineNames = map[string]LineType{
	"single":  LineSingle,
	"plain":   LineSingle,
	"double":  LineDouble,
	"rounded": LineRounded,
	"heavy":   LineHeavy,
	"thick":   LineHeavy,
	"none":    LineNone,
}

// ParseLineType resolves a config name, ok is false for unknown names
func ParseLineType(name string) (LineType, bool) {
	lt, ok := lineNames[name]
	return lt, ok
}

// String returns the canonical name
func (l LineType) String() string {
	switch l {
	case LineSingle:
		return "single"
	case LineDouble:
		return "double"
	case LineRounded:
		return "rounded"
	case LineHeavy:
		return "heavy"
	case LineNone:
		return "none"
	default:
		return "unknown"
	}
}

// Borders selects which sides of a block are drawn (bitmask)
type Borders uint8

const (
	BordersNone  Borders = 0
	BorderTop    Borders = 1 << 0
	BorderRight  Borders = 1 << 1
	BorderBottom Borders = 1 << 2
	BorderLeft   Borders = 1 << 3
	BordersAll           = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Block is a border decoration: which sides, which glyph set, which colors
type Block struct {
	Borders Borders
	Line    LineType
	Style   Style
	Title   string
}

// NewBlock returns an all-sides block
func NewBlock(line LineType, fg terminal.RGB) Block {
	return Block{Borders: BordersAll, Line: line, Style: Style{Fg: fg}}
}

// Render draws the selected sides along the region edge
// Corners use corner glyphs only where both adjacent sides are present
func (b Block) Render(r Region) {
	if r.W < 1 || r.H < 1 || b.Borders == BordersNone {
		return
	}
	line := b.Line
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]
	fg, bg, attr := b.Style.Fg, b.Style.Bg, b.Style.Attr

	top := b.Borders&BorderTop != 0
	bottom := b.Borders&BorderBottom != 0
	left := b.Borders&BorderLeft != 0
	right := b.Borders&BorderRight != 0

	if top {
		for x := 0; x < r.W; x++ {
			r.Cell(x, 0, chars[boxH], fg, bg, attr)
		}
	}
	if bottom {
		for x := 0; x < r.W; x++ {
			r.Cell(x, r.H-1, chars[boxH], fg, bg, attr)
		}
	}
	if left {
		for y := 0; y < r.H; y++ {
			r.Cell(0, y, chars[boxV], fg, bg, attr)
		}
	}
	if right {
		for y := 0; y < r.H; y++ {
			r.Cell(r.W-1, y, chars[boxV], fg, bg, attr)
		}
	}

	// Corners
	if top && left {
		r.Cell(0, 0, chars[boxTL], fg, bg, attr)
	}
	if top && right {
		r.Cell(r.W-1, 0, chars[boxTR], fg, bg, attr)
	}
	if bottom && left {
		r.Cell(0, r.H-1, chars[boxBL], fg, bg, attr)
	}
	if bottom && right {
		r.Cell(r.W-1, r.H-1, chars[boxBR], fg, bg, attr)
	}

	if b.Title != "" && top && r.W > 4 {
		title := Truncate(b.Title, r.W-4)
		r.Text(2, 0, " "+title+" ", fg, bg, attr|terminal.AttrBold)
	}
}
