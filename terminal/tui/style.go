package tui

import (
	"github.com/lixenwraith/termbutton/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// Alignment is horizontal text placement within a line
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the canonical name
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment resolves a config name, ok is false for unknown names
func ParseAlignment(name string) (Alignment, bool) {
	switch name {
	case "left", "":
		return AlignLeft, true
	case "center", "centre":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	}
	return AlignLeft, false
}

// offset returns the starting column for a line of lineW cells in width cells
func (a Alignment) offset(lineW, width int) int {
	switch a {
	case AlignCenter:
		return (width - lineW) / 2
	case AlignRight:
		return width - lineW
	default:
		return 0
	}
}
