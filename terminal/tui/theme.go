package tui

import "github.com/lixenwraith/termbutton/terminal"

// Theme defines semantic colors for TUI components
type Theme struct {
	Bg terminal.RGB
	Fg terminal.RGB

	Border   terminal.RGB
	HeaderFg terminal.RGB
	HintFg   terminal.RGB

	// Button border colors per visual state
	ButtonNormal  terminal.RGB
	ButtonHovered terminal.RGB
	ButtonPressed terminal.RGB
	ButtonLine    LineType
	ButtonAlign   Alignment
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:            terminal.RGB{R: 20, G: 20, B: 30},
	Fg:            terminal.RGB{R: 200, G: 200, B: 200},
	Border:        terminal.RGB{R: 60, G: 80, B: 100},
	HeaderFg:      terminal.RGB{R: 255, G: 255, B: 255},
	HintFg:        terminal.RGB{R: 100, G: 180, B: 200},
	ButtonNormal:  terminal.RGBWhite,
	ButtonHovered: terminal.RGBGreen,
	ButtonPressed: terminal.RGBRed,
	ButtonLine:    LineRounded,
	ButtonAlign:   AlignCenter,
}

// ButtonBlocks returns the normal, hovered and pressed border blocks for the theme
func (t Theme) ButtonBlocks() (normal, hovered, pressed Block) {
	return NewBlock(t.ButtonLine, t.ButtonNormal),
		NewBlock(t.ButtonLine, t.ButtonHovered),
		NewBlock(t.ButtonLine, t.ButtonPressed)
}
