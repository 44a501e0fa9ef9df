package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/termbutton/terminal"
)

func TestBlockRender(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  []string
	}{
		{
			name:  "rounded all",
			block: NewBlock(LineRounded, whiteFg),
			want:  []string{"╭──╮", "│  │", "╰──╯"},
		},
		{
			name:  "double all",
			block: NewBlock(LineDouble, whiteFg),
			want:  []string{"╔══╗", "║  ║", "╚══╝"},
		},
		{
			name:  "top and bottom only",
			block: Block{Borders: BorderTop | BorderBottom, Line: LineSingle},
			want:  []string{"────", "    ", "────"},
		},
		{
			name:  "left only",
			block: Block{Borders: BorderLeft, Line: LineHeavy},
			want:  []string{"┃   ", "┃   ", "┃   "},
		},
		{
			name:  "none",
			block: Block{Borders: BordersNone},
			want:  []string{"    ", "    ", "    "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, root := newCanvas(4, 3)
			tt.block.Render(root)
			if diff := cmp.Diff(tt.want, canvasRows(cells, 4, 3)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlockStyle(t *testing.T) {
	cells, root := newCanvas(3, 3)
	NewBlock(LineSingle, terminal.RGBGreen).Render(root)
	for _, idx := range []int{0, 1, 2, 3, 5, 6, 7, 8} {
		if cells[idx].Fg != terminal.RGBGreen {
			t.Errorf("cell %d fg = %v, want green", idx, cells[idx].Fg)
		}
	}
	if cells[4].Rune != 0 {
		t.Errorf("Expected untouched interior, got %q", cells[4].Rune)
	}
}

func TestParseLineType(t *testing.T) {
	tests := []struct {
		name string
		want LineType
		ok   bool
	}{
		{"rounded", LineRounded, true},
		{"plain", LineSingle, true},
		{"thick", LineHeavy, true},
		{"double", LineDouble, true},
		{"dotted", LineSingle, false},
	}
	for _, tt := range tests {
		got, ok := ParseLineType(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseLineType(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
