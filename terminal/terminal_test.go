package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, w, h int) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, screen
}

// TestFlushWritesCells verifies cells reach the screen, zero runes become spaces
func TestFlushWritesCells(t *testing.T) {
	term, screen := newSimTerminal(t, 4, 2)

	cells := make([]Cell, 4*2)
	cells[0] = Cell{Rune: 'h', Fg: RGBWhite}
	cells[1] = Cell{Rune: 'i', Fg: RGBWhite}
	cells[5] = Cell{Rune: '╭', Fg: RGBGreen}

	term.Flush(cells, 4, 2)

	contents, w, h := screen.GetContents()
	if w != 4 || h != 2 {
		t.Fatalf("Expected 4x2 screen, got %dx%d", w, h)
	}

	want := map[int]rune{0: 'h', 1: 'i', 2: ' ', 5: '╭'}
	for idx, r := range want {
		got := contents[idx].Runes
		if len(got) == 0 || got[0] != r {
			t.Errorf("cell %d: expected %q, got %q", idx, r, got)
		}
	}
}

// TestFlushDiffing verifies a second flush picks up only the changed cell
func TestFlushDiffing(t *testing.T) {
	term, screen := newSimTerminal(t, 3, 1)

	cells := []Cell{{Rune: 'a'}, {Rune: 'b'}, {Rune: 'c'}}
	term.Flush(cells, 3, 1)

	cells[1].Rune = 'X'
	term.Flush(cells, 3, 1)

	contents, _, _ := screen.GetContents()
	got := string([]rune{contents[0].Runes[0], contents[1].Runes[0], contents[2].Runes[0]})
	if got != "aXc" {
		t.Errorf("Expected aXc, got %q", got)
	}
}

// TestFlushDropsMismatchedFrame verifies frames sized for a stale terminal are ignored
func TestFlushDropsMismatchedFrame(t *testing.T) {
	term, screen := newSimTerminal(t, 3, 1)

	term.Flush([]Cell{{Rune: 'a'}, {Rune: 'b'}, {Rune: 'c'}}, 3, 1)
	term.Flush([]Cell{{Rune: 'x'}, {Rune: 'y'}}, 2, 1)

	contents, _, _ := screen.GetContents()
	if contents[0].Runes[0] != 'a' {
		t.Errorf("Expected mismatched frame to be dropped, got %q", contents[0].Runes[0])
	}
}

// TestFiniIdempotent verifies Fini can be called repeatedly and Flush after Fini is a no-op
func TestFiniIdempotent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen)

	// Before Init
	term.Fini()
	term.Flush(nil, 0, 0)

	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	term.Fini()
	term.Fini()
	term.Flush([]Cell{{Rune: 'a'}}, 1, 1)
}

// TestPostEventRoundTrip verifies synthetic events survive the interrupt wrapper
func TestPostEventRoundTrip(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 3)

	want := MouseEvent(MouseActionPress, MouseBtnRight, 5, 1)
	term.PostEvent(want)

	for i := 0; i < 8; i++ {
		got := term.PollEvent()
		if got.Type == EventResize {
			continue
		}
		if got != want {
			t.Fatalf("Expected %+v, got %+v", want, got)
		}
		return
	}
	t.Fatal("posted event never arrived")
}

func TestEventIsQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"q", KeyRuneEvent('q'), true},
		{"Q", KeyRuneEvent('Q'), false},
		{"escape", Event{Type: EventKey, Key: KeyEscape}, true},
		{"ctrl+c", Event{Type: EventKey, Key: KeyCtrlC}, true},
		{"mouse", MouseEvent(MouseActionPress, MouseBtnLeft, 0, 0), false},
		{"none", Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsQuit(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ffffff", RGBWhite, false},
		{"#00cd00", RGBGreen, false},
		{"#fff", RGBWhite, false},
		{"red", RGB{}, true},
		{"", RGB{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q): expected %v, got %v", tt.in, tt.want, got)
		}
		if !tt.wantErr && got.Hex() != tt.want.Hex() {
			t.Errorf("Hex round trip mismatch for %q", tt.in)
		}
	}
}

// TestFlushWideRune verifies the continuation cell of a wide rune does not blank its glyph
func TestFlushWideRune(t *testing.T) {
	term, screen := newSimTerminal(t, 4, 1)

	cells := []Cell{{Rune: '世'}, {Rune: 0}, {Rune: 'a'}, {}}
	term.Flush(cells, 4, 1)

	contents, _, _ := screen.GetContents()
	if len(contents[0].Runes) == 0 || contents[0].Runes[0] != '世' {
		t.Errorf("Expected wide rune at 0, got %q", contents[0].Runes)
	}
	if len(contents[2].Runes) == 0 || contents[2].Runes[0] != 'a' {
		t.Errorf("Expected 'a' at 2, got %q", contents[2].Runes)
	}
}
