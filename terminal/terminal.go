package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal provides cell-buffer terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Clear fills screen with specified background color
	Clear(bg RGB)

	// SetCursorVisible shows/hides cursor
	SetCursorVisible(visible bool)

	// Sync forces full redraw
	Sync()

	// PollEvent blocks until next input event
	// Returns EventClosed once the terminal is finalized
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event)

	// SetMouseMode enables/disables mouse event reporting
	// Modes can be combined: MouseModeClick | MouseModeDrag
	SetMouseMode(mode MouseMode) error
}

// termImpl implements Terminal on a tcell screen
type termImpl struct {
	screen tcell.Screen
	output *outputBuffer
	tr     translator

	mu          sync.Mutex
	initialized bool
	finalized   bool
	mouseMode   MouseMode
}

// New creates a Terminal on the process tty
func New() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a Terminal on an existing tcell screen
// Tests pass tcell.NewSimulationScreen
func NewWithScreen(screen tcell.Screen) Terminal {
	return &termImpl{
		screen: screen,
		output: newOutputBuffer(screen),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.screen.HideCursor()

	w, h := t.screen.Size()
	t.output.resize(w, h)

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.mouseMode != MouseModeNone {
		t.screen.DisableMouse()
	}
	t.screen.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int) {
	return t.screen.Size()
}

// Flush writes cell buffer to terminal
// Holds lock for entire operation to prevent race with Clear/Sync
func (t *termImpl) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	// Drop frame on size mismatch, a resize event is pending
	currW, currH := t.screen.Size()
	if currW != width || currH != height {
		return
	}

	t.output.flush(cells, width, height)
}

// Clear fills screen with background color
func (t *termImpl) Clear(bg RGB) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.output.clear(bg)
}

// SetCursorVisible shows/hides cursor
func (t *termImpl) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if visible {
		t.screen.ShowCursor(0, 0)
	} else {
		t.screen.HideCursor()
	}
}

// Sync forces full redraw
func (t *termImpl) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.output.forceFullRedraw()
	t.screen.Sync()
}

// PollEvent blocks until next input event
func (t *termImpl) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := t.tr.translate(ev); ok {
			if out.Type == EventResize {
				t.screen.Sync()
			}
			return out
		}
	}
}

// PostEvent injects a synthetic event
// Dropped when the screen queue is full
func (t *termImpl) PostEvent(ev Event) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

// SetMouseMode enables or disables mouse reporting
func (t *termImpl) SetMouseMode(mode MouseMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	t.mouseMode = mode
	if mode == MouseModeNone {
		t.screen.DisableMouse()
		return nil
	}
	t.screen.EnableMouse(mode.tcellFlags())
	return nil
}
