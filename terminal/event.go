package terminal

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota // Zero value: no event this frame
	EventKey
	EventResize
	EventPaste
	EventMouse
	EventError  // Read error
	EventClosed // Input closed
)

// String returns human-readable event type
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "Key"
	case EventResize:
		return "Resize"
	case EventPaste:
		return "Paste"
	case EventMouse:
		return "Mouse"
	case EventError:
		return "Error"
	case EventClosed:
		return "Closed"
	default:
		return "None"
	}
}

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError

	// Mouse event fields, absolute cell coordinates
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// IsMouse reports whether the event carries pointer data
func (e Event) IsMouse() bool {
	return e.Type == EventMouse
}

// Pos returns the pointer cell of a mouse event
func (e Event) Pos() (x, y int) {
	return e.MouseX, e.MouseY
}

// IsQuit reports the conventional quit chords: q, Esc, Ctrl+C, Ctrl+Q
func (e Event) IsQuit() bool {
	if e.Type != EventKey {
		return false
	}
	switch e.Key {
	case KeyEscape, KeyCtrlC, KeyCtrlQ:
		return true
	case KeyRune:
		return e.Rune == 'q'
	}
	return false
}

// MouseEvent builds a mouse event, mostly for hosts and tests synthesizing input
func MouseEvent(action MouseAction, btn MouseButton, x, y int) Event {
	return Event{
		Type:        EventMouse,
		MouseX:      x,
		MouseY:      y,
		MouseBtn:    btn,
		MouseAction: action,
	}
}

// KeyRuneEvent builds a printable key event
func KeyRuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// translator converts tcell events, carrying mouse button state between calls
type translator struct {
	mouse mouseTracker
}

// translate returns false for tcell events with no counterpart (interrupts, focus)
func (t *translator) translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev), true
	case *tcell.EventMouse:
		return t.mouse.translate(ev), true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	case *tcell.EventInterrupt:
		// PostEvent payloads travel as interrupts
		if posted, ok := ev.Data().(Event); ok {
			return posted, true
		}
	}
	return Event{}, false
}
