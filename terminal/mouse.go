package terminal

import "github.com/gdamore/tcell/v2"

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
	MouseBtnBack    // Button 4 (if supported)
	MouseBtnForward // Button 5 (if supported)
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// MouseMode controls which mouse events are reported (bitmask)
type MouseMode uint8

const (
	MouseModeNone   MouseMode = 0
	MouseModeClick  MouseMode = 1 << 0 // Press/release events
	MouseModeDrag   MouseMode = 1 << 1 // Drag events (button held + motion)
	MouseModeMotion MouseMode = 1 << 2 // All motion events
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	case MouseBtnBack:
		return "Back"
	case MouseBtnForward:
		return "Forward"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// tcellFlags maps a mode bitmask onto tcell's mouse reporting flags
func (m MouseMode) tcellFlags() tcell.MouseFlags {
	var f tcell.MouseFlags
	if m&MouseModeClick != 0 {
		f |= tcell.MouseButtonEvents
	}
	if m&MouseModeDrag != 0 {
		f |= tcell.MouseDragEvents
	}
	if m&MouseModeMotion != 0 {
		f |= tcell.MouseMotionEvents
	}
	return f
}

// buttonPriority orders buttons when several are held at once, first match wins
var buttonPriority = [...]struct {
	mask tcell.ButtonMask
	btn  MouseButton
}{
	{tcell.ButtonPrimary, MouseBtnLeft},
	{tcell.ButtonSecondary, MouseBtnRight},
	{tcell.ButtonMiddle, MouseBtnMiddle},
	{tcell.Button4, MouseBtnBack},
	{tcell.Button5, MouseBtnForward},
}

const buttonMask = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle | tcell.Button4 | tcell.Button5

// mouseTracker turns tcell's level-triggered button masks into press/release/drag edges
// tcell reports the set of held buttons on every mouse event; actions are derived from the
// difference to the previously reported set
type mouseTracker struct {
	held tcell.ButtonMask
}

// translate converts one tcell mouse event into an Event
func (t *mouseTracker) translate(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	out := Event{
		Type:      EventMouse,
		MouseX:    x,
		MouseY:    y,
		Modifiers: modifiersFrom(ev.Modifiers()),
	}

	buttons := ev.Buttons()

	// Wheel is momentary, never held
	switch {
	case buttons&tcell.WheelUp != 0:
		out.MouseBtn = MouseBtnWheelUp
		out.MouseAction = MouseActionPress
		return out
	case buttons&tcell.WheelDown != 0:
		out.MouseBtn = MouseBtnWheelDown
		out.MouseAction = MouseActionPress
		return out
	}

	now := buttons & buttonMask
	prev := t.held
	t.held = now

	switch {
	case now == 0 && prev == 0:
		out.MouseAction = MouseActionMove
	case now == 0:
		out.MouseAction = MouseActionRelease
		out.MouseBtn = firstButton(prev)
	case now&^prev != 0:
		out.MouseAction = MouseActionPress
		out.MouseBtn = firstButton(now &^ prev)
	default:
		out.MouseAction = MouseActionDrag
		out.MouseBtn = firstButton(now)
	}
	return out
}

// firstButton returns the highest-priority button in mask
func firstButton(mask tcell.ButtonMask) MouseButton {
	for _, p := range buttonPriority {
		if mask&p.mask != 0 {
			return p.btn
		}
	}
	return MouseBtnNone
}
