package tui

import "github.com/lixenwraith/termbutton/terminal"

// LatchPolicy decides what a frame sees when no new event arrived
type LatchPolicy uint8

const (
	// LatchReuse replays the last event until a new one arrives
	// A press stays a press, so bound commands fire every frame until the next event
	LatchReuse LatchPolicy = iota
	// LatchClear treats a poll miss as "no event"
	LatchClear
)

// ParseLatchPolicy resolves a config name, ok is false for unknown names
func ParseLatchPolicy(name string) (LatchPolicy, bool) {
	switch name {
	case "reuse":
		return LatchReuse, true
	case "clear":
		return LatchClear, true
	}
	return LatchReuse, false
}

// String returns the canonical name
func (p LatchPolicy) String() string {
	if p == LatchClear {
		return "clear"
	}
	return "reuse"
}

// InputLatch holds the event shown to every widget rendered in a frame
type InputLatch struct {
	Policy LatchPolicy
	last   terminal.Event
}

// NewInputLatch creates a latch with an explicit policy
func NewInputLatch(policy LatchPolicy) *InputLatch {
	return &InputLatch{Policy: policy}
}

// Next folds one poll result into the frame event and returns it
func (l *InputLatch) Next(ev terminal.Event, ok bool) terminal.Event {
	switch {
	case ok:
		l.last = ev
	case l.Policy == LatchClear:
		l.last = terminal.Event{}
	}
	return l.last
}

// Current returns the frame event without polling
func (l *InputLatch) Current() terminal.Event {
	return l.last
}
