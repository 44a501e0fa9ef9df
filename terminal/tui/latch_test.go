package tui

import (
	"testing"

	"github.com/lixenwraith/termbutton/terminal"
)

func TestInputLatch(t *testing.T) {
	pressEv := terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnLeft, 1, 1)

	tests := []struct {
		name   string
		policy LatchPolicy
		want   terminal.EventType
	}{
		{"reuse replays", LatchReuse, terminal.EventMouse},
		{"clear drops", LatchClear, terminal.EventNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewInputLatch(tt.policy)
			if got := l.Next(pressEv, true); got != pressEv {
				t.Fatalf("Expected fresh event, got %+v", got)
			}
			if got := l.Next(terminal.Event{}, false); got.Type != tt.want {
				t.Errorf("miss: type = %v, want %v", got.Type, tt.want)
			}
			if l.Current().Type != tt.want {
				t.Errorf("Current type = %v, want %v", l.Current().Type, tt.want)
			}
		})
	}
}

// TestInputLatchReuseRefires verifies a latched press keeps firing on following frames
func TestInputLatchReuseRefires(t *testing.T) {
	_, root := newCanvas(10, 3)
	l := NewInputLatch(LatchReuse)
	count := 0
	b := NewButton("x").OnLeftClick(func() { count++ })

	b.Render(root, l.Next(terminal.MouseEvent(terminal.MouseActionPress, terminal.MouseBtnLeft, 2, 1), true))
	b.Render(root, l.Next(terminal.Event{}, false))
	b.Render(root, l.Next(terminal.MouseEvent(terminal.MouseActionMove, terminal.MouseBtnNone, 2, 1), true))

	if count != 2 {
		t.Errorf("Expected 2 invocations, got %d", count)
	}
}

func TestParseLatchPolicy(t *testing.T) {
	if p, ok := ParseLatchPolicy("clear"); !ok || p != LatchClear {
		t.Errorf("clear: got %v %v", p, ok)
	}
	if p, ok := ParseLatchPolicy("reuse"); !ok || p != LatchReuse {
		t.Errorf("reuse: got %v %v", p, ok)
	}
	if _, ok := ParseLatchPolicy("sticky"); ok {
		t.Error("Expected unknown policy to fail")
	}
}
