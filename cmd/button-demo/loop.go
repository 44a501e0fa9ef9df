package main

import (
	"log"
	"time"

	"github.com/lixenwraith/termbutton/terminal"
)

// eventSource is the part of the terminal service the loop needs
type eventSource interface {
	Poll(timeout time.Duration) (terminal.Event, bool)
	Terminal() terminal.Terminal
}

// run drives frames until a quit key, a closed terminal or an input error
// Each frame polls at most one event, latches it and renders every widget against it
// Resizes need no handling here: the terminal resyncs on the event and render reallocates
func (a *app) run(src eventSource, interval time.Duration) error {
	term := src.Terminal()

	for {
		ev, ok := src.Poll(interval)
		if ok {
			switch ev.Type {
			case terminal.EventClosed:
				return nil
			case terminal.EventError:
				return ev.Err
			case terminal.EventKey:
				if ev.IsQuit() {
					log.Printf("quit after %d frames", a.frame)
					return nil
				}
				if ev.Key == terminal.KeyRune && ev.Rune == 'm' {
					a.toggleMute()
				}
			}
		}

		frameEv := a.latch.Next(ev, ok)
		w, h := term.Size()
		term.Flush(a.render(frameEv, w, h), w, h)
	}
}
