package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalService manages terminal lifecycle and input polling
type TerminalService struct {
	term    Terminal
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewService creates a new terminal service
func NewService() *TerminalService {
	return &TerminalService{
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Name implements Service
func (s *TerminalService) Name() string {
	return "terminal"
}

// Dependencies implements Service
func (s *TerminalService) Dependencies() []string {
	return nil
}

// Init implements Service
// args may contain a tcell.Screen (defaults to the process tty) and a MouseMode
// (defaults to click + drag + motion)
func (s *TerminalService) Init(args ...any) error {
	var screen tcell.Screen
	mode := MouseModeClick | MouseModeDrag | MouseModeMotion
	for _, arg := range args {
		switch v := arg.(type) {
		case tcell.Screen:
			screen = v
		case MouseMode:
			mode = v
		}
	}

	if screen == nil {
		term, err := New()
		if err != nil {
			return err
		}
		s.term = term
	} else {
		s.term = NewWithScreen(screen)
	}

	if err := s.term.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := s.term.SetMouseMode(mode); err != nil {
		s.term.Fini()
		return fmt.Errorf("terminal mouse mode: %w", err)
	}

	return nil
}

// Start implements Service - launches input polling goroutine
func (s *TerminalService) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	go s.pollLoop()
	return nil
}

// pollLoop reads input events until stop signal
func (s *TerminalService) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			s.term.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMINAL POLL CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.term.PollEvent()
		if ev.Type == EventClosed {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop implements Service - signals stop and restores terminal
func (s *TerminalService) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		if s.term != nil {
			s.term.Fini()
		}
		return nil
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)

	// Synthetic close event unblocks PollEvent
	if s.term != nil {
		s.term.PostEvent(Event{Type: EventClosed})
	}

	<-s.doneCh

	if s.term != nil {
		s.term.Fini()
	}
	return nil
}

// Terminal returns the wrapped terminal instance
func (s *TerminalService) Terminal() Terminal {
	return s.term
}

// TryEvent returns the next queued event without blocking
// A miss reports false and leaves nothing else changed
func (s *TerminalService) TryEvent() (Event, bool) {
	select {
	case ev := <-s.eventCh:
		return ev, true
	default:
		return Event{}, false
	}
}

// Poll waits up to timeout for the next event
func (s *TerminalService) Poll(timeout time.Duration) (Event, bool) {
	if timeout <= 0 {
		return s.TryEvent()
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-s.eventCh:
		return ev, true
	case <-timer.C:
		return Event{}, false
	}
}
