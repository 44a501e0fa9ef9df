package main

import "sync"

// SharedText is the message both buttons write and the display paragraph reads
type SharedText struct {
	mu      sync.Mutex
	text    string
	initial string
}

// NewSharedText returns text holding initial, which Reset restores
func NewSharedText(initial string) *SharedText {
	return &SharedText{text: initial, initial: initial}
}

func (s *SharedText) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func (s *SharedText) Set(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Reset restores the initial text
func (s *SharedText) Reset() {
	s.Set(s.initial)
}
