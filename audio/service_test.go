package audio

import (
	"testing"

	"github.com/lixenwraith/termbutton/terminal"
)

// TestServiceMutedDisables verifies a mute arg keeps the device closed and the service disabled
func TestServiceMutedDisables(t *testing.T) {
	s := NewService()
	if err := s.Init(DefaultAudioConfig(), true); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start should not fail: %v", err)
	}
	defer s.Stop()

	if !s.IsDisabled() {
		t.Error("Expected muted service to be disabled")
	}
	if s.Player() != nil {
		t.Error("Expected nil player when disabled")
	}
	if s.Click(terminal.MouseBtnLeft) {
		t.Error("Expected click to be dropped")
	}
}

func TestServiceMuteDoesNotMutateConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	s := NewService()
	if err := s.Init(cfg, true); err != nil {
		t.Fatal(err)
	}
	if !cfg.Enabled {
		t.Error("Expected caller config untouched")
	}
}

func TestServiceStartWithoutInit(t *testing.T) {
	s := NewService()
	if err := s.Start(); err != nil {
		t.Fatalf("Start should not fail: %v", err)
	}
	if !s.IsDisabled() {
		t.Error("Expected uninitialized service to be disabled")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestServiceIdentity(t *testing.T) {
	s := NewService()
	if s.Name() != "audio" {
		t.Errorf("Name = %q", s.Name())
	}
	if len(s.Dependencies()) != 0 {
		t.Error("Expected no dependencies")
	}
}
