package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := SoundType(0); st < soundTypeCount; st++ {
		if sm.Play(st) {
			t.Errorf("Expected Play(%s) to be dropped before Initialize", st)
		}
	}
	if sm.IsRunning() {
		t.Error("Expected not running")
	}
	sm.Cleanup()
}

// TestSoundManagerDisabledSkipsDevice verifies a disabled config never opens the speaker
func TestSoundManagerDisabledSkipsDevice(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Fatalf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.IsRunning() || sm.Play(SoundClickLeft) {
		t.Error("Expected disabled manager to stay idle")
	}
}

func TestSoundManagerToggleMute(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.IsMuted() {
		t.Fatal("Expected unmuted by default")
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Error("Expected muted after first toggle")
	}
	if sm.ToggleMute() || sm.IsMuted() {
		t.Error("Expected unmuted after second toggle")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	if !sm.Play(SoundClickLeft) {
		t.Error("Expected click to be queued")
	}
}
