package audio

import (
	"errors"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/termbutton/terminal"
)

// AudioService wraps SoundManager as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	manager  *SoundManager
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// Accepts *AudioConfig (default LoadAudioConfig) and bool mute, in any order
func (s *AudioService) Init(args ...any) error {
	var cfg *AudioConfig
	muted := false
	for _, arg := range args {
		switch v := arg.(type) {
		case *AudioConfig:
			cfg = v
		case bool:
			muted = v
		}
	}
	if cfg == nil {
		cfg = LoadAudioConfig()
	}
	if muted {
		c := *cfg
		c.Enabled = false
		cfg = &c
	}

	s.manager = NewSoundManager(cfg)
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.manager == nil {
		s.disabled.Store(true)
		return nil
	}

	if err := s.manager.Initialize(); err != nil {
		if !errors.Is(err, ErrAudioDisabled) {
			log.Printf("audio unavailable: %v", err)
		}
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the click player, nil if disabled
func (s *AudioService) Player() Player {
	if s.disabled.Load() || s.manager == nil {
		return nil
	}
	return s.manager
}

// Click plays the sound for a pointer button, false when disabled or unmapped
func (s *AudioService) Click(btn terminal.MouseButton) bool {
	player := s.Player()
	if player == nil {
		return false
	}
	st, ok := SoundForButton(btn)
	if !ok {
		return false
	}
	return player.Play(st)
}

// Player defines the minimal audio interface used by the frame loop
type Player interface {
	Play(SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}
