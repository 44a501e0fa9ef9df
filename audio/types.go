package audio

import (
	"errors"

	"github.com/lixenwraith/termbutton/terminal"
)

// SoundType represents different click feedback sounds
type SoundType int

const (
	SoundClickLeft   SoundType = iota // Primary button press
	SoundClickRight                   // Secondary button press, lower pitch
	SoundClickMiddle                  // Middle button press, higher pitch
	soundTypeCount
)

// String returns the config key for the sound
func (s SoundType) String() string {
	switch s {
	case SoundClickLeft:
		return "left"
	case SoundClickRight:
		return "right"
	case SoundClickMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// SoundForButton maps a pointer button to its click sound, ok is false for wheel and others
func SoundForButton(btn terminal.MouseButton) (SoundType, bool) {
	switch btn {
	case terminal.MouseBtnLeft:
		return SoundClickLeft, true
	case terminal.MouseBtnRight:
		return SoundClickRight, true
	case terminal.MouseBtnMiddle:
		return SoundClickMiddle, true
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrUnknownSound  = errors.New("unknown sound type")
)
