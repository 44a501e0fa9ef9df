package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Click shape
const (
	ClickDuration = 45 * time.Millisecond
	clickDecay    = 90.0 // Exponential decay rate per second
	clickOvertone = 0.25 // Second harmonic level
)

// clickPitch is the fundamental frequency per sound in Hz
var clickPitch = [soundTypeCount]float64{
	SoundClickLeft:   880.0,  // A5
	SoundClickRight:  659.25, // E5
	SoundClickMiddle: 1174.7, // D6
}

// decay applies an exponential amplitude envelope to a stream
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	k        float64
	position int
}

// NewDecay shapes s with amplitude exp(-k*t)
func NewDecay(s beep.Streamer, k float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, k: k}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.position) / float64(d.rate)
		vol := math.Exp(-d.k * t)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ClickSound builds a finite click: a decaying sine with a quiet octave overtone
func ClickSound(st SoundType, cfg *AudioConfig) (beep.Streamer, error) {
	if st < 0 || st >= soundTypeCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, st)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	freq := clickPitch[st]

	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("click %s: %w", st, err)
	}
	over, err := generators.SineTone(rate, freq*2)
	if err != nil {
		// Overtone above Nyquist at low sample rates, fundamental only
		over = beep.Silence(-1)
	}

	tone := beep.Mix(
		newVolume(fund, 1-clickOvertone),
		newVolume(over, clickOvertone),
	)
	shaped := NewDecay(tone, clickDecay, rate)
	clip := beep.Take(rate.N(ClickDuration), shaped)

	return newVolume(clip, cfg.EffectVolume(st)), nil
}
