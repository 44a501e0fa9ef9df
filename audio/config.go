package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at half volume, 44.1kHz
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundClickLeft:   1.0,
			SoundClickRight:  0.8,
			SoundClickMiddle: 0.6,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides fields from TERMBUTTON_* environment variables
// Malformed values are ignored
func (cfg *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv("TERMBUTTON_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("TERMBUTTON_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// JSON object keyed by sound name: {"left":1.0,"right":0.5}
	if effectVols := os.Getenv("TERMBUTTON_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if cfg.EffectVolumes == nil {
				cfg.EffectVolumes = make(map[SoundType]float64)
			}
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("TERMBUTTON_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

// EffectVolume returns the per-sound volume scaled by master volume
// Sounds missing from EffectVolumes play at full effect volume
func (cfg *AudioConfig) EffectVolume(st SoundType) float64 {
	vol, ok := cfg.EffectVolumes[st]
	if !ok {
		vol = 1.0
	}
	return vol * cfg.MasterVolume
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
