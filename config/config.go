// Package config loads the demo's theme, audio, input and logging settings from an
// optional TOML or YAML file plus TERMBUTTON_* environment overrides
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/termbutton/audio"
	"github.com/lixenwraith/termbutton/terminal"
	"github.com/lixenwraith/termbutton/terminal/tui"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML
var ErrUnknownFormat = errors.New("unknown config format")

// Config is the demo configuration
type Config struct {
	Theme Theme `toml:"theme" yaml:"theme"`
	Audio Audio `toml:"audio" yaml:"audio"`
	Input Input `toml:"input" yaml:"input"`
	Log   Log   `toml:"log" yaml:"log"`
}

// Theme holds button colors as hex strings, the border line name and text alignment
type Theme struct {
	Line       string `toml:"line,omitempty" yaml:"line,omitempty"`
	Align      string `toml:"align,omitempty" yaml:"align,omitempty"`
	Normal     string `toml:"normal,omitempty" yaml:"normal,omitempty"`
	Hovered    string `toml:"hovered,omitempty" yaml:"hovered,omitempty"`
	Pressed    string `toml:"pressed,omitempty" yaml:"pressed,omitempty"`
	Text       string `toml:"text,omitempty" yaml:"text,omitempty"`
	Background string `toml:"background,omitempty" yaml:"background,omitempty"`
}

// Audio holds click feedback settings; nil Enabled means default (on)
type Audio struct {
	Enabled    *bool `toml:"enabled,omitempty" yaml:"enabled,omitempty"`
	Volume     int   `toml:"volume,omitempty" yaml:"volume,omitempty"` // 1-100, 0 uses default
	SampleRate int   `toml:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
}

// Input controls the frame loop's event handling
type Input struct {
	PollIntervalMs int    `toml:"poll_interval_ms,omitempty" yaml:"poll_interval_ms,omitempty"`
	Policy         string `toml:"policy,omitempty" yaml:"policy,omitempty"` // "reuse" or "clear"
}

// Log controls debug logging
type Log struct {
	Debug bool   `toml:"debug" yaml:"debug"`
	Dir   string `toml:"dir,omitempty" yaml:"dir,omitempty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Theme: Theme{
			Line:       tui.DefaultTheme.ButtonLine.String(),
			Align:      tui.DefaultTheme.ButtonAlign.String(),
			Normal:     tui.DefaultTheme.ButtonNormal.Hex(),
			Hovered:    tui.DefaultTheme.ButtonHovered.Hex(),
			Pressed:    tui.DefaultTheme.ButtonPressed.Hex(),
			Text:       tui.DefaultTheme.Fg.Hex(),
			Background: tui.DefaultTheme.Bg.Hex(),
		},
		Audio: Audio{
			Volume:     50,
			SampleRate: 44100,
		},
		Input: Input{
			PollIntervalMs: 100,
			Policy:         "reuse",
		},
		Log: Log{
			Dir: "logs",
		},
	}
}

// Load reads path, choosing the parser by extension
// An empty path or a missing file yields Default()
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// Empty document decodes to io.EOF
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// fillDefaults replaces zero fields with Default() values
func (c *Config) fillDefaults() {
	d := Default()
	setDefault(&c.Theme.Line, d.Theme.Line)
	setDefault(&c.Theme.Align, d.Theme.Align)
	setDefault(&c.Theme.Normal, d.Theme.Normal)
	setDefault(&c.Theme.Hovered, d.Theme.Hovered)
	setDefault(&c.Theme.Pressed, d.Theme.Pressed)
	setDefault(&c.Theme.Text, d.Theme.Text)
	setDefault(&c.Theme.Background, d.Theme.Background)
	setDefault(&c.Audio.Volume, d.Audio.Volume)
	setDefault(&c.Audio.SampleRate, d.Audio.SampleRate)
	setDefault(&c.Input.PollIntervalMs, d.Input.PollIntervalMs)
	setDefault(&c.Input.Policy, d.Input.Policy)
	setDefault(&c.Log.Dir, d.Log.Dir)
}

func setDefault[T comparable](field *T, def T) {
	var zero T
	if *field == zero {
		*field = def
	}
}

// ApplyEnv overrides input and log settings from the environment
// Audio variables are applied by AudioConfig
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TERMBUTTON_POLICY"); v != "" {
		c.Input.Policy = v
	}
	if v := os.Getenv("TERMBUTTON_POLL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.Input.PollIntervalMs = ms
		}
	}
	if v := os.Getenv("TERMBUTTON_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = debug
		}
	}
	if v := os.Getenv("TERMBUTTON_LOG_DIR"); v != "" {
		c.Log.Dir = v
	}
}

// Validate checks values that cannot fall back silently
func (c *Config) Validate() error {
	if _, ok := tui.ParseLatchPolicy(c.Input.Policy); !ok {
		return fmt.Errorf("invalid input policy %q (want reuse or clear)", c.Input.Policy)
	}
	if c.Input.PollIntervalMs <= 0 {
		return fmt.Errorf("invalid poll interval %dms", c.Input.PollIntervalMs)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("invalid audio volume %d (want 0-100)", c.Audio.Volume)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	return nil
}

// Resolve converts the theme into a tui.Theme
func (t Theme) Resolve() (tui.Theme, error) {
	line, ok := tui.ParseLineType(t.Line)
	if !ok {
		return tui.Theme{}, fmt.Errorf("invalid border line %q", t.Line)
	}

	align, ok := tui.ParseAlignment(t.Align)
	if !ok {
		return tui.Theme{}, fmt.Errorf("invalid text alignment %q", t.Align)
	}

	theme := tui.DefaultTheme
	theme.ButtonLine = line
	theme.ButtonAlign = align
	for _, c := range []struct {
		name string
		hex  string
		dst  *terminal.RGB
	}{
		{"normal", t.Normal, &theme.ButtonNormal},
		{"hovered", t.Hovered, &theme.ButtonHovered},
		{"pressed", t.Pressed, &theme.ButtonPressed},
		{"text", t.Text, &theme.Fg},
		{"background", t.Background, &theme.Bg},
	} {
		rgb, err := terminal.ParseHex(c.hex)
		if err != nil {
			return tui.Theme{}, fmt.Errorf("theme %s: %w", c.name, err)
		}
		*c.dst = rgb
	}
	return theme, nil
}

// LatchPolicy returns the parsed input policy, LatchReuse for unknown names
func (c *Config) LatchPolicy() tui.LatchPolicy {
	p, _ := tui.ParseLatchPolicy(c.Input.Policy)
	return p
}

// AudioConfig builds the audio settings, then applies TERMBUTTON_* audio overrides
func (c *Config) AudioConfig() *audio.AudioConfig {
	cfg := audio.DefaultAudioConfig()
	if c.Audio.Enabled != nil {
		cfg.Enabled = *c.Audio.Enabled
	}
	cfg.MasterVolume = float64(c.Audio.Volume) / 100.0
	if c.Audio.SampleRate > 0 {
		cfg.SampleRate = c.Audio.SampleRate
	}
	cfg.ApplyEnv()
	return cfg
}

// Marshal encodes the config in the format implied by ext (".toml", ".yaml", ".yml")
func (c *Config) Marshal(ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".toml", "toml":
		return toml.Marshal(c)
	case ".yaml", ".yml", "yaml", "yml":
		return yaml.Marshal(c)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// Save writes the config to path in the format implied by its extension
func (c *Config) Save(path string) error {
	data, err := c.Marshal(filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
