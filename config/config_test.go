package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/termbutton/terminal"
	"github.com/lixenwraith/termbutton/terminal/tui"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.toml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q): %v", path, err)
		}
		if diff := cmp.Diff(Default(), cfg); diff != "" {
			t.Errorf("Load(%q) mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestLoadFormats(t *testing.T) {
	enabled := false
	want := Default()
	want.Theme.Line = "double"
	want.Theme.Hovered = "#0000ff"
	want.Audio.Enabled = &enabled
	want.Audio.Volume = 30
	want.Input.Policy = "clear"
	want.Log.Debug = true

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "demo.toml", `
[theme]
line = "double"
hovered = "#0000ff"

[audio]
enabled = false
volume = 30

[input]
policy = "clear"

[log]
debug = true
`},
		{"yaml", "demo.yaml", `
theme:
  line: double
  hovered: "#0000ff"
audio:
  enabled: false
  volume: 30
input:
  policy: clear
log:
  debug: true
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(want, cfg); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", "# nothing here\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		is      error
	}{
		{"unknown extension", "demo.json", `{}`, ErrUnknownFormat},
		{"bad toml", "bad.toml", `[theme`, nil},
		{"unknown toml key", "extra.toml", "[theme]\nshape = \"star\"\n", nil},
		{"unknown yaml key", "extra.yaml", "theme:\n  shape: star\n", nil},
		{"bad policy", "policy.toml", "[input]\npolicy = \"sticky\"\n", nil},
		{"bad color", "color.toml", "[theme]\nnormal = \"white\"\n", nil},
		{"bad line", "line.yaml", "theme:\n  line: dotted\n", nil},
		{"bad align", "align.toml", "[theme]\nalign = \"justify\"\n", nil},
		{"bad volume", "vol.toml", "[audio]\nvolume = 120\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestThemeResolve(t *testing.T) {
	theme, err := Theme{
		Line:       "heavy",
		Normal:     "#fff",
		Hovered:    "#00ff00",
		Pressed:    "#ff0000",
		Text:       "#101010",
		Background: "#000000",
	}.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if theme.ButtonLine != tui.LineHeavy {
		t.Errorf("Expected heavy line, got %v", theme.ButtonLine)
	}
	checks := map[string][2]terminal.RGB{
		"normal":  {theme.ButtonNormal, {R: 255, G: 255, B: 255}},
		"hovered": {theme.ButtonHovered, {G: 255}},
		"pressed": {theme.ButtonPressed, {R: 255}},
		"text":    {theme.Fg, {R: 16, G: 16, B: 16}},
	}
	for name, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %v, want %v", name, c[0], c[1])
		}
	}
}

// TestDefaultThemeRoundTrip verifies the default hex strings resolve to the default theme
func TestDefaultThemeRoundTrip(t *testing.T) {
	theme, err := Default().Theme.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(tui.DefaultTheme, theme); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TERMBUTTON_POLICY", "clear")
	t.Setenv("TERMBUTTON_POLL_MS", "16")
	t.Setenv("TERMBUTTON_DEBUG", "true")
	t.Setenv("TERMBUTTON_LOG_DIR", "/tmp/tb")

	cfg := Default()
	cfg.ApplyEnv()

	want := Default()
	want.Input = Input{PollIntervalMs: 16, Policy: "clear"}
	want.Log = Log{Debug: true, Dir: "/tmp/tb"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if cfg.LatchPolicy() != tui.LatchClear {
		t.Error("Expected clear latch policy")
	}
}

func TestAudioConfig(t *testing.T) {
	t.Setenv("TERMBUTTON_AUDIO_ENABLED", "")
	t.Setenv("TERMBUTTON_MASTER_VOLUME", "")
	t.Setenv("TERMBUTTON_SAMPLE_RATE", "")
	t.Setenv("TERMBUTTON_SFX_VOLUMES", "")

	off := false
	cfg := Default()
	cfg.Audio = Audio{Enabled: &off, Volume: 20, SampleRate: 22050}

	ac := cfg.AudioConfig()
	if ac.Enabled || ac.MasterVolume != 0.2 || ac.SampleRate != 22050 {
		t.Errorf("Unexpected audio config %+v", ac)
	}

	t.Setenv("TERMBUTTON_MASTER_VOLUME", "90")
	if got := cfg.AudioConfig().MasterVolume; got != 0.9 {
		t.Errorf("Expected env override 0.9, got %f", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.toml", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			cfg.Theme.Line = "single"
			cfg.Input.PollIntervalMs = 50

			path := filepath.Join(t.TempDir(), name)
			if err := cfg.Save(path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(cfg, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshalUnknownFormat(t *testing.T) {
	if _, err := Default().Marshal(".ini"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}
