package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/hotcold/internal/audio"
)

const (
	WindowWidth  = 800
	WindowHeight = 600

	SampleRate = 44100

	// HUD strip above the play area
	HeaderHeight = 56
	Margin       = 16

	// Button dimensions
	ButtonWidth  = 96
	ButtonHeight = 32
	ButtonGap    = 12

	// Scope strip
	ScopeSamples = 512
	ScopeWidth   = 160

	// Hidden-target marker, inset from the play area's top right corner
	MarkerRadius = 12
	MarkerInset  = 24

	// Found overlay pulse
	PulseRadius     = 22
	ColorShiftSpeed = 0.02
)

// EnvConfig names the environment variable holding a config file path.
const EnvConfig = "HOTCOLD_CONFIG"

// Settings are the user-tunable options read from a TOML file.
type Settings struct {
	Title       string `toml:"title"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Seed        int64  `toml:"seed"`
	StartMuted  bool   `toml:"start_muted"`
	Fanfare     string `toml:"fanfare"`
	ConfirmQuit bool   `toml:"confirm_quit"`
	LogLevel    string `toml:"log_level"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		Title:      "Detectorist",
		Width:      WindowWidth,
		Height:     WindowHeight,
		StartMuted: true,
		LogLevel:   "info",
	}
}

// ResolvePath picks the config file: flag first, then HOTCOLD_CONFIG.
// An empty result means run on defaults.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvConfig)
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return s, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if s.Fanfare != "" && !filepath.IsAbs(s.Fanfare) {
		s.Fanfare = filepath.Join(filepath.Dir(path), s.Fanfare)
	}

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Width, s.Height))
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if s.Fanfare != "" && !audio.SupportedFanfare(s.Fanfare) {
		errs = append(errs, fmt.Errorf("fanfare %q: want .wav, .mp3 or .flac", s.Fanfare))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, falling back to info.
func (s Settings) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || s.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
