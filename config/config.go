// Package config loads runtime settings from a TOML file and UIFOCUS_* environment variables
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/uifocus/parameter"
)

// EnvPrefix is prepended to every environment override, e.g. UIFOCUS_FRAME_RATE
const EnvPrefix = "UIFOCUS"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Backend names
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

// Window holds ebiten window settings
type Window struct {
	Width  int    `toml:"width" envconfig:"WIDTH"`
	Height int    `toml:"height" envconfig:"HEIGHT"`
	Title  string `toml:"title" envconfig:"TITLE"`
}

// Config is the effective runtime configuration
type Config struct {
	FrameRate int    `toml:"frame_rate" envconfig:"FRAME_RATE"`
	Backend   string `toml:"backend" envconfig:"BACKEND"`
	Scene     string `toml:"scene" envconfig:"SCENE"`
	Audio     bool   `toml:"audio" envconfig:"AUDIO"`
	HoverCue  bool   `toml:"hover_cue" envconfig:"HOVER_CUE"`
	LogLevel  string `toml:"log_level" envconfig:"LOG_LEVEL"`
	Window    Window `toml:"window" envconfig:"WINDOW"`
}

// Default returns built-in settings; an empty scene path selects the demo scene
func Default() Config {
	return Config{
		FrameRate: parameter.DefaultFrameRate,
		Backend:   BackendTerminal,
		Window: Window{
			Width:  parameter.DefaultWindowWidth,
			Height: parameter.DefaultWindowHeight,
			Title:  parameter.DefaultWindowTitle,
		},
	}
}

// Load applies the file at path (if non-empty) over defaults, then environment overrides, then validates
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: environment: %v", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.FrameRate <= 0 || c.FrameRate > parameter.MaxFrameRate {
		return fmt.Errorf("%w: frame_rate %d outside 1..%d", ErrInvalid, c.FrameRate, parameter.MaxFrameRate)
	}
	switch c.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("%w: backend %q", ErrInvalid, c.Backend)
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}

// Level returns the configured log level, Disabled when unset
func (c Config) Level() zerolog.Level {
	if c.LogLevel == "" {
		return zerolog.Disabled
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Disabled
	}
	return lvl
}

// Write encodes c as TOML
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// WriteFile writes c to path, refusing to overwrite an existing file
func (c Config) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := c.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}
