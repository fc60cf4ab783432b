package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendTerminal, cfg.Backend)
	assert.Equal(t, zerolog.Disabled, cfg.Level())
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "uifocus.toml", `
frame_rate = 30
backend = "window"
scene = "demo.yaml"
audio = true
log_level = "debug"

[window]
width = 1024
title = "focus"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, BackendWindow, cfg.Backend)
	assert.Equal(t, "demo.yaml", cfg.Scene)
	assert.True(t, cfg.Audio)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, Default().Window.Height, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, "focus", cfg.Window.Title)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "uifocus.toml", "frame_rate = 30\n")
	t.Setenv("UIFOCUS_FRAME_RATE", "120")
	t.Setenv("UIFOCUS_WINDOW_TITLE", "env title")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.FrameRate)
	assert.Equal(t, "env title", cfg.Window.Title)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		invalid bool
	}{
		{name: "syntax", body: "frame_rate = ["},
		{name: "unknown key", body: "frames = 3\n", invalid: true},
		{name: "zero rate", body: "frame_rate = 0\n", invalid: true},
		{name: "rate too high", body: "frame_rate = 100000\n", invalid: true},
		{name: "backend", body: "backend = \"gpu\"\n", invalid: true},
		{name: "log level", body: "log_level = \"loud\"\n", invalid: true},
		{name: "window", body: "[window]\nwidth = -1\n", invalid: true},
		{name: "env type", body: "", env: map[string]string{"UIFOCUS_FRAME_RATE": "fast"}, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeFile(t, "c.toml", tt.body))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NotErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Audio = true
	cfg.Scene = "menu.toml"

	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, cfg.WriteFile(path))
	assert.Error(t, cfg.WriteFile(path), "existing file is not overwritten")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))
	assert.Contains(t, buf.String(), `scene = "menu.toml"`)
}
