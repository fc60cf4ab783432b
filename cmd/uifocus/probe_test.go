package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/render"
	"github.com/lixenwraith/uifocus/scene"
)

func statesByLabel(w *engine.World) map[string]component.Interaction {
	out := map[string]component.Interaction{}
	for _, it := range render.Collect(w) {
		out[it.Label] = it.State
	}
	return out
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in   string
		x, y float64
		err  bool
	}{
		{in: "20,8", x: 20, y: 8},
		{in: " 1.5 , -2 ", x: 1.5, y: -2},
		{in: "20", err: true},
		{in: "a,1", err: true},
		{in: "1,b", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := parsePoint(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.x, p.X)
			assert.Equal(t, tt.y, p.Y)
		})
	}
}

func TestProbeDefaultScene(t *testing.T) {
	tests := []struct {
		name string
		opts probeOptions
		want map[string]component.Interaction
	}{
		{
			name: "no pointer",
			opts: probeOptions{},
			want: map[string]component.Interaction{
				"panel": component.InteractionNone, "button": component.InteractionNone,
				"overlay": component.InteractionNone, "list": component.InteractionNone,
			},
		},
		{
			name: "pass overlay over button",
			opts: probeOptions{at: "20,8"},
			want: map[string]component.Interaction{
				"panel": component.InteractionNone, "button": component.InteractionHovered,
				"overlay": component.InteractionHovered, "list": component.InteractionNone,
			},
		},
		{
			name: "mouse click on panel",
			opts: probeOptions{at: "30,11", click: true},
			want: map[string]component.Interaction{
				"panel": component.InteractionClicked, "button": component.InteractionNone,
				"overlay": component.InteractionNone, "list": component.InteractionNone,
			},
		},
		{
			name: "touch held hovers",
			opts: probeOptions{at: "30,11", touch: true},
			want: map[string]component.Interaction{
				"panel": component.InteractionHovered, "button": component.InteractionNone,
				"overlay": component.InteractionNone, "list": component.InteractionNone,
			},
		},
		{
			name: "touch tap clicks",
			opts: probeOptions{at: "30,11", touch: true, click: true},
			want: map[string]component.Interaction{
				"panel": component.InteractionClicked, "button": component.InteractionNone,
				"overlay": component.InteractionNone, "list": component.InteractionNone,
			},
		},
		{
			name: "list clipped away",
			opts: probeOptions{at: "44,17"},
			want: map[string]component.Interaction{
				"panel": component.InteractionHovered, "button": component.InteractionNone,
				"overlay": component.InteractionNone, "list": component.InteractionNone,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := probe(scene.Default(), &tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, statesByLabel(w))
		})
	}
}

func TestProbeRejectsClickWithoutPosition(t *testing.T) {
	_, err := probe(scene.Default(), &probeOptions{click: true})
	assert.Error(t, err)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestProbeCommandOutput(t *testing.T) {
	out, err := runCLI(t, "probe", "--at", "20,8", "--metrics")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	overlay := slicesIndex(lines, "overlay")
	button := slicesIndex(lines, "button")
	panel := slicesIndex(lines, "panel")
	require.True(t, overlay >= 0 && button >= 0 && panel >= 0, out)
	assert.Less(t, overlay, button, "front to back")
	assert.Less(t, button, panel)

	assert.Contains(t, lines[overlay], "hovered")
	assert.Contains(t, lines[overlay], "pass")
	assert.Contains(t, lines[panel], "none")
	assert.Contains(t, out, "focus.hits")
}

func TestProbeCommandSceneFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[elements]]
name = "solo"
x = 5.0
y = 5.0
width = 4.0
height = 4.0
`), 0o644))

	out, err := runCLI(t, "--scene", path, "probe", "--at", "5,5", "--click")
	require.NoError(t, err)
	assert.Contains(t, out, "solo")
	assert.Contains(t, out, "clicked")

	_, err = runCLI(t, "--scene", filepath.Join(dir, "x.json"), "probe")
	assert.ErrorIs(t, err, scene.ErrUnknownFormat)
}

func TestConfigCommands(t *testing.T) {
	out, err := runCLI(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "frame_rate = 60")

	path := filepath.Join(t.TempDir(), "new.toml")
	out, err = runCLI(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func slicesIndex(lines []string, word string) int {
	for i, l := range lines {
		if strings.Contains(l, " "+word+" ") {
			return i
		}
	}
	return -1
}

func TestWriteTables(t *testing.T) {
	w, err := probe(scene.Default(), &probeOptions{at: "20,8"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeElements(&buf, w))
	out := strings.ToLower(buf.String())
	for _, col := range []string{"name", "entity", "policy", "visible", "interaction"} {
		assert.Contains(t, out, col)
	}
	assert.Contains(t, out, "overlay")

	buf.Reset()
	require.NoError(t, writeMetrics(&buf, w))
	assert.Contains(t, strings.ToLower(buf.String()), "metric")
	assert.Contains(t, buf.String(), "focus.hits")
}
