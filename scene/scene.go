// Package scene loads declarative UI element lists and spawns them into a world
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/core"
)

// ErrUnknownFormat is returned for files that are neither YAML nor TOML
var ErrUnknownFormat = errors.New("unknown scene format")

// Format selects the decoder
type Format uint8

const (
	FormatYAML Format = iota
	FormatTOML
)

// Clip is a clip rectangle in surface coordinates
type Clip struct {
	MinX float64 `yaml:"min_x" toml:"min_x"`
	MinY float64 `yaml:"min_y" toml:"min_y"`
	MaxX float64 `yaml:"max_x" toml:"max_x"`
	MaxY float64 `yaml:"max_y" toml:"max_y"`
}

// Rect converts to core geometry
func (c Clip) Rect() core.Rect {
	return core.NewRect(c.MinX, c.MinY, c.MaxX, c.MaxY)
}

// Element is one UI node as written in a scene file
// X,Y is the node center; Z orders overlapping nodes, larger is nearer
type Element struct {
	Name   string                 `yaml:"name" toml:"name"`
	X      float64                `yaml:"x" toml:"x"`
	Y      float64                `yaml:"y" toml:"y"`
	Z      float64                `yaml:"z" toml:"z"`
	Width  float64                `yaml:"width" toml:"width"`
	Height float64                `yaml:"height" toml:"height"`
	Clip   *Clip                  `yaml:"clip,omitempty" toml:"clip,omitempty"`
	Policy *component.FocusPolicy `yaml:"policy,omitempty" toml:"policy,omitempty"`
}

// Scene is an ordered element list; file order becomes creation order
type Scene struct {
	Name     string    `yaml:"name" toml:"name"`
	Elements []Element `yaml:"elements" toml:"elements"`
}

// FormatFromPath picks the decoder by extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// LoadFile reads and validates a scene file
func LoadFile(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	sc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

// Decode parses and validates a scene from r
// Unknown keys are rejected in both formats
func Decode(r io.Reader, format Format) (*Scene, error) {
	var sc Scene

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read toml: %w", err)
		}
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&sc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, ErrUnknownFormat
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate rejects negative sizes and duplicate names
// Zero sizes and empty clips are allowed; such nodes are never hit
func (s *Scene) Validate() error {
	seen := make(map[string]int, len(s.Elements))
	for i, el := range s.Elements {
		if el.Width < 0 || el.Height < 0 {
			return fmt.Errorf("element %d (%s): negative size %gx%g", i, el.Name, el.Width, el.Height)
		}
		if el.Name == "" {
			continue
		}
		if prev, dup := seen[el.Name]; dup {
			return fmt.Errorf("element %d: name %q already used by element %d", i, el.Name, prev)
		}
		seen[el.Name] = i
	}
	return nil
}
