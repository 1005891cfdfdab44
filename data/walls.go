package data

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidWall is wrapped by every wall validation failure.
var ErrInvalidWall = errors.New("invalid wall definition")

// Wall is one record of the wall-layout file. (X, Y) is the wall's min
// corner, not its center.
type Wall struct {
	Index  uint32  `yaml:"idx"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color,omitempty"` // Optional hex color, e.g. "#b3b3b3"
}

// Center returns the point the wall's collider is placed at.
func (w Wall) Center() (float64, float64) {
	return w.X + 0.5*w.Width, w.Y + 0.5*w.Height
}

// WallLayout is the root of the wall-layout file.
type WallLayout struct {
	Walls []Wall `yaml:"walls"`
}

// LoadWalls reads and validates a wall-layout file.
func LoadWalls(path string) (*WallLayout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wall definition: %w", err)
	}

	layout, err := ParseWalls(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// ParseWalls decodes a wall layout. Unknown fields are rejected so typos in
// the file fail loudly instead of producing zero-sized walls.
func ParseWalls(raw []byte) (*WallLayout, error) {
	var layout WallLayout
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWall, err)
	}

	seen := make(map[uint32]bool, len(layout.Walls))
	for _, w := range layout.Walls {
		if w.Width <= 0 || w.Height <= 0 {
			return nil, fmt.Errorf("%w: wall %d has size %vx%v", ErrInvalidWall, w.Index, w.Width, w.Height)
		}
		if seen[w.Index] {
			return nil, fmt.Errorf("%w: duplicate wall index %d", ErrInvalidWall, w.Index)
		}
		if w.Color != "" {
			if _, err := ParseHexColor(w.Color); err != nil {
				return nil, fmt.Errorf("%w: wall %d: %v", ErrInvalidWall, w.Index, err)
			}
		}
		seen[w.Index] = true
	}
	return &layout, nil
}

// ParseHexColor converts a "#rrggbb" string to a color.RGBA
func ParseHexColor(hex string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	if len(hex) != 7 || hex[0] != '#' {
		return c, fmt.Errorf("color %q is not in #rrggbb form", hex)
	}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("color %q: %w", hex, err)
	}
	return c, nil
}
